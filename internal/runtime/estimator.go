package runtime

import (
	"math"

	"github.com/aretw0/vignes/pkg/domain"
	"github.com/shopspring/decimal"
)

// ErrorPrecision is the number of decimal places kept in the relative error.
const ErrorPrecision = 3

// Estimator evaluates the local-composition diffusion correlation.
// It holds no mutable state and is safe for concurrent use.
type Estimator struct {
	c domain.ModelConstants
}

// NewEstimator creates an estimator bound to the given constants.
// The constants are copied; callers validate them beforehand.
func NewEstimator(c domain.ModelConstants) *Estimator {
	return &Estimator{c: c}
}

// Constants returns a copy of the model constants.
func (e *Estimator) Constants() domain.ModelConstants {
	return e.c
}

// Estimate validates the query and evaluates the correlation.
func (e *Estimator) Estimate(q domain.Query) (domain.Result, error) {
	res, _, err := e.Explain(q)
	return res, err
}

// Explain is Estimate plus the intermediate quantities of the evaluation.
func (e *Estimator) Explain(q domain.Query) (domain.Result, domain.Breakdown, error) {
	if err := ValidateQuery(q); err != nil {
		return domain.Result{}, domain.Breakdown{}, err
	}

	b := e.breakdown(q.Xa, q.T)
	lnD := b.Terms.Sum()
	d := math.Exp(lnD)

	return domain.Result{
		LnD:                  lnD,
		D:                    d,
		RelativeErrorPercent: RelativeError(d, e.c.ExperimentalD),
		Xa:                   q.Xa,
		T:                    q.T,
	}, b, nil
}

// breakdown evaluates every intermediate quantity of the model.
// Inputs must already be validated.
func (e *Estimator) breakdown(xa, t float64) domain.Breakdown {
	c := e.c
	xb := 1 - xa

	phiA := (xa * c.LambdaA) / (xa*c.LambdaA + xb*c.LambdaB)
	phiB := 1 - phiA

	tauAB := math.Exp(-c.AAB / t)
	tauBA := math.Exp(-c.ABA / t)

	tetaA := (xa * c.QA) / (xa*c.QA + xb*c.QB)
	tetaB := 1 - tetaA

	tetaAA := tetaA / (tetaA + tetaB*tauBA)
	tetaBB := tetaB / (tetaB + tetaA*tauAB)
	tetaAB := (tetaA * tauAB) / (tetaA*tauAB + tetaB)
	tetaBA := (tetaB * tauBA) / (tetaB*tauBA + tetaA)

	lnTauAB := math.Log(tauAB)
	lnTauBA := math.Log(tauBA)

	terms := domain.Terms{
		Ideal:    xb*math.Log(c.DAB) + xa*math.Log(c.DBA),
		Entropic: 2 * (xa*math.Log(xa/phiA) + xb*math.Log(xb/phiB)),
		FreeVolume: 2 * xb * xa * ((phiA/xa)*(1-c.LambdaA/c.LambdaB) +
			(phiB/xb)*(1-c.LambdaB/c.LambdaA)),
		LocalARich: xb * c.QA * ((1-tetaBA*tetaBA)*lnTauBA +
			(1-tetaBB*tetaBB)*tauAB*lnTauAB),
		LocalBRich: xa * c.QB * ((1-tetaAB*tetaAB)*lnTauAB +
			(1-tetaAA*tetaAA)*tauBA*lnTauBA),
	}

	return domain.Breakdown{
		Xb:     xb,
		PhiA:   phiA,
		PhiB:   phiB,
		TauAB:  tauAB,
		TauBA:  tauBA,
		TetaA:  tetaA,
		TetaB:  tetaB,
		TetaAA: tetaAA,
		TetaBB: tetaBB,
		TetaAB: tetaAB,
		TetaBA: tetaBA,
		Terms:  terms,
	}
}

// RelativeError returns |d - ref| / ref * 100 rounded half away from zero
// to ErrorPrecision decimals. Non-finite values are returned unrounded.
func RelativeError(d, ref float64) float64 {
	pct := math.Abs(d-ref) / ref * 100
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return pct
	}
	return decimal.NewFromFloat(pct).Round(ErrorPrecision).InexactFloat64()
}
