package domain

import "math"

// Query is the input pair of one estimation.
type Query struct {
	// Xa is the mole fraction of component A.
	Xa float64 `json:"xa"`
	// T is the absolute temperature in Kelvin.
	T float64 `json:"t"`
}

// Result is the output record of one estimation.
// It has no identity beyond the computation that produced it.
type Result struct {
	LnD                  float64 `json:"ln_d" jsonschema_description:"Natural log of the estimated diffusivity"`
	D                    float64 `json:"d" jsonschema_description:"Estimated mutual diffusivity (m²/s)"`
	RelativeErrorPercent float64 `json:"relative_error_percent" jsonschema_description:"Relative error against the experimental reference, in percent, rounded to 3 decimals"`
	Xa                   float64 `json:"xa" jsonschema_description:"Mole fraction of component A"`
	T                    float64 `json:"t" jsonschema_description:"Absolute temperature (K)"`
}

// Query echoes the inputs of the result.
func (r Result) Query() Query {
	return Query{Xa: r.Xa, T: r.T}
}

// Finite reports whether every computed value of r is a finite number.
func (r Result) Finite() bool {
	return allFinite(r.LnD, r.D, r.RelativeErrorPercent)
}

// Breakdown exposes the intermediate quantities of one evaluation.
type Breakdown struct {
	Xb     float64 `json:"xb"`
	PhiA   float64 `json:"phi_a"`
	PhiB   float64 `json:"phi_b"`
	TauAB  float64 `json:"tau_ab"`
	TauBA  float64 `json:"tau_ba"`
	TetaA  float64 `json:"teta_a"`
	TetaB  float64 `json:"teta_b"`
	TetaAA float64 `json:"teta_aa"`
	TetaBB float64 `json:"teta_bb"`
	TetaAB float64 `json:"teta_ab"`
	TetaBA float64 `json:"teta_ba"`

	Terms Terms `json:"terms"`
}

// Terms are the five contributions to ln(D), in summation order.
type Terms struct {
	Ideal      float64 `json:"ideal"`
	Entropic   float64 `json:"entropic"`
	FreeVolume float64 `json:"free_volume"`
	LocalARich float64 `json:"local_a_rich"`
	LocalBRich float64 `json:"local_b_rich"`
}

// Sum adds the contributions left to right.
func (t Terms) Sum() float64 {
	return t.Ideal + t.Entropic + t.FreeVolume + t.LocalARich + t.LocalBRich
}

// Finite reports whether every intermediate quantity of b is a finite number.
func (b Breakdown) Finite() bool {
	return allFinite(b.Xb, b.PhiA, b.PhiB, b.TauAB, b.TauBA,
		b.TetaA, b.TetaB, b.TetaAA, b.TetaBB, b.TetaAB, b.TetaBA,
		b.Terms.Ideal, b.Terms.Entropic, b.Terms.FreeVolume, b.Terms.LocalARich, b.Terms.LocalBRich)
}

func allFinite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
