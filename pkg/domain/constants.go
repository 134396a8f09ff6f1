package domain

// Field constants for mapstructure, YAML and JSON standardization.
const (
	KeyExperimentalD = "v_exp"
	KeyABA           = "a_ba"
	KeyAAB           = "a_ab"
	KeyLambdaA       = "lambda_a"
	KeyLambdaB       = "lambda_b"
	KeyQA            = "q_a"
	KeyQB            = "q_b"
	KeyDAB           = "d_ab"
	KeyDBA           = "d_ba"
)

// ModelConstants holds the parameters of the correlation.
// Values are passed by copy; nothing in this module mutates them after construction.
type ModelConstants struct {
	// ExperimentalD is the measured reference diffusivity (m²/s) used for the relative error.
	ExperimentalD float64 `json:"v_exp" yaml:"v_exp" mapstructure:"v_exp"`
	// ABA and AAB are the binary interaction energies (K). The model is asymmetric in them.
	ABA float64 `json:"a_ba" yaml:"a_ba" mapstructure:"a_ba"`
	AAB float64 `json:"a_ab" yaml:"a_ab" mapstructure:"a_ab"`
	// LambdaA and LambdaB are the relative molecular size parameters.
	LambdaA float64 `json:"lambda_a" yaml:"lambda_a" mapstructure:"lambda_a"`
	LambdaB float64 `json:"lambda_b" yaml:"lambda_b" mapstructure:"lambda_b"`
	// QA and QB are the relative surface area parameters.
	QA float64 `json:"q_a" yaml:"q_a" mapstructure:"q_a"`
	QB float64 `json:"q_b" yaml:"q_b" mapstructure:"q_b"`
	// DAB is the diffusivity of A infinitely diluted in B, DBA the reverse (m²/s).
	DAB float64 `json:"d_ab" yaml:"d_ab" mapstructure:"d_ab"`
	DBA float64 `json:"d_ba" yaml:"d_ba" mapstructure:"d_ba"`
}

// DefaultConstants returns the reference parameter set of the model.
func DefaultConstants() ModelConstants {
	return ModelConstants{
		ExperimentalD: 1.33e-05,
		ABA:           194.5302,
		AAB:           -10.7575,
		LambdaA:       1.127,
		LambdaB:       0.973,
		QA:            1.432,
		QB:            1.4,
		DAB:           2.1e-5,
		DBA:           2.67e-5,
	}
}

// Fields returns the constants keyed by their configuration name.
func (c ModelConstants) Fields() map[string]float64 {
	return map[string]float64{
		KeyExperimentalD: c.ExperimentalD,
		KeyABA:           c.ABA,
		KeyAAB:           c.AAB,
		KeyLambdaA:       c.LambdaA,
		KeyLambdaB:       c.LambdaB,
		KeyQA:            c.QA,
		KeyQB:            c.QB,
		KeyDAB:           c.DAB,
		KeyDBA:           c.DBA,
	}
}
