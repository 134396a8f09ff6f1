package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the kind of every domain validation failure raised by the estimator.
var ErrInvalidInput = errors.New("invalid input")

// ErrParse is the kind of failures to read a raw value as a number.
// It is raised by adapters only and never reaches the estimator.
var ErrParse = errors.New("parse failure")

// ErrNonFinite reports a valid query whose estimate overflowed to NaN or ±Inf.
// The estimator itself returns such results unchanged; adapters that cannot
// encode them raise this error instead.
var ErrNonFinite = errors.New("estimate is not finite")

// Messages shown to end users.
const (
	MsgFractionRange    = "La fraction Xa doit être entre 0 et 1"
	MsgFractionSingular = "La fraction Xa doit être strictement entre 0 et 1 (modèle singulier aux bornes)"
	MsgFractionNaN      = "La fraction Xa doit être un nombre fini"
	MsgTemperature      = "La température doit être positive"
	MsgTemperatureNaN   = "La température doit être un nombre fini"
	MsgComputePrefix    = "Erreur de calcul : "
)

// InputError reports a query field rejected by the estimator.
type InputError struct {
	Field  string  // Query field name ("Xa" or "T")
	Reason string  // Human-readable message
	Value  float64 // The rejected value
}

func (e *InputError) Error() string {
	return e.Reason
}

// Unwrap lets errors.Is match ErrInvalidInput.
func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

// ParseError reports raw text that could not be read as a float.
type ParseError struct {
	Field string
	Raw   string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: valeur %q invalide pour %s", ErrParse, e.Raw, e.Field)
}

// Unwrap returns both the kind and the underlying cause.
func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// UserMessage returns the text an adapter should display for err.
// Validation failures are shown verbatim; everything else is prefixed as a computation error.
func UserMessage(err error) string {
	var inputErr *InputError
	if errors.As(err, &inputErr) {
		return inputErr.Reason
	}
	return MsgComputePrefix + err.Error()
}
