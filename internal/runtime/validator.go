package runtime

import (
	"math"

	"github.com/aretw0/vignes/pkg/domain"
)

// ValidateQuery checks the query against the domain of the model.
// The first failing field is reported, Xa before T.
//
// Xa = 0 and Xa = 1 are rejected: the entropic and free-volume terms are 0/0 there.
func ValidateQuery(q domain.Query) error {
	switch {
	case math.IsNaN(q.Xa) || math.IsInf(q.Xa, 0):
		return &domain.InputError{Field: "Xa", Reason: domain.MsgFractionNaN, Value: q.Xa}
	case q.Xa < 0 || q.Xa > 1:
		return &domain.InputError{Field: "Xa", Reason: domain.MsgFractionRange, Value: q.Xa}
	case q.Xa == 0 || q.Xa == 1:
		return &domain.InputError{Field: "Xa", Reason: domain.MsgFractionSingular, Value: q.Xa}
	}

	switch {
	case math.IsNaN(q.T) || math.IsInf(q.T, 0):
		return &domain.InputError{Field: "T", Reason: domain.MsgTemperatureNaN, Value: q.T}
	case q.T <= 0:
		return &domain.InputError{Field: "T", Reason: domain.MsgTemperature, Value: q.T}
	}
	return nil
}
