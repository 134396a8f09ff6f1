package schema

import (
	"fmt"
	"math"
)

// Type defines the contract for field validation.
type Type interface {
	// Name returns the human-readable name of the type (e.g., "float", "positive").
	Name() string
	// Validate checks if a value conforms to this type.
	Validate(value any) error
}

// AsFloat converts numeric values to float64.
func AsFloat(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("expected float, got %T", value)
	}
}

// FloatType validates floating-point values.
type FloatType struct{}

func (t *FloatType) Name() string { return "float" }

func (t *FloatType) Validate(value any) error {
	_, err := AsFloat(value)
	return err
}

// FiniteType validates floats that are neither NaN nor infinite.
type FiniteType struct{}

func (t *FiniteType) Name() string { return "finite" }

func (t *FiniteType) Validate(value any) error {
	f, err := AsFloat(value)
	if err != nil {
		return err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("must be finite, got %v", f)
	}
	return nil
}

// PositiveType validates finite floats strictly greater than zero.
type PositiveType struct{}

func (t *PositiveType) Name() string { return "positive" }

func (t *PositiveType) Validate(value any) error {
	if err := (&FiniteType{}).Validate(value); err != nil {
		return err
	}
	f, _ := AsFloat(value)
	if f <= 0 {
		return fmt.Errorf("must be strictly positive, got %v", f)
	}
	return nil
}

// CustomType wraps a user-defined validation function.
type CustomType struct {
	name     string
	validate func(any) error
}

func (t *CustomType) Name() string { return t.name }

func (t *CustomType) Validate(value any) error {
	return t.validate(value)
}

// Float returns a FloatType.
func Float() Type { return &FloatType{} }

// Finite returns a FiniteType.
func Finite() Type { return &FiniteType{} }

// Positive returns a PositiveType.
func Positive() Type { return &PositiveType{} }

// Custom returns a CustomType with the given name and validation function.
func Custom(name string, validate func(any) error) Type {
	return &CustomType{name: name, validate: validate}
}
