// Package schema provides field-level validation for numeric parameter tables.
//
// A Schema maps field names to types. Validation walks the fields in name
// order and reports every failure at once through an AggregateError, so a
// misconfigured table is fixed in a single pass:
//
//	s := schema.Schema{
//	    "lambda_a": schema.Positive(),
//	    "a_ab":     schema.Finite(),
//	}
//
//	if err := schema.Validate(s, map[string]any{"lambda_a": 1.127, "a_ab": -10.75}); err != nil {
//	    for _, e := range schema.ValidationErrors(err) {
//	        // Handle each field failure
//	    }
//	}
//
// Custom validators can be registered for domain-specific rules:
//
//	belowOne := schema.Custom("below_one", func(v any) error {
//	    f, err := schema.AsFloat(v)
//	    if err != nil {
//	        return err
//	    }
//	    if f >= 1 {
//	        return fmt.Errorf("must be below 1")
//	    }
//	    return nil
//	})
package schema
