package jsonschema

import "math/big"

func evaluateMultipleOf(schema *Schema, value *Rat) *ValidationError {
	if schema.MultipleOf == nil {
		return nil
	}
	if schema.MultipleOf.Sign() <= 0 {
		return newValidationError(ErrCodeMultipleOf, "multipleOf",
			"multipleOf "+FormatRat(schema.MultipleOf)+" should be greater than 0",
			map[string]any{"multiple_of": FormatRat(schema.MultipleOf)})
	}

	quotient := new(big.Rat).Quo(value.Rat, schema.MultipleOf.Rat)
	if !quotient.IsInt() {
		return newValidationError(ErrCodeMultipleOf, "multipleOf",
			FormatRat(value)+" should be a multiple of "+FormatRat(schema.MultipleOf),
			map[string]any{"multiple_of": FormatRat(schema.MultipleOf), "value": FormatRat(value)})
	}
	return nil
}
