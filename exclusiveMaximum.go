package jsonschema

// evaluateExclusiveMaximum checks the strict upper bound. It shares
// maximum_error with evaluateMaximum: both describe a violated range
// bound, inclusive or not.
func evaluateExclusiveMaximum(schema *Schema, value *Rat) *ValidationError {
	if schema.ExclusiveMaximum == nil {
		return nil
	}
	if value.Cmp(schema.ExclusiveMaximum.Rat) >= 0 {
		return newValidationError(ErrCodeMaximum, "exclusiveMaximum",
			FormatRat(value)+" should be less than "+FormatRat(schema.ExclusiveMaximum),
			map[string]any{"exclusive_maximum": FormatRat(schema.ExclusiveMaximum), "value": FormatRat(value)})
	}
	return nil
}
