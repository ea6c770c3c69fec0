package jsonschema

// evaluateExclusiveMinimum checks the strict lower bound. It shares
// minimum_error with evaluateMinimum: both describe a violated range
// bound, inclusive or not.
func evaluateExclusiveMinimum(schema *Schema, value *Rat) *ValidationError {
	if schema.ExclusiveMinimum == nil {
		return nil
	}
	if value.Cmp(schema.ExclusiveMinimum.Rat) <= 0 {
		return newValidationError(ErrCodeMinimum, "exclusiveMinimum",
			FormatRat(value)+" should be greater than "+FormatRat(schema.ExclusiveMinimum),
			map[string]any{"exclusive_minimum": FormatRat(schema.ExclusiveMinimum), "value": FormatRat(value)})
	}
	return nil
}
