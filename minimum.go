package jsonschema

// evaluateMinimum checks the inclusive lower bound.
func evaluateMinimum(schema *Schema, value *Rat) *ValidationError {
	if schema.Minimum == nil {
		return nil
	}
	if value.Cmp(schema.Minimum.Rat) < 0 {
		return newValidationError(ErrCodeMinimum, "minimum",
			FormatRat(value)+" should be at least "+FormatRat(schema.Minimum),
			map[string]any{"minimum": FormatRat(schema.Minimum), "value": FormatRat(value)})
	}
	return nil
}
