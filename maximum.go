package jsonschema

// evaluateMaximum checks the inclusive upper bound.
func evaluateMaximum(schema *Schema, value *Rat) *ValidationError {
	if schema.Maximum == nil {
		return nil
	}
	if value.Cmp(schema.Maximum.Rat) > 0 {
		return newValidationError(ErrCodeMaximum, "maximum",
			FormatRat(value)+" should be at most "+FormatRat(schema.Maximum),
			map[string]any{"maximum": FormatRat(schema.Maximum), "value": FormatRat(value)})
	}
	return nil
}
