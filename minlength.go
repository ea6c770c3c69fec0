package jsonschema

import "unicode/utf8"

// evaluateMinLength shares minimum_error with evaluateMinimum: the
// taxonomy treats a string's length as just another range bound.
func evaluateMinLength(schema *Schema, value string) *ValidationError {
	if schema.MinLength == nil {
		return nil
	}
	length := utf8.RuneCountInString(value)
	if length < int(*schema.MinLength) {
		return newValidationError(ErrCodeMinimum, "minLength",
			"value should be at least "+formatFloat(*schema.MinLength)+" characters",
			map[string]any{"min_length": *schema.MinLength, "length": length})
	}
	return nil
}
