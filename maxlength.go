package jsonschema

import "unicode/utf8"

// evaluateMaxLength shares maximum_error with evaluateMaximum: the
// taxonomy treats a string's length as just another range bound.
func evaluateMaxLength(schema *Schema, value string) *ValidationError {
	if schema.MaxLength == nil {
		return nil
	}
	length := utf8.RuneCountInString(value)
	if length > int(*schema.MaxLength) {
		return newValidationError(ErrCodeMaximum, "maxLength",
			"value should be at most "+formatFloat(*schema.MaxLength)+" characters",
			map[string]any{"max_length": *schema.MaxLength, "length": length})
	}
	return nil
}
