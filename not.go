package jsonschema

// evaluateNot validates against an independent copy, since the negated
// branch's own defaulting has no business touching value on success.
func evaluateNot(schema *Schema, value any) *ValidationError {
	if schema.Not == nil {
		return nil
	}

	validate, err := schema.Not.compiledValidator()
	if err != nil {
		return newValidationError(ErrCodeNot, "not", err.Error(), nil)
	}

	if _, verr := validate.Validate(deepCopyValue(value)); verr == nil {
		return newValidationError(ErrCodeNot, "not", "value should not match the not schema", nil)
	}
	return nil
}
