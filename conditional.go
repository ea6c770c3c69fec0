package jsonschema

// evaluateConditional applies "then" when value satisfies "if", else
// applies "else". The "if" probe runs on a copy so its own defaulting
// never leaks into the value that then/else (or the caller) sees.
func evaluateConditional(schema *Schema, value any) (any, *ValidationError) {
	if schema.If == nil {
		return value, nil
	}

	ifValidate, err := schema.If.compiledValidator()
	if err != nil {
		return value, newValidationError(ErrCodeAny, "if", err.Error(), nil)
	}
	_, ifErr := ifValidate.Validate(deepCopyValue(value))

	if ifErr == nil {
		if schema.Then == nil {
			return value, nil
		}
		validate, err := schema.Then.compiledValidator()
		if err != nil {
			return value, newValidationError(ErrCodeAny, "then", err.Error(), nil)
		}
		result, verr := validate.Validate(value)
		if verr != nil {
			if ve, ok := verr.(*ValidationError); ok {
				return value, newValidationError(ErrCodeAny, "then",
					"value meets the 'if' condition but does not match the 'then' schema: "+ve.Message, map[string]any{"cause": ve})
			}
			return value, newValidationError(ErrCodeAny, "then", verr.Error(), nil)
		}
		return result, nil
	}

	if schema.Else == nil {
		return value, nil
	}
	validate, err := schema.Else.compiledValidator()
	if err != nil {
		return value, newValidationError(ErrCodeAny, "else", err.Error(), nil)
	}
	result, verr := validate.Validate(value)
	if verr != nil {
		if ve, ok := verr.(*ValidationError); ok {
			return value, newValidationError(ErrCodeAny, "else",
				"value fails the 'if' condition and does not match the 'else' schema: "+ve.Message, map[string]any{"cause": ve})
		}
		return value, newValidationError(ErrCodeAny, "else", verr.Error(), nil)
	}
	return result, nil
}
