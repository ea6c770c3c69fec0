package jsonschema

// evaluateAnyOf tries each branch on an independent copy of value so one
// branch's "default" side effects can't leak into the next attempt. It
// returns the result of the first branch that validates.
func evaluateAnyOf(schema *Schema, value any) (any, *ValidationError) {
	if len(schema.AnyOf) == 0 {
		return value, nil
	}

	for _, subSchema := range schema.AnyOf {
		if subSchema == nil {
			continue
		}
		validate, err := subSchema.compiledValidator()
		if err != nil {
			continue
		}
		if result, verr := validate.Validate(deepCopyValue(value)); verr == nil {
			return result, nil
		}
	}

	return value, newValidationError(ErrCodeAny, "anyOf", "value does not match any schema in anyOf", nil)
}
