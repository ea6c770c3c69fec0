package jsonschema

// evaluateAllOf threads value through every subschema in turn: each
// subschema's defaults and rewrites are visible to the next.
func evaluateAllOf(schema *Schema, value any) (any, *ValidationError) {
	if len(schema.AllOf) == 0 {
		return value, nil
	}

	for i, subSchema := range schema.AllOf {
		if subSchema == nil {
			continue
		}
		validate, err := subSchema.compiledValidator()
		if err != nil {
			return value, newValidationError(ErrCodeAny, "allOf", err.Error(), nil)
		}
		result, verr := validate.Validate(value)
		if verr != nil {
			if ve, ok := verr.(*ValidationError); ok {
				return value, newValidationError(ErrCodeAny, "allOf",
					"value does not match allOf schema at index "+formatFloat(float64(i))+": "+ve.Message,
					map[string]any{"index": i, "cause": ve})
			}
			return value, newValidationError(ErrCodeAny, "allOf", verr.Error(), map[string]any{"index": i})
		}
		value = result
	}
	return value, nil
}
