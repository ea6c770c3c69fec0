package jsonschema

func evaluateRequired(schema *Schema, object map[string]any) *ValidationError {
	if len(schema.Required) == 0 {
		return nil
	}

	var missing []string
	for _, propName := range schema.Required {
		if _, exists := object[propName]; !exists {
			missing = append(missing, propName)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	return newValidationError(ErrCodeRequiredProperty, "required",
		"missing required property '"+missing[0]+"'", map[string]any{"missing": missing})
}
