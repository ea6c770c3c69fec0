package jsonschema

func evaluatePropertyNames(schema *Schema, object map[string]any) *ValidationError {
	if schema.PropertyNames == nil {
		return nil
	}

	validate, err := schema.PropertyNames.compiledValidator()
	if err != nil {
		return newValidationError(ErrCodePropertyName, "propertyNames", err.Error(), nil)
	}

	for propName := range object {
		if _, verr := validate.Validate(propName); verr != nil {
			return newValidationError(ErrCodePropertyName, "propertyNames",
				"property name '"+propName+"' does not match the schema", map[string]any{"property": propName})
		}
	}
	return nil
}
