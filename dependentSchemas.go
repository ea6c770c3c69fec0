package jsonschema

func evaluateDependentSchemas(schema *Schema, object map[string]any) *ValidationError {
	if len(schema.DependentSchemas) == 0 {
		return nil
	}

	for propName, depSchema := range schema.DependentSchemas {
		if _, exists := object[propName]; !exists {
			continue
		}
		validate, err := depSchema.compiledValidator()
		if err != nil {
			return newValidationError(ErrCodeDependency, "dependentSchemas", err.Error(), map[string]any{"property": propName})
		}
		if _, verr := validate.Validate(object); verr != nil {
			return newValidationError(ErrCodeDependency, "dependentSchemas",
				"object does not satisfy the schema required by property '"+propName+"'", map[string]any{"property": propName})
		}
	}
	return nil
}
