package jsonschema

// evaluateProperties fills in declared defaults for missing properties,
// then validates every property present in object against its matching
// subschema. It mutates and returns object so defaults become part of
// the value Validate ultimately returns.
func evaluateProperties(schema *Schema, object map[string]any) (map[string]any, *ValidationError) {
	if schema.Properties == nil {
		return object, nil
	}

	for propName, propSchema := range *schema.Properties {
		if _, exists := object[propName]; !exists && propSchema.Default != nil {
			object[propName] = deepCopyValue(propSchema.Default)
		}
	}

	for propName, propSchema := range *schema.Properties {
		propValue, exists := object[propName]
		if !exists {
			continue
		}
		validate, err := propSchema.compiledValidator()
		if err != nil {
			return object, newValidationError(ErrCodePropertyValue, "properties", err.Error(), map[string]any{"property": propName})
		}
		result, verr := validate.Validate(propValue)
		if verr != nil {
			if ve, ok := verr.(*ValidationError); ok {
				return object, ve.nestUnder(propName)
			}
			return object, newValidationError(ErrCodePropertyValue, "properties", verr.Error(), map[string]any{"property": propName})
		}
		object[propName] = result
	}

	return object, nil
}
