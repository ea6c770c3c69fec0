package jsonschema

// evaluateAdditionalProperties validates properties that matched neither
// "properties" nor "patternProperties" against the additionalProperties
// subschema; a Boolean false subschema rejects any such property outright.
func evaluateAdditionalProperties(schema *Schema, object map[string]any) (map[string]any, *ValidationError) {
	if schema.AdditionalProperties == nil {
		return object, nil
	}

	declared := make(map[string]bool, len(object))
	if schema.Properties != nil {
		for propName := range *schema.Properties {
			declared[propName] = true
		}
	}

	for propName, propValue := range object {
		if declared[propName] || propertyMatchesPattern(schema, propName) {
			continue
		}

		if schema.AdditionalProperties.Boolean != nil && !*schema.AdditionalProperties.Boolean {
			return object, newValidationError(ErrCodeAdditionalProperties, "additionalProperties",
				"additional property '"+propName+"' is not allowed", map[string]any{"property": propName})
		}

		validate, err := schema.AdditionalProperties.compiledValidator()
		if err != nil {
			return object, newValidationError(ErrCodeAdditionalProperties, "additionalProperties", err.Error(), nil)
		}
		result, verr := validate.Validate(propValue)
		if verr != nil {
			if ve, ok := verr.(*ValidationError); ok {
				return object, ve.nestUnder(propName)
			}
			return object, newValidationError(ErrCodeAdditionalProperties, "additionalProperties", verr.Error(), map[string]any{"property": propName})
		}
		object[propName] = result
	}

	return object, nil
}
