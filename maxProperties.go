package jsonschema

func evaluateMaxProperties(schema *Schema, object map[string]any) *ValidationError {
	if schema.MaxProperties == nil {
		return nil
	}
	if float64(len(object)) > *schema.MaxProperties {
		return newValidationError(ErrCodeMaximumProperties, "maxProperties",
			"object should have at most "+formatFloat(*schema.MaxProperties)+" properties",
			map[string]any{"max_properties": *schema.MaxProperties, "count": len(object)})
	}
	return nil
}
