package jsonschema

func evaluateMinProperties(schema *Schema, object map[string]any) *ValidationError {
	if schema.MinProperties == nil {
		return nil
	}
	if float64(len(object)) < *schema.MinProperties {
		return newValidationError(ErrCodeMinimumProperties, "minProperties",
			"object should have at least "+formatFloat(*schema.MinProperties)+" properties",
			map[string]any{"min_properties": *schema.MinProperties, "count": len(object)})
	}
	return nil
}
