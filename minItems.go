package jsonschema

func evaluateMinItems(schema *Schema, array []any) *ValidationError {
	if schema.MinItems == nil {
		return nil
	}
	if float64(len(array)) < *schema.MinItems {
		return newValidationError(ErrCodeMinimumItems, "minItems",
			"array should have at least "+formatFloat(*schema.MinItems)+" items",
			map[string]any{"min_items": *schema.MinItems, "count": len(array)})
	}
	return nil
}
