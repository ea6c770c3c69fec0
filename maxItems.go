package jsonschema

func evaluateMaxItems(schema *Schema, array []any) *ValidationError {
	if schema.MaxItems == nil {
		return nil
	}
	if float64(len(array)) > *schema.MaxItems {
		return newValidationError(ErrCodeMaximumItems, "maxItems",
			"array should have at most "+formatFloat(*schema.MaxItems)+" items",
			map[string]any{"max_items": *schema.MaxItems, "count": len(array)})
	}
	return nil
}
