package jsonschema

func evaluateContains(schema *Schema, array []any) *ValidationError {
	if schema.Contains == nil {
		return nil
	}

	validate, err := schema.Contains.compiledValidator()
	if err != nil {
		return newValidationError(ErrCodeMinimumItems, "contains", err.Error(), nil)
	}

	validCount := 0
	for _, item := range array {
		if _, verr := validate.Validate(item); verr == nil {
			validCount++
		}
	}

	minContains := 1
	if schema.MinContains != nil {
		minContains = int(*schema.MinContains)
	}
	if validCount < minContains {
		return newValidationError(ErrCodeMinimumItems, "contains",
			"array should contain at least "+formatFloat(float64(minContains))+" matching items",
			map[string]any{"min_contains": minContains, "count": validCount})
	}

	if schema.MaxContains != nil && validCount > int(*schema.MaxContains) {
		return newValidationError(ErrCodeMaximumItems, "contains",
			"array should contain no more than "+formatFloat(*schema.MaxContains)+" matching items",
			map[string]any{"max_contains": *schema.MaxContains, "count": validCount})
	}
	return nil
}
