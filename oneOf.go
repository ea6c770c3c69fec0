package jsonschema

import "strconv"

// evaluateOneOf tries every branch on an independent copy of value,
// requiring exactly one to validate.
func evaluateOneOf(schema *Schema, value any) (any, *ValidationError) {
	if len(schema.OneOf) == 0 {
		return value, nil
	}

	var matchedIndexes []string
	var matchedResult any

	for i, subSchema := range schema.OneOf {
		if subSchema == nil {
			continue
		}
		validate, err := subSchema.compiledValidator()
		if err != nil {
			continue
		}
		if result, verr := validate.Validate(deepCopyValue(value)); verr == nil {
			matchedIndexes = append(matchedIndexes, strconv.Itoa(i))
			matchedResult = result
		}
	}

	switch len(matchedIndexes) {
	case 1:
		return matchedResult, nil
	case 0:
		return value, newValidationError(ErrCodeOneOf, "oneOf", "value does not match any schema in oneOf", nil)
	default:
		return value, newValidationError(ErrCodeOneOf, "oneOf",
			"value should match exactly one schema but matched multiple", map[string]any{"matched": matchedIndexes})
	}
}
