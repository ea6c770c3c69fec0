package jsonschema

import "fmt"

// evaluateItems validates every array element past the prefixItems
// boundary against a single "items" subschema. A Boolean false subschema
// (Draft-7 "additionalItems": false) rejects any such element outright.
func evaluateItems(schema *Schema, array []any) *ValidationError {
	if schema.Items == nil {
		return nil
	}

	startIndex := len(schema.PrefixItems)
	if schema.Items.Boolean != nil && !*schema.Items.Boolean {
		if len(array) > startIndex {
			return newValidationError(ErrCodeAdditionalItems, "additionalItems",
				fmt.Sprintf("array should have at most %d items", startIndex),
				map[string]any{"max_items": startIndex, "count": len(array)})
		}
		return nil
	}

	validate, err := schema.Items.compiledValidator()
	if err != nil {
		return newValidationError(ErrCodeAdditionalItems, "items", err.Error(), nil)
	}

	for i := startIndex; i < len(array); i++ {
		result, verr := validate.Validate(array[i])
		if verr != nil {
			if ve, ok := verr.(*ValidationError); ok {
				return ve.nestUnder(fmt.Sprintf("[%d]", i))
			}
			return newValidationError(ErrCodeAdditionalItems, "items", verr.Error(), nil)
		}
		array[i] = result
	}
	return nil
}
