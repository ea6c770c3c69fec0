package jsonschema

import "fmt"

// evaluatePrefixItems validates each array element against the schema
// declared at the same position; it does not constrain array length.
func evaluatePrefixItems(schema *Schema, array []any) *ValidationError {
	if len(schema.PrefixItems) == 0 {
		return nil
	}

	for i, itemSchema := range schema.PrefixItems {
		if i >= len(array) {
			break
		}
		validate, err := itemSchema.compiledValidator()
		if err != nil {
			return newValidationError(ErrCodeAdditionalItems, "prefixItems", err.Error(), nil)
		}
		result, verr := validate.Validate(array[i])
		if verr != nil {
			if ve, ok := verr.(*ValidationError); ok {
				return ve.nestUnder(fmt.Sprintf("[%d]", i))
			}
			return newValidationError(ErrCodeAdditionalItems, "prefixItems", verr.Error(), nil)
		}
		array[i] = result
	}
	return nil
}
