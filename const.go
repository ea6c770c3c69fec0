package jsonschema

// evaluateConst checks that instance equals the value fixed by "const".
func evaluateConst(schema *Schema, instance any) *ValidationError {
	if schema.Const == nil || !schema.Const.IsSet {
		return nil
	}
	if !jsonEqual(instance, schema.Const.Value) {
		return newValidationError(ErrCodeEqual, "const", "value does not equal the constant value", map[string]any{"expected": schema.Const.Value})
	}
	return nil
}
