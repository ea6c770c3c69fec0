package jsonschema

// evaluateEnum checks that instance equals one of the values listed by
// "enum", under this engine's kind-sensitive JSON equality.
func evaluateEnum(schema *Schema, instance any) *ValidationError {
	if len(schema.Enum) == 0 {
		return nil
	}
	for _, want := range schema.Enum {
		if jsonEqual(instance, want) {
			return nil
		}
	}
	return newValidationError(ErrCodeEnum, "enum", "value should match one of the values specified by the enum", map[string]any{"allowed": schema.Enum})
}
