package jsonschema

// evaluateFormat checks a string value against the format named by the
// "format" keyword. Custom formats registered on the owning Compiler are
// tried first, then the builtin Formats table. A name neither registers
// nor matches a builtin is ignored: unknown formats pass silently, per
// the pluggable-registry contract this engine exposes.
func evaluateFormat(schema *Schema, value any) *ValidationError {
	if schema.Format == nil {
		return nil
	}
	s, ok := value.(string)
	if !ok {
		return nil
	}

	if compiler := schema.GetCompiler(); compiler != nil && !compiler.AssertFormat {
		return nil
	}

	formatName := *schema.Format
	validate, typeGuard := lookupFormat(schema, formatName)
	if validate == nil {
		return nil
	}
	if typeGuard != "" && typeGuard != "string" {
		return nil
	}

	if !validate(s) {
		return newValidationError(ErrCodeFormat, "format", "value does not match format '"+formatName+"'", map[string]any{"format": formatName})
	}
	return nil
}

// lookupFormat resolves a format name against the schema's compiler
// first, falling back to the global builtin table.
func lookupFormat(schema *Schema, name string) (fn func(string) bool, typeGuard string) {
	if schema.compiler != nil {
		schema.compiler.customFormatsRW.RLock()
		def, ok := schema.compiler.customFormats[name]
		schema.compiler.customFormatsRW.RUnlock()
		if ok {
			return def.Validate, def.Type
		}
	}
	if fn, ok := Formats[name]; ok {
		return fn, ""
	}
	return nil, ""
}
