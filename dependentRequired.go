package jsonschema

func evaluateDependentRequired(schema *Schema, object map[string]any) *ValidationError {
	if schema.DependentRequired == nil {
		return nil
	}

	missing := make(map[string][]string)
	for key, requiredProps := range schema.DependentRequired {
		if _, ok := object[key]; !ok {
			continue
		}
		var missingProps []string
		for _, reqProp := range requiredProps {
			if _, ok := object[reqProp]; !ok {
				missingProps = append(missingProps, reqProp)
			}
		}
		if len(missingProps) > 0 {
			missing[key] = missingProps
		}
	}

	if len(missing) > 0 {
		return newValidationError(ErrCodeDependency, "dependentRequired",
			"some required property dependencies are missing", map[string]any{"missing": missing})
	}
	return nil
}
