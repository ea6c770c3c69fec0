package jsonschema

import "regexp"

func (s *Schema) compilePatterns() {
	if s.PatternProperties == nil {
		return
	}
	s.compiledPatterns = make(map[string]*regexp.Regexp)
	for pattern := range *s.PatternProperties {
		if regex, err := regexp.Compile(pattern); err == nil {
			s.compiledPatterns[pattern] = regex
		}
	}
}

func evaluatePatternProperties(schema *Schema, object map[string]any) (map[string]any, *ValidationError) {
	if schema.PatternProperties == nil {
		return object, nil
	}

	for patternKey, patternSchema := range *schema.PatternProperties {
		regex, ok := schema.compiledPatterns[patternKey]
		if !ok {
			var err error
			regex, err = regexp.Compile(patternKey)
			if err != nil {
				return object, newValidationError(ErrCodeFormat, "patternProperties",
					"invalid regular expression pattern '"+patternKey+"'", map[string]any{"pattern": patternKey})
			}
			schema.compiledPatterns[patternKey] = regex
		}

		validate, err := patternSchema.compiledValidator()
		if err != nil {
			return object, newValidationError(ErrCodePropertyValue, "patternProperties", err.Error(), nil)
		}

		for propName, propValue := range object {
			if !regex.MatchString(propName) {
				continue
			}
			result, verr := validate.Validate(propValue)
			if verr != nil {
				if ve, ok := verr.(*ValidationError); ok {
					return object, ve.nestUnder(propName)
				}
				return object, newValidationError(ErrCodePropertyValue, "patternProperties", verr.Error(), map[string]any{"property": propName})
			}
			object[propName] = result
		}
	}

	return object, nil
}

func propertyMatchesPattern(schema *Schema, propName string) bool {
	for pattern, regex := range schema.compiledPatterns {
		_ = pattern
		if regex.MatchString(propName) {
			return true
		}
	}
	return false
}
