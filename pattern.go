package jsonschema

import "regexp"

// evaluatePattern reuses format_error: opyapi raises FormatValidationError
// for a pattern mismatch rather than a dedicated pattern code.
func evaluatePattern(schema *Schema, instance string) *ValidationError {
	if schema.Pattern == nil {
		return nil
	}
	regExp, err := getCompiledPattern(schema)
	if err != nil {
		return newValidationError(ErrCodeFormat, "pattern",
			"invalid regular expression pattern '"+*schema.Pattern+"'",
			map[string]any{"pattern": *schema.Pattern})
	}

	if !regExp.MatchString(instance) {
		return newValidationError(ErrCodeFormat, "pattern",
			"value does not match the required pattern '"+*schema.Pattern+"'",
			map[string]any{"pattern": *schema.Pattern, "value": instance})
	}
	return nil
}

func getCompiledPattern(schema *Schema) (*regexp.Regexp, error) {
	if schema.compiledStringPattern == nil {
		regExp, err := regexp.Compile(*schema.Pattern)
		if err != nil {
			return nil, err
		}
		schema.compiledStringPattern = regExp
	}
	return schema.compiledStringPattern, nil
}
