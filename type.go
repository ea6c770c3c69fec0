package jsonschema

import "strings"

// evaluateType checks that instance's JSON kind matches one of the
// strings named by the "type" keyword. Kind is determined by the Go
// type the instance was decoded into, not its numeric value: a
// whole-valued float64 is kind "number" and never matches "integer".
// "number" still matches an "integer"-kinded instance.
func evaluateType(schema *Schema, instance any) *ValidationError {
	if len(schema.Type) == 0 {
		return nil
	}

	kind := valueKind(instance)
	for _, want := range schema.Type {
		if kindMatches(kind, want) {
			return nil
		}
	}

	return newValidationError(ErrCodeType, "type",
		"value is "+kind+" but should be "+strings.Join(schema.Type, " or "),
		map[string]any{"expected": schema.Type, "actual": kind})
}
