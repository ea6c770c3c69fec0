package jsonschema

import "strconv"

// formatFloat renders a schema-declared bound (minLength, maxItems, ...)
// without a trailing ".0" for whole numbers.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// valueKind names the seven JSON Schema instance types. Go's own type
// system already keeps "integer" and "number" apart: a JSON decoder
// that cares about the distinction (this package does not ship one; it
// accepts whatever the caller already decoded) produces int64 for bare
// integer literals and float64 for anything with a fraction or
// exponent, so 1 and 1.0 arrive as different Go types and are never
// coerced into each other here.
func valueKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "integer"
	case float32, float64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return "unknown"
	}
}

// kindMatches reports whether valueKind v satisfies the schema type
// name t, treating "integer" as a subset of "number".
func kindMatches(v, t string) bool {
	if t == "number" && v == "integer" {
		return true
	}
	return v == t
}

// asFloat64 extracts a numeric instance as a float64 for comparisons
// that don't need arbitrary precision. Callers needing exact decimal
// comparison (multipleOf, minimum, maximum) go through Rat instead.
func asFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// isNumber reports whether the value is a JSON number or integer instance.
func isNumber(v any) bool {
	k := valueKind(v)
	return k == "number" || k == "integer"
}

// deepCopyValue produces an independent copy of a decoded JSON value
// (nil, bool, string, number, []any, map[string]any). It exists so that
// anyOf/oneOf can try a branch without letting that branch's "default"
// side effects leak into the value seen by the next branch.
func deepCopyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, e := range val {
			out[k] = deepCopyValue(e)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = deepCopyValue(e)
		}
		return out
	default:
		return v
	}
}

// jsonEqual implements JSON Schema's equality semantics for enum/const
// and array uniqueness: values are equal only when they share the same
// kind (a boolean is never equal to a number, an integer instance is
// never equal to a number instance even when mathematically equal) and,
// within that kind, their content is recursively equal. Object property
// order and array element order both matter for arrays but not objects.
func jsonEqual(a, b any) bool {
	ka, kb := valueKind(a), valueKind(b)
	if ka != kb {
		return false
	}
	switch ka {
	case "null":
		return true
	case "boolean":
		return a.(bool) == b.(bool)
	case "string":
		return a.(string) == b.(string)
	case "integer", "number":
		fa, _ := asFloat64(a)
		fb, _ := asFloat64(b)
		return fa == fb
	case "array":
		aa, bb := a.([]any), b.([]any)
		if len(aa) != len(bb) {
			return false
		}
		for i := range aa {
			if !jsonEqual(aa[i], bb[i]) {
				return false
			}
		}
		return true
	case "object":
		ao, bo := a.(map[string]any), b.(map[string]any)
		if len(ao) != len(bo) {
			return false
		}
		for k, av := range ao {
			bv, ok := bo[k]
			if !ok || !jsonEqual(av, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
