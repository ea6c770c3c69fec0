package jsonschema

import "strings"

// ValidationError describes why an instance failed to validate against
// a schema. Only one failure is ever reported per evaluation path: a
// keyword validator returns the first problem it finds rather than
// collecting every violation, and combinators report the failure of
// whichever branch they attribute the overall failure to.
//
// Path points at the property or array index chain that the error
// occurred under, using the dotted-and-bracketed property_value_error
// chaining scheme: "address.street[0]" means the error originated while
// validating element 0 of property "street" nested in property "address".
type ValidationError struct {
	// Code identifies the kind of failure. See the Err* constants below.
	Code string
	// Keyword is the schema keyword that produced the error ("minimum", "type", ...).
	Keyword string
	// Path is the property/index chain the error occurred under, relative
	// to the schema that Validate or Compile was called with. Empty for a
	// failure at the root of the instance.
	Path string
	// Message is a human-readable, already-interpolated description.
	Message string
	// Params carries the values interpolated into Message, keyed by name
	// (e.g. "expected_minimum", "actual_type"), for callers that want to
	// build their own message or localize it via Localize.
	Params map[string]any
}

// Error codes, grounded one-for-one on the exception hierarchy this
// engine's validators were ported from.
const (
	ErrCodeType                 = "type_error"
	ErrCodeEnum                 = "enum_error"
	ErrCodeEqual                = "equal_error"
	ErrCodeFormat               = "format_error"
	ErrCodeMultipleOf           = "multiple_of_error"
	ErrCodeMinimum              = "minimum_error"
	ErrCodeMaximum              = "maximum_error"
	ErrCodeUniqueItems          = "unique_items_error"
	ErrCodeAdditionalItems      = "additional_items_error"
	ErrCodeMinimumItems         = "minimum_items_error"
	ErrCodeMaximumItems         = "maximum_items_error"
	ErrCodeRequiredProperty     = "required_property_error"
	ErrCodePropertyValue        = "property_value_error"
	ErrCodePropertyName         = "property_name_error"
	ErrCodeAdditionalProperties = "additional_properties_error"
	ErrCodeMinimumProperties    = "minimum_properties_error"
	ErrCodeMaximumProperties    = "maximum_properties_error"
	ErrCodeDependency           = "dependency_error"
	ErrCodeAny                  = "any_error"
	ErrCodeOneOf                = "one_of_error"
	ErrCodeNot                  = "not_error"
)

func newValidationError(code, keyword, message string, params map[string]any) *ValidationError {
	return &ValidationError{Code: code, Keyword: keyword, Message: message, Params: params}
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return e.Path + ": " + e.Message
	}
	return e.Message
}

// nestUnder wraps a failure that occurred while validating a nested
// property or array element, producing the property_value_error chain
// and prefixing the path with the segment the failure came from.
func (e *ValidationError) nestUnder(segment string) *ValidationError {
	path := segment
	if e.Path != "" {
		if strings.HasPrefix(e.Path, "[") {
			path = segment + e.Path
		} else {
			path = segment + "." + e.Path
		}
	}
	return &ValidationError{
		Code:    ErrCodePropertyValue,
		Keyword: "properties",
		Path:    path,
		Message: "property `" + segment + "` failed to pass validation: " + e.Message,
		Params: map[string]any{
			"property_name":    segment,
			"validation_error": e.Message,
			"cause":            e,
		},
	}
}

// Localize returns a human-readable message for this error using the
// provided localizer. A nil localizer falls back to Message.
func (e *ValidationError) Localize(localizer Localizer) string {
	if localizer == nil {
		return e.Message
	}
	return localizer.Get(e.Code, e.Params)
}

// Localizer renders a validation error code plus its parameters into a
// localized message, matching the shape of github.com/kaptinlin/go-i18n's
// *i18n.Localizer so callers can pass one directly.
type Localizer interface {
	Get(key string, vars map[string]any) string
}
