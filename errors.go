package jsonschema

import (
	"errors"
	"fmt"
)

// Sentinel errors describe problems with a schema document itself, or
// with fetching/parsing one. Validation failures on an instance are
// reported through ValidationError instead.
var (
	// ErrNoLoaderRegistered is returned when no loader is registered for a URI scheme.
	ErrNoLoaderRegistered = errors.New("jsonschema: no loader registered for scheme")

	// ErrDataRead is returned when a loader's reader cannot be drained.
	ErrDataRead = errors.New("jsonschema: data read failed")

	// ErrNetworkFetch is returned when the default HTTP(S) loader cannot reach a URI.
	ErrNetworkFetch = errors.New("jsonschema: network fetch failed")

	// ErrInvalidStatusCode is returned when the default HTTP(S) loader gets a non-200 response.
	ErrInvalidStatusCode = errors.New("jsonschema: invalid http status code")

	// ErrJSONUnmarshal is returned when a document loader cannot decode JSON.
	ErrJSONUnmarshal = errors.New("jsonschema: json unmarshal failed")

	// ErrYAMLUnmarshal is returned when a document loader cannot decode YAML.
	ErrYAMLUnmarshal = errors.New("jsonschema: yaml unmarshal failed")

	// ErrSchemaCompilation is returned when a schema document fails to compile.
	ErrSchemaCompilation = errors.New("jsonschema: schema compilation failed")

	// ErrReferenceResolution is returned when a $ref or $dynamicRef cannot be resolved.
	ErrReferenceResolution = errors.New("jsonschema: reference resolution failed")

	// ErrGlobalReferenceResolution is returned when a reference into another
	// loaded document cannot be resolved.
	ErrGlobalReferenceResolution = errors.New("jsonschema: global reference resolution failed")

	// ErrJSONPointerSegmentDecode is returned when a JSON Pointer segment is malformed.
	ErrJSONPointerSegmentDecode = errors.New("jsonschema: json pointer segment decode failed")

	// ErrJSONPointerSegmentNotFound is returned when a JSON Pointer names a path
	// that does not exist in the schema document.
	ErrJSONPointerSegmentNotFound = errors.New("jsonschema: json pointer segment not found")

	// ErrRegexValidation is returned when a "pattern" or "patternProperties"
	// key in a schema is not a valid regular expression; it is joined with
	// one RegexPatternError per offending location.
	ErrRegexValidation = errors.New("jsonschema: invalid regular expression in schema")

	// ErrInvalidSchemaType is returned when "type" is neither a string nor an array of strings.
	ErrInvalidSchemaType = errors.New("jsonschema: invalid schema type")

	// ErrNilConstValue is returned when unmarshaling into a nil ConstValue.
	ErrNilConstValue = errors.New("jsonschema: cannot unmarshal into nil const value")

	// ErrRatConversion is returned when a numeric keyword's value cannot be parsed
	// into an exact rational.
	ErrRatConversion = errors.New("jsonschema: rat conversion failed")

	// ErrUnsupportedRatType is returned when NewRat is given a non-numeric Go value.
	ErrUnsupportedRatType = errors.New("jsonschema: unsupported rat type")

	// ErrUnknownURIScheme is returned when a $ref or $id names a scheme that
	// has no registered loader and is not one of the built-in http(s) loaders.
	ErrUnknownURIScheme = errors.New("jsonschema: unknown uri scheme")
)

// RegexPatternError wraps a regexp compilation failure with the JSON
// Pointer location of the offending "pattern" or "patternProperties" key,
// so a caller can see exactly where in the schema document the invalid
// regular expression lives.
type RegexPatternError struct {
	Keyword  string
	Location string
	Pattern  string
	Err      error
}

func (e *RegexPatternError) Error() string {
	return fmt.Sprintf("jsonschema: invalid regular expression for %q at %s: %v", e.Keyword, e.Location, e.Err)
}

func (e *RegexPatternError) Unwrap() error {
	return e.Err
}
