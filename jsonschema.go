package jsonschema

// defaultCompiler backs the package-level Compile/Validate/LoadSchema/
// RegisterFormat/RegisterLoader functions, the process-wide equivalent
// of constructing a *Compiler with NewCompiler() yourself. Every Schema
// that doesn't carry its own compiler (set via SetCompiler) falls back
// to this one, per GetCompiler's lookup chain.
var defaultCompiler = NewCompiler()

// Compile compiles schema (raw JSON bytes, a decoded map[string]any or
// bool, or an already-compiled *Schema) into a ready-to-use Validator,
// using the process-wide default Compiler.
func Compile(schema any) (Validator, error) {
	return defaultCompiler.CompileValidator(schema)
}

// Validate compiles schema and validates value against it in one step,
// returning the value with any schema-declared defaults substituted in.
// Prefer Compile when validating the same schema repeatedly: it avoids
// recompiling the keyword tree on every call.
func Validate(value any, schema any) (any, error) {
	validator, err := Compile(schema)
	if err != nil {
		return nil, err
	}
	return validator.Validate(value)
}

// LoadSchema fetches and compiles the schema document addressed by uri
// through a loader registered on the default Compiler for its scheme.
func LoadSchema(uri string) (*Schema, error) {
	return defaultCompiler.GetSchema(uri)
}

// RegisterFormat registers a custom "format" validator on the default
// Compiler, consulted by every schema that doesn't carry its own.
func RegisterFormat(name string, fn func(string) bool) {
	defaultCompiler.RegisterFormat(name, fn)
}

// RegisterLoader registers a DocumentLoader for scheme on the default
// Compiler. fn is handed the parsed URI rather than the raw reference
// string, so a loader can inspect Base/Fragment without re-parsing.
func RegisterLoader(scheme string, fn func(URI) (any, error)) {
	defaultCompiler.RegisterLoader(scheme, func(uri string) (any, error) {
		return fn(ParseURI(uri))
	})
}

// ForgetSchema evicts uri from the default Compiler's schema store, so
// a subsequent LoadSchema/Compile call fetches and recompiles it rather
// than reusing the cached instance. Useful for a long-running process
// whose schema documents change on disk between compiles.
func ForgetSchema(uri string) {
	defaultCompiler.store.delete(uri)
}
