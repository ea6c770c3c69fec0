package jsonschema

import (
	"fmt"
	"sync"

	"github.com/go-json-experiment/json"
)

// FormatDef defines a custom format validation rule.
type FormatDef struct {
	// Type restricts the format to instances of this JSON kind ("string",
	// "number", ...). Empty means the format applies regardless of kind,
	// though in practice only "string" formats are evaluated.
	Type string

	// Validate is the validation function.
	Validate func(string) bool
}

// Compiler compiles JSON Schema documents into Validators, owning the
// schema store, the document-loader registry, and the custom-format
// registry a batch of interrelated schemas needs to share.
type Compiler struct {
	mu             sync.RWMutex
	store          *schemaStore
	Loaders        map[string]DocumentLoader
	DefaultBaseURI string
	AssertFormat   bool

	jsonDecoder func(data []byte, v any) error

	customFormats   map[string]*FormatDef
	customFormatsRW sync.RWMutex
}

// NewCompiler creates a Compiler with the builtin file/http/https loaders
// registered and an empty custom-format table.
func NewCompiler() *Compiler {
	c := &Compiler{
		store:         newSchemaStore(),
		Loaders:       make(map[string]DocumentLoader),
		AssertFormat:  true,
		jsonDecoder:   func(data []byte, v any) error { return json.Unmarshal(data, v) },
		customFormats: make(map[string]*FormatDef),
	}
	c.registerBuiltinLoaders()
	return c
}

// WithDecoderJSON configures a custom JSON decoder implementation, used
// by Compile when it's handed raw document bytes.
func (c *Compiler) WithDecoderJSON(decoder func(data []byte, v any) error) *Compiler {
	c.jsonDecoder = decoder
	return c
}

// Compile parses and normalizes a JSON schema document, registering it
// under its $id (or the supplied uri, if any) so that later references
// from other documents can find it. References inside the schema are
// NOT resolved here: they resolve lazily, the first time a Validator
// built from this schema actually evaluates a $ref/$dynamicRef.
func (c *Compiler) Compile(jsonSchema []byte, uris ...string) (*Schema, error) {
	schema, err := newSchema(jsonSchema)
	if err != nil {
		return nil, err
	}

	if schema.ID == "" && len(uris) > 0 {
		schema.ID = uris[0]
	}

	uri := schema.ID
	if uri != "" && isValidURI(uri) {
		schema.uri = uri
		if existing, ok := c.store.get(uri); ok {
			return existing, nil
		}
	}

	schema.compiler = c
	schema.initializeSchema(c, nil)

	if err := schema.validateRegexSyntax(); err != nil {
		return nil, err
	}

	if schema.uri != "" && isValidURI(schema.uri) {
		c.store.set(schema.uri, schema)
	}

	return schema, nil
}

// CompileValidator compiles schema (a []byte document, a decoded
// map[string]any/bool, or a *Schema already produced by Compile) into a
// ready-to-use Validator.
func (c *Compiler) CompileValidator(schema any, uris ...string) (Validator, error) {
	s, err := c.toSchema(schema, uris...)
	if err != nil {
		return nil, err
	}
	return s.compiledValidator()
}

func (c *Compiler) toSchema(schema any, uris ...string) (*Schema, error) {
	switch v := schema.(type) {
	case *Schema:
		return v, nil
	case []byte:
		return c.Compile(v, uris...)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSchemaCompilation, err)
		}
		return c.Compile(data, uris...)
	}
}

// CompileBatch compiles a set of mutually-referencing schema documents
// in one call. Every document is registered in the store before any of
// them is asked to resolve a reference, so cross-document $ref cycles
// compile the same way a same-document $defs cycle does: lazily, via
// RefHandle, never during this call.
func (c *Compiler) CompileBatch(schemas map[string][]byte) (map[string]*Schema, error) {
	compiled := make(map[string]*Schema, len(schemas))

	for id, raw := range schemas {
		schema, err := newSchema(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrSchemaCompilation, id, err)
		}
		if schema.ID == "" {
			schema.ID = id
		}
		schema.uri = schema.ID
		schema.compiler = c
		compiled[id] = schema
		if schema.uri != "" && isValidURI(schema.uri) {
			c.store.set(schema.uri, schema)
		}
	}

	for _, schema := range compiled {
		schema.initializeSchema(c, nil)
		if err := schema.validateRegexSyntax(); err != nil {
			return nil, err
		}
	}

	return compiled, nil
}

// SetSchema associates a specific schema with a URI, letting a caller
// preregister a document a $ref will later point at (e.g. a schema
// fetched out of band, or a well-known meta-schema).
func (c *Compiler) SetSchema(uri string, schema *Schema) *Compiler {
	c.store.set(uri, schema)
	return c
}

// GetSchema retrieves a schema by reference, fetching and compiling it
// through a registered DocumentLoader if it isn't already known.
func (c *Compiler) GetSchema(ref string) (*Schema, error) {
	baseURI, anchor := splitRef(ref)

	if schema, ok := c.store.get(baseURI); ok {
		if baseURI == ref {
			return schema, nil
		}
		return schema.resolveAnchor(anchor)
	}

	return c.loadSchemaURL(baseURI, anchor)
}

// loadSchemaURL fetches and compiles a schema document through the
// loader registered for the URI's scheme.
func (c *Compiler) loadSchemaURL(id, anchor string) (*Schema, error) {
	loader, ok := c.Loaders[getURLScheme(id)]
	if !ok {
		return nil, ErrNoLoaderRegistered
	}

	doc, err := loader(id)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchemaCompilation, err)
	}

	compiled, err := c.Compile(data, id)
	if err != nil {
		return nil, err
	}

	if anchor != "" {
		return compiled.resolveAnchor(anchor)
	}
	return compiled, nil
}

// SetDefaultBaseURI sets the default base URI used to resolve relative
// references in documents that don't declare their own $id.
func (c *Compiler) SetDefaultBaseURI(baseURI string) *Compiler {
	c.DefaultBaseURI = baseURI
	return c
}

// SetAssertFormat enables or disables format assertion failures; it is
// on by default since this engine treats "format" as a real check, not
// a draft 2020-12 annotation-only keyword.
func (c *Compiler) SetAssertFormat(assert bool) *Compiler {
	c.AssertFormat = assert
	return c
}

// RegisterLoader adds a document loader for a specific URI scheme
// ("file", "http", "classpath", ...). It overwrites any loader
// previously registered for that scheme, including the builtins.
func (c *Compiler) RegisterLoader(scheme string, loader DocumentLoader) *Compiler {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Loaders[scheme] = loader
	return c
}

// RegisterFormat registers a custom format. The optional typeName
// parameter scopes the format to one JSON kind (e.g. "string"); if
// omitted, the format is consulted for every kind evaluateFormat is
// asked to check (in practice, only string values carry "format").
func (c *Compiler) RegisterFormat(name string, validator func(string) bool, typeName ...string) *Compiler {
	c.customFormatsRW.Lock()
	defer c.customFormatsRW.Unlock()

	var t string
	if len(typeName) > 0 {
		t = typeName[0]
	}
	c.customFormats[name] = &FormatDef{Type: t, Validate: validator}
	return c
}

// UnregisterFormat removes a custom format.
func (c *Compiler) UnregisterFormat(name string) *Compiler {
	c.customFormatsRW.Lock()
	defer c.customFormatsRW.Unlock()
	delete(c.customFormats, name)
	return c
}
