package jsonschema

import (
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/kaptinlin/jsonpointer"
)

// RefHandle is a lazily resolved $ref or $dynamicRef. The schema that
// owns it never dereferences the target while compiling; the first
// Validate call that reaches this keyword resolves the target schema
// once, compiles it, and memoizes both, so a schema that refers back to
// one of its own ancestors compiles without recursing and validates
// each instance against the target without re-resolving it every time.
type RefHandle struct {
	owner *Schema
	ref   string

	once     sync.Once
	target   *Schema
	err      error
	valOnce  sync.Once
	validate Validator
	valErr   error
}

func newRefHandle(owner *Schema, ref string) *RefHandle {
	return &RefHandle{owner: owner, ref: ref}
}

// resolve finds the target schema, caching the result (including a
// failure) on first use.
func (h *RefHandle) resolve() (*Schema, error) {
	h.once.Do(func() {
		h.target, h.err = h.owner.resolveRef(h.ref)
	})
	return h.target, h.err
}

// Validator returns the compiled Validator for the referenced schema,
// compiling it on first use and reusing it on every subsequent call.
func (h *RefHandle) Validator() (Validator, error) {
	h.valOnce.Do(func() {
		target, err := h.resolve()
		if err != nil {
			h.valErr = err
			return
		}
		h.validate, h.valErr = target.compiledValidator()
	})
	return h.validate, h.valErr
}

// resolveRef resolves a $ref or $dynamicRef string to the schema it
// names, either within the current document (anchors, JSON Pointers,
// "#") or in another document reachable through the owning Compiler's
// registry.
//
// $dynamicRef is resolved identically to $ref here: true draft 2020-12
// dynamic scoping (preferring the outermost matching $dynamicAnchor
// along the validation call stack) is not implemented, only the static
// target the reference names at compile time.
func (s *Schema) resolveRef(ref string) (*Schema, error) {
	if ref == "#" {
		return s.getRootSchema(), nil
	}

	if strings.HasPrefix(ref, "#") {
		return s.resolveAnchor(ref[1:])
	}

	resolved := ref
	if !isAbsoluteURI(ref) && s.baseURI != "" {
		resolved = resolveRelativeURI(s.baseURI, ref)
	}

	return s.resolveRefWithFullURL(resolved)
}

func (s *Schema) resolveAnchor(anchorName string) (*Schema, error) {
	if strings.HasPrefix(anchorName, "/") {
		schema, err := s.resolveJSONPointer(anchorName)
		if schema != nil || s.parent == nil {
			return schema, err
		}
		return s.parent.resolveAnchor(anchorName)
	}

	if schema, ok := s.anchors[anchorName]; ok {
		return schema, nil
	}
	if schema, ok := s.dynamicAnchors[anchorName]; ok {
		return schema, nil
	}

	if s.parent != nil {
		return s.parent.resolveAnchor(anchorName)
	}

	return nil, ErrReferenceResolution
}

// resolveRefWithFullURL resolves a reference that names another
// document (or the current document by its own $id), falling back to
// the owning Compiler's store and loader registry when the target
// isn't already known to this schema tree.
func (s *Schema) resolveRefWithFullURL(ref string) (*Schema, error) {
	root := s.getRootSchema()
	if resolved, err := root.getSchema(ref); err == nil {
		return resolved, nil
	}

	resolved, err := s.GetCompiler().GetSchema(ref)
	if err != nil {
		return nil, ErrGlobalReferenceResolution
	}
	return resolved, nil
}

// resolveJSONPointer walks a JSON Pointer fragment through the
// normalized schema tree, e.g. "/properties/address/$ref" or
// "/$defs/Item".
func (s *Schema) resolveJSONPointer(pointer string) (*Schema, error) {
	if pointer == "" || pointer == "/" {
		return s, nil
	}

	segments := jsonpointer.Parse(pointer)
	current := s
	previous := ""

	for i, segment := range segments {
		decoded, err := url.PathUnescape(segment)
		if err != nil {
			return nil, ErrJSONPointerSegmentDecode
		}

		next, found := findSchemaInSegment(current, decoded, previous)
		if !found {
			if i == len(segments)-1 {
				return nil, ErrJSONPointerSegmentNotFound
			}
			previous = decoded
			continue
		}
		current = next
		previous = decoded
	}

	return current, nil
}

func findSchemaInSegment(current *Schema, segment, previous string) (*Schema, bool) {
	switch previous {
	case "properties":
		if current.Properties != nil {
			if schema, exists := (*current.Properties)[segment]; exists {
				return schema, true
			}
		}
	case "patternProperties":
		if current.PatternProperties != nil {
			if schema, exists := (*current.PatternProperties)[segment]; exists {
				return schema, true
			}
		}
	case "prefixItems":
		if index, err := strconv.Atoi(segment); err == nil && index < len(current.PrefixItems) {
			return current.PrefixItems[index], true
		}
	case "$defs", "definitions":
		if defSchema, exists := current.Defs[segment]; exists {
			return defSchema, true
		}
	case "items":
		if current.Items != nil {
			return current.Items, true
		}
	case "additionalProperties":
		if current.AdditionalProperties != nil {
			return current.AdditionalProperties, true
		}
	case "allOf":
		if index, err := strconv.Atoi(segment); err == nil && index < len(current.AllOf) {
			return current.AllOf[index], true
		}
	case "anyOf":
		if index, err := strconv.Atoi(segment); err == nil && index < len(current.AnyOf) {
			return current.AnyOf[index], true
		}
	case "oneOf":
		if index, err := strconv.Atoi(segment); err == nil && index < len(current.OneOf) {
			return current.OneOf[index], true
		}
	case "not":
		if current.Not != nil {
			return current.Not, true
		}
	case "if":
		if current.If != nil {
			return current.If, true
		}
	case "then":
		if current.Then != nil {
			return current.Then, true
		}
	case "else":
		if current.Else != nil {
			return current.Else, true
		}
	}
	return nil, false
}
