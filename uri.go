package jsonschema

import (
	"net/url"
	"path"
	"strings"
)

// URI identifies a schema resource, split into the parts the normalizer
// and reference resolver care about: everything before the fragment
// (Base) and the fragment itself, which is either a plain name anchor
// ("userId") or a JSON Pointer ("/properties/userId").
type URI struct {
	Base     string
	Fragment string
}

// ParseURI splits a $id, $ref, or $dynamicRef string into its base and
// fragment parts. A bare fragment ("#/defs/Item" or "#anchor") has an
// empty Base, meaning "resolve within the current document".
func ParseURI(raw string) URI {
	base, fragment := splitRef(raw)
	return URI{Base: base, Fragment: fragment}
}

// String reassembles the URI, omitting the fragment separator when
// there is no fragment.
func (u URI) String() string {
	if u.Fragment == "" {
		return u.Base
	}
	return u.Base + "#" + u.Fragment
}

// IsPointer reports whether the fragment is a JSON Pointer rather than
// a plain $anchor/$dynamicAnchor name.
func (u URI) IsPointer() bool {
	return isJSONPointer(u.Fragment)
}

// IsAbsolute reports whether Base is an absolute URI with a scheme and host.
func (u URI) IsAbsolute() bool {
	return isAbsoluteURI(u.Base)
}

// ResolveAgainst resolves a possibly-relative URI string against this
// URI treated as a base, the way a $ref inside a schema loaded from
// "base" resolves relative to that schema's location.
func (u URI) ResolveAgainst(base string) URI {
	if u.Base == "" {
		return URI{Base: base, Fragment: u.Fragment}
	}
	if isAbsoluteURI(u.Base) || base == "" {
		return u
	}
	return URI{Base: resolveRelativeURIViaNetURL(base, u.Base), Fragment: u.Fragment}
}

// Scheme returns the URI scheme ("http", "https", "file", ...), or the
// empty string if Base isn't a valid absolute URI.
func (u URI) Scheme() string {
	return getURLScheme(u.Base)
}

// directory returns the base URI with its last path segment stripped,
// the URI that relative $id/$ref values inside a document at this URI
// resolve against.
func (u URI) directory() string {
	return getBaseURI(u.Base)
}

// resolveRelativeURIViaNetURL resolves relativeURL against baseURI using RFC 3986
// reference resolution, falling back to the relative string unchanged
// when either side fails to parse as a URL.
func resolveRelativeURIViaNetURL(baseURI, relativeURL string) string {
	base, err := url.Parse(baseURI)
	if err != nil || base.Scheme == "" {
		return relativeURL
	}
	rel, err := url.Parse(relativeURL)
	if err != nil {
		return relativeURL
	}
	resolved := base.ResolveReference(rel)
	resolved.Path = path.Clean(resolved.Path)
	return resolved.String()
}

// normalizeLocalPath collapses "." and ".." segments the way a file
// loader's base directory composition needs to, without requiring the
// path to be backed by an actual filesystem.
func normalizeLocalPath(p string) string {
	if !strings.Contains(p, "/") {
		return p
	}
	return path.Clean(p)
}
