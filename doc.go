// Package jsonschema implements a JSON Schema Draft-7 validation engine,
// with a small set of later-draft extensions layered on top: $anchor,
// $dynamicAnchor, $dynamicRef (resolved the same way as $ref, without
// dynamic-scope matching), if/then/else, and dependentRequired.
//
// A schema document is compiled once into a Validator and then
// evaluated repeatedly against instance values. References are kept as
// lazy handles: a $ref is never dereferenced while compiling, only the
// first time it is actually evaluated, and the resolved Validator is
// memoized on that first use. That is what lets self-referential
// schemas (a "$defs" entry pointing back at its own root) compile
// without recursing forever.
//
// Credit to https://github.com/santhosh-tekuri/jsonschema for several
// of the format validators.
package jsonschema
