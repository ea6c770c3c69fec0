package jsonschema

import (
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compileTest(t *testing.T, document string) *Schema {
	t.Helper()
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(document))
	require.NoError(t, err)
	return schema
}

func TestSchemaInitializationSetsBaseURI(t *testing.T) {
	schema := compileTest(t, `{"$id": "https://example.com/schemas/person.json", "type": "object"}`)
	assert.Equal(t, "https://example.com/schemas/person.json", schema.GetSchemaURI())
	assert.Equal(t, "https://example.com/schemas/", schema.baseURI)
}

func TestSchemaInitializationNestedIDResolvesRelativeToParent(t *testing.T) {
	schema := compileTest(t, `{
		"$id": "https://example.com/schemas/root.json",
		"$defs": {
			"address": {"$id": "address.json", "type": "object"}
		}
	}`)
	addr := schema.Defs["address"]
	require.NotNil(t, addr)
	assert.Equal(t, "https://example.com/schemas/address.json", addr.GetSchemaURI())
}

func TestGetRootSchemaWalksUpToTopParent(t *testing.T) {
	schema := compileTest(t, `{
		"$defs": {
			"inner": {"type": "string"}
		}
	}`)
	inner := schema.Defs["inner"]
	require.NotNil(t, inner)
	assert.Same(t, schema, inner.getRootSchema())
}

func TestCompilerInheritance(t *testing.T) {
	custom := NewCompiler()
	custom.SetDefaultBaseURI("https://custom.example.com/")

	schema := &Schema{}
	schema.SetCompiler(custom)
	assert.Same(t, custom, schema.GetCompiler())

	child := &Schema{parent: schema}
	assert.Same(t, custom, child.GetCompiler())
}

func TestGetCompilerFallsBackToDefault(t *testing.T) {
	schema := &Schema{}
	assert.Same(t, defaultCompiler, schema.GetCompiler())
}

func TestSchemaRoundTrip(t *testing.T) {
	document := `{"type":"object","properties":{"name":{"type":"string"},"age":{"type":"integer","minimum":0}},"required":["name"]}`
	schema := compileTest(t, document)

	data, err := json.Marshal(schema, json.Deterministic(true))
	require.NoError(t, err)

	var roundTripped Schema
	require.NoError(t, json.Unmarshal(data, &roundTripped))

	assert.Equal(t, schema.Type, roundTripped.Type)
	assert.Equal(t, schema.Required, roundTripped.Required)
	require.NotNil(t, roundTripped.Properties)
	assert.Contains(t, *roundTripped.Properties, "name")
	assert.Contains(t, *roundTripped.Properties, "age")
}

func TestSchemaMarshalDeterminism(t *testing.T) {
	schema := compileTest(t, `{"type":"object","properties":{"b":{"type":"string"},"a":{"type":"number"}}}`)

	first, err := json.Marshal(schema, json.Deterministic(true))
	require.NoError(t, err)
	second, err := json.Marshal(schema, json.Deterministic(true))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRequiredFieldOrderingSurvivesRoundTrip(t *testing.T) {
	schema := compileTest(t, `{"type":"object","required":["zeta","alpha","middle"]}`)

	data, err := json.Marshal(schema, json.Deterministic(true))
	require.NoError(t, err)

	var roundTripped Schema
	require.NoError(t, json.Unmarshal(data, &roundTripped))

	assert.Equal(t, []string{"zeta", "alpha", "middle"}, roundTripped.Required)
}

func TestDependentRequiredOrderingSurvivesRoundTrip(t *testing.T) {
	schema := compileTest(t, `{"dependentRequired":{"creditCard":["billingAddress","cvv"]}}`)

	data, err := json.Marshal(schema, json.Deterministic(true))
	require.NoError(t, err)

	var roundTripped Schema
	require.NoError(t, json.Unmarshal(data, &roundTripped))

	assert.Equal(t, []string{"billingAddress", "cvv"}, roundTripped.DependentRequired["creditCard"])
}

func TestBooleanSchemaRoundTrip(t *testing.T) {
	schema := compileTest(t, `false`)
	require.NotNil(t, schema.Boolean)
	assert.False(t, *schema.Boolean)

	data, err := json.Marshal(schema, json.Deterministic(true))
	require.NoError(t, err)
	assert.Equal(t, "false", string(data))
}

func TestDraft7TupleItemsUnmarshalIntoPrefixItemsAndItems(t *testing.T) {
	schema := compileTest(t, `{
		"items": [{"type": "string"}, {"type": "number"}],
		"additionalItems": {"type": "boolean"}
	}`)

	require.Len(t, schema.PrefixItems, 2)
	assert.Equal(t, SchemaType{"string"}, schema.PrefixItems[0].Type)
	assert.Equal(t, SchemaType{"number"}, schema.PrefixItems[1].Type)
	require.NotNil(t, schema.Items)
	assert.Equal(t, SchemaType{"boolean"}, schema.Items.Type)
}

func TestListItemsUnmarshalIntoItems(t *testing.T) {
	schema := compileTest(t, `{"items": {"type": "string"}}`)
	assert.Empty(t, schema.PrefixItems)
	require.NotNil(t, schema.Items)
	assert.Equal(t, SchemaType{"string"}, schema.Items.Type)
}

func TestDefinitionsAliasesDefs(t *testing.T) {
	schema := compileTest(t, `{"definitions": {"Item": {"type": "string"}}}`)
	require.NotNil(t, schema.Defs)
	assert.Contains(t, schema.Defs, "Item")
}

func TestExtraFieldsAreCollected(t *testing.T) {
	schema := compileTest(t, `{"type": "string", "x-nullable": true, "x-go-name": "Name"}`)
	assert.Equal(t, true, schema.Extra["x-nullable"])
	assert.Equal(t, "Name", schema.Extra["x-go-name"])
	assert.NotContains(t, schema.Extra, "type")
}

func TestConstValueAcceptsExplicitNull(t *testing.T) {
	schema := compileTest(t, `{"const": null}`)
	require.NotNil(t, schema.Const)
	assert.True(t, schema.Const.IsSet)
	assert.Nil(t, schema.Const.Value)
}

func TestValidateUsingCompiledSchema(t *testing.T) {
	schema := compileTest(t, `{
		"type": "object",
		"properties": {"name": {"type": "string"}},
		"required": ["name"]
	}`)

	validator, err := schema.compiledValidator()
	require.NoError(t, err)

	_, err = validator.Validate(map[string]any{"name": "Ada"})
	assert.NoError(t, err)

	_, err = validator.Validate(map[string]any{})
	assert.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, ErrCodeRequiredProperty, verr.Code)
}

func TestSelfReferentialRootRefValidates(t *testing.T) {
	schema := compileTest(t, `{
		"$id": "https://example.com/tree.json",
		"type": "object",
		"properties": {
			"value": {"type": "number"},
			"children": {"type": "array", "items": {"$ref": "#"}}
		}
	}`)

	validator, err := schema.compiledValidator()
	require.NoError(t, err)

	instance := map[string]any{
		"value": float64(1),
		"children": []any{
			map[string]any{"value": float64(2), "children": []any{}},
		},
	}
	_, err = validator.Validate(instance)
	assert.NoError(t, err)
}
