package jsonschema

// Validator evaluates a decoded JSON value against a compiled schema. It
// returns the value Validate was called with, or a schema-declared
// default substituted in its place, so callers that rely on defaulting
// always receive the same object back that they would have serialized.
type Validator interface {
	Validate(value any) (any, error)
}

// checkFunc is the unit a compiled schema is built from: it inspects
// value and either returns it (possibly rewritten by "default") or the
// first ValidationError it encounters. Keyword evaluators across this
// package are composed into a chain of checkFuncs by compileSchema.
type checkFunc func(value any) (any, *ValidationError)

// schemaValidator adapts a checkFunc to the public Validator interface,
// converting a nil *ValidationError into a true nil error so callers
// comparing err == nil don't trip over a typed-nil interface.
type schemaValidator struct {
	check checkFunc
}

func (v *schemaValidator) Validate(value any) (any, error) {
	result, verr := v.check(value)
	if verr != nil {
		return result, verr
	}
	return result, nil
}

// Compile builds (or returns the already memoized) Validator for s. It
// is the public entry point a caller uses after Compiler.Compile has
// parsed and registered a schema document.
func (s *Schema) Compile() (Validator, error) {
	return s.compiledValidator()
}

// compiledValidator lazily builds and memoizes the checkFunc chain for
// this schema. Called both by the public Compile/Validate surface and by
// every keyword evaluator that recurses into a subschema, so a schema's
// keyword tree is only ever walked once no matter how many places refer
// to it (including through $ref cycles, via RefHandle).
func (s *Schema) compiledValidator() (Validator, error) {
	s.validatorOnce.Do(func() {
		check, err := compileSchema(s)
		if err != nil {
			s.validatorErr = err
			return
		}
		s.validator = &schemaValidator{check: check}
	})
	return s.validator, s.validatorErr
}

// compileSchema builds the checkFunc chain for one schema node. The
// shape mirrors a keyword-group dispatcher: boolean schemas and $ref are
// exclusive shortcuts, enum/const short-circuit everything else, and the
// remaining keywords compose into a sequential chain that threads the
// (possibly defaulted) value from one step to the next.
func compileSchema(s *Schema) (checkFunc, error) {
	if s.Boolean != nil {
		allow := *s.Boolean
		return func(v any) (any, *ValidationError) {
			if allow {
				return v, nil
			}
			return v, newValidationError(ErrCodeType, "", "schema is always false", nil)
		}, nil
	}

	// Draft-7 semantics: a schema carrying "$ref" validates purely
	// against the referenced schema, ignoring sibling keywords.
	if s.Ref != "" {
		return func(v any) (any, *ValidationError) {
			return followRef(s.refHandle, "$ref", v)
		}, nil
	}
	if s.DynamicRef != "" {
		return func(v any) (any, *ValidationError) {
			return followRef(s.dynamicRefHandle, "$dynamicRef", v)
		}, nil
	}

	if len(s.Enum) > 0 {
		return func(v any) (any, *ValidationError) {
			if err := evaluateEnum(s, v); err != nil {
				return v, err
			}
			return v, nil
		}, nil
	}
	if s.Const != nil && s.Const.IsSet {
		return func(v any) (any, *ValidationError) {
			if err := evaluateConst(s, v); err != nil {
				return v, err
			}
			return v, nil
		}, nil
	}

	if s.PatternProperties != nil && s.compiledPatterns == nil {
		s.compilePatterns()
	}

	steps := []checkFunc{applyDefault(s), checkType(s), stringChecks(s), numericChecks(s), arrayChecks(s), objectChecks(s)}

	if len(s.AllOf) > 0 {
		steps = append(steps, func(v any) (any, *ValidationError) { return evaluateAllOf(s, v) })
	}
	if len(s.AnyOf) > 0 {
		steps = append(steps, func(v any) (any, *ValidationError) { return evaluateAnyOf(s, v) })
	}
	if len(s.OneOf) > 0 {
		steps = append(steps, func(v any) (any, *ValidationError) { return evaluateOneOf(s, v) })
	}
	if s.Not != nil {
		steps = append(steps, func(v any) (any, *ValidationError) {
			if err := evaluateNot(s, v); err != nil {
				return v, err
			}
			return v, nil
		})
	}
	if s.If != nil && (s.Then != nil || s.Else != nil) {
		steps = append(steps, func(v any) (any, *ValidationError) { return evaluateConditional(s, v) })
	}

	return func(v any) (any, *ValidationError) {
		value := v
		for _, step := range steps {
			result, err := step(value)
			if err != nil {
				return value, err
			}
			value = result
		}
		return value, nil
	}, nil
}

func followRef(handle *RefHandle, keyword string, v any) (any, *ValidationError) {
	validate, err := handle.Validator()
	if err != nil {
		return v, newValidationError(ErrCodeType, keyword, err.Error(), nil)
	}
	result, verr := validate.Validate(v)
	if verr == nil {
		return result, nil
	}
	if ve, ok := verr.(*ValidationError); ok {
		return v, ve
	}
	return v, newValidationError(ErrCodeType, keyword, verr.Error(), nil)
}

// applyDefault substitutes schema.Default whenever value is nil,
// matching opyapi's _return_default step.
func applyDefault(s *Schema) checkFunc {
	if s.Default == nil {
		return passthrough
	}
	return func(v any) (any, *ValidationError) {
		if v == nil {
			return deepCopyValue(s.Default), nil
		}
		return v, nil
	}
}

func checkType(s *Schema) checkFunc {
	return func(v any) (any, *ValidationError) {
		if err := evaluateType(s, v); err != nil {
			return v, err
		}
		return v, nil
	}
}

func passthrough(v any) (any, *ValidationError) { return v, nil }

func stringChecks(s *Schema) checkFunc {
	if s.Format == nil && s.Pattern == nil && s.MinLength == nil && s.MaxLength == nil {
		return passthrough
	}
	return func(v any) (any, *ValidationError) {
		str, ok := v.(string)
		if !ok {
			return v, nil
		}
		if err := evaluateFormat(s, str); err != nil {
			return v, err
		}
		if err := evaluatePattern(s, str); err != nil {
			return v, err
		}
		if err := evaluateMinLength(s, str); err != nil {
			return v, err
		}
		if err := evaluateMaxLength(s, str); err != nil {
			return v, err
		}
		return v, nil
	}
}

func numericChecks(s *Schema) checkFunc {
	if s.MultipleOf == nil && s.Minimum == nil && s.Maximum == nil && s.ExclusiveMinimum == nil && s.ExclusiveMaximum == nil {
		return passthrough
	}
	return func(v any) (any, *ValidationError) {
		if !isNumber(v) {
			return v, nil
		}
		value := NewRat(v)
		if err := evaluateMultipleOf(s, value); err != nil {
			return v, err
		}
		if err := evaluateMinimum(s, value); err != nil {
			return v, err
		}
		if err := evaluateMaximum(s, value); err != nil {
			return v, err
		}
		if err := evaluateExclusiveMinimum(s, value); err != nil {
			return v, err
		}
		if err := evaluateExclusiveMaximum(s, value); err != nil {
			return v, err
		}
		return v, nil
	}
}

func arrayChecks(s *Schema) checkFunc {
	if s.MinItems == nil && s.MaxItems == nil && s.UniqueItems == nil &&
		len(s.PrefixItems) == 0 && s.Items == nil && s.Contains == nil &&
		s.MinContains == nil && s.MaxContains == nil {
		return passthrough
	}
	return func(v any) (any, *ValidationError) {
		array, ok := v.([]any)
		if !ok {
			return v, nil
		}
		if err := evaluateMinItems(s, array); err != nil {
			return v, err
		}
		if err := evaluateMaxItems(s, array); err != nil {
			return v, err
		}
		if err := evaluatePrefixItems(s, array); err != nil {
			return v, err
		}
		if err := evaluateItems(s, array); err != nil {
			return v, err
		}
		if err := evaluateUniqueItems(s, array); err != nil {
			return v, err
		}
		if err := evaluateContains(s, array); err != nil {
			return v, err
		}
		return array, nil
	}
}

func objectChecks(s *Schema) checkFunc {
	if s.Properties == nil && s.PatternProperties == nil && s.AdditionalProperties == nil &&
		s.PropertyNames == nil && len(s.Required) == 0 && len(s.DependentRequired) == 0 &&
		len(s.DependentSchemas) == 0 && s.MinProperties == nil && s.MaxProperties == nil {
		return passthrough
	}
	return func(v any) (any, *ValidationError) {
		object, ok := v.(map[string]any)
		if !ok {
			return v, nil
		}
		if err := evaluatePropertyNames(s, object); err != nil {
			return v, err
		}
		if err := evaluateRequired(s, object); err != nil {
			return v, err
		}
		if err := evaluateMinProperties(s, object); err != nil {
			return v, err
		}
		if err := evaluateMaxProperties(s, object); err != nil {
			return v, err
		}
		if err := evaluateDependentRequired(s, object); err != nil {
			return v, err
		}
		if err := evaluateDependentSchemas(s, object); err != nil {
			return v, err
		}
		object, verr := evaluateProperties(s, object)
		if verr != nil {
			return v, verr
		}
		object, verr = evaluatePatternProperties(s, object)
		if verr != nil {
			return v, verr
		}
		object, verr = evaluateAdditionalProperties(s, object)
		if verr != nil {
			return v, verr
		}
		return object, nil
	}
}
