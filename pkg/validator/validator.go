/*
* Copyright (c) 2026-present Concerto project contributors
 */

// Package validator checks a declaration tree against the metamodel's
// structural schema: required fields present, identifiers matching the
// naming grammar, no reserved words, well-formed property validators.
// Validation succeeds with a canonicalized deep copy of the input, so the
// caller's tree is never touched.
package validator

import (
	"fmt"
	"regexp"

	"github.com/tech-bash/concerto/pkg/metamodel"
)

// StructuralError reports a tree that does not conform to the metamodel
// schema. Context names the offending node path.
type StructuralError struct {
	Context string
	Reason  string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("%s: %s", e.Context, e.Reason)
}

func structuralErr(context, format string, args ...interface{}) error {
	return &StructuralError{Context: context, Reason: fmt.Sprintf(format, args...)}
}

// Validate checks model and returns a canonicalized deep copy of it.
// Checks run on the input tree before the codec round trip, so a
// malformed tree surfaces as a StructuralError, not a codec failure.
func Validate(model *metamodel.Model) (*metamodel.Model, error) {
	if err := validateModel(model); err != nil {
		return nil, err
	}
	return model.Clone()
}

// ValidateModels checks every model of the collection and returns a
// canonicalized deep copy of the whole collection.
func ValidateModels(models *metamodel.Models) (*metamodel.Models, error) {
	for _, m := range models.Models {
		if err := validateModel(m); err != nil {
			return nil, err
		}
	}
	return models.Clone()
}

func validateModel(m *metamodel.Model) error {
	if !ValidNamespace(m.Namespace) {
		return structuralErr("model", "invalid namespace %q", m.Namespace)
	}
	for _, imp := range m.Imports {
		if err := validateImport(m.Namespace, imp); err != nil {
			return err
		}
	}
	for _, d := range m.Declarations {
		if err := validateDeclaration(m.Namespace, d); err != nil {
			return err
		}
	}
	return nil
}

func validateImport(ns string, imp metamodel.Import) error {
	ctx := fmt.Sprintf("%s: import", ns)
	switch v := imp.(type) {
	case *metamodel.ImportAll:
		if !ValidNamespace(v.Namespace) {
			return structuralErr(ctx, "invalid namespace %q", v.Namespace)
		}
	case *metamodel.ImportType:
		if !ValidNamespace(v.Namespace) {
			return structuralErr(ctx, "invalid namespace %q", v.Namespace)
		}
		if !ValidIdentifier(v.Name) {
			return structuralErr(ctx, "invalid name %q", v.Name)
		}
	}
	return nil
}

func validateDeclaration(ns string, d metamodel.Declaration) error {
	ctx := fmt.Sprintf("%s.%s", ns, d.GetName())
	if !ValidIdentifier(d.GetName()) {
		return structuralErr(ns, "invalid declaration name %q", d.GetName())
	}
	if err := validateDecorators(ctx, d.GetDecorators()); err != nil {
		return err
	}
	switch v := d.(type) {
	case *metamodel.ConceptDeclaration:
		switch v.Kind {
		case metamodel.KindConcept, metamodel.KindAsset, metamodel.KindParticipant,
			metamodel.KindTransaction, metamodel.KindEvent:
		default:
			return structuralErr(ctx, "invalid declaration kind %q", v.Kind)
		}
		if v.Identified != nil && v.Identified.Field != "" && !ValidIdentifier(v.Identified.Field) {
			return structuralErr(ctx, "invalid identifying field %q", v.Identified.Field)
		}
		if v.SuperType != nil {
			if err := validateTypeIdentifier(ctx, v.SuperType); err != nil {
				return err
			}
		}
		for _, p := range v.Properties {
			if err := validateProperty(ctx, p); err != nil {
				return err
			}
		}
	case *metamodel.EnumDeclaration:
		for _, ep := range v.Properties {
			if !ValidIdentifier(ep.Name) {
				return structuralErr(ctx, "invalid enum value name %q", ep.Name)
			}
			if err := validateDecorators(ctx+"."+ep.Name, ep.Decorators); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateProperty(declCtx string, p metamodel.Property) error {
	ctx := fmt.Sprintf("%s.%s", declCtx, p.GetName())
	if !ValidIdentifier(p.GetName()) {
		return structuralErr(declCtx, "invalid property name %q", p.GetName())
	}
	if err := validateDecorators(ctx, p.GetDecorators()); err != nil {
		return err
	}
	switch v := p.(type) {
	case *metamodel.ObjectProperty:
		return validateTypeIdentifier(ctx, v.Type)
	case *metamodel.RelationshipProperty:
		return validateTypeIdentifier(ctx, v.Type)
	case *metamodel.StringProperty:
		if v.Validator != nil {
			if _, err := regexp.Compile(v.Validator.Pattern); err != nil {
				return structuralErr(ctx, "invalid pattern: %v", err)
			}
		}
	case *metamodel.DoubleProperty:
		if v.Validator != nil && v.Validator.Lower != nil && v.Validator.Upper != nil &&
			*v.Validator.Lower > *v.Validator.Upper {
			return structuralErr(ctx, "range lower bound exceeds upper bound")
		}
	case *metamodel.IntegerProperty:
		if v.Validator != nil && v.Validator.Lower != nil && v.Validator.Upper != nil &&
			*v.Validator.Lower > *v.Validator.Upper {
			return structuralErr(ctx, "range lower bound exceeds upper bound")
		}
	case *metamodel.LongProperty:
		if v.Validator != nil && v.Validator.Lower != nil && v.Validator.Upper != nil &&
			*v.Validator.Lower > *v.Validator.Upper {
			return structuralErr(ctx, "range lower bound exceeds upper bound")
		}
	}
	return nil
}

func validateTypeIdentifier(ctx string, t *metamodel.TypeIdentifier) error {
	if t == nil {
		return structuralErr(ctx, "missing type")
	}
	if !ValidIdentifier(t.Name) {
		return structuralErr(ctx, "invalid type name %q", t.Name)
	}
	if t.Namespace != "" && !ValidNamespace(t.Namespace) {
		return structuralErr(ctx, "invalid type namespace %q", t.Namespace)
	}
	return nil
}

func validateDecorators(ctx string, decorators []*metamodel.Decorator) error {
	for _, dec := range decorators {
		if !ValidIdentifier(dec.Name) {
			return structuralErr(ctx, "invalid decorator name %q", dec.Name)
		}
		for _, arg := range dec.Arguments {
			if ref, ok := arg.(*metamodel.DecoratorTypeReference); ok {
				if err := validateTypeIdentifier(ctx+"@"+dec.Name, ref.Type); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
