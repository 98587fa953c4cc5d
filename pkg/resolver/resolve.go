/*
* Copyright (c) 2026-present Concerto project contributors
 */
package resolver

import (
	"github.com/tech-bash/concerto/pkg/metamodel"
)

// ResolveTypeNames walks the model and writes the declaring namespace onto
// every type reference it visits, in place. The model must be exclusively
// held by the caller; use a clone when the original has to stay untouched.
//
// Decorators are resolved uniformly wherever they appear: on declarations,
// on every property variant, and on individual enum values.
func ResolveTypeNames(model *metamodel.Model, table *NameTable) error {
	for _, d := range model.Declarations {
		if err := resolveDeclaration(d, table); err != nil {
			return err
		}
	}
	return nil
}

// ResolveName is the single table lookup every reference goes through.
func ResolveName(name string, table *NameTable) (string, error) {
	ns, ok := table.Lookup(name)
	if !ok {
		return "", &UnresolvedNameError{Name: name}
	}
	return ns, nil
}

func resolveDeclaration(d metamodel.Declaration, table *NameTable) error {
	switch v := d.(type) {
	case *metamodel.ConceptDeclaration:
		if v.SuperType != nil {
			if err := resolveTypeIdentifier(v.SuperType, table); err != nil {
				return err
			}
		}
		for _, p := range v.Properties {
			if err := resolveProperty(p, table); err != nil {
				return err
			}
		}
		return resolveDecorators(v.Decorators, table)
	case *metamodel.EnumDeclaration:
		for _, ep := range v.Properties {
			if err := resolveDecorators(ep.Decorators, table); err != nil {
				return err
			}
		}
		return resolveDecorators(v.Decorators, table)
	}
	return nil
}

func resolveProperty(p metamodel.Property, table *NameTable) error {
	switch v := p.(type) {
	case *metamodel.ObjectProperty:
		if err := resolveTypeIdentifier(v.Type, table); err != nil {
			return err
		}
	case *metamodel.RelationshipProperty:
		if err := resolveTypeIdentifier(v.Type, table); err != nil {
			return err
		}
	}
	// Primitive variants carry no type reference, but any variant may
	// carry decorators with type-reference arguments.
	return resolveDecorators(p.GetDecorators(), table)
}

func resolveDecorators(decorators []*metamodel.Decorator, table *NameTable) error {
	for _, dec := range decorators {
		for _, arg := range dec.Arguments {
			ref, ok := arg.(*metamodel.DecoratorTypeReference)
			if !ok {
				continue
			}
			if err := resolveTypeIdentifier(ref.Type, table); err != nil {
				return err
			}
		}
	}
	return nil
}

func resolveTypeIdentifier(t *metamodel.TypeIdentifier, table *NameTable) error {
	ns, err := ResolveName(t.Name, table)
	if err != nil {
		return err
	}
	t.Namespace = ns
	return nil
}
