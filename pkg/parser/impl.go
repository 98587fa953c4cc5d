/*
* Copyright (c) 2026-present Concerto project contributors
 */
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/tech-bash/concerto/pkg/metamodel"
)

var conceptKinds = map[string]metamodel.ConceptKind{
	"concept":     metamodel.KindConcept,
	"asset":       metamodel.KindAsset,
	"participant": metamodel.KindParticipant,
	"transaction": metamodel.KindTransaction,
	"event":       metamodel.KindEvent,
}

var primitiveTypes = map[string]bool{
	"Boolean":  true,
	"DateTime": true,
	"String":   true,
	"Double":   true,
	"Integer":  true,
	"Long":     true,
}

func location(pos lexer.Position) *metamodel.Location {
	return &metamodel.Location{File: pos.Filename, Line: pos.Line, Column: pos.Column}
}

func lowerModel(ast *ModelAST) (*metamodel.Model, error) {
	m := &metamodel.Model{Namespace: ast.NamespaceString()}
	for i := range ast.Imports {
		imp, err := lowerImport(&ast.Imports[i])
		if err != nil {
			return nil, err
		}
		m.Imports = append(m.Imports, imp)
	}
	for i := range ast.Declarations {
		decl, err := lowerDeclaration(&ast.Declarations[i])
		if err != nil {
			return nil, err
		}
		m.Declarations = append(m.Declarations, decl)
	}
	return m, nil
}

func lowerImport(imp *ImportAST) (metamodel.Import, error) {
	uri := ""
	if imp.URI != nil {
		uri = *imp.URI
	}
	if imp.Star {
		return &metamodel.ImportAll{Namespace: strings.Join(imp.Path, "."), URI: uri}, nil
	}
	if len(imp.Path) < 2 {
		return nil, ErrImportRequiresQualifiedName(imp.String(), &imp.Pos)
	}
	n := len(imp.Path)
	return &metamodel.ImportType{
		Namespace: strings.Join(imp.Path[:n-1], "."),
		Name:      imp.Path[n-1],
		URI:       uri,
	}, nil
}

func lowerDeclaration(d *DeclAST) (metamodel.Declaration, error) {
	decorators := lowerDecorators(d.Decorators)
	if d.Enum != nil {
		e := d.Enum
		out := &metamodel.EnumDeclaration{
			Name:       e.Name,
			Decorators: decorators,
			Location:   location(e.Pos),
		}
		for i := range e.Values {
			v := &e.Values[i]
			out.Properties = append(out.Properties, &metamodel.EnumProperty{
				Name:       v.Name,
				Decorators: lowerDecorators(v.Decorators),
				Location:   location(v.Pos),
			})
		}
		return out, nil
	}

	c := d.Concept
	out := &metamodel.ConceptDeclaration{
		Kind:       conceptKinds[c.Kind],
		Name:       c.Name,
		IsAbstract: c.Abstract,
		Decorators: decorators,
		Location:   location(c.Pos),
	}
	if c.Identified != nil {
		field := ""
		if c.Identified.By != nil {
			field = *c.Identified.By
		}
		out.Identified = &metamodel.Identified{Field: field}
	}
	if c.Extends != nil {
		out.SuperType = &metamodel.TypeIdentifier{Name: *c.Extends}
	}
	for i := range c.Properties {
		p, err := lowerProperty(&c.Properties[i])
		if err != nil {
			return nil, err
		}
		out.Properties = append(out.Properties, p)
	}
	return out, nil
}

func lowerProperty(p *PropertyAST) (metamodel.Property, error) {
	base := metamodel.PropertyBase{
		Name:       p.Name,
		IsArray:    p.Array,
		IsOptional: p.Optional,
		Decorators: lowerDecorators(p.Decorators),
		Location:   location(p.Pos),
	}

	if p.Relationship {
		if primitiveTypes[p.Type] {
			return nil, ErrRelationshipToPrimitive(p.Name, p.Type, &p.Pos)
		}
		if err := rejectModifiers(p, "default", "range", "regex"); err != nil {
			return nil, err
		}
		return &metamodel.RelationshipProperty{
			PropertyBase: base,
			Type:         &metamodel.TypeIdentifier{Name: p.Type},
		}, nil
	}

	switch p.Type {
	case "Boolean":
		if err := rejectModifiers(p, "range", "regex"); err != nil {
			return nil, err
		}
		out := &metamodel.BooleanProperty{PropertyBase: base}
		if p.Default != nil {
			if p.Default.Bool == nil {
				return nil, ErrBadDefaultValue(p.Name, &p.Pos, fmt.Errorf("expected true or false"))
			}
			v := *p.Default.Bool == "true"
			out.DefaultValue = &v
		}
		return out, nil

	case "DateTime":
		if err := rejectModifiers(p, "default", "range", "regex"); err != nil {
			return nil, err
		}
		return &metamodel.DateTimeProperty{PropertyBase: base}, nil

	case "String":
		if err := rejectModifiers(p, "range"); err != nil {
			return nil, err
		}
		out := &metamodel.StringProperty{PropertyBase: base}
		if p.Default != nil {
			if p.Default.Str == nil {
				return nil, ErrBadDefaultValue(p.Name, &p.Pos, fmt.Errorf("expected a string literal"))
			}
			out.DefaultValue = p.Default.Str
		}
		if p.Regex != nil {
			out.Validator = &metamodel.StringRegexValidator{Pattern: unquoteRegex(*p.Regex)}
		}
		return out, nil

	case "Double":
		if err := rejectModifiers(p, "regex"); err != nil {
			return nil, err
		}
		out := &metamodel.DoubleProperty{PropertyBase: base}
		if p.Default != nil {
			switch {
			case p.Default.Float != nil:
				out.DefaultValue = p.Default.Float
			case p.Default.Int != nil:
				v := float64(*p.Default.Int)
				out.DefaultValue = &v
			default:
				return nil, ErrBadDefaultValue(p.Name, &p.Pos, fmt.Errorf("expected a number"))
			}
		}
		if p.Range != nil {
			v := &metamodel.DoubleDomainValidator{}
			var err error
			if v.Lower, err = parseFloatBound(p.Range.Lower); err != nil {
				return nil, ErrBadRangeBound(p.Name, &p.Pos, err)
			}
			if v.Upper, err = parseFloatBound(p.Range.Upper); err != nil {
				return nil, ErrBadRangeBound(p.Name, &p.Pos, err)
			}
			out.Validator = v
		}
		return out, nil

	case "Integer":
		if err := rejectModifiers(p, "regex"); err != nil {
			return nil, err
		}
		out := &metamodel.IntegerProperty{PropertyBase: base}
		if p.Default != nil {
			if p.Default.Int == nil {
				return nil, ErrBadDefaultValue(p.Name, &p.Pos, fmt.Errorf("expected an integer"))
			}
			v, err := int32InRange(*p.Default.Int)
			if err != nil {
				return nil, ErrBadDefaultValue(p.Name, &p.Pos, err)
			}
			out.DefaultValue = &v
		}
		if p.Range != nil {
			v := &metamodel.IntegerDomainValidator{}
			var err error
			if v.Lower, err = parseInt32Bound(p.Range.Lower); err != nil {
				return nil, ErrBadRangeBound(p.Name, &p.Pos, err)
			}
			if v.Upper, err = parseInt32Bound(p.Range.Upper); err != nil {
				return nil, ErrBadRangeBound(p.Name, &p.Pos, err)
			}
			out.Validator = v
		}
		return out, nil

	case "Long":
		if err := rejectModifiers(p, "regex"); err != nil {
			return nil, err
		}
		out := &metamodel.LongProperty{PropertyBase: base}
		if p.Default != nil {
			if p.Default.Int == nil {
				return nil, ErrBadDefaultValue(p.Name, &p.Pos, fmt.Errorf("expected an integer"))
			}
			out.DefaultValue = p.Default.Int
		}
		if p.Range != nil {
			v := &metamodel.LongDomainValidator{}
			var err error
			if v.Lower, err = parseInt64Bound(p.Range.Lower); err != nil {
				return nil, ErrBadRangeBound(p.Name, &p.Pos, err)
			}
			if v.Upper, err = parseInt64Bound(p.Range.Upper); err != nil {
				return nil, ErrBadRangeBound(p.Name, &p.Pos, err)
			}
			out.Validator = v
		}
		return out, nil
	}

	// Any other type keyword is a reference to a declared type.
	if err := rejectModifiers(p, "default", "range", "regex"); err != nil {
		return nil, err
	}
	return &metamodel.ObjectProperty{
		PropertyBase: base,
		Type:         &metamodel.TypeIdentifier{Name: p.Type},
	}, nil
}

func rejectModifiers(p *PropertyAST, rejected ...string) error {
	for _, mod := range rejected {
		switch mod {
		case "default":
			if p.Default != nil {
				return ErrUnexpectedModifier(p.Name, p.Type, mod, &p.Pos)
			}
		case "range":
			if p.Range != nil {
				return ErrUnexpectedModifier(p.Name, p.Type, mod, &p.Pos)
			}
		case "regex":
			if p.Regex != nil {
				return ErrUnexpectedModifier(p.Name, p.Type, mod, &p.Pos)
			}
		}
	}
	return nil
}

func lowerDecorators(decorators []DecoratorAST) []*metamodel.Decorator {
	var out []*metamodel.Decorator
	for i := range decorators {
		d := &decorators[i]
		dec := &metamodel.Decorator{Name: d.Name}
		for j := range d.Args {
			dec.Arguments = append(dec.Arguments, lowerDecoratorArg(&d.Args[j]))
		}
		out = append(out, dec)
	}
	return out
}

func lowerDecoratorArg(a *DecoratorArgAST) metamodel.DecoratorLiteral {
	switch {
	case a.Str != nil:
		return &metamodel.DecoratorString{Value: *a.Str}
	case a.Float != nil:
		return &metamodel.DecoratorNumber{Value: *a.Float}
	case a.Int != nil:
		return &metamodel.DecoratorNumber{Value: float64(*a.Int)}
	case a.Bool != nil:
		return &metamodel.DecoratorBoolean{Value: *a.Bool == "true"}
	default:
		return &metamodel.DecoratorTypeReference{
			Type:    &metamodel.TypeIdentifier{Name: a.Ref.Name},
			IsArray: a.Ref.Array,
		}
	}
}

// unquoteRegex strips the slash delimiters of a regex token and unescapes
// embedded slashes.
func unquoteRegex(token string) string {
	body := strings.TrimSuffix(strings.TrimPrefix(token, "/"), "/")
	return strings.ReplaceAll(body, `\/`, `/`)
}

func int32InRange(v int64) (int32, error) {
	const min, max = -1 << 31, 1<<31 - 1
	if v < min || v > max {
		return 0, fmt.Errorf("%d overflows Integer", v)
	}
	return int32(v), nil
}

func parseFloatBound(s *string) (*float64, error) {
	if s == nil {
		return nil, nil
	}
	v, err := strconv.ParseFloat(*s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parseInt32Bound(s *string) (*int32, error) {
	if s == nil {
		return nil, nil
	}
	v, err := strconv.ParseInt(*s, 10, 32)
	if err != nil {
		return nil, err
	}
	out := int32(v)
	return &out, nil
}

func parseInt64Bound(s *string) (*int64, error) {
	if s == nil {
		return nil, nil
	}
	v, err := strconv.ParseInt(*s, 10, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
