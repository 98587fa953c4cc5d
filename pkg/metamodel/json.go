/*
* Copyright (c) 2026-present Concerto project contributors
 */
package metamodel

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
)

// Kind tags used by the JSON form. Every polymorphic node carries one, so a
// tree survives a codec round trip with its variants intact.
const (
	kindModel      = "Model"
	kindModels     = "Models"
	kindImportAll  = "ImportAll"
	kindImportType = "ImportType"

	kindEnumDeclaration = "EnumDeclaration"

	kindObjectProperty       = "ObjectProperty"
	kindRelationshipProperty = "RelationshipProperty"
	kindBooleanProperty      = "BooleanProperty"
	kindDateTimeProperty     = "DateTimeProperty"
	kindStringProperty       = "StringProperty"
	kindDoubleProperty       = "DoubleProperty"
	kindIntegerProperty      = "IntegerProperty"
	kindLongProperty         = "LongProperty"

	kindDecorator              = "Decorator"
	kindDecoratorString        = "DecoratorString"
	kindDecoratorNumber        = "DecoratorNumber"
	kindDecoratorBoolean       = "DecoratorBoolean"
	kindDecoratorTypeReference = "DecoratorTypeReference"
)

// ErrUnknownKind is wrapped by every decode error caused by a missing or
// unrecognized kind tag.
var ErrUnknownKind = errors.New("unknown node kind")

func errUnknownKind(role, kind string) error {
	return fmt.Errorf("metamodel: %w: %s %q", ErrUnknownKind, role, kind)
}

type kindProbe struct {
	Kind string `json:"kind"`
}

func probeKind(data []byte) (string, error) {
	var p kindProbe
	if err := json.Unmarshal(data, &p); err != nil {
		return "", err
	}
	return p.Kind, nil
}

func (m *Model) MarshalJSON() ([]byte, error) {
	type alias Model
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*alias
	}{kindModel, (*alias)(m)})
}

func (m *Model) UnmarshalJSON(data []byte) error {
	var raw struct {
		Namespace    string            `json:"namespace"`
		SourceURI    string            `json:"sourceUri"`
		Imports      []json.RawMessage `json:"imports"`
		Declarations []json.RawMessage `json:"declarations"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	m.Namespace = raw.Namespace
	m.SourceURI = raw.SourceURI
	m.Imports = nil
	m.Declarations = nil
	for _, r := range raw.Imports {
		imp, err := decodeImport(r)
		if err != nil {
			return err
		}
		m.Imports = append(m.Imports, imp)
	}
	for _, r := range raw.Declarations {
		decl, err := decodeDeclaration(r)
		if err != nil {
			return err
		}
		m.Declarations = append(m.Declarations, decl)
	}
	return nil
}

func (m *Models) MarshalJSON() ([]byte, error) {
	type alias Models
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*alias
	}{kindModels, (*alias)(m)})
}

func decodeImport(data []byte) (Import, error) {
	kind, err := probeKind(data)
	if err != nil {
		return nil, err
	}
	switch kind {
	case kindImportAll:
		v := &ImportAll{}
		return v, json.Unmarshal(data, v)
	case kindImportType:
		v := &ImportType{}
		return v, json.Unmarshal(data, v)
	}
	return nil, errUnknownKind("import", kind)
}

func (i *ImportAll) MarshalJSON() ([]byte, error) {
	type alias ImportAll
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*alias
	}{kindImportAll, (*alias)(i)})
}

func (i *ImportType) MarshalJSON() ([]byte, error) {
	type alias ImportType
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*alias
	}{kindImportType, (*alias)(i)})
}

func decodeDeclaration(data []byte) (Declaration, error) {
	kind, err := probeKind(data)
	if err != nil {
		return nil, err
	}
	switch ConceptKind(kind) {
	case KindConcept, KindAsset, KindParticipant, KindTransaction, KindEvent:
		v := &ConceptDeclaration{}
		return v, v.UnmarshalJSON(data)
	}
	if kind == kindEnumDeclaration {
		v := &EnumDeclaration{}
		return v, json.Unmarshal(data, v)
	}
	return nil, errUnknownKind("declaration", kind)
}

func (d *ConceptDeclaration) MarshalJSON() ([]byte, error) {
	type alias ConceptDeclaration
	return json.Marshal(struct {
		Kind ConceptKind `json:"kind"`
		*alias
	}{d.Kind, (*alias)(d)})
}

func (d *ConceptDeclaration) UnmarshalJSON(data []byte) error {
	var raw struct {
		Kind       string            `json:"kind"`
		Name       string            `json:"name"`
		IsAbstract bool              `json:"isAbstract"`
		Identified *Identified       `json:"identified"`
		SuperType  *TypeIdentifier   `json:"superType"`
		Properties []json.RawMessage `json:"properties"`
		Decorators []*Decorator      `json:"decorators"`
		Location   *Location         `json:"location"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch ConceptKind(raw.Kind) {
	case KindConcept, KindAsset, KindParticipant, KindTransaction, KindEvent:
		d.Kind = ConceptKind(raw.Kind)
	default:
		return errUnknownKind("declaration", raw.Kind)
	}
	d.Name = raw.Name
	d.IsAbstract = raw.IsAbstract
	d.Identified = raw.Identified
	d.SuperType = raw.SuperType
	d.Decorators = raw.Decorators
	d.Location = raw.Location
	d.Properties = nil
	for _, r := range raw.Properties {
		p, err := decodeProperty(r)
		if err != nil {
			return err
		}
		d.Properties = append(d.Properties, p)
	}
	return nil
}

func (d *EnumDeclaration) MarshalJSON() ([]byte, error) {
	type alias EnumDeclaration
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*alias
	}{kindEnumDeclaration, (*alias)(d)})
}

func decodeProperty(data []byte) (Property, error) {
	kind, err := probeKind(data)
	if err != nil {
		return nil, err
	}
	var p Property
	switch kind {
	case kindObjectProperty:
		p = &ObjectProperty{}
	case kindRelationshipProperty:
		p = &RelationshipProperty{}
	case kindBooleanProperty:
		p = &BooleanProperty{}
	case kindDateTimeProperty:
		p = &DateTimeProperty{}
	case kindStringProperty:
		p = &StringProperty{}
	case kindDoubleProperty:
		p = &DoubleProperty{}
	case kindIntegerProperty:
		p = &IntegerProperty{}
	case kindLongProperty:
		p = &LongProperty{}
	default:
		return nil, errUnknownKind("property", kind)
	}
	return p, json.Unmarshal(data, p)
}

func marshalProperty(kind string, p any) ([]byte, error) {
	fields, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	head := fmt.Sprintf(`{"kind":%q,`, kind)
	if len(fields) == 2 { // "{}"
		head = fmt.Sprintf(`{"kind":%q`, kind)
	}
	out := append([]byte(head), fields[1:]...)
	return out, nil
}

func (p *ObjectProperty) MarshalJSON() ([]byte, error) {
	type alias ObjectProperty
	return marshalProperty(kindObjectProperty, (*alias)(p))
}

func (p *RelationshipProperty) MarshalJSON() ([]byte, error) {
	type alias RelationshipProperty
	return marshalProperty(kindRelationshipProperty, (*alias)(p))
}

func (p *BooleanProperty) MarshalJSON() ([]byte, error) {
	type alias BooleanProperty
	return marshalProperty(kindBooleanProperty, (*alias)(p))
}

func (p *DateTimeProperty) MarshalJSON() ([]byte, error) {
	type alias DateTimeProperty
	return marshalProperty(kindDateTimeProperty, (*alias)(p))
}

func (p *StringProperty) MarshalJSON() ([]byte, error) {
	type alias StringProperty
	return marshalProperty(kindStringProperty, (*alias)(p))
}

func (p *DoubleProperty) MarshalJSON() ([]byte, error) {
	type alias DoubleProperty
	return marshalProperty(kindDoubleProperty, (*alias)(p))
}

func (p *IntegerProperty) MarshalJSON() ([]byte, error) {
	type alias IntegerProperty
	return marshalProperty(kindIntegerProperty, (*alias)(p))
}

func (p *LongProperty) MarshalJSON() ([]byte, error) {
	type alias LongProperty
	return marshalProperty(kindLongProperty, (*alias)(p))
}

func (d *Decorator) MarshalJSON() ([]byte, error) {
	type alias Decorator
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*alias
	}{kindDecorator, (*alias)(d)})
}

func (d *Decorator) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name      string            `json:"name"`
		Arguments []json.RawMessage `json:"arguments"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d.Name = raw.Name
	d.Arguments = nil
	for _, r := range raw.Arguments {
		lit, err := decodeDecoratorLiteral(r)
		if err != nil {
			return err
		}
		d.Arguments = append(d.Arguments, lit)
	}
	return nil
}

func decodeDecoratorLiteral(data []byte) (DecoratorLiteral, error) {
	kind, err := probeKind(data)
	if err != nil {
		return nil, err
	}
	var lit DecoratorLiteral
	switch kind {
	case kindDecoratorString:
		lit = &DecoratorString{}
	case kindDecoratorNumber:
		lit = &DecoratorNumber{}
	case kindDecoratorBoolean:
		lit = &DecoratorBoolean{}
	case kindDecoratorTypeReference:
		lit = &DecoratorTypeReference{}
	default:
		return nil, errUnknownKind("decorator literal", kind)
	}
	return lit, json.Unmarshal(data, lit)
}

func (l *DecoratorString) MarshalJSON() ([]byte, error) {
	type alias DecoratorString
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*alias
	}{kindDecoratorString, (*alias)(l)})
}

func (l *DecoratorNumber) MarshalJSON() ([]byte, error) {
	type alias DecoratorNumber
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*alias
	}{kindDecoratorNumber, (*alias)(l)})
}

func (l *DecoratorBoolean) MarshalJSON() ([]byte, error) {
	type alias DecoratorBoolean
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*alias
	}{kindDecoratorBoolean, (*alias)(l)})
}

func (l *DecoratorTypeReference) MarshalJSON() ([]byte, error) {
	type alias DecoratorTypeReference
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*alias
	}{kindDecoratorTypeReference, (*alias)(l)})
}

// Clone returns a deep copy of the model made through a codec round trip,
// so no node is shared with the receiver.
func (m *Model) Clone() (*Model, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	out := &Model{}
	if err := json.Unmarshal(data, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Clone returns a deep copy of the collection.
func (m *Models) Clone() (*Models, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	out := &Models{}
	if err := json.Unmarshal(data, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Equal compares two models structurally through their canonical JSON form.
// Locations participate; strip them first when comparing trees from
// different parses.
func (m *Model) Equal(other *Model) (bool, error) {
	a, err := json.Marshal(m)
	if err != nil {
		return false, err
	}
	b, err := json.Marshal(other)
	if err != nil {
		return false, err
	}
	return string(a) == string(b), nil
}
