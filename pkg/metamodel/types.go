/*
* Copyright (c) 2026-present Concerto project contributors
 */
package metamodel

import "fmt"

// BuiltinNamespace is the reserved namespace declaring the five built-in
// super types every model may extend without importing anything.
const BuiltinNamespace = "concerto"

// ConceptKind distinguishes the class-like declaration variants. They share
// one shape; only the kind tag differs.
type ConceptKind string

const (
	KindConcept     ConceptKind = "ConceptDeclaration"
	KindAsset       ConceptKind = "AssetDeclaration"
	KindParticipant ConceptKind = "ParticipantDeclaration"
	KindTransaction ConceptKind = "TransactionDeclaration"
	KindEvent       ConceptKind = "EventDeclaration"
)

// Location is an optional source position attached to declarations and
// properties by the parser. It is ignored by structural comparison.
type Location struct {
	File   string `json:"file,omitempty"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// TypeIdentifier is a reference to a declaration. It starts unresolved
// (Namespace empty) and becomes fully qualified once the resolver fills
// Namespace in.
type TypeIdentifier struct {
	Name      string `json:"name"`
	Namespace string `json:"namespace,omitempty"`
}

// IsResolved reports whether the reference carries a namespace.
func (t *TypeIdentifier) IsResolved() bool { return t.Namespace != "" }

func (t *TypeIdentifier) String() string {
	if t.Namespace == "" {
		return t.Name
	}
	return fmt.Sprintf("%s.%s", t.Namespace, t.Name)
}

// Import is either ImportAll or ImportType. Order of imports in a model is
// significant: later imports override earlier ones on name collision.
type Import interface {
	ImportedNamespace() string
	importNode()
}

// ImportAll imports every declaration of a namespace.
type ImportAll struct {
	Namespace string `json:"namespace"`
	URI       string `json:"uri,omitempty"`
}

// ImportType imports one named declaration of a namespace.
type ImportType struct {
	Namespace string `json:"namespace"`
	Name      string `json:"name"`
	URI       string `json:"uri,omitempty"`
}

func (i *ImportAll) ImportedNamespace() string  { return i.Namespace }
func (i *ImportType) ImportedNamespace() string { return i.Namespace }

func (*ImportAll) importNode()  {}
func (*ImportType) importNode() {}

// Declaration is a named top-level definition inside a model: either a
// class-like ConceptDeclaration or an EnumDeclaration. The set is closed.
type Declaration interface {
	GetName() string
	GetDecorators() []*Decorator
	GetLocation() *Location
	declarationNode()
}

// Identified marks a concept as identifiable, optionally by a named field.
type Identified struct {
	Field string `json:"field,omitempty"`
}

// ConceptDeclaration is the shared shape of Concept, Asset, Participant,
// Transaction and Event declarations, distinguished by Kind.
type ConceptDeclaration struct {
	Kind       ConceptKind     `json:"-"`
	Name       string          `json:"name"`
	IsAbstract bool            `json:"isAbstract,omitempty"`
	Identified *Identified     `json:"identified,omitempty"`
	SuperType  *TypeIdentifier `json:"superType,omitempty"`
	Properties []Property      `json:"properties,omitempty"`
	Decorators []*Decorator    `json:"decorators,omitempty"`
	Location   *Location       `json:"location,omitempty"`
}

// EnumDeclaration is a named set of enum values.
type EnumDeclaration struct {
	Name       string          `json:"name"`
	Properties []*EnumProperty `json:"properties,omitempty"`
	Decorators []*Decorator    `json:"decorators,omitempty"`
	Location   *Location       `json:"location,omitempty"`
}

// EnumProperty is one enum value: a name plus decorators, no type reference.
type EnumProperty struct {
	Name       string       `json:"name"`
	Decorators []*Decorator `json:"decorators,omitempty"`
	Location   *Location    `json:"location,omitempty"`
}

func (d *ConceptDeclaration) GetName() string             { return d.Name }
func (d *ConceptDeclaration) GetDecorators() []*Decorator { return d.Decorators }
func (d *ConceptDeclaration) GetLocation() *Location      { return d.Location }
func (d *EnumDeclaration) GetName() string                { return d.Name }
func (d *EnumDeclaration) GetDecorators() []*Decorator    { return d.Decorators }
func (d *EnumDeclaration) GetLocation() *Location         { return d.Location }

func (*ConceptDeclaration) declarationNode() {}
func (*EnumDeclaration) declarationNode()    {}

// Property is a field of a class-like declaration. The set of variants is
// closed: two reference-carrying kinds and six primitive kinds.
type Property interface {
	GetName() string
	GetDecorators() []*Decorator
	GetLocation() *Location
	GetIsArray() bool
	GetIsOptional() bool
	propertyNode()
}

// PropertyBase carries the members common to every property variant.
type PropertyBase struct {
	Name       string       `json:"name"`
	IsArray    bool         `json:"isArray,omitempty"`
	IsOptional bool         `json:"isOptional,omitempty"`
	Decorators []*Decorator `json:"decorators,omitempty"`
	Location   *Location    `json:"location,omitempty"`
}

func (p *PropertyBase) GetName() string             { return p.Name }
func (p *PropertyBase) GetDecorators() []*Decorator { return p.Decorators }
func (p *PropertyBase) GetLocation() *Location      { return p.Location }
func (p *PropertyBase) GetIsArray() bool            { return p.IsArray }
func (p *PropertyBase) GetIsOptional() bool         { return p.IsOptional }

// ObjectProperty holds a by-value reference to a declared type.
type ObjectProperty struct {
	PropertyBase
	Type *TypeIdentifier `json:"type"`
}

// RelationshipProperty holds a by-reference link to a declared type.
type RelationshipProperty struct {
	PropertyBase
	Type *TypeIdentifier `json:"type"`
}

type BooleanProperty struct {
	PropertyBase
	DefaultValue *bool `json:"defaultValue,omitempty"`
}

type DateTimeProperty struct {
	PropertyBase
}

// StringRegexValidator constrains a string property to a pattern.
type StringRegexValidator struct {
	Pattern string `json:"pattern"`
}

type StringProperty struct {
	PropertyBase
	DefaultValue *string               `json:"defaultValue,omitempty"`
	Validator    *StringRegexValidator `json:"validator,omitempty"`
}

// DoubleDomainValidator constrains a double property to [Lower, Upper];
// either bound may be absent.
type DoubleDomainValidator struct {
	Lower *float64 `json:"lower,omitempty"`
	Upper *float64 `json:"upper,omitempty"`
}

type DoubleProperty struct {
	PropertyBase
	DefaultValue *float64               `json:"defaultValue,omitempty"`
	Validator    *DoubleDomainValidator `json:"validator,omitempty"`
}

type IntegerDomainValidator struct {
	Lower *int32 `json:"lower,omitempty"`
	Upper *int32 `json:"upper,omitempty"`
}

type IntegerProperty struct {
	PropertyBase
	DefaultValue *int32                  `json:"defaultValue,omitempty"`
	Validator    *IntegerDomainValidator `json:"validator,omitempty"`
}

type LongDomainValidator struct {
	Lower *int64 `json:"lower,omitempty"`
	Upper *int64 `json:"upper,omitempty"`
}

type LongProperty struct {
	PropertyBase
	DefaultValue *int64               `json:"defaultValue,omitempty"`
	Validator    *LongDomainValidator `json:"validator,omitempty"`
}

func (*ObjectProperty) propertyNode()       {}
func (*RelationshipProperty) propertyNode() {}
func (*BooleanProperty) propertyNode()      {}
func (*DateTimeProperty) propertyNode()     {}
func (*StringProperty) propertyNode()       {}
func (*DoubleProperty) propertyNode()       {}
func (*IntegerProperty) propertyNode()      {}
func (*LongProperty) propertyNode()         {}

// DecoratorLiteral is one decorator argument: a string, number or boolean
// value, or a type reference (the only literal kind the resolver visits).
type DecoratorLiteral interface {
	decoratorLiteralNode()
}

type DecoratorString struct {
	Value string `json:"value"`
}

type DecoratorNumber struct {
	Value float64 `json:"value"`
}

type DecoratorBoolean struct {
	Value bool `json:"value"`
}

type DecoratorTypeReference struct {
	Type    *TypeIdentifier `json:"type"`
	IsArray bool            `json:"isArray,omitempty"`
}

func (*DecoratorString) decoratorLiteralNode()        {}
func (*DecoratorNumber) decoratorLiteralNode()        {}
func (*DecoratorBoolean) decoratorLiteralNode()       {}
func (*DecoratorTypeReference) decoratorLiteralNode() {}

// Decorator is a named annotation with optional literal arguments.
type Decorator struct {
	Name      string             `json:"name"`
	Arguments []DecoratorLiteral `json:"arguments,omitempty"`
}

// Model is one namespaced compilation unit: ordered imports followed by
// ordered declarations.
type Model struct {
	Namespace    string        `json:"namespace"`
	SourceURI    string        `json:"sourceUri,omitempty"`
	Imports      []Import      `json:"imports,omitempty"`
	Declarations []Declaration `json:"declarations,omitempty"`
}

// Declaration returns the local declaration with the given name, or nil.
func (m *Model) Declaration(name string) Declaration {
	for _, d := range m.Declarations {
		if d.GetName() == name {
			return d
		}
	}
	return nil
}

// DeclarationNames returns the names of all local declarations in
// declaration order.
func (m *Model) DeclarationNames() []string {
	names := make([]string, 0, len(m.Declarations))
	for _, d := range m.Declarations {
		names = append(names, d.GetName())
	}
	return names
}

// Models is an ordered collection of models, the unit of bulk
// import/export.
type Models struct {
	Models []*Model `json:"models"`
}
