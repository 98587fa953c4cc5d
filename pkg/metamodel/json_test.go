/*
* Copyright (c) 2026-present Concerto project contributors
 */
package metamodel

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func codecModel() *Model {
	def := "unknown"
	rating := 4.5
	upper := 5.0
	visits := int64(0)
	active := true
	gradeLo, gradeHi := int32(1), int32(10)
	return &Model{
		Namespace: "org.acme.hr",
		SourceURI: "hr.cto",
		Imports: []Import{
			&ImportAll{Namespace: "org.acme.base"},
			&ImportType{Namespace: "org.acme.addr", Name: "Address", URI: "https://models.acme.org/addr.cto"},
		},
		Declarations: []Declaration{
			&ConceptDeclaration{
				Kind:       KindParticipant,
				Name:       "Staff",
				IsAbstract: true,
				Identified: &Identified{Field: "email"},
				SuperType:  &TypeIdentifier{Name: "Person"},
				Decorators: []*Decorator{{
					Name: "category",
					Arguments: []DecoratorLiteral{
						&DecoratorString{Value: "hr"},
						&DecoratorNumber{Value: 1},
						&DecoratorBoolean{Value: true},
						&DecoratorTypeReference{Type: &TypeIdentifier{Name: "Badge"}, IsArray: true},
					},
				}},
				Properties: []Property{
					&StringProperty{
						PropertyBase: PropertyBase{Name: "email"},
						DefaultValue: &def,
						Validator:    &StringRegexValidator{Pattern: `.+@.+`},
					},
					&DoubleProperty{
						PropertyBase: PropertyBase{Name: "rating"},
						DefaultValue: &rating,
						Validator:    &DoubleDomainValidator{Upper: &upper},
					},
					&IntegerProperty{
						PropertyBase: PropertyBase{Name: "grade", IsOptional: true},
						Validator:    &IntegerDomainValidator{Lower: &gradeLo, Upper: &gradeHi},
					},
					&LongProperty{PropertyBase: PropertyBase{Name: "visits"}, DefaultValue: &visits},
					&BooleanProperty{PropertyBase: PropertyBase{Name: "active"}, DefaultValue: &active},
					&DateTimeProperty{PropertyBase: PropertyBase{Name: "joined"}},
					&ObjectProperty{
						PropertyBase: PropertyBase{Name: "home"},
						Type:         &TypeIdentifier{Name: "Address"},
					},
					&RelationshipProperty{
						PropertyBase: PropertyBase{Name: "employer", IsOptional: true},
						Type:         &TypeIdentifier{Name: "Company", Namespace: "org.acme.base"},
					},
				},
			},
			&EnumDeclaration{
				Name: "Level",
				Properties: []*EnumProperty{
					{Name: "JUNIOR"},
					{Name: "SENIOR", Decorators: []*Decorator{{Name: "weight", Arguments: []DecoratorLiteral{&DecoratorNumber{Value: 2}}}}},
				},
			},
		},
	}
}

func TestCodecRoundTrip(t *testing.T) {
	require := require.New(t)

	model := codecModel()
	data, err := json.Marshal(model)
	require.NoError(err)
	require.Contains(string(data), `"kind":"Model"`)
	require.Contains(string(data), `"kind":"ParticipantDeclaration"`)
	require.Contains(string(data), `"kind":"RelationshipProperty"`)
	require.Contains(string(data), `"kind":"DecoratorTypeReference"`)

	out := &Model{}
	require.NoError(json.Unmarshal(data, out))
	equal, err := model.Equal(out)
	require.NoError(err)
	require.True(equal)

	staff := out.Declarations[0].(*ConceptDeclaration)
	require.Equal(KindParticipant, staff.Kind)
	require.IsType(&RelationshipProperty{}, staff.Properties[7])
}

func TestDecodeUnknownKinds(t *testing.T) {
	cases := []struct {
		name   string
		source string
	}{
		{"declaration", `{"namespace":"a","declarations":[{"kind":"TableDeclaration","name":"T"}]}`},
		{"import", `{"namespace":"a","imports":[{"kind":"ImportSome","namespace":"b"}]}`},
		{"property", `{"namespace":"a","declarations":[{"kind":"ConceptDeclaration","name":"C","properties":[{"kind":"BlobProperty","name":"p"}]}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := json.Unmarshal([]byte(tc.source), &Model{})
			require.Error(t, err)
			require.ErrorIs(t, err, ErrUnknownKind)
		})
	}
}

func TestDecodeUnknownDecoratorLiteral(t *testing.T) {
	source := `{"name":"d","arguments":[{"kind":"DecoratorDate","value":"x"}]}`
	err := json.Unmarshal([]byte(source), &Decorator{})
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestClone(t *testing.T) {
	require := require.New(t)

	model := codecModel()
	clone, err := model.Clone()
	require.NoError(err)
	require.NotSame(model, clone)

	// No shared nodes: annotating the clone leaves the original alone.
	staff := clone.Declarations[0].(*ConceptDeclaration)
	staff.SuperType.Namespace = "org.acme.base"
	require.False(model.Declarations[0].(*ConceptDeclaration).SuperType.IsResolved())

	equal, err := model.Equal(clone)
	require.NoError(err)
	require.False(equal)
}

func TestModelsClone(t *testing.T) {
	require := require.New(t)

	models := &Models{Models: []*Model{codecModel()}}
	clone, err := models.Clone()
	require.NoError(err)
	require.Len(clone.Models, 1)
	require.NotSame(models.Models[0], clone.Models[0])

	data, err := json.Marshal(models)
	require.NoError(err)
	require.Contains(string(data), `"kind":"Models"`)
}
