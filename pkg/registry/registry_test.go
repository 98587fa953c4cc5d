/*
* Copyright (c) 2026-present Concerto project contributors
 */
package registry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tech-bash/concerto/pkg/metamodel"
	"github.com/tech-bash/concerto/pkg/resolver"
)

const baseSource = `namespace org.acme.base

concept Person {
  o String name
}

concept Company {
  o String name
}
`

const hrSource = `namespace org.acme.hr

import org.acme.base.*

participant Staff extends Person {
  --> Company employer
}
`

func TestAddModel(t *testing.T) {
	require := require.New(t)

	reg := New()
	model, err := reg.AddModel(baseSource, "org.acme.base", true)
	require.NoError(err)
	require.Equal("org.acme.base", model.Namespace)
	require.Equal(1, reg.Len())

	stored, ok := reg.Model("org.acme.base")
	require.True(ok)
	require.Equal([]string{"Person", "Company"}, stored.DeclarationNames())
}

func TestAddModel_NamespaceHintMismatch(t *testing.T) {
	reg := New()
	_, err := reg.AddModel(baseSource, "org.acme.other", false)
	require.Error(t, err)
	require.Equal(t, 0, reg.Len())
}

func TestAddModel_ParseError(t *testing.T) {
	reg := New()
	_, err := reg.AddModel("namespace org.acme concept {", "", false)
	require.Error(t, err)
}

func TestAddModelFile_ErrorPositionNamesFile(t *testing.T) {
	reg := New()
	_, err := reg.AddModelFile("broken.cto", "namespace org.acme concept {", "", false)
	require.Error(t, err)
	require.Contains(t, err.Error(), "broken.cto")
}

func TestAddModel_ValidateGate(t *testing.T) {
	// The reserved word parses but fails structural validation.
	reg := New()
	_, err := reg.AddModel("namespace org.acme\nconcept null {}", "", true)
	require.Error(t, err)
	require.Equal(t, 0, reg.Len())

	_, err = reg.AddModel("namespace org.acme\nconcept null {}", "", false)
	require.NoError(t, err)
}

func TestNamespacesOrder(t *testing.T) {
	require := require.New(t)

	reg := New()
	_, err := reg.AddModel(hrSource, "", false)
	require.NoError(err)
	_, err = reg.AddModel(baseSource, "", false)
	require.NoError(err)

	require.Equal([]string{"org.acme.hr", "org.acme.base"}, reg.Namespaces())
}

func TestLookupSurface(t *testing.T) {
	require := require.New(t)

	reg := New()
	_, err := reg.AddModel(baseSource, "", false)
	require.NoError(err)

	require.True(reg.HasLocalDeclaration("org.acme.base", "Person"))
	require.False(reg.HasLocalDeclaration("org.acme.base", "Robot"))
	require.False(reg.HasLocalDeclaration("org.unknown", "Person"))

	require.Equal([]string{"Person", "Company"}, reg.LocalDeclarationNames("org.acme.base"))
	require.Nil(reg.LocalDeclarationNames("org.unknown"))
}

func TestValidateAll(t *testing.T) {
	require := require.New(t)

	reg := New()
	_, err := reg.AddModel(baseSource, "", false)
	require.NoError(err)
	_, err = reg.AddModel(hrSource, "", false)
	require.NoError(err)

	require.NoError(reg.ValidateAll())

	// Resolution ran over clones: the stored trees stay unresolved.
	stored, _ := reg.Model("org.acme.hr")
	staff := stored.Declarations[0].(*metamodel.ConceptDeclaration)
	require.False(staff.SuperType.IsResolved())
}

func TestValidateAll_DuplicateNamespace(t *testing.T) {
	require := require.New(t)

	reg := New()
	_, err := reg.AddModel(baseSource, "", false)
	require.NoError(err)
	_, err = reg.AddModel(baseSource, "", false)
	require.NoError(err)
	require.Equal(2, reg.Len())

	require.Error(reg.ValidateAll())
}

func TestValidateAll_DanglingReference(t *testing.T) {
	require := require.New(t)

	reg := New()
	_, err := reg.AddModel(hrSource, "", false)
	require.NoError(err)

	err = reg.ValidateAll()
	require.Error(err)
	var unresolved *resolver.UnresolvedNameError
	require.ErrorAs(err, &unresolved)
}

func TestValidateAll_MissingImportTarget(t *testing.T) {
	require := require.New(t)

	reg := New()
	_, err := reg.AddModel(baseSource, "", false)
	require.NoError(err)
	_, err = reg.AddModel("namespace org.acme.hr\nimport org.acme.base.Robot\nconcept A {}", "", false)
	require.NoError(err)

	err = reg.ValidateAll()
	require.Error(err)
	var unresolved *resolver.UnresolvedImportError
	require.ErrorAs(err, &unresolved)
	require.Equal("org.acme.base", unresolved.Namespace)
	require.Equal("Robot", unresolved.Name)
}
