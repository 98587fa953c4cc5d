/*
* Copyright (c) 2026-present Concerto project contributors
 */
package resolver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tech-bash/concerto/pkg/metamodel"
)

// fakeRegistry maps namespace to locally declared names, in order.
type fakeRegistry map[string][]string

func (f fakeRegistry) HasLocalDeclaration(namespace, name string) bool {
	for _, n := range f[namespace] {
		if n == name {
			return true
		}
	}
	return false
}

func (f fakeRegistry) LocalDeclarationNames(namespace string) []string {
	return f[namespace]
}

func TestBuildNameTable_Builtins(t *testing.T) {
	require := require.New(t)

	model := &metamodel.Model{Namespace: "org.acme"}
	table, err := BuildNameTable(fakeRegistry{}, model)
	require.NoError(err)

	for _, name := range []string{"Concept", "Asset", "Participant", "Transaction", "Event"} {
		ns, ok := table.Lookup(name)
		require.True(ok, name)
		require.Equal(metamodel.BuiltinNamespace, ns)
	}

	// No stray entries, and in particular no "Transaction " with
	// trailing whitespace.
	_, ok := table.Lookup("Transaction ")
	require.False(ok)
	require.Equal([]string{"Concept", "Asset", "Participant", "Transaction", "Event"}, table.Names())
}

func TestBuildNameTable_LaterImportWins(t *testing.T) {
	require := require.New(t)

	reg := fakeRegistry{
		"ns1": {"Foo", "Bar"},
		"ns2": {"Foo"},
	}
	model := &metamodel.Model{
		Namespace: "org.acme",
		Imports: []metamodel.Import{
			&metamodel.ImportAll{Namespace: "ns1"},
			&metamodel.ImportType{Namespace: "ns2", Name: "Foo"},
		},
	}
	table, err := BuildNameTable(reg, model)
	require.NoError(err)

	ns, ok := table.Lookup("Foo")
	require.True(ok)
	require.Equal("ns2", ns)

	ns, ok = table.Lookup("Bar")
	require.True(ok)
	require.Equal("ns1", ns)

	// Reversed import order flips the winner: a later ImportAll silently
	// overrides an earlier ImportType.
	model.Imports = []metamodel.Import{
		&metamodel.ImportType{Namespace: "ns2", Name: "Foo"},
		&metamodel.ImportAll{Namespace: "ns1"},
	}
	table, err = BuildNameTable(reg, model)
	require.NoError(err)
	ns, _ = table.Lookup("Foo")
	require.Equal("ns1", ns)
}

func TestBuildNameTable_LocalsShadowImports(t *testing.T) {
	require := require.New(t)

	reg := fakeRegistry{"ns1": {"Foo"}}
	model := &metamodel.Model{
		Namespace: "org.acme",
		Imports: []metamodel.Import{
			&metamodel.ImportType{Namespace: "ns1", Name: "Foo"},
		},
		Declarations: []metamodel.Declaration{
			&metamodel.ConceptDeclaration{Kind: metamodel.KindConcept, Name: "Foo"},
		},
	}
	table, err := BuildNameTable(reg, model)
	require.NoError(err)

	ns, ok := table.Lookup("Foo")
	require.True(ok)
	require.Equal("org.acme", ns)
}

func TestBuildNameTable_LocalsShadowBuiltins(t *testing.T) {
	require := require.New(t)

	model := &metamodel.Model{
		Namespace: "org.acme",
		Declarations: []metamodel.Declaration{
			&metamodel.ConceptDeclaration{Kind: metamodel.KindAsset, Name: "Asset"},
		},
	}
	table, err := BuildNameTable(fakeRegistry{}, model)
	require.NoError(err)

	ns, _ := table.Lookup("Asset")
	require.Equal("org.acme", ns)
	require.Equal(5, table.Len())
}

func TestBuildNameTable_MissingImportTarget(t *testing.T) {
	require := require.New(t)

	reg := fakeRegistry{"ns1": {"Foo"}}
	model := &metamodel.Model{
		Namespace: "org.acme",
		Imports: []metamodel.Import{
			&metamodel.ImportType{Namespace: "ns1", Name: "Bar"},
		},
	}
	_, err := BuildNameTable(reg, model)
	require.Error(err)

	var unresolved *UnresolvedImportError
	require.ErrorAs(err, &unresolved)
	require.Equal("Bar", unresolved.Name)
	require.Equal("ns1", unresolved.Namespace)
}

func TestBuildNameTable_ImportAllOfUnknownNamespaceAddsNothing(t *testing.T) {
	require := require.New(t)

	model := &metamodel.Model{
		Namespace: "org.acme",
		Imports: []metamodel.Import{
			&metamodel.ImportAll{Namespace: "ns.unknown"},
		},
	}
	table, err := BuildNameTable(fakeRegistry{}, model)
	require.NoError(err)
	require.Equal(5, table.Len())
}
