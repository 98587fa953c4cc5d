/*
* Copyright (c) 2026-present Concerto project contributors
 */
package resolver

import (
	"github.com/tech-bash/concerto/pkg/metamodel"
)

// Registry answers locality questions about already-loaded namespaces. The
// resolver only reads through it; it never adds models.
type Registry interface {
	// HasLocalDeclaration reports whether the model owning namespace
	// locally declares name. False when the namespace is unknown.
	HasLocalDeclaration(namespace, name string) bool

	// LocalDeclarationNames returns the names locally declared by
	// namespace, in declaration order. Empty when the namespace is
	// unknown.
	LocalDeclarationNames(namespace string) []string
}

// builtinNames are the short names every name table starts from, all owned
// by metamodel.BuiltinNamespace.
var builtinNames = [...]string{"Concept", "Asset", "Participant", "Transaction", "Event"}

// NameTable maps short names to the namespace declaring them for one
// resolution pass. Entries are overwritten in place; the key order of first
// insertion is preserved for deterministic enumeration.
type NameTable struct {
	order []string
	ns    map[string]string
}

func newNameTable() *NameTable {
	return &NameTable{ns: make(map[string]string)}
}

// Set maps name to namespace, overwriting any previous entry.
func (t *NameTable) Set(name, namespace string) {
	if _, ok := t.ns[name]; !ok {
		t.order = append(t.order, name)
	}
	t.ns[name] = namespace
}

// Lookup returns the namespace mapped to name.
func (t *NameTable) Lookup(name string) (string, bool) {
	ns, ok := t.ns[name]
	return ns, ok
}

// Names returns every known short name in first-insertion order.
func (t *NameTable) Names() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Len returns the number of entries.
func (t *NameTable) Len() int { return len(t.ns) }

// BuildNameTable produces the short-name table for resolving model against
// reg. Seeding order is fixed: builtins first, then imports in declaration
// order (later imports overwrite earlier ones on collision), then local
// declarations, which shadow any import unconditionally.
//
// The table is a snapshot; changes to model or reg afterwards are not
// reflected.
func BuildNameTable(reg Registry, model *metamodel.Model) (*NameTable, error) {
	t := newNameTable()
	for _, name := range builtinNames {
		t.Set(name, metamodel.BuiltinNamespace)
	}
	for _, imp := range model.Imports {
		switch v := imp.(type) {
		case *metamodel.ImportType:
			if !reg.HasLocalDeclaration(v.Namespace, v.Name) {
				return nil, &UnresolvedImportError{Namespace: v.Namespace, Name: v.Name}
			}
			t.Set(v.Name, v.Namespace)
		case *metamodel.ImportAll:
			for _, name := range reg.LocalDeclarationNames(v.Namespace) {
				t.Set(name, v.Namespace)
			}
		}
	}
	for _, d := range model.Declarations {
		t.Set(d.GetName(), model.Namespace)
	}
	return t, nil
}
