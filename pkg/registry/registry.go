/*
* Copyright (c) 2026-present Concerto project contributors
 */

// Package registry stores loaded models keyed by namespace. It is the
// lookup surface the resolver builds name tables against. Reads are safe to
// share; registration and ValidateAll must be serialized by the caller.
package registry

import (
	"golang.org/x/exp/slices"

	"github.com/tech-bash/concerto/pkg/logger"
	"github.com/tech-bash/concerto/pkg/metamodel"
	"github.com/tech-bash/concerto/pkg/parser"
	"github.com/tech-bash/concerto/pkg/resolver"
	"github.com/tech-bash/concerto/pkg/validator"
)

// Registry holds models in registration order. Duplicate namespaces are
// accepted at registration and rejected by ValidateAll; lookups see the
// first registration.
type Registry struct {
	models []*metamodel.Model
	byNS   map[string]*metamodel.Model
}

func New() *Registry {
	return &Registry{byNS: make(map[string]*metamodel.Model)}
}

// AddModel parses sourceText and registers the resulting model. A non-empty
// namespaceHint must match the parsed namespace. With validate set the tree
// passes structural validation and the canonicalized copy is stored.
func (r *Registry) AddModel(sourceText, namespaceHint string, validate bool) (*metamodel.Model, error) {
	fileName := namespaceHint
	if fileName == "" {
		fileName = "<inline>"
	}
	return r.AddModelFile(fileName, sourceText, namespaceHint, validate)
}

// AddModelFile is AddModel with an explicit file name, so parse error
// positions name the originating file.
func (r *Registry) AddModelFile(fileName, sourceText, namespaceHint string, validate bool) (*metamodel.Model, error) {
	model, err := parser.ParseModel(fileName, sourceText)
	if err != nil {
		return nil, err
	}
	if validate {
		if model, err = validator.Validate(model); err != nil {
			return nil, err
		}
	}
	if namespaceHint != "" && model.Namespace != namespaceHint {
		return nil, ErrNamespaceMismatch(namespaceHint, model.Namespace)
	}
	r.register(model)
	return model, nil
}

func (r *Registry) register(model *metamodel.Model) {
	r.models = append(r.models, model)
	if _, ok := r.byNS[model.Namespace]; !ok {
		r.byNS[model.Namespace] = model
	}
	if logger.IsVerbose() {
		logger.Verbose("registered model", model.Namespace)
	}
}

// HasLocalDeclaration implements resolver.Registry.
func (r *Registry) HasLocalDeclaration(namespace, name string) bool {
	m, ok := r.byNS[namespace]
	if !ok {
		return false
	}
	return m.Declaration(name) != nil
}

// LocalDeclarationNames implements resolver.Registry.
func (r *Registry) LocalDeclarationNames(namespace string) []string {
	m, ok := r.byNS[namespace]
	if !ok {
		return nil
	}
	return m.DeclarationNames()
}

// Namespaces returns the distinct registered namespaces in registration
// order.
func (r *Registry) Namespaces() []string {
	out := make([]string, 0, len(r.models))
	for _, m := range r.models {
		if !slices.Contains(out, m.Namespace) {
			out = append(out, m.Namespace)
		}
	}
	return out
}

// Model returns the model registered under namespace.
func (r *Registry) Model(namespace string) (*metamodel.Model, bool) {
	m, ok := r.byNS[namespace]
	return m, ok
}

// Len returns the number of registered models, duplicates included.
func (r *Registry) Len() int { return len(r.models) }

// ValidateAll checks whole-registry consistency: no two models may declare
// the same namespace, and every type reference of every model must resolve.
// Resolution runs over throwaway clones; stored models are not annotated.
func (r *Registry) ValidateAll() error {
	seen := make(map[string]bool, len(r.models))
	for _, m := range r.models {
		if seen[m.Namespace] {
			return ErrDuplicateNamespace(m.Namespace)
		}
		seen[m.Namespace] = true
	}
	for _, m := range r.models {
		working, err := m.Clone()
		if err != nil {
			return err
		}
		table, err := resolver.BuildNameTable(r, working)
		if err != nil {
			return err
		}
		if err := resolver.ResolveTypeNames(working, table); err != nil {
			return err
		}
	}
	return nil
}
