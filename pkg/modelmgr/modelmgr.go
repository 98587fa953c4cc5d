/*
* Copyright (c) 2026-present Concerto project contributors
 */

// Package modelmgr coordinates validation, deep-copy isolation, name-table
// construction and tree resolution over one model or a whole registry.
// Every operation either completes or fails synchronously; a failure leaves
// the registry and the caller's trees untouched.
package modelmgr

import (
	"github.com/tech-bash/concerto/pkg/logger"
	"github.com/tech-bash/concerto/pkg/metamodel"
	"github.com/tech-bash/concerto/pkg/printer"
	"github.com/tech-bash/concerto/pkg/registry"
	"github.com/tech-bash/concerto/pkg/resolver"
	"github.com/tech-bash/concerto/pkg/validator"
)

// ResolveModel returns a copy of model with every type reference qualified
// against reg. With validate set the working copy is the validator's
// canonicalized output, otherwise a plain clone. The input model is never
// mutated.
func ResolveModel(reg resolver.Registry, model *metamodel.Model, validate bool) (*metamodel.Model, error) {
	var working *metamodel.Model
	var err error
	if validate {
		working, err = validator.Validate(model)
	} else {
		working, err = model.Clone()
	}
	if err != nil {
		return nil, err
	}
	table, err := resolver.BuildNameTable(reg, working)
	if err != nil {
		return nil, err
	}
	if err := resolver.ResolveTypeNames(working, table); err != nil {
		return nil, err
	}
	if logger.IsVerbose() {
		logger.Verbose("resolved model", working.Namespace)
	}
	return working, nil
}

// ExportModel returns a copy of the unresolved tree registered under
// namespace. Validation is a gate, not a transform: the returned tree is
// semantically the stored one.
func ExportModel(reg *registry.Registry, namespace string, validate bool) (*metamodel.Model, error) {
	model, ok := reg.Model(namespace)
	if !ok {
		return nil, ErrUnknownNamespace(namespace)
	}
	if validate {
		if _, err := validator.Validate(model); err != nil {
			return nil, err
		}
	}
	return model.Clone()
}

// ExportAll exports every registered model in registry enumeration order,
// resolved or raw per resolveNames. Resolution skips re-validation:
// conformance of registered models was established at load time.
func ExportAll(reg *registry.Registry, resolveNames, validate bool) (*metamodel.Models, error) {
	out := &metamodel.Models{}
	for _, ns := range reg.Namespaces() {
		model, _ := reg.Model(ns)
		var exported *metamodel.Model
		var err error
		if resolveNames {
			exported, err = ResolveModel(reg, model, false)
		} else if validate {
			exported, err = ExportModel(reg, ns, true)
		} else {
			exported, err = model.Clone()
		}
		if err != nil {
			return nil, err
		}
		out.Models = append(out.Models, exported)
	}
	return out, nil
}

// ImportAll loads a models collection into a fresh registry. Each model is
// rendered back to source text and re-parsed on registration without
// per-model re-validation (the printer's output is trusted); one final
// whole-registry consistency check closes the import.
func ImportAll(models *metamodel.Models, validate bool) (*registry.Registry, error) {
	working := models
	if validate {
		var err error
		if working, err = validator.ValidateModels(models); err != nil {
			return nil, err
		}
	}
	reg := registry.New()
	for _, m := range working.Models {
		text := printer.Print(m)
		if _, err := reg.AddModel(text, m.Namespace, false); err != nil {
			return nil, err
		}
	}
	if err := reg.ValidateAll(); err != nil {
		return nil, err
	}
	if logger.IsVerbose() {
		logger.Verbose("imported", len(working.Models), "models")
	}
	return reg, nil
}
