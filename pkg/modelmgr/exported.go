/*
* Copyright (c) 2026-present Concerto project contributors
 */
package modelmgr

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/tech-bash/concerto/pkg/metamodel"
	"github.com/tech-bash/concerto/pkg/parser"
	"github.com/tech-bash/concerto/pkg/printer"
)

// ManifestFile lists the models of an exported directory in order.
const ManifestFile = "models.yaml"

type manifest struct {
	Models []manifestEntry `yaml:"models"`
}

type manifestEntry struct {
	Namespace string `yaml:"namespace"`
	File      string `yaml:"file"`
}

// WriteModelsDir renders every model of the collection as a .cto file under
// dir and writes a models.yaml manifest preserving collection order.
func WriteModelsDir(models *metamodel.Models, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	var man manifest
	for _, m := range models.Models {
		file := strings.ReplaceAll(m.Namespace, ".", "_") + parser.ModelFileExt
		if err := os.WriteFile(filepath.Join(dir, file), []byte(printer.Print(m)), 0o644); err != nil {
			return err
		}
		man.Models = append(man.Models, manifestEntry{Namespace: m.Namespace, File: file})
	}
	data, err := yaml.Marshal(&man)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, ManifestFile), data, 0o644)
}

// LoadModelsDir reads a directory written by WriteModelsDir back into a
// models collection, in manifest order.
func LoadModelsDir(dir string) (*metamodel.Models, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return nil, err
	}
	var man manifest
	if err := yaml.Unmarshal(data, &man); err != nil {
		return nil, err
	}
	out := &metamodel.Models{}
	for _, entry := range man.Models {
		content, err := os.ReadFile(filepath.Join(dir, entry.File))
		if err != nil {
			return nil, err
		}
		model, err := parser.ParseModel(entry.File, string(content))
		if err != nil {
			return nil, err
		}
		if model.Namespace != entry.Namespace {
			return nil, ErrManifestNamespaceMismatch(entry.File, entry.Namespace, model.Namespace)
		}
		out.Models = append(out.Models, model)
	}
	return out, nil
}
