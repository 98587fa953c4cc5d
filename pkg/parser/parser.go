/*
* Copyright (c) 2026-present Concerto project contributors
 */

// Package parser turns .cto source text into metamodel trees. Syntax
// analysis only: type references come out unresolved.
package parser

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/tech-bash/concerto/pkg/metamodel"
)

var ctoLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*`},
	{Name: "Arrow", Pattern: `-->`},
	{Name: "Array", Pattern: `\[\]`},
	{Name: "Regex", Pattern: `/(?:\\.|[^/\n])*/`},
	{Name: "Float", Pattern: `[-+]?\d+\.\d+`},
	{Name: "Int", Pattern: `[-+]?\d+`},
	{Name: "String", Pattern: `"(\\"|[^"])*"`},
	{Name: "Punct", Pattern: `[{}\[\](),=.@*]`},
	// Same character classes as the validator's naming grammar, so every
	// structurally valid name survives a print-reparse cycle.
	{Name: "Ident", Pattern: `(?:[\p{L}\p{Nl}_$]|\\u[0-9A-Fa-f]{4})` +
		`(?:[\p{L}\p{Nl}\p{Mn}\p{Mc}\p{Nd}\p{Pc}_$\x{200C}\x{200D}]|\\u[0-9A-Fa-f]{4})*`},
	{Name: "Whitespace", Pattern: `[ \r\n\t]+`},
})

var ctoParser = participle.MustBuild[ModelAST](
	participle.Lexer(ctoLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.Unquote("String"),
	participle.UseLookahead(2),
)

// ModelFileExt is the extension ParseModelsDir selects on.
const ModelFileExt = ".cto"

// ParseModel parses the content of a single .cto file and lowers it into a
// metamodel tree.
func ParseModel(fileName, content string) (*metamodel.Model, error) {
	ast, err := ctoParser.ParseString(fileName, content)
	if err != nil {
		return nil, err
	}
	return lowerModel(ast)
}

// ParseModelsDir parses every .cto file under dir of the given filesystem,
// in directory order, into a Models collection.
func ParseModelsDir(fsys ReadFS, dir string) (*metamodel.Models, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	models := &metamodel.Models{}
	for _, entry := range entries {
		if entry.IsDir() || strings.ToLower(filepath.Ext(entry.Name())) != ModelFileExt {
			continue
		}
		fp := filepath.Join(dir, entry.Name())
		content, err := fsys.ReadFile(fp)
		if err != nil {
			return nil, err
		}
		model, err := ParseModel(entry.Name(), string(content))
		if err != nil {
			return nil, err
		}
		models.Models = append(models.Models, model)
	}
	if len(models.Models) == 0 {
		return nil, ErrDirContainsNoModelFiles
	}
	return models, nil
}
