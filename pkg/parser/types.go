/*
* Copyright (c) 2026-present Concerto project contributors
 */
package parser

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// ReadFS is the filesystem surface ParseModelsDir needs. embed.FS and
// os.DirFS values satisfy it.
type ReadFS interface {
	fs.ReadDirFS
	fs.ReadFileFS
}

// ModelAST is the grammar root: a namespace header, then imports, then
// declarations.
type ModelAST struct {
	Pos          lexer.Position
	Namespace    []string    `parser:"'namespace' @Ident ('.' @Ident)*"`
	Imports      []ImportAST `parser:"@@*"`
	Declarations []DeclAST   `parser:"@@*"`
}

func (m *ModelAST) NamespaceString() string {
	return strings.Join(m.Namespace, ".")
}

// ImportAST is either a whole-namespace import (trailing `.*`) or a
// single-type import (last path segment is the type name).
type ImportAST struct {
	Pos  lexer.Position
	Path []string `parser:"'import' @Ident ('.' @Ident)*"`
	Star bool     `parser:"@('.' '*')?"`
	URI  *string  `parser:"('from' @String)?"`
}

// DeclAST hoists decorators so the concept/enum alternation starts on a
// distinguishing keyword.
type DeclAST struct {
	Pos        lexer.Position
	Decorators []DecoratorAST  `parser:"@@*"`
	Concept    *ConceptDeclAST `parser:"( @@"`
	Enum       *EnumDeclAST    `parser:"| @@ )"`
}

type ConceptDeclAST struct {
	Pos        lexer.Position
	Abstract   bool           `parser:"@'abstract'?"`
	Kind       string         `parser:"@('concept'|'asset'|'participant'|'transaction'|'event')"`
	Name       string         `parser:"@Ident"`
	Identified *IdentifiedAST `parser:"@@?"`
	Extends    *string        `parser:"('extends' @Ident)?"`
	Properties []PropertyAST  `parser:"'{' @@* '}'"`
}

type IdentifiedAST struct {
	Pos lexer.Position
	By  *string `parser:"'identified' ('by' @Ident)?"`
}

type EnumDeclAST struct {
	Pos    lexer.Position
	Name   string         `parser:"'enum' @Ident"`
	Values []EnumValueAST `parser:"'{' @@* '}'"`
}

type EnumValueAST struct {
	Pos        lexer.Position
	Decorators []DecoratorAST `parser:"@@*"`
	Name       string         `parser:"'o' @Ident"`
}

// PropertyAST covers both field forms: `o Type name …` and `--> Type name …`.
// Modifier order is fixed: default, range, regex, optional.
type PropertyAST struct {
	Pos          lexer.Position
	Decorators   []DecoratorAST `parser:"@@*"`
	Relationship bool           `parser:"(@Arrow | 'o')"`
	Type         string         `parser:"@Ident"`
	Array        bool           `parser:"@Array?"`
	Name         string         `parser:"@Ident"`
	Default      *DefaultAST    `parser:"('default' '=' @@)?"`
	Range        *RangeAST      `parser:"('range' '=' @@)?"`
	Regex        *string        `parser:"('regex' '=' @Regex)?"`
	Optional     bool           `parser:"@'optional'?"`
}

type DefaultAST struct {
	Str   *string  `parser:"@String"`
	Float *float64 `parser:"| @Float"`
	Int   *int64   `parser:"| @Int"`
	Bool  *string  `parser:"| @('true'|'false')"`
}

// RangeAST bounds are kept as raw tokens; lowering converts them to the
// property's numeric type.
type RangeAST struct {
	Lower *string `parser:"'[' (@Float|@Int)?"`
	Upper *string `parser:"',' (@Float|@Int)? ']'"`
}

type DecoratorAST struct {
	Pos  lexer.Position
	Name string            `parser:"'@' @Ident"`
	Args []DecoratorArgAST `parser:"('(' (@@ (',' @@)*)? ')')?"`
}

type DecoratorArgAST struct {
	Str   *string          `parser:"@String"`
	Float *float64         `parser:"| @Float"`
	Int   *int64           `parser:"| @Int"`
	Bool  *string          `parser:"| @('true'|'false')"`
	Ref   *DecoratorRefAST `parser:"| @@"`
}

type DecoratorRefAST struct {
	Name  string `parser:"@Ident"`
	Array bool   `parser:"@Array?"`
}

func (i *ImportAST) String() string {
	s := strings.Join(i.Path, ".")
	if i.Star {
		s += ".*"
	}
	return fmt.Sprintf("import %s", s)
}
