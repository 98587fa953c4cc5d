/*
* Copyright (c) 2026-present Concerto project contributors
 */
package parser

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

var ErrDirContainsNoModelFiles = errors.New("directory contains no model files")

func errorAt(err error, pos *lexer.Position) error {
	return fmt.Errorf("%s: %w", pos.String(), err)
}

func ErrImportRequiresQualifiedName(imp string, pos *lexer.Position) error {
	return errorAt(fmt.Errorf("%s: import requires a namespace-qualified name", imp), pos)
}

func ErrRelationshipToPrimitive(name, typ string, pos *lexer.Position) error {
	return errorAt(fmt.Errorf("relationship %s cannot target primitive type %s", name, typ), pos)
}

func ErrUnexpectedModifier(name, typ, modifier string, pos *lexer.Position) error {
	return errorAt(fmt.Errorf("property %s of type %s does not accept %s", name, typ, modifier), pos)
}

func ErrBadDefaultValue(name string, pos *lexer.Position, err error) error {
	return errorAt(fmt.Errorf("bad default value for property %s: %w", name, err), pos)
}

func ErrBadRangeBound(name string, pos *lexer.Position, err error) error {
	return errorAt(fmt.Errorf("bad range bound for property %s: %w", name, err), pos)
}
