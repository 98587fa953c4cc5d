/*
* Copyright (c) 2026-present Concerto project contributors
 */
package resolver

import "fmt"

// UnresolvedImportError reports a single-type import whose declaration is
// absent from its claimed namespace.
type UnresolvedImportError struct {
	Namespace string
	Name      string
}

func (e *UnresolvedImportError) Error() string {
	return fmt.Sprintf("namespace %s does not declare %s", e.Namespace, e.Name)
}

// UnresolvedNameError reports a type reference whose short name is neither
// built in, imported nor locally declared.
type UnresolvedNameError struct {
	Name string
}

func (e *UnresolvedNameError) Error() string {
	return fmt.Sprintf("type %s is not declared, imported or built in", e.Name)
}
