/*
* Copyright (c) 2026-present Concerto project contributors
 */
package registry

import "fmt"

func ErrDuplicateNamespace(namespace string) error {
	return fmt.Errorf("namespace %s is declared by more than one model", namespace)
}

func ErrNamespaceMismatch(hint, actual string) error {
	return fmt.Errorf("expected namespace %s, model declares %s", hint, actual)
}
