/*
* Copyright (c) 2026-present Concerto project contributors
 */
package modelmgr

import "fmt"

func ErrUnknownNamespace(namespace string) error {
	return fmt.Errorf("no model registered for namespace %s", namespace)
}

func ErrManifestNamespaceMismatch(file, want, got string) error {
	return fmt.Errorf("%s: manifest expects namespace %s, model declares %s", file, want, got)
}
