/*
* Copyright (c) 2026-present Concerto project contributors
 */
package validator

import (
	"regexp"
	"strings"

	"golang.org/x/exp/slices"
)

// identifierRegexp is the naming grammar for declarations, properties, enum
// values and decorators: first character a Unicode letter, letter number,
// '$', '_' or a \uXXXX escape; subsequent characters additionally marks,
// digits, connector punctuation and zero-width (non-)joiners.
var identifierRegexp = regexp.MustCompile(
	`^(?:[\p{L}\p{Nl}$_]|\\u[0-9A-Fa-f]{4})` +
		`(?:[\p{L}\p{Nl}$_\p{Mn}\p{Mc}\p{Nd}\p{Pc}\x{200C}\x{200D}]|\\u[0-9A-Fa-f]{4})*$`)

// reservedWords may never be used as identifiers.
var reservedWords = []string{"null", "true", "false"}

// ValidIdentifier reports whether s satisfies the naming grammar and is not
// a reserved word.
func ValidIdentifier(s string) bool {
	if slices.Contains(reservedWords, s) {
		return false
	}
	return identifierRegexp.MatchString(s)
}

// ValidNamespace reports whether ns is a non-empty dotted sequence of valid
// identifiers.
func ValidNamespace(ns string) bool {
	if ns == "" {
		return false
	}
	for _, seg := range strings.Split(ns, ".") {
		if !ValidIdentifier(seg) {
			return false
		}
	}
	return true
}
