// Package strutil provides small string helpers: generic value formatting
// and case-insensitive comparison.
package strutil

import (
	"fmt"

	"golang.org/x/text/cases"
)

// ToString returns the textual form of value as produced by fmt.Sprint.
// Values implementing fmt.Stringer are rendered through String.
func ToString[T any](value T) string {
	return fmt.Sprint(value)
}

// EqualIgnoreCase reports whether a and b are equal under ASCII case folding.
// Strings of different byte length are never equal. Bytes outside the ASCII
// range are compared exactly.
func EqualIgnoreCase(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca == cb {
			continue
		}
		if lower(ca) != lower(cb) {
			return false
		}
	}
	return true
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// EqualFold reports whether a and b are equal under full Unicode case
// folding. Unlike EqualIgnoreCase, strings of different byte length may
// compare equal ("Straße" and "STRASSE").
func EqualFold(a, b string) bool {
	// A Caser may be stateful, so each call gets its own.
	folder := cases.Fold()
	fa := folder.String(a)
	return fa == folder.String(b)
}
