// Package conv provides checked integer conversions.
//
// Use it where a value crosses from Go's platform-sized int into a
// fixed-width field (slot indices, handle halves). Conversions that are safe
// by construction should stay plain casts.
package conv
