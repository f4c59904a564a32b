// Package testutil provides deterministic helpers for tests.
//
// Use NewRNG with a fixed seed so property tests are reproducible.
package testutil
