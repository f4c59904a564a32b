// Package vec3 exposes Vector3d values to foreign callers through opaque
// handles.
//
// The value type and its math live in package vector; string helpers live in
// package strutil. This package adds the handle boundary: a Registry that
// hands out Handles, resolves them back to vectors and releases them exactly
// once.
//
// # Quick Start
//
//	reg := vec3.NewRegistry()
//	a, _ := reg.Create(1, 0, 0)
//	b, _ := reg.Create(1, 1, 0)
//	d, _ := reg.Dot(a, b) // 1
//	_ = reg.Destroy(a)
//	_ = reg.Destroy(b)
//
// # Ownership
//
// Create transfers ownership of the new vector to the caller, who must call
// Destroy exactly once. Dot and Get borrow their arguments.
//
// # Invalid Handles
//
// Handles carry a generation. Releasing a handle twice, using it after
// release or passing the null handle yields an *ErrInvalidHandle that wraps
// ErrNullHandle, ErrStaleHandle or ErrUnknownHandle. No operation ever
// touches memory through an invalid handle.
//
// # Observability
//
//	reg := vec3.NewRegistry(
//	    vec3.WithLogger(vec3.NewJSONLogger(slog.LevelDebug)),
//	    vec3.WithMetricsCollector(&vec3.BasicMetricsCollector{}),
//	)
package vec3
