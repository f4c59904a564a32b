// Package vector provides Vector3d, a three-component float64 value type.
//
// Vectors are plain arrays: they are copied by value, indexable by position
// and never allocate.
//
// # Usage
//
//	a := vector.New(1, 0, 0)
//	b := vector.New(0, 1, 0)
//	c := vector.Cross(a, b) // {0 0 1}
//	d := vector.Dot(a, b)   // 0
//
// Equality is exact. No epsilon is applied, so NaN never equals itself.
package vector
