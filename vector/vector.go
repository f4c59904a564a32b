package vector

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrSyntax is returned when text cannot be parsed as a Vector3d.
var ErrSyntax = errors.New("vector: invalid syntax")

// Vector3d is a three-component vector (x, y, z).
type Vector3d [3]float64

// Zero is the zero vector.
var Zero Vector3d

// New returns the vector (x, y, z).
func New(x, y, z float64) Vector3d {
	return Vector3d{x, y, z}
}

// X returns the first component.
func (v Vector3d) X() float64 { return v[0] }

// Y returns the second component.
func (v Vector3d) Y() float64 { return v[1] }

// Z returns the third component.
func (v Vector3d) Z() float64 { return v[2] }

// Dot returns the scalar product of left and right.
func Dot(left, right Vector3d) float64 {
	return left[0]*right[0] + left[1]*right[1] + left[2]*right[2]
}

// Cross returns the right-handed cross product of left and right.
func Cross(left, right Vector3d) Vector3d {
	return Vector3d{
		left[1]*right[2] - left[2]*right[1],
		left[2]*right[0] - left[0]*right[2],
		left[0]*right[1] - left[1]*right[0],
	}
}

// Neg returns the elementwise negation of v.
func (v Vector3d) Neg() Vector3d {
	return Vector3d{-v[0], -v[1], -v[2]}
}

// Equal reports whether all three components compare equal.
// Comparison is exact: no tolerance is applied.
func (v Vector3d) Equal(other Vector3d) bool {
	return v[0] == other[0] && v[1] == other[1] && v[2] == other[2]
}

// NotEqual is the negation of Equal.
func (v Vector3d) NotEqual(other Vector3d) bool {
	return !v.Equal(other)
}

// String renders v as "{x y z}".
func (v Vector3d) String() string {
	return string(v.appendText(make([]byte, 0, 32)))
}

func (v Vector3d) appendText(dst []byte) []byte {
	dst = append(dst, '{')
	for i, c := range v {
		if i > 0 {
			dst = append(dst, ' ')
		}
		dst = strconv.AppendFloat(dst, c, 'g', -1, 64)
	}
	return append(dst, '}')
}

// Parse parses the "{x y z}" form produced by String.
// Surrounding whitespace is ignored.
func Parse(s string) (Vector3d, error) {
	body := strings.TrimSpace(s)
	if len(body) < 2 || body[0] != '{' || body[len(body)-1] != '}' {
		return Zero, fmt.Errorf("%w: %q: missing braces", ErrSyntax, s)
	}

	fields := strings.Fields(body[1 : len(body)-1])
	if len(fields) != 3 {
		return Zero, fmt.Errorf("%w: %q: expected 3 components, got %d", ErrSyntax, s, len(fields))
	}

	var v Vector3d
	for i, f := range fields {
		c, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Zero, fmt.Errorf("%w: %q: component %d: %w", ErrSyntax, s, i, err)
		}
		v[i] = c
	}
	return v, nil
}

// MarshalText implements encoding.TextMarshaler.
func (v Vector3d) MarshalText() ([]byte, error) {
	return v.appendText(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Vector3d) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
