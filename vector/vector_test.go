package vector_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vec3/testutil"
	"github.com/hupe1980/vec3/vector"
)

func TestDot(t *testing.T) {
	tests := []struct {
		name        string
		left, right vector.Vector3d
		expected    float64
	}{
		{"Zero", vector.New(0, 0, 0), vector.New(0, 0, 0), 0},
		{"UnitX", vector.New(1, 0, 0), vector.New(1, 0, 0), 1},
		{"NegativeY", vector.New(0, -1, 0), vector.New(0, -1, 0), 1},
		{"OpposedZ", vector.New(0, 0, 1), vector.New(0, 0, -1), -1},
		{"Orthogonal", vector.New(2, 0, -2), vector.New(2, 0, 2), 0},
		{"Simple", vector.New(1, 2, 3), vector.New(4, 5, 6), 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, vector.Dot(tt.left, tt.right))
			assert.Equal(t, tt.expected, vector.Dot(tt.right, tt.left))
		})
	}
}

func TestCross(t *testing.T) {
	tests := []struct {
		name        string
		left, right vector.Vector3d
		expected    vector.Vector3d
	}{
		{"XY", vector.New(1, 0, 0), vector.New(0, 1, 0), vector.New(0, 0, 1)},
		{"YZ", vector.New(0, 1, 0), vector.New(0, 0, 1), vector.New(1, 0, 0)},
		{"ZX", vector.New(0, 0, 1), vector.New(1, 0, 0), vector.New(0, 1, 0)},
		{"YX", vector.New(0, 1, 0), vector.New(1, 0, 0), vector.New(0, 0, -1)},
		{"General", vector.New(1, 2, 3), vector.New(4, 5, 6), vector.New(-3, 6, -3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := vector.Cross(tt.left, tt.right)
			assert.True(t, got.Equal(tt.expected), "got %v want %v", got, tt.expected)
		})
	}
}

func TestProperties(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for _, v := range rng.Vectors(256, 100) {
		assert.Equal(t, 0.0, vector.Dot(v, vector.Zero), "dot with zero: %v", v)
		assert.True(t, vector.Cross(v, v).Equal(vector.Zero), "cross with self: %v", v)
	}

	pairs := rng.Vectors(256, 100)
	for i := 0; i+1 < len(pairs); i += 2 {
		a, b := pairs[i], pairs[i+1]
		assert.Equal(t, vector.Dot(a, b), vector.Dot(b, a))
		assert.True(t, vector.Cross(a, b).Equal(vector.Cross(b, a).Neg()), "a=%v b=%v", a, b)
	}
}

func TestEqual(t *testing.T) {
	a := vector.New(1, 2, 3)

	assert.True(t, a.Equal(vector.New(1, 2, 3)))
	assert.False(t, a.NotEqual(vector.New(1, 2, 3)))
	assert.True(t, a.NotEqual(vector.New(1, 2, 3.0000001)))

	t.Run("NoTolerance", func(t *testing.T) {
		x, y := 0.1, 0.2
		b := vector.New(x+y, 0, 0)
		assert.False(t, b.Equal(vector.New(0.3, 0, 0)))
		assert.True(t, b.NotEqual(vector.New(0.3, 0, 0)))
	})

	t.Run("SignedZero", func(t *testing.T) {
		assert.True(t, vector.New(0, 0, 0).Equal(vector.New(math.Copysign(0, -1), 0, 0)))
	})

	t.Run("NaN", func(t *testing.T) {
		n := vector.New(math.NaN(), 0, 0)
		assert.False(t, n.Equal(n))
		assert.True(t, n.NotEqual(n))
	})
}

func TestAccessors(t *testing.T) {
	v := vector.New(1, 2, 3)

	assert.Equal(t, 1.0, v.X())
	assert.Equal(t, 2.0, v.Y())
	assert.Equal(t, 3.0, v.Z())
	assert.Equal(t, 3.0, v[2])
	assert.Equal(t, vector.New(-1, -2, -3), v.Neg())
}

func TestString(t *testing.T) {
	tests := []struct {
		v        vector.Vector3d
		expected string
	}{
		{vector.New(0, 0, 1), "{0 0 1}"},
		{vector.New(1.5, -2, 0.25), "{1.5 -2 0.25}"},
		{vector.New(1e21, 0, 0), "{1e+21 0 0}"},
		{vector.New(math.Inf(1), math.Inf(-1), math.NaN()), "{+Inf -Inf NaN}"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.v.String())
		})
	}
}

func TestParse(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		rng := testutil.NewRNG(42)
		for _, v := range rng.Vectors(512, 1e6) {
			got, err := vector.Parse(v.String())
			require.NoError(t, err)
			assert.True(t, got.Equal(v), "got %v want %v", got, v)
		}
	})

	t.Run("Whitespace", func(t *testing.T) {
		got, err := vector.Parse("  {1  2\t3}\n")
		require.NoError(t, err)
		assert.Equal(t, vector.New(1, 2, 3), got)
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, s := range []string{"", "{}", "1 2 3", "{1 2}", "{1 2 3 4}", "{1 x 3}", "{1 2 3"} {
			_, err := vector.Parse(s)
			assert.ErrorIs(t, err, vector.ErrSyntax, "input %q", s)
		}
	})
}

func TestTextMarshaling(t *testing.T) {
	type payload struct {
		V vector.Vector3d `json:"v"`
	}

	b, err := json.Marshal(payload{V: vector.New(0, 0, 1)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":"{0 0 1}"}`, string(b))

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"v":"{1 -1 0.5}"}`), &p))
	assert.Equal(t, vector.New(1, -1, 0.5), p.V)

	err = json.Unmarshal([]byte(`{"v":"oops"}`), &p)
	assert.ErrorIs(t, err, vector.ErrSyntax)
}
