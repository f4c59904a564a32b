package strutil

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/vec3/testutil"
	"github.com/hupe1980/vec3/vector"
)

func TestToString(t *testing.T) {
	assert.Equal(t, "42", ToString(42))
	assert.Equal(t, "-1.5", ToString(-1.5))
	assert.Equal(t, "true", ToString(true))
	assert.Equal(t, "abc", ToString("abc"))
	assert.Equal(t, "[1 2 3]", ToString([]int{1, 2, 3}))
	assert.Equal(t, "boom", ToString(errors.New("boom")))

	t.Run("Stringer", func(t *testing.T) {
		v := vector.Cross(vector.New(1, 0, 0), vector.New(0, 1, 0))
		assert.Equal(t, "{0 0 1}", ToString(v))
	})
}

func TestEqualIgnoreCase(t *testing.T) {
	tests := []struct {
		a, b     string
		expected bool
	}{
		{"ABC", "abc", true},
		{"abc", "abcd", false},
		{"", "", true},
		{"Hello, World", "hELLO, wORLD", true},
		{"abc", "abd", false},
		{"a[", "A{", false}, // '[' and '{' differ by the case bit but are not letters
		{"@", "`", false},
		{"ÄBC", "äbc", false}, // non-ASCII bytes compare exactly
		{"ÄBC", "Äbc", true},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, EqualIgnoreCase(tt.a, tt.b))
			assert.Equal(t, tt.expected, EqualIgnoreCase(tt.b, tt.a))
		})
	}
}

func TestEqualFold(t *testing.T) {
	assert.True(t, EqualFold("ABC", "abc"))
	assert.True(t, EqualFold("ÄBC", "äbc"))
	assert.True(t, EqualFold("Straße", "STRASSE"))
	assert.True(t, EqualFold("", ""))
	assert.False(t, EqualFold("abc", "abcd"))
}

func TestEqualFold_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 200 {
				s := strings.Repeat("Straße", i+1) + strings.Repeat("ß", j%5)
				assert.True(t, EqualFold(s, strings.ToUpper(s)))
				assert.False(t, EqualFold(s, s+"x"))
			}
		}()
	}
	wg.Wait()
}

func TestEqualIgnoreCaseMatchesEqualFoldOnASCII(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for range 200 {
		s := rng.ASCIIString(16)
		assert.True(t, EqualIgnoreCase(s, strings.ToUpper(s)), s)
		assert.True(t, EqualIgnoreCase(strings.ToLower(s), s), s)

		other := rng.ASCIIString(16)
		assert.Equal(t, strings.EqualFold(s, other), EqualIgnoreCase(s, other), "%q %q", s, other)
	}
}
