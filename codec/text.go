package codec

import (
	"encoding"
	"errors"
	"fmt"

	"github.com/hupe1980/vec3/strutil"
)

// ErrNotTextUnmarshaler is returned by Text.Unmarshal for targets that do not
// implement encoding.TextUnmarshaler.
var ErrNotTextUnmarshaler = errors.New("codec: target does not implement encoding.TextUnmarshaler")

// Text renders values in their default textual form.
type Text struct{}

// Marshal renders v with strutil.ToString.
func (Text) Marshal(v any) ([]byte, error) {
	return []byte(strutil.ToString(v)), nil
}

// Unmarshal decodes data into v, which must implement
// encoding.TextUnmarshaler.
func (Text) Unmarshal(data []byte, v any) error {
	u, ok := v.(encoding.TextUnmarshaler)
	if !ok {
		return fmt.Errorf("%w: %T", ErrNotTextUnmarshaler, v)
	}
	return u.UnmarshalText(data)
}

// Name returns the unique name of the codec ("text").
func (Text) Name() string { return "text" }
