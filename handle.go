package vec3

import (
	"fmt"

	"github.com/hupe1980/vec3/internal/arena"
)

// Handle is an opaque reference to a vector owned by a Registry.
//
// The upper 32 bits carry the slot generation, the lower 32 bits the slot
// index. The zero Handle is null and is never issued.
type Handle uint64

// NullHandle is the zero Handle.
const NullHandle Handle = 0

func handleFromRef(r arena.Ref) Handle {
	return Handle(uint64(r.Gen)<<32 | uint64(r.Index))
}

func (h Handle) ref() arena.Ref {
	return arena.Ref{
		Gen:   uint32(h >> 32),
		Index: uint32(h), //nolint:gosec // lower half by construction
	}
}

// IsNull reports whether h is the null handle.
func (h Handle) IsNull() bool {
	return h.ref().IsNull()
}

// String renders h as "index:generation".
func (h Handle) String() string {
	r := h.ref()
	return fmt.Sprintf("%d:%d", r.Index, r.Gen)
}
