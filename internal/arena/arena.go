package arena

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/hupe1980/vec3/internal/conv"
)

var (
	// ErrNullRef is returned for the zero Ref.
	ErrNullRef = errors.New("arena: null reference")
	// ErrStaleRef is returned when a Ref points to a slot that was freed.
	ErrStaleRef = errors.New("arena: stale reference")
	// ErrOutOfRange is returned when a Ref names a slot that was never allocated.
	ErrOutOfRange = errors.New("arena: reference out of range")
	// ErrMaxSlotsExceeded is returned when the arena cannot grow any further.
	ErrMaxSlotsExceeded = errors.New("arena: max slots exceeded")
)

// maxPrealloc bounds the slots reserved up front by WithCapacity.
const maxPrealloc = 1 << 20

// MaxSlots limits the number of slots so an index fits into both int and
// uint32 on every platform.
const MaxSlots = math.MaxInt32

// Ref is a safe reference to an arena slot.
// It includes the generation to detect stale references.
type Ref struct {
	Gen   uint32
	Index uint32
}

// IsNull reports whether r is the zero Ref.
func (r Ref) IsNull() bool {
	return r.Index == 0
}

// Stats tracks arena usage.
//
//   - Slots: slots ever created, including the reserved null slot
//   - Live: currently allocated values
//   - Retired: slots whose generation is exhausted
//   - Allocs, Frees: cumulative operation counts
//   - StaleAccesses: rejected lookups and frees
type Stats struct {
	Slots         uint64
	Live          uint64
	Retired       uint64
	Allocs        uint64
	Frees         uint64
	StaleAccesses uint64
}

type atomicStats struct {
	Allocs        atomic.Uint64
	Frees         atomic.Uint64
	StaleAccesses atomic.Uint64
}

type slot[T any] struct {
	value T
	gen   uint32
	live  bool
}

// Arena is a generation-checked slot table holding values of type T.
type Arena[T any] struct {
	mu       sync.RWMutex
	slots    []slot[T]
	free     []uint32
	live     int
	retired  int
	maxSlots int
	stats    atomicStats
}

// Option is a configuration option for Arena.
type Option func(*options)

type options struct {
	capacity int
	maxSlots int
}

// WithCapacity preallocates room for n values. n is clamped to the slot
// limit and to an upper bound on up-front reservation.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithMaxSlots caps the number of slots. Values <= 0 or above MaxSlots
// select MaxSlots.
func WithMaxSlots(n int) Option {
	return func(o *options) {
		o.maxSlots = n
	}
}

// New creates an empty Arena.
func New[T any](opts ...Option) *Arena[T] {
	o := options{maxSlots: MaxSlots}
	for _, opt := range opts {
		opt(&o)
	}
	if o.maxSlots <= 0 || o.maxSlots > MaxSlots {
		o.maxSlots = MaxSlots
	}
	o.capacity = min(max(o.capacity, 0), o.maxSlots-1, maxPrealloc)

	a := &Arena[T]{
		slots:    make([]slot[T], 1, o.capacity+1),
		maxSlots: o.maxSlots,
	}
	// Slot 0 is reserved as null and never handed out.
	a.slots[0].gen = 1
	return a
}

// Alloc stores v in a free slot and returns its reference.
func (a *Arena[T]) Alloc(v T) (Ref, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		if len(a.slots) >= a.maxSlots {
			return Ref{}, ErrMaxSlotsExceeded
		}
		next, err := conv.IntToUint32(len(a.slots))
		if err != nil {
			return Ref{}, fmt.Errorf("%w: %w", ErrMaxSlotsExceeded, err)
		}
		// Generation starts at 1 so a zeroed Ref never matches.
		a.slots = append(a.slots, slot[T]{gen: 1})
		idx = next
	}

	s := &a.slots[idx]
	s.value = v
	s.live = true
	a.live++
	a.stats.Allocs.Add(1)

	return Ref{Gen: s.gen, Index: idx}, nil
}

// Get returns the value stored under ref.
func (a *Arena[T]) Get(ref Ref) (T, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	s, err := a.lookup(ref)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.value, nil
}

// Free releases the slot behind ref. Every outstanding copy of ref becomes
// stale.
func (a *Arena[T]) Free(ref Ref) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	s, err := a.lookup(ref)
	if err != nil {
		return err
	}

	var zero T
	s.value = zero
	s.live = false
	a.live--
	a.stats.Frees.Add(1)

	if s.gen == math.MaxUint32 {
		// Reusing the slot would wrap the generation and revive old refs.
		a.retired++
		return nil
	}
	s.gen++
	a.free = append(a.free, ref.Index)
	return nil
}

// lookup validates ref. Callers must hold a.mu.
func (a *Arena[T]) lookup(ref Ref) (*slot[T], error) {
	if ref.IsNull() {
		a.stats.StaleAccesses.Add(1)
		return nil, ErrNullRef
	}
	if uint64(ref.Index) >= uint64(len(a.slots)) {
		a.stats.StaleAccesses.Add(1)
		return nil, ErrOutOfRange
	}
	s := &a.slots[ref.Index]
	if !s.live || s.gen != ref.Gen {
		a.stats.StaleAccesses.Add(1)
		return nil, ErrStaleRef
	}
	return s, nil
}

// Len returns the number of live values.
func (a *Arena[T]) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.live
}

// Stats returns a snapshot of the arena's counters.
func (a *Arena[T]) Stats() Stats {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return Stats{
		Slots:         uint64(len(a.slots)),
		Live:          uint64(a.live),    //nolint:gosec // live >= 0
		Retired:       uint64(a.retired), //nolint:gosec // retired >= 0
		Allocs:        a.stats.Allocs.Load(),
		Frees:         a.stats.Frees.Load(),
		StaleAccesses: a.stats.StaleAccesses.Load(),
	}
}

// Reset frees every slot and returns how many live values it released.
// All previously issued refs become stale.
func (a *Arena[T]) Reset() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	released := 0
	var zero T
	for i := 1; i < len(a.slots); i++ {
		s := &a.slots[i]
		if !s.live {
			continue
		}
		s.value = zero
		s.live = false
		a.live--
		released++
		a.stats.Frees.Add(1)
		if s.gen == math.MaxUint32 {
			a.retired++
			continue
		}
		s.gen++
		a.free = append(a.free, uint32(i)) //nolint:gosec // i < len(slots) <= MaxSlots
	}
	return released
}

func (a *Arena[T]) String() string {
	st := a.Stats()
	return fmt.Sprintf("Arena{live=%d, slots=%d, retired=%d}", st.Live, st.Slots, st.Retired)
}
