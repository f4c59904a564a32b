package vec3

import (
	"context"
	"errors"
	"fmt"

	"github.com/hupe1980/vec3/internal/arena"
	"github.com/hupe1980/vec3/vector"
)

// Stats is a snapshot of registry usage.
type Stats struct {
	Live          uint64 // Handles created and not yet destroyed
	Slots         uint64 // Slots ever allocated, including the reserved null slot
	Retired       uint64 // Slots withdrawn after generation exhaustion
	Creates       uint64
	Destroys      uint64
	InvalidAccess uint64 // Operations rejected for an invalid handle
}

// Registry owns vectors on behalf of callers that can only hold opaque
// handles. It is safe for concurrent use.
type Registry struct {
	slots   *arena.Arena[vector.Vector3d]
	logger  *Logger
	metrics MetricsCollector
}

// NewRegistry creates an empty Registry.
func NewRegistry(optFns ...Option) *Registry {
	opts := options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	maxSlots := 0
	if opts.maxHandles > 0 {
		// One extra slot for the reserved null entry.
		maxSlots = opts.maxHandles + 1
	}

	return &Registry{
		slots: arena.New[vector.Vector3d](
			arena.WithCapacity(opts.capacity),
			arena.WithMaxSlots(maxSlots),
		),
		logger:  opts.logger,
		metrics: opts.metricsCollector,
	}
}

// Create stores the vector (x, y, z) and returns its handle.
// Ownership passes to the caller, who must release it with Destroy.
func (r *Registry) Create(x, y, z float64) (Handle, error) {
	return r.Put(vector.New(x, y, z))
}

// Put stores v and returns its handle.
func (r *Registry) Put(v vector.Vector3d) (Handle, error) {
	ref, err := r.slots.Alloc(v)
	if err != nil {
		if errors.Is(err, arena.ErrMaxSlotsExceeded) {
			err = fmt.Errorf("create: %w", ErrRegistryFull)
		}
		r.logger.LogCreate(context.Background(), NullHandle, err)
		r.metrics.RecordCreate(err)
		return NullHandle, err
	}

	h := handleFromRef(ref)
	r.logger.LogCreate(context.Background(), h, nil)
	r.metrics.RecordCreate(nil)
	return h, nil
}

// Destroy releases h. Each handle must be destroyed exactly once; further
// calls return an *ErrInvalidHandle wrapping ErrStaleHandle.
func (r *Registry) Destroy(h Handle) error {
	err := r.slots.Free(h.ref())
	if err != nil {
		err = invalidHandle("destroy", h, err)
	}
	r.logger.LogDestroy(context.Background(), h, err)
	r.metrics.RecordDestroy(err)
	return err
}

// Get returns a copy of the vector behind h.
func (r *Registry) Get(h Handle) (vector.Vector3d, error) {
	v, err := r.slots.Get(h.ref())
	if err != nil {
		return vector.Zero, invalidHandle("get", h, err)
	}
	return v, nil
}

// Dot returns the dot product of the vectors behind a and b. Neither handle
// changes ownership.
func (r *Registry) Dot(a, b Handle) (float64, error) {
	d, err := r.dot(a, b)
	r.logger.LogDot(context.Background(), a, b, err)
	r.metrics.RecordDot(err)
	return d, err
}

func (r *Registry) dot(a, b Handle) (float64, error) {
	va, err := r.slots.Get(a.ref())
	if err != nil {
		return 0, invalidHandle("dot", a, err)
	}
	vb, err := r.slots.Get(b.ref())
	if err != nil {
		return 0, invalidHandle("dot", b, err)
	}
	return vector.Dot(va, vb), nil
}

// Len returns the number of live handles.
func (r *Registry) Len() int {
	return r.slots.Len()
}

// Stats returns a snapshot of registry usage.
func (r *Registry) Stats() Stats {
	st := r.slots.Stats()
	return Stats{
		Live:          st.Live,
		Slots:         st.Slots,
		Retired:       st.Retired,
		Creates:       st.Allocs,
		Destroys:      st.Frees,
		InvalidAccess: st.StaleAccesses,
	}
}

// Reset destroys every live handle. The metrics collector sees one
// successful destroy per released handle.
func (r *Registry) Reset() {
	n := r.slots.Reset()
	for range n {
		r.metrics.RecordDestroy(nil)
	}
	r.logger.InfoContext(context.Background(), "registry reset", "released", n)
}

func invalidHandle(op string, h Handle, err error) error {
	var cause error
	switch {
	case errors.Is(err, arena.ErrNullRef):
		cause = ErrNullHandle
	case errors.Is(err, arena.ErrStaleRef):
		cause = ErrStaleHandle
	case errors.Is(err, arena.ErrOutOfRange):
		cause = ErrUnknownHandle
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
	return &ErrInvalidHandle{Op: op, Handle: h, cause: cause}
}
