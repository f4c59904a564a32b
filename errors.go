package vec3

import (
	"errors"
	"fmt"
)

var (
	// ErrNullHandle is returned when the zero Handle is used.
	ErrNullHandle = errors.New("null handle")
	// ErrStaleHandle is returned when a Handle was already destroyed.
	ErrStaleHandle = errors.New("stale handle")
	// ErrUnknownHandle is returned when a Handle was never issued by the registry.
	ErrUnknownHandle = errors.New("unknown handle")
	// ErrRegistryFull is returned when no further handles can be issued.
	ErrRegistryFull = errors.New("registry full")
)

// ErrInvalidHandle indicates that an operation received a handle it cannot
// resolve.
//
// The reason (ErrNullHandle, ErrStaleHandle or ErrUnknownHandle) can be
// matched with errors.Is.
type ErrInvalidHandle struct {
	Op     string
	Handle Handle
	cause  error
}

func (e *ErrInvalidHandle) Error() string {
	return fmt.Sprintf("%s: invalid handle %s: %v", e.Op, e.Handle, e.cause)
}

func (e *ErrInvalidHandle) Unwrap() error { return e.cause }
