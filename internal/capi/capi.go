// Package capi maps the vec3 registry onto primitive types for foreign
// callers. Every function here has a one-line cgo export in cmd/libvec3.
package capi

import (
	"errors"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/hupe1980/vec3"
)

// Status codes returned across the C boundary.
const (
	StatusOK            int32 = 0
	StatusNullHandle    int32 = -1
	StatusStaleHandle   int32 = -2
	StatusUnknownHandle int32 = -3
	StatusRegistryFull  int32 = -4
	StatusInvalidArg    int32 = -5
)

// Status maps err to a status code.
func Status(err error) int32 {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, vec3.ErrNullHandle):
		return StatusNullHandle
	case errors.Is(err, vec3.ErrStaleHandle):
		return StatusStaleHandle
	case errors.Is(err, vec3.ErrUnknownHandle):
		return StatusUnknownHandle
	case errors.Is(err, vec3.ErrRegistryFull):
		return StatusRegistryFull
	default:
		return StatusInvalidArg
	}
}

// API is the handle surface seen by foreign code.
type API struct {
	reg *vec3.Registry
}

// New wraps reg.
func New(reg *vec3.Registry) *API {
	return &API{reg: reg}
}

// NewFromEnv builds an API whose registry logs to stderr at the level named
// by VEC3_LOG_LEVEL. Logging is off when the variable is unset or invalid.
func NewFromEnv() *API {
	logger := vec3.NoopLogger()
	if value := strings.TrimSpace(os.Getenv("VEC3_LOG_LEVEL")); value != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(value)); err == nil {
			logger = vec3.NewTextLogger(level)
		}
	}
	return New(vec3.NewRegistry(vec3.WithLogger(logger)))
}

// Create allocates a vector and returns its handle, or 0 when the registry
// is full. The caller owns the handle.
func (a *API) Create(x, y, z float64) uint64 {
	h, err := a.reg.Create(x, y, z)
	if err != nil {
		return 0
	}
	return uint64(h)
}

// Destroy releases h and returns a status code.
func (a *API) Destroy(h uint64) int32 {
	return Status(a.reg.Destroy(vec3.Handle(h)))
}

// Dot returns the dot product behind two handles, or NaN if either handle is
// invalid.
func (a *API) Dot(left, right uint64) float64 {
	d, err := a.reg.Dot(vec3.Handle(left), vec3.Handle(right))
	if err != nil {
		return math.NaN()
	}
	return d
}

// DotChecked stores the dot product in *out and returns a status code. out
// is left untouched on failure.
func (a *API) DotChecked(left, right uint64, out *float64) int32 {
	if out == nil {
		return StatusInvalidArg
	}
	d, err := a.reg.Dot(vec3.Handle(left), vec3.Handle(right))
	if err != nil {
		return Status(err)
	}
	*out = d
	return StatusOK
}

// Live returns the number of handles not yet destroyed.
func (a *API) Live() int64 {
	return int64(a.reg.Len())
}
