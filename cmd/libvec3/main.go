// Command libvec3 builds the vec3 C ABI as a shared library:
//
//	go build -buildmode=c-shared -o libvec3.so ./cmd/libvec3
//
// The generated libvec3.h declares:
//
//	uint64_t vec3_Vector3d__ctor(double x, double y, double z);
//	int32_t  vec3_Vector3d__dtor(uint64_t h);
//	double   vec3_Vector3d_dot(uint64_t left, uint64_t right);
//	int32_t  vec3_Vector3d_dot_checked(uint64_t left, uint64_t right, double *out);
//	int64_t  vec3_live_handles(void);
//
// Handles are opaque 64-bit values; 0 is the null handle. Each handle returned
// by __ctor must be passed to __dtor exactly once. Invalid handles are
// reported through negative status codes (or NaN from _dot), never by
// touching released memory.
package main

/*
#include <stdint.h>
*/
import "C"

import (
	"github.com/hupe1980/vec3/internal/capi"
)

var api = capi.NewFromEnv()

//export vec3_Vector3d__ctor
func vec3_Vector3d__ctor(x, y, z C.double) C.uint64_t {
	return C.uint64_t(api.Create(float64(x), float64(y), float64(z)))
}

//export vec3_Vector3d__dtor
func vec3_Vector3d__dtor(h C.uint64_t) C.int32_t {
	return C.int32_t(api.Destroy(uint64(h)))
}

//export vec3_Vector3d_dot
func vec3_Vector3d_dot(left, right C.uint64_t) C.double {
	return C.double(api.Dot(uint64(left), uint64(right)))
}

//export vec3_Vector3d_dot_checked
func vec3_Vector3d_dot_checked(left, right C.uint64_t, out *C.double) C.int32_t {
	if out == nil {
		return C.int32_t(capi.StatusInvalidArg)
	}
	var d float64
	status := api.DotChecked(uint64(left), uint64(right), &d)
	if status == capi.StatusOK {
		*out = C.double(d)
	}
	return C.int32_t(status)
}

//export vec3_live_handles
func vec3_live_handles() C.int64_t {
	return C.int64_t(api.Live())
}

func main() {}
