package backend

import "github.com/pkg/errors"

// ErrBackendUnavailable is spec.md §7's BackendUnavailable: the selected
// back-end cannot initialise at startup, so the system aborts with no
// fallback.
var ErrBackendUnavailable = errors.New("backend unavailable")

// Select constructs the Renderer for the given Kind. scalar and simd are
// always available; gpu requires the binary to be built with the "gpu"
// build tag (see gpu_adapter_gpu.go / gpu_adapter_nogpu.go) and a current OpenGL
// context at Load time.
func Select(kind Kind) (Renderer, error) {
	switch kind {
	case Scalar:
		return newScalar(), nil
	case SIMD:
		return newSIMD(), nil
	case GPU:
		return newGPU()
	default:
		return nil, errors.Wrapf(ErrBackendUnavailable, "unknown backend %q", kind)
	}
}
