//go:build !gpu

package backend

import "github.com/pkg/errors"

// newGPU reports BackendUnavailable when the binary wasn't built with the
// "gpu" tag, matching spec.md §7's no-fallback startup-abort semantics.
func newGPU() (Renderer, error) {
	return nil, errors.Wrap(ErrBackendUnavailable, "binary built without the \"gpu\" tag")
}
