//go:build gpu

package gpu_test

import (
	"testing"

	"github.com/sis-remapper/ledcore/internal/backend"
	"github.com/sis-remapper/ledcore/internal/backend/gpu"
	"github.com/sis-remapper/ledcore/internal/backend/scalar"
)

// These tests require a current OpenGL 4.3+ context (created by whatever
// test harness links in a GL-capable window/offscreen context) and are
// only compiled into binaries built with the "gpu" tag, per spec.md §4.5's
// GPU-compute back-end being an optional, build-time-selected back-end.
func TestGPUConformance(t *testing.T) {
	backend.ConformanceSuite(t, func() backend.Renderer { return gpu.New() })
}

func TestGPUAgreesWithScalarOracle(t *testing.T) {
	backend.AgreeWithinOneLSB(t,
		func() backend.Renderer { return scalar.New() },
		func() backend.Renderer { return gpu.New() },
	)
}
