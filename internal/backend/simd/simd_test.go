package simd_test

import (
	"testing"

	"github.com/sis-remapper/ledcore/internal/backend"
	"github.com/sis-remapper/ledcore/internal/backend/scalar"
	"github.com/sis-remapper/ledcore/internal/backend/simd"
)

func TestSimdConformance(t *testing.T) {
	backend.ConformanceSuite(t, func() backend.Renderer { return simd.New() })
}

func TestSimdAgreesWithScalarOracle(t *testing.T) {
	backend.AgreeWithinOneLSB(t,
		func() backend.Renderer { return scalar.New() },
		func() backend.Renderer { return simd.New() },
	)
}
