package backend

import "github.com/sis-remapper/ledcore/internal/backend/simd"

func newSIMD() Renderer { return simd.New() }
