//go:build gpu

package backend

import "github.com/sis-remapper/ledcore/internal/backend/gpu"

func newGPU() (Renderer, error) { return gpu.New(), nil }
