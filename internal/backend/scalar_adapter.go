package backend

import "github.com/sis-remapper/ledcore/internal/backend/scalar"

func newScalar() Renderer { return scalar.New() }
