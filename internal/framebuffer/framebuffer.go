// Package framebuffer defines the LED identity/geometry types and the
// narrow Accessor interface that effect kernels mutate through, independent
// of which back-end's storage layout actually holds the data.
package framebuffer

import "github.com/sis-remapper/ledcore/internal/colormath"

// LedId is the keyboard SDK's opaque per-LED identifier.
type LedId uint32

// Position is a 2-D coordinate in the SDK's millimetre-scale space.
type Position struct {
	X, Y float64
}

// LedSpec is what the SDK reports at device setup: an LED's fixed identity
// and position. The set and ordering are fixed for the lifetime of one
// connection (spec.md §3).
type LedSpec struct {
	Id  LedId
	Pos Position
}

// LedColor is one exported frame record: an LED id plus its 8-bit RGBA,
// in the upload format of spec.md §6.
type LedColor struct {
	Id    LedId
	Color [4]uint8
}

// Accessor is the minimal surface a kernel needs: iterate LED count, read a
// position, read/write a working color. Every back-end's storage
// implements this so kernel code is back-end agnostic.
type Accessor interface {
	Len() int
	Position(i int) Position
	Color(i int) colormath.Color
	SetColor(i int, c colormath.Color)
	// IndexOf returns the framebuffer slot for the given LedId and whether
	// it was found, for applying per-LED overrides (spec.md §4.2.5).
	IndexOf(id LedId) (int, bool)
}

// ResetColor is the tick-start base: black, fully opaque (spec.md §3).
var ResetColor = colormath.Color{R: 0, G: 0, B: 0, A: 1}
