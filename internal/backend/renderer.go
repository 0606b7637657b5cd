// Package backend defines the Renderer contract shared by the scalar,
// simd, and gpu lighting back-ends (spec.md §4.5) and selects among them.
package backend

import "github.com/sis-remapper/ledcore/internal/framebuffer"

// Kind names a selectable back-end (spec.md §6 Tunables: backend selector).
type Kind string

const (
	Scalar Kind = "scalar"
	SIMD   Kind = "simd"
	GPU    Kind = "gpu"
)

// Renderer is the one interface the render loop is written against
// (spec.md §9: "Expose a single trait/interface Renderer"). Back-ends
// differ in storage layout and dispatch, never in contract.
type Renderer interface {
	// Load constructs per-LED storage from the SDK's fixed LED list.
	Load(leds []framebuffer.LedSpec) error
	// Reset sets every LED's working color back to framebuffer.ResetColor.
	Reset()
	// Accessor grants kernels access to positions and mutable colors.
	Accessor() framebuffer.Accessor
	// Export converts every LED's working color to its 8-bit external
	// representation, in LED insertion order.
	Export() []framebuffer.LedColor
}
