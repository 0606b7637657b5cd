package colormath

import "math"

// srgbToOklab and oklabToSrgb mirror the Rust source's own unused
// srg_to_oklab/oklab_to_srgb: a linear-sRGB/OKLab compositing path was
// sketched but never wired into any kernel. Whether compositing should
// happen in a linear space is an open question spec.md leaves unresolved
// (see DESIGN.md); these stay here, uncalled, for that future path.

func srgbToOklab(c Color) Color {
	l := 0.4122214708*c.R + 0.5363325363*c.G + 0.0514459929*c.B
	m := 0.2119034982*c.R + 0.6806995451*c.G + 0.1073969566*c.B
	s := 0.0883024619*c.R + 0.2817188376*c.G + 0.6299787005*c.B

	l = cbrt(l)
	m = cbrt(m)
	s = cbrt(s)

	return Color{
		R: 0.2104542553*l + 0.7936177850*m - 0.0040720468*s,
		G: 1.9779984951*l - 2.4285922050*m + 0.4505937099*s,
		B: 0.0259040371*l + 0.7827717662*m - 0.8086757660*s,
		A: c.A,
	}
}

func oklabToSrgb(c Color) Color {
	l := c.R + 0.3963377774*c.G + 0.2158037573*c.B
	m := c.R - 0.1055613458*c.G - 0.0638541728*c.B
	s := c.R - 0.0894841775*c.G - 1.2914855480*c.B

	l = l * l * l
	m = m * m * m
	s = s * s * s

	return Color{
		R: 4.0767416621*l - 3.3077115913*m + 0.2309699292*s,
		G: -1.2684380046*l + 2.6097574011*m - 0.3413193965*s,
		B: -0.0041960863*l - 0.7034186147*m + 1.7076147010*s,
		A: c.A,
	}
}

func cbrt(x float32) float32 {
	return float32(math.Cbrt(float64(x)))
}
