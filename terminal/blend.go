package terminal

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Color math helpers for style construction: gradients, dimmed variants,
// contrast decisions. Blending runs in Lab space for perceptual uniformity

func toColorful(c RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

func fromColorful(c colorful.Color) RGB {
	c = c.Clamped()
	return RGB{
		R: uint8(c.R*255.0 + 0.5),
		G: uint8(c.G*255.0 + 0.5),
		B: uint8(c.B*255.0 + 0.5),
	}
}

// Lerp blends a toward b by t in [0,1]
func Lerp(a, b RGB, t float64) RGB {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return fromColorful(toColorful(a).BlendLab(toColorful(b), t))
}

// Darken scales the color toward black by f in [0,1]
func Darken(c RGB, f float64) RGB {
	return Lerp(c, RGBBlack, f)
}

// Luminance returns the Lab lightness of the color in [0,1].
// Useful for picking readable foregrounds over arbitrary backgrounds
func Luminance(c RGB) float64 {
	l, _, _ := toColorful(c).Lab()
	return l
}
