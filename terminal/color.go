package terminal

// ColorKind tags the active Color variant
type ColorKind uint8

const (
	ColorDefault ColorKind = iota // terminal default fg/bg
	ColorIndexed                  // 256-color palette index
	ColorRGB                      // 24-bit direct color
)

// Color is a tagged color variant. The zero value is the terminal default.
// Colors are value types compared with ==
type Color struct {
	Kind  ColorKind
	Index uint8 // valid when Kind == ColorIndexed
	R     uint8 // valid when Kind == ColorRGB
	G     uint8
	B     uint8
}

// Indexed returns a 256-palette color
func Indexed(n uint8) Color {
	return Color{Kind: ColorIndexed, Index: n}
}

// FromRGB returns a 24-bit direct color
func FromRGB(r, g, b uint8) Color {
	return Color{Kind: ColorRGB, R: r, G: g, B: b}
}

// RGB represents a resolved 24-bit color
type RGB struct {
	R, G, B uint8
}

// RGBBlack is the zero value black color
var RGBBlack = RGB{0, 0, 0}

// ansi16 holds the base palette (xterm defaults, indices 0-15)
var ansi16 = [16]RGB{
	{0x00, 0x00, 0x00}, {0x80, 0x00, 0x00}, {0x00, 0x80, 0x00}, {0x80, 0x80, 0x00},
	{0x00, 0x00, 0x80}, {0x80, 0x00, 0x80}, {0x00, 0x80, 0x80}, {0xc0, 0xc0, 0xc0},
	{0x80, 0x80, 0x80}, {0xff, 0x00, 0x00}, {0x00, 0xff, 0x00}, {0xff, 0xff, 0x00},
	{0x00, 0x00, 0xff}, {0xff, 0x00, 0xff}, {0x00, 0xff, 0xff}, {0xff, 0xff, 0xff},
}

// Color cube values for 6x6x6 palette (indices 16-231)
// Levels: 0, 95, 135, 175, 215, 255
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// grayscaleStart is the first grayscale index (232-255 = 24 shades)
const grayscaleStart = 232

// cubeIndex maps 0-255 to nearest cube index 0-5
// Pre-computed at init time
var cubeIndex [256]uint8

func init() {
	for i := 0; i < 256; i++ {
		best := 0
		bestDist := abs(i - int(cubeValues[0]))
		for j := 1; j < 6; j++ {
			d := abs(i - int(cubeValues[j]))
			if d < bestDist {
				bestDist = d
				best = j
			}
		}
		cubeIndex[i] = uint8(best)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// RGB resolves the color to 24-bit. Indexed colors resolve through the fixed
// xterm palette (16 ANSI + 6x6x6 cube + 24-step gray ramp). The default
// variant resolves to black; callers that care about terminal defaults must
// check Kind first. Pure function, no terminal state involved
func (c Color) RGB() RGB {
	switch c.Kind {
	case ColorRGB:
		return RGB{c.R, c.G, c.B}
	case ColorIndexed:
		return paletteRGB(c.Index)
	default:
		return RGBBlack
	}
}

// paletteRGB resolves a 256-palette index to its xterm RGB value
func paletteRGB(n uint8) RGB {
	switch {
	case n < 16:
		return ansi16[n]
	case n < grayscaleStart:
		i := n - 16
		return RGB{
			cubeValues[i/36],
			cubeValues[(i/6)%6],
			cubeValues[i%6],
		}
	default:
		// Grayscale ramp: luminance 8, 18, ..., 238
		v := 8 + 10*(n-grayscaleStart)
		return RGB{v, v, v}
	}
}

// Nearest256 converts an RGB value to the nearest 256-color palette index.
// Grayscale ramp is preferred when r ~= g ~= b and it is the closer match
func Nearest256(c RGB) uint8 {
	gray := (int(c.R) + int(c.G) + int(c.B)) / 3
	maxDiff := max(abs(int(c.R)-gray), abs(int(c.G)-gray), abs(int(c.B)-gray))

	cubeR := cubeIndex[c.R]
	cubeG := cubeIndex[c.G]
	cubeB := cubeIndex[c.B]
	cubeDist := abs(int(c.R)-int(cubeValues[cubeR])) +
		abs(int(c.G)-int(cubeValues[cubeG])) +
		abs(int(c.B)-int(cubeValues[cubeB]))

	if maxDiff < 10 {
		if gray < 4 {
			return 16 // cube black
		}
		if gray > 243 {
			return 231 // cube white
		}
		grayIdx := uint8(grayscaleStart + (gray-8)/10)

		grayLevel := 8 + int(grayIdx-grayscaleStart)*10
		grayDist := abs(int(c.R)-grayLevel) + abs(int(c.G)-grayLevel) + abs(int(c.B)-grayLevel)
		if grayDist < cubeDist {
			return grayIdx
		}
	}

	return 16 + 36*cubeR + 6*cubeG + cubeB
}
