package terminal

// GraphicsProtocol identifies the raster protocol a session resolved to.
// Detection happens outside this module; the renderer only consumes the
// result
type GraphicsProtocol uint8

const (
	ProtocolNone  GraphicsProtocol = iota
	ProtocolSixel                  // cleared implicitly by overwriting cells
	ProtocolKitty                  // placements persist until explicitly deleted
)

// Persistent reports whether emitted images survive ordinary text writes
// and need an explicit delete command to disappear
func (p GraphicsProtocol) Persistent() bool {
	return p == ProtocolKitty
}

func (p GraphicsProtocol) String() string {
	switch p {
	case ProtocolSixel:
		return "sixel"
	case ProtocolKitty:
		return "kitty"
	default:
		return "none"
	}
}

// PixelSize is the terminal's reported cell geometry in pixels,
// resolved externally and consumed as a session constant
type PixelSize struct {
	Width  int
	Height int
}
