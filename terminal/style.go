package terminal

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrBlink     Attr = 1 << 4
	AttrReverse   Attr = 1 << 5
)

// Style describes how a cell is drawn. The zero value is the reset style:
// default colors, no attributes, no hyperlink. Styles are value types
// compared with ==
type Style struct {
	Fg        Color
	Bg        Color
	Attr      Attr
	Hyperlink string // OSC 8 target, empty = no link
}

// StyleDefault is the reset style
var StyleDefault = Style{}

// WithFg returns a copy with the foreground replaced
func (s Style) WithFg(c Color) Style {
	s.Fg = c
	return s
}

// WithBg returns a copy with the background replaced
func (s Style) WithBg(c Color) Style {
	s.Bg = c
	return s
}

// WithAttr returns a copy with the given attribute bits set
func (s Style) WithAttr(a Attr) Style {
	s.Attr |= a
	return s
}

// WithHyperlink returns a copy carrying an OSC 8 hyperlink target
func (s Style) WithHyperlink(url string) Style {
	s.Hyperlink = url
	return s
}
