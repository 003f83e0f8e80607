package terminal

import (
	"github.com/gdamore/tcell/v2"
)

// tcell conversion layer. Lets termframe buffers present on an existing
// tcell.Screen and lets tcell-based code feed styles into termframe during
// migration

// ToTcellStyle converts a Style to its tcell equivalent
func ToTcellStyle(s Style) tcell.Style {
	ts := tcell.StyleDefault.
		Foreground(toTcellColor(s.Fg)).
		Background(toTcellColor(s.Bg))
	if s.Attr&AttrBold != 0 {
		ts = ts.Bold(true)
	}
	if s.Attr&AttrDim != 0 {
		ts = ts.Dim(true)
	}
	if s.Attr&AttrItalic != 0 {
		ts = ts.Italic(true)
	}
	if s.Attr&AttrUnderline != 0 {
		ts = ts.Underline(true)
	}
	if s.Attr&AttrBlink != 0 {
		ts = ts.Blink(true)
	}
	if s.Attr&AttrReverse != 0 {
		ts = ts.Reverse(true)
	}
	if s.Hyperlink != "" {
		ts = ts.Url(s.Hyperlink)
	}
	return ts
}

// FromTcellStyle converts a tcell style to a Style.
// tcell does not expose the hyperlink back out of a Style, so the
// hyperlink field is always empty
func FromTcellStyle(ts tcell.Style) Style {
	fg, bg, attr := ts.Decompose()
	s := Style{
		Fg: fromTcellColor(fg),
		Bg: fromTcellColor(bg),
	}
	if attr&tcell.AttrBold != 0 {
		s.Attr |= AttrBold
	}
	if attr&tcell.AttrDim != 0 {
		s.Attr |= AttrDim
	}
	if attr&tcell.AttrItalic != 0 {
		s.Attr |= AttrItalic
	}
	if attr&tcell.AttrUnderline != 0 {
		s.Attr |= AttrUnderline
	}
	if attr&tcell.AttrBlink != 0 {
		s.Attr |= AttrBlink
	}
	if attr&tcell.AttrReverse != 0 {
		s.Attr |= AttrReverse
	}
	return s
}

func toTcellColor(c Color) tcell.Color {
	switch c.Kind {
	case ColorIndexed:
		return tcell.PaletteColor(int(c.Index))
	case ColorRGB:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	default:
		return tcell.ColorReset
	}
}

func fromTcellColor(c tcell.Color) Color {
	switch {
	case c == tcell.ColorDefault || c == tcell.ColorReset:
		return Color{}
	case c.IsRGB():
		r, g, b := c.RGB()
		return FromRGB(uint8(r), uint8(g), uint8(b))
	case c.Valid():
		n := int(c &^ tcell.ColorValid)
		if n < 256 {
			return Indexed(uint8(n))
		}
		r, g, b := c.RGB()
		return FromRGB(uint8(r), uint8(g), uint8(b))
	default:
		return Color{}
	}
}
