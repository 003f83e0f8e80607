package terminal

import (
	"bytes"
)

// Emitter accumulates one frame's escape-sequence payload. The renderer
// drives it during the diff walk; the finished frame is read back with
// Bytes and handed to the output sink in a single write.
//
// Style state is coalesced: SetStyle emits nothing when the requested style
// matches the last emitted one. The OSC 8 hyperlink layer is tracked
// independently of SGR state
type Emitter struct {
	buf bytes.Buffer

	lastStyle  Style
	styleValid bool
	linkOpen   bool
}

// NewEmitter creates an emitter with a preallocated frame buffer
func NewEmitter() *Emitter {
	e := &Emitter{}
	e.buf.Grow(64 * 1024)
	return e
}

// Reset discards buffered bytes and forgets coalescing state.
// Call at the start of each frame
func (e *Emitter) Reset() {
	e.buf.Reset()
	e.styleValid = false
	e.linkOpen = false
}

// Bytes returns the accumulated frame payload. Valid until the next Reset
func (e *Emitter) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of buffered bytes
func (e *Emitter) Len() int {
	return e.buf.Len()
}

// BeginSync opens the synchronized-update bracket
func (e *Emitter) BeginSync() {
	e.buf.Write(csiSyncBegin)
}

// EndSync closes the synchronized-update bracket
func (e *Emitter) EndSync() {
	e.buf.Write(csiSyncEnd)
}

// ClearScreen erases the display and homes the cursor
func (e *Emitter) ClearScreen() {
	e.buf.Write(csiClear)
}

// MoveTo positions the cursor (0-indexed)
func (e *Emitter) MoveTo(x, y int) {
	writeCursorPos(&e.buf, x, y)
}

// MoveForward advances the cursor n columns without writing
func (e *Emitter) MoveForward(n int) {
	writeCursorForward(&e.buf, n)
}

// DeleteAllImages emits the kitty delete-all-placements command
func (e *Emitter) DeleteAllImages() {
	e.buf.Write(apcKittyDeleteAll)
}

// Raw appends opaque payload bytes (raster graphics data)
func (e *Emitter) Raw(p []byte) {
	e.buf.Write(p)
}

// WriteRune appends a cell character
func (e *Emitter) WriteRune(r rune) {
	if r < 0x80 {
		e.buf.WriteByte(byte(r))
		return
	}
	e.buf.WriteRune(r)
}

// SetStyle switches the active style, emitting only what changed.
// Hyperlink transitions are a distinct escape layer and are emitted
// independently of SGR state
func (e *Emitter) SetStyle(s Style) {
	if e.styleValid && s == e.lastStyle {
		return
	}

	if !e.styleValid || s.Hyperlink != e.lastStyle.Hyperlink {
		e.writeLink(s.Hyperlink)
	}

	core := s
	core.Hyperlink = ""
	lastCore := e.lastStyle
	lastCore.Hyperlink = ""
	if !e.styleValid || core != lastCore {
		e.writeSGR(core, lastCore)
	}

	e.lastStyle = s
	e.styleValid = true
}

// ResetStyle closes any open hyperlink and resets SGR state.
// Call once after the diff walk when anything was emitted
func (e *Emitter) ResetStyle() {
	if e.linkOpen {
		e.buf.Write(oscLinkClose)
		e.linkOpen = false
	}
	e.buf.Write(csiSGR0)
	e.styleValid = false
}

func (e *Emitter) writeLink(url string) {
	if url == "" {
		if e.linkOpen {
			e.buf.Write(oscLinkClose)
			e.linkOpen = false
		}
		return
	}
	e.buf.Write(oscLinkOpen)
	e.buf.WriteString(url)
	e.buf.Write(st)
	e.linkOpen = true
}

// writeSGR emits a combined SGR sequence for the style change.
// Attribute changes force a reset-and-rebuild; color-only changes emit the
// minimal per-variant sequence
func (e *Emitter) writeSGR(s, last Style) {
	fgChanged := !e.styleValid || s.Fg != last.Fg
	bgChanged := !e.styleValid || s.Bg != last.Bg
	attrChanged := !e.styleValid || s.Attr != last.Attr

	w := &e.buf

	if attrChanged {
		// SGR attributes are not individually resettable without
		// terminal-specific codes, so rebuild from reset
		w.Write(csi)
		w.WriteByte('0')
		if s.Attr&AttrBold != 0 {
			w.Write([]byte(";1"))
		}
		if s.Attr&AttrDim != 0 {
			w.Write([]byte(";2"))
		}
		if s.Attr&AttrItalic != 0 {
			w.Write([]byte(";3"))
		}
		if s.Attr&AttrUnderline != 0 {
			w.Write([]byte(";4"))
		}
		if s.Attr&AttrBlink != 0 {
			w.Write([]byte(";5"))
		}
		if s.Attr&AttrReverse != 0 {
			w.Write([]byte(";7"))
		}
		e.writeFgParams(s.Fg)
		e.writeBgParams(s.Bg)
		w.WriteByte('m')
		return
	}

	if fgChanged && bgChanged {
		w.Write(csi)
		e.writeFgColor(s.Fg)
		w.WriteByte(';')
		e.writeBgColor(s.Bg)
		w.WriteByte('m')
		return
	}
	if fgChanged {
		w.Write(csi)
		e.writeFgColor(s.Fg)
		w.WriteByte('m')
	}
	if bgChanged {
		w.Write(csi)
		e.writeBgColor(s.Bg)
		w.WriteByte('m')
	}
}

// writeFgParams writes foreground parameters with a leading separator
// (used inside a combined sequence)
func (e *Emitter) writeFgParams(c Color) {
	e.buf.WriteByte(';')
	e.writeFgColor(c)
}

func (e *Emitter) writeBgParams(c Color) {
	e.buf.WriteByte(';')
	e.writeBgColor(c)
}

// writeFgColor writes the minimal foreground encoding for the variant
func (e *Emitter) writeFgColor(c Color) {
	w := &e.buf
	switch c.Kind {
	case ColorIndexed:
		w.Write([]byte("38;5;"))
		writeInt(w, int(c.Index))
	case ColorRGB:
		w.Write([]byte("38;2;"))
		writeInt(w, int(c.R))
		w.WriteByte(';')
		writeInt(w, int(c.G))
		w.WriteByte(';')
		writeInt(w, int(c.B))
	default:
		w.Write([]byte("39"))
	}
}

// writeBgColor writes the minimal background encoding for the variant
func (e *Emitter) writeBgColor(c Color) {
	w := &e.buf
	switch c.Kind {
	case ColorIndexed:
		w.Write([]byte("48;5;"))
		writeInt(w, int(c.Index))
	case ColorRGB:
		w.Write([]byte("48;2;"))
		writeInt(w, int(c.R))
		w.WriteByte(';')
		writeInt(w, int(c.G))
		w.WriteByte(';')
		writeInt(w, int(c.B))
	default:
		w.Write([]byte("49"))
	}
}
