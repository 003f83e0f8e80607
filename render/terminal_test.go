package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/lixenwraith/termframe/terminal"
)

// testTerminal builds a Terminal over a bytes.Buffer sink with a mutable
// size. Returns the terminal, the sink, and a resize func
func testTerminal(t *testing.T, w, h int, proto terminal.GraphicsProtocol) (*Terminal, *bytes.Buffer, func(int, int)) {
	t.Helper()
	var sink bytes.Buffer
	width, height := w, h
	term, err := NewTerminal(Config{
		Output:        &sink,
		Size:          func() (int, int) { return width, height },
		Protocol:      proto,
		CellSize:      terminal.PixelSize{Width: 8, Height: 16},
		ClearInterval: -1,
	})
	if err != nil {
		t.Fatalf("NewTerminal: %v", err)
	}
	return term, &sink, func(nw, nh int) { width, height = nw, nh }
}

func TestNewTerminalValidatesConfig(t *testing.T) {
	if _, err := NewTerminal(Config{Size: func() (int, int) { return 1, 1 }}); err == nil {
		t.Error("missing output accepted")
	}
	if _, err := NewTerminal(Config{Output: &bytes.Buffer{}}); err == nil {
		t.Error("missing size provider accepted")
	}
}

// TestFirstFrameClears verifies the unknown-screen rule: frame one always
// performs a full clear and redraws the whole grid
func TestFirstFrameClears(t *testing.T) {
	term, sink, _ := testTerminal(t, 6, 2, terminal.ProtocolNone)
	if err := term.Draw(func(f *Frame) {}); err != nil {
		t.Fatal(err)
	}
	out := sink.String()
	if !strings.Contains(out, "\x1b[2J") {
		t.Errorf("no clear in first frame: %q", out)
	}
	if got := strings.Count(out, " "); got != 12 {
		t.Errorf("redrew %d cells, want 12", got)
	}
}

// TestIdempotentFrame verifies that an unchanged frame emits only the
// synchronized-update wrapper
func TestIdempotentFrame(t *testing.T) {
	term, sink, _ := testTerminal(t, 10, 4, terminal.ProtocolNone)
	draw := func(f *Frame) {
		f.WriteString(1, 1, "stable", terminal.Style{Fg: terminal.Indexed(2)})
	}
	if err := term.Draw(draw); err != nil {
		t.Fatal(err)
	}
	sink.Reset()
	if err := term.Draw(draw); err != nil {
		t.Fatal(err)
	}
	if got := sink.String(); got != "\x1b[?2026h\x1b[?2026l" {
		t.Errorf("unchanged frame emitted %q", got)
	}
}

// TestBasicDiffScenario verifies only the changed cell is emitted:
// frame one draws 'A', frame two adds 'B' next to it
func TestBasicDiffScenario(t *testing.T) {
	term, sink, _ := testTerminal(t, 10, 4, terminal.ProtocolNone)
	red := terminal.Style{Fg: terminal.Indexed(1)}
	blue := terminal.Style{Fg: terminal.Indexed(4)}

	if err := term.Draw(func(f *Frame) {
		f.Set(1, 1, terminal.Cell{Rune: 'A', Style: red})
	}); err != nil {
		t.Fatal(err)
	}
	sink.Reset()
	if err := term.Draw(func(f *Frame) {
		f.Set(1, 1, terminal.Cell{Rune: 'A', Style: red})
		f.Set(2, 1, terminal.Cell{Rune: 'B', Style: blue})
	}); err != nil {
		t.Fatal(err)
	}

	want := "\x1b[?2026h" + "\x1b[2;3H" + "\x1b[0;38;5;4;49m" + "B" + "\x1b[0m" + "\x1b[?2026l"
	if got := sink.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// TestRunElision verifies a horizontal run of changed cells costs one
// cursor move and one style command
func TestRunElision(t *testing.T) {
	term, sink, _ := testTerminal(t, 20, 6, terminal.ProtocolNone)
	if err := term.Draw(func(f *Frame) {}); err != nil {
		t.Fatal(err)
	}
	sink.Reset()
	if err := term.Draw(func(f *Frame) {
		f.WriteString(2, 3, "hello", terminal.Style{Fg: terminal.Indexed(2)})
	}); err != nil {
		t.Fatal(err)
	}

	want := "\x1b[?2026h" + "\x1b[4;3H" + "\x1b[0;38;5;2;49m" + "hello" + "\x1b[0m" + "\x1b[?2026l"
	if got := sink.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// TestShortGapUsesCursorForward verifies a small same-row gap between
// changed cells is bridged with cursor-forward instead of a full position
func TestShortGapUsesCursorForward(t *testing.T) {
	term, sink, _ := testTerminal(t, 10, 2, terminal.ProtocolNone)
	if err := term.Draw(func(f *Frame) {}); err != nil {
		t.Fatal(err)
	}
	sink.Reset()
	if err := term.Draw(func(f *Frame) {
		f.Set(0, 0, terminal.Cell{Rune: 'a'})
		f.Set(3, 0, terminal.Cell{Rune: 'c'})
	}); err != nil {
		t.Fatal(err)
	}

	want := "\x1b[?2026h" + "\x1b[1;1H" + "\x1b[0;39;49m" + "a" + "\x1b[2C" + "c" + "\x1b[0m" + "\x1b[?2026l"
	if got := sink.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// TestResizeForcesFullRedraw verifies a dimension change triggers a clear
// and a whole-grid re-emission
func TestResizeForcesFullRedraw(t *testing.T) {
	term, sink, resize := testTerminal(t, 8, 3, terminal.ProtocolNone)
	if err := term.Draw(func(f *Frame) {
		f.WriteString(0, 0, "before", terminal.Style{})
	}); err != nil {
		t.Fatal(err)
	}

	resize(10, 5)
	sink.Reset()
	if err := term.Draw(func(f *Frame) {
		if f.Area() != (Rect{Width: 10, Height: 5}) {
			t.Errorf("frame area = %+v", f.Area())
		}
	}); err != nil {
		t.Fatal(err)
	}

	out := sink.String()
	if !strings.Contains(out, "\x1b[2J") {
		t.Errorf("no clear after resize: %q", out)
	}
	if got := strings.Count(out, " "); got != 50 {
		t.Errorf("redrew %d cells, want 50", got)
	}
}

// TestSinkFailurePropagates verifies a failed write surfaces from Draw and
// the next successful frame still repairs the screen
func TestSinkFailurePropagates(t *testing.T) {
	width, height := 6, 2
	fw := &failingWriter{}
	term, err := NewTerminal(Config{
		Output:        fw,
		Size:          func() (int, int) { return width, height },
		ClearInterval: -1,
	})
	if err != nil {
		t.Fatal(err)
	}

	fw.fail = true
	if err := term.Draw(func(f *Frame) {
		f.WriteString(0, 0, "hi", terminal.Style{})
	}); err == nil {
		t.Fatal("sink failure not surfaced")
	}

	// Front buffer was not swapped; a retry frame still emits everything
	fw.fail = false
	fw.buf.Reset()
	if err := term.Draw(func(f *Frame) {
		f.WriteString(0, 0, "hi", terminal.Style{})
	}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(fw.buf.String(), "hi") {
		t.Errorf("retry frame missing content: %q", fw.buf.String())
	}
}

type failingWriter struct {
	fail bool
	buf  bytes.Buffer
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.fail {
		return 0, errors.New("sink closed")
	}
	return w.buf.Write(p)
}

// TestFrameCounterAdvances verifies per-draw bookkeeping
func TestFrameCounterAdvances(t *testing.T) {
	term, _, _ := testTerminal(t, 4, 2, terminal.ProtocolNone)
	for i := 0; i < 3; i++ {
		if err := term.Draw(func(f *Frame) {}); err != nil {
			t.Fatal(err)
		}
	}
	if term.FrameCount() != 3 {
		t.Errorf("frame count = %d, want 3", term.FrameCount())
	}
}

// TestWideRuneDiffRun verifies wide characters keep the cursor math
// consistent inside an elided run
func TestWideRuneDiffRun(t *testing.T) {
	term, sink, _ := testTerminal(t, 12, 2, terminal.ProtocolNone)
	if err := term.Draw(func(f *Frame) {}); err != nil {
		t.Fatal(err)
	}
	sink.Reset()
	if err := term.Draw(func(f *Frame) {
		f.WriteString(0, 0, "a世b", terminal.Style{})
	}); err != nil {
		t.Fatal(err)
	}

	// One positioning command: the wide rune advances the tracked column
	// by two, so 'b' at column 3 continues the run without repositioning
	out := sink.String()
	if got := strings.Count(out, "H"); got != 1 {
		t.Errorf("expected a single cursor-position command, output %q", out)
	}
	if !strings.Contains(out, "a世b") {
		t.Errorf("glyph stream broken: %q", out)
	}
}

// TestWideGlyphRestoredAfterHalfOverwrite verifies a wide character is
// re-emitted when only its continuation cell changed between frames. A
// narrow write into the glyph's second column mangles it on screen; the
// frame that restores the glyph must redraw the leader even though the
// leader cell never changed
func TestWideGlyphRestoredAfterHalfOverwrite(t *testing.T) {
	term, sink, _ := testTerminal(t, 8, 2, terminal.ProtocolNone)
	wide := func(f *Frame) {
		f.WriteString(0, 0, "世", terminal.Style{})
	}

	if err := term.Draw(wide); err != nil {
		t.Fatal(err)
	}
	if err := term.Draw(func(f *Frame) {
		wide(f)
		f.Set(1, 0, terminal.Cell{Rune: 'x'})
	}); err != nil {
		t.Fatal(err)
	}

	sink.Reset()
	if err := term.Draw(wide); err != nil {
		t.Fatal(err)
	}

	want := "\x1b[?2026h" + "\x1b[1;1H" + "\x1b[0;39;49m" + "世" + "\x1b[0m" + "\x1b[?2026l"
	if got := sink.String(); got != want {
		t.Errorf("restore frame got %q, want %q", got, want)
	}
}

// TestRecordingHookSeesPreChromeState verifies recordings exclude
// frame-only decoration
func TestRecordingHookSeesPreChromeState(t *testing.T) {
	term, sink, _ := testTerminal(t, 10, 3, terminal.ProtocolNone)

	var snap Snapshot
	term.SetRecordingHook(func(s Snapshot) { snap = s })
	term.SetChrome(func(f *Frame) {
		f.Set(0, 0, terminal.Cell{Rune: '●', Style: terminal.Style{Fg: terminal.Indexed(9)}})
	})

	if err := term.Draw(func(f *Frame) {
		f.WriteString(2, 1, "app", terminal.Style{})
	}); err != nil {
		t.Fatal(err)
	}

	if c, _ := snap.Cell(0, 0); !c.IsBlank() {
		t.Errorf("recording captured chrome: %+v", c)
	}
	if c, _ := snap.Cell(2, 1); c.Rune != 'a' {
		t.Errorf("recording missing app content: %+v", c)
	}
	if !strings.Contains(sink.String(), "●") {
		t.Error("chrome missing from emitted frame")
	}
}

// TestRecordingSnapshotIsDeepCopy verifies later mutation cannot reach a
// delivered snapshot
func TestRecordingSnapshotIsDeepCopy(t *testing.T) {
	term, _, _ := testTerminal(t, 6, 2, terminal.ProtocolKitty)

	payload := []byte("PAYLOAD")
	var snap Snapshot
	term.SetRecordingHook(func(s Snapshot) { snap = s })

	if err := term.Draw(func(f *Frame) {
		f.RegisterGraphics(Region{Row: 0, Col: 0, Width: 2, Height: 1,
			Payload: payload, Protocol: terminal.ProtocolKitty})
	}); err != nil {
		t.Fatal(err)
	}

	payload[0] = 'X'
	if string(snap.Regions[0].Payload) != "PAYLOAD" {
		t.Errorf("snapshot payload aliased producer memory: %q", snap.Regions[0].Payload)
	}

	// Next frame resets the back buffer; the snapshot must be unaffected
	if err := term.Draw(func(f *Frame) {}); err != nil {
		t.Fatal(err)
	}
	if len(snap.Cells) != 12 {
		t.Fatalf("snapshot cells length %d", len(snap.Cells))
	}
}
