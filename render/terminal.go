package render

import (
	"fmt"
	"io"

	"github.com/lixenwraith/termframe/terminal"
)

// DefaultClearInterval is the number of frames between maintenance clears
// while raster content is on screen. Some emulators accumulate raster
// objects until a full clear; the periodic clear bounds that growth
const DefaultClearInterval = 600

// Config carries the session facts and collaborators a Terminal needs.
// Protocol and CellSize are resolved by external capability probing before
// construction
type Config struct {
	// Output receives exactly one write per frame
	Output io.Writer

	// Size reports current terminal dimensions in cells
	Size func() (width, height int)

	// Protocol is the active raster protocol for the session
	Protocol terminal.GraphicsProtocol

	// CellSize is the terminal's reported cell geometry in pixels
	CellSize terminal.PixelSize

	// ClearInterval overrides DefaultClearInterval; negative disables
	// the periodic maintenance clear
	ClearInterval int
}

// DrawFunc composes one frame. It must write only within the frame's area
// and runs to completion before diffing starts
type DrawFunc func(*Frame)

// Terminal owns the double-buffered grid and all per-frame bookkeeping.
// All state is mutated only inside Draw; the render loop is the single
// writer, so no locking is involved
type Terminal struct {
	out      io.Writer
	size     func() (int, int)
	protocol terminal.GraphicsProtocol
	cellSize terminal.PixelSize
	interval int

	// Two preallocated buffers; front indexes the one matching the
	// displayed screen. Swapping the index avoids per-frame copies
	bufs  [2]*Buffer
	front int

	em *terminal.Emitter

	frame       uint64
	forceClear  bool
	hadGraphics bool
	prevBounds  []Rect

	record SnapshotFunc
	chrome DrawFunc
}

// NewTerminal constructs a Terminal sized from cfg.Size. The first frame
// always performs a full clear because the physical screen content is
// unknown
func NewTerminal(cfg Config) (*Terminal, error) {
	if cfg.Output == nil {
		return nil, fmt.Errorf("render: config missing output sink")
	}
	if cfg.Size == nil {
		return nil, fmt.Errorf("render: config missing size provider")
	}
	interval := cfg.ClearInterval
	if interval == 0 {
		interval = DefaultClearInterval
	}

	w, h := cfg.Size()
	area := Rect{Width: w, Height: h}

	t := &Terminal{
		out:        cfg.Output,
		size:       cfg.Size,
		protocol:   cfg.Protocol,
		cellSize:   cfg.CellSize,
		interval:   interval,
		em:         terminal.NewEmitter(),
		forceClear: true,
	}
	t.bufs[0] = NewBuffer(area)
	t.bufs[1] = NewBuffer(area)
	return t, nil
}

// Protocol returns the session's raster protocol fact
func (t *Terminal) Protocol() terminal.GraphicsProtocol {
	return t.protocol
}

// CellSize returns the session's cell pixel geometry fact
func (t *Terminal) CellSize() terminal.PixelSize {
	return t.cellSize
}

// FrameCount returns the number of completed Draw calls
func (t *Terminal) FrameCount() uint64 {
	return t.frame
}

// SetRecordingHook installs a callback that receives a deep snapshot of
// each composed frame before chrome decoration is applied. Pass nil to
// disable
func (t *Terminal) SetRecordingHook(fn SnapshotFunc) {
	t.record = fn
}

// SetChrome installs frame-only decoration (e.g. a recording indicator)
// drawn after the recording snapshot is taken, so recordings never contain
// it. Pass nil to disable
func (t *Terminal) SetChrome(fn DrawFunc) {
	t.chrome = fn
}

// backBuf returns the buffer being composed this frame
func (t *Terminal) backBuf() *Buffer {
	return t.bufs[1-t.front]
}

// frontBuf returns the buffer matching the displayed screen
func (t *Terminal) frontBuf() *Buffer {
	return t.bufs[t.front]
}

// Draw runs one complete frame: resize check, compose, snapshot, chrome,
// occlusion filter, clear decision, batched emission, swap. A sink write
// error is returned without swapping, since the frame never reached the
// screen; callers should treat it as fatal to the session
func (t *Terminal) Draw(fn DrawFunc) error {
	// 1. Resize check. Mismatched buffer sizes make the incremental diff
	// meaningless, so a dimension change discards both grids
	w, h := t.size()
	area := t.backBuf().Area()
	if w != area.Width || h != area.Height {
		area = Rect{Width: w, Height: h}
		t.bufs[0].Resize(area)
		t.bufs[1].Resize(area)
		t.prevBounds = nil
		t.forceClear = true
	}

	// 2. Compose
	t.frame++
	back := t.backBuf()
	f := &Frame{buf: back, area: back.Area()}
	fn(f)

	// 3. Recording snapshot, before chrome touches the grid
	if t.record != nil {
		t.record(snapshot(t.frame, back, f.regions))
	}

	// Frame-only chrome. Drawn after the snapshot; may occlude regions,
	// which the filter below resolves
	if t.chrome != nil {
		t.chrome(f)
	}

	// 4. Occlusion filter: a region survives only if its entire reserved
	// footprint is still the blank sentinel. Partial raster output is
	// worse than none, so occlusion is all-or-nothing
	visible := f.regions[:0]
	for _, r := range f.regions {
		if t.regionVisible(back, r) {
			visible = append(visible, r)
		}
	}
	gfxNow := len(visible) > 0

	// 5. Clear-vs-incremental decision
	fullClear := t.forceClear
	if t.hadGraphics && !gfxNow {
		// The raster layer is going away wholesale; a redraw is cheaper
		// and safer than fine-grained stale bounds
		fullClear = true
	}
	if t.interval > 0 && gfxNow && t.frame%uint64(t.interval) == 0 {
		fullClear = true
	}

	front := t.frontBuf()
	if fullClear {
		// Mark every front cell unmatchable so the diff re-emits the
		// whole grid after the clear
		front.Fill(dirtyCell)
	} else {
		t.markStale(front, visible)
	}

	// 6. Emit one batched payload
	t.em.Reset()
	t.em.BeginSync()
	if fullClear {
		t.em.ClearScreen()
	}
	flushDiff(t.em, back, front)
	if t.protocol.Persistent() && (gfxNow || t.hadGraphics) {
		t.em.DeleteAllImages()
	}
	for _, r := range visible {
		t.em.MoveTo(r.Col, r.Row)
		t.em.Raw(r.Payload)
	}
	t.em.EndSync()

	if _, err := t.out.Write(t.em.Bytes()); err != nil {
		// The frame never reached the screen; the front buffer still
		// describes what is displayed, so do not swap
		return fmt.Errorf("render: frame write: %w", err)
	}

	// 7. Bookkeeping and swap. Only bounds survive, never payloads
	t.hadGraphics = gfxNow
	t.prevBounds = t.prevBounds[:0]
	for _, r := range visible {
		t.prevBounds = append(t.prevBounds, r.Bounds())
	}
	t.forceClear = false
	t.front = 1 - t.front
	t.backBuf().Reset()
	return nil
}

// regionVisible checks the all-or-nothing occlusion rule. A footprint that
// leaves the buffer area cannot display fully and is dropped too
func (t *Terminal) regionVisible(back *Buffer, r Region) bool {
	if !r.Bounds().In(back.Area()) {
		return false
	}
	for y := r.Row; y < r.Row+r.Height; y++ {
		for x := r.Col; x < r.Col+r.Width; x++ {
			c, ok := back.Get(x, y)
			if !ok || !c.IsBlank() {
				return false
			}
		}
	}
	return true
}

// markStale dirties front-buffer cells that were covered by last frame's
// raster bounds but not by this frame's. The diff then re-emits a write
// there even when the cell value is unchanged, which is what actually
// erases lingering raster pixels
func (t *Terminal) markStale(front *Buffer, visible []Region) {
	for _, pb := range t.prevBounds {
		for y := pb.Y; y < pb.Y+pb.Height; y++ {
			for x := pb.X; x < pb.X+pb.Width; x++ {
				covered := false
				for _, r := range visible {
					if r.Bounds().Contains(x, y) {
						covered = true
						break
					}
				}
				if !covered {
					front.Set(x, y, dirtyCell)
				}
			}
		}
	}
}
