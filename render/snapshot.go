package render

import (
	"github.com/lixenwraith/termframe/terminal"
)

// Snapshot is a deep copy of one composed frame, taken before chrome
// decoration. Recording collaborators receive it and must never see
// frame-only UI such as an on-screen recording indicator
type Snapshot struct {
	Frame   uint64
	Area    Rect
	Cells   []terminal.Cell
	Regions []RegionSnapshot
}

// RegionSnapshot captures a registered raster region's bounds, protocol,
// and pixel payload
type RegionSnapshot struct {
	Bounds   Rect
	Protocol terminal.GraphicsProtocol
	Payload  []byte
}

// SnapshotFunc is the recording hook signature
type SnapshotFunc func(Snapshot)

// Cell reads a snapshot cell by absolute coordinates
func (s Snapshot) Cell(x, y int) (terminal.Cell, bool) {
	if !s.Area.Contains(x, y) {
		return terminal.Cell{}, false
	}
	return s.Cells[(y-s.Area.Y)*s.Area.Width+(x-s.Area.X)], true
}

// snapshot deep-copies the back buffer and region payloads so the hook
// owns its data outright
func snapshot(frame uint64, back *Buffer, regions []Region) Snapshot {
	cells := make([]terminal.Cell, len(back.content))
	copy(cells, back.content)

	var rs []RegionSnapshot
	if len(regions) > 0 {
		rs = make([]RegionSnapshot, 0, len(regions))
		for _, r := range regions {
			payload := make([]byte, len(r.Payload))
			copy(payload, r.Payload)
			rs = append(rs, RegionSnapshot{
				Bounds:   r.Bounds(),
				Protocol: r.Protocol,
				Payload:  payload,
			})
		}
	}

	return Snapshot{
		Frame:   frame,
		Area:    back.Area(),
		Cells:   cells,
		Regions: rs,
	}
}
