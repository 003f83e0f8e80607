// Demo: animated gradient text plus an optional kitty raster overlay,
// rendered through the diff-based frame pipeline.
package main

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lixenwraith/termframe/event"
	"github.com/lixenwraith/termframe/render"
	"github.com/lixenwraith/termframe/terminal"
)

const (
	frameMs     = 33
	imageCols   = 24
	imageRows   = 8
	kittyChunk  = 4096
	clearFrames = 300
)

func main() {
	backend := terminal.NewBackend()
	if err := backend.Init(); err != nil {
		log.Fatalf("terminal init: %v", err)
	}
	defer backend.Fini()

	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			panic(r)
		}
	}()

	// Protocol facts would normally come from capability probing; the demo
	// settles for the kitty environment marker
	protocol := terminal.ProtocolNone
	if os.Getenv("KITTY_WINDOW_ID") != "" {
		protocol = terminal.ProtocolKitty
	}

	term, err := render.NewTerminal(render.Config{
		Output:        backend,
		Size:          backend.Size,
		Protocol:      protocol,
		CellSize:      terminal.PixelSize{Width: 8, Height: 16},
		ClearInterval: clearFrames,
	})
	if err != nil {
		backend.Fini()
		log.Fatalf("renderer: %v", err)
	}

	loop := render.NewLoop(term)
	backend.SetResizeHandler(func(w, h int) {
		loop.Post(event.Event{Type: event.TypeResize, Width: w, Height: h})
	})

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(frameMs * time.Millisecond)
	defer ticker.Stop()

	start := time.Now()
	showImage := protocol == terminal.ProtocolKitty

	for {
		select {
		case <-sigCh:
			return
		case <-ticker.C:
		}

		t := time.Since(start).Seconds()
		err := loop.Step(func(f *render.Frame) {
			drawScene(f, t, protocol)
			if showImage {
				f.RegisterGraphics(render.Region{
					Row:      4,
					Col:      4,
					Width:    imageCols,
					Height:   imageRows,
					Payload:  kittyPayload(t, term.CellSize()),
					Protocol: terminal.ProtocolKitty,
				})
			}
		})
		if err != nil {
			// A failed frame write cannot be resumed; bail out
			backend.Fini()
			log.Fatalf("draw: %v", err)
		}
	}
}

func drawScene(f *render.Frame, t float64, protocol terminal.GraphicsProtocol) {
	area := f.Area()

	title := "termframe demo"
	f.WriteString(2, 1, title, terminal.Style{Attr: terminal.AttrBold})
	f.WriteString(2, 2, fmt.Sprintf("%dx%d  protocol=%s  ctrl-c quits",
		area.Width, area.Height, protocol), terminal.Style{Attr: terminal.AttrDim})

	// Animated gradient bar along the bottom row
	from := terminal.RGB{R: 40, G: 90, B: 200}
	to := terminal.RGB{R: 220, G: 60, B: 120}
	y := area.Height - 2
	for x := 0; x < area.Width; x++ {
		phase := 0.5 + 0.5*math.Sin(t+float64(x)/12.0)
		c := terminal.Lerp(from, to, phase)
		style := terminal.Style{Fg: terminal.Indexed(terminal.Nearest256(c))}
		f.Set(x, y, terminal.Cell{Rune: '▀', Style: style})
	}
}

// kittyPayload builds a chunked kitty transmit-and-display sequence for a
// procedurally generated PNG sized to the region footprint
func kittyPayload(t float64, cell terminal.PixelSize) []byte {
	w := imageCols * cell.Width
	h := imageRows * cell.Height

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := 0.5 + 0.5*math.Sin(t*2+float64(x+y)/24.0)
			img.Set(x, y, color.RGBA{
				R: uint8(v * 200),
				G: uint8((1 - v) * 180),
				B: uint8(v * 255),
				A: 255,
			})
		}
	}

	var pngBuf bytes.Buffer
	if err := png.Encode(&pngBuf, img); err != nil {
		return nil
	}
	encoded := base64.StdEncoding.EncodeToString(pngBuf.Bytes())

	// f=100: PNG data, a=T: transmit and display, C=1: keep cursor
	var out bytes.Buffer
	first := true
	for len(encoded) > 0 {
		n := len(encoded)
		if n > kittyChunk {
			n = kittyChunk
		}
		chunk := encoded[:n]
		encoded = encoded[n:]

		more := 0
		if len(encoded) > 0 {
			more = 1
		}
		if first {
			fmt.Fprintf(&out, "\x1b_Gf=100,a=T,C=1,m=%d;%s\x1b\\", more, chunk)
			first = false
		} else {
			fmt.Fprintf(&out, "\x1b_Gm=%d;%s\x1b\\", more, chunk)
		}
	}
	return out.Bytes()
}
