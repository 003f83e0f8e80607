package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lixenwraith/termframe/render"
	"github.com/lixenwraith/termframe/terminal"
)

// TestDrawSceneComposes verifies the scene draws through the frame pipeline
// and its text reaches the output stream
func TestDrawSceneComposes(t *testing.T) {
	var sink bytes.Buffer
	term, err := render.NewTerminal(render.Config{
		Output:        &sink,
		Size:          func() (int, int) { return 40, 10 },
		ClearInterval: -1,
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := term.Draw(func(f *render.Frame) {
		drawScene(f, 0.5, terminal.ProtocolNone)
	}); err != nil {
		t.Fatal(err)
	}
	out := sink.String()
	if !strings.Contains(out, "termframe demo") {
		t.Errorf("title missing from frame: %q", out)
	}
	if !strings.Contains(out, "40x10") {
		t.Errorf("status line missing from frame: %q", out)
	}
}

// TestKittyPayloadChunking verifies the payload is split into valid APC
// chunks with the continuation flag cleared on the last one
func TestKittyPayloadChunking(t *testing.T) {
	payload := kittyPayload(0, terminal.PixelSize{Width: 8, Height: 16})
	if len(payload) == 0 {
		t.Fatal("empty payload")
	}
	s := string(payload)
	if !strings.HasPrefix(s, "\x1b_Gf=100,a=T,C=1,m=") {
		t.Errorf("bad payload header: %q", s[:min(len(s), 32)])
	}
	if !strings.HasSuffix(s, "\x1b\\") {
		t.Error("payload not terminated")
	}
	if !strings.Contains(s, "m=0;") {
		t.Error("no final chunk with m=0")
	}
}
