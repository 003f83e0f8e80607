// Package event provides a lock-free MPSC queue for delivering background
// results to the render loop. Producers push from any goroutine; the loop
// drains the queue strictly between frames, so the renderer never observes
// a half-updated model.
package event

// Type discriminates queued events
type Type uint8

const (
	TypeNone Type = iota
	TypeResize
	TypeTick
	TypeUser
)

// Event is one queued occurrence. Width/Height are populated for resize
// events; Payload carries arbitrary producer data for user events
type Event struct {
	Type    Type
	Width   int
	Height  int
	Payload any
}
