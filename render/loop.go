package render

import (
	"github.com/lixenwraith/termframe/event"
)

// Loop binds a Terminal to an event queue. Background work posts events
// from any goroutine; Step drains everything pending, hands each event to
// the handler, then draws one frame. The drain happens strictly before
// composition, never concurrently with it
type Loop struct {
	term  *Terminal
	queue *event.Queue

	// OnEvent receives each drained event before the frame is composed
	OnEvent func(event.Event)
}

// NewLoop creates a loop around the terminal
func NewLoop(t *Terminal) *Loop {
	return &Loop{
		term:  t,
		queue: event.NewQueue(),
	}
}

// Terminal returns the wrapped terminal
func (l *Loop) Terminal() *Terminal {
	return l.term
}

// Post queues an event from any goroutine
func (l *Loop) Post(ev event.Event) {
	l.queue.Push(ev)
}

// Step drains pending events and draws one frame
func (l *Loop) Step(fn DrawFunc) error {
	for _, ev := range l.queue.Consume() {
		if l.OnEvent != nil {
			l.OnEvent(ev)
		}
	}
	return l.term.Draw(fn)
}
