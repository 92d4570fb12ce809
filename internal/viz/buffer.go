package viz

import (
	"sync"

	"github.com/san-kum/algoviz/internal/replay"
)

const bufferCapacity = 1024

// frameBuffer collects frames from the replay goroutine without ever
// blocking it. The UI drains everything pending on each notification.
type frameBuffer struct {
	mu      sync.Mutex
	pending []replay.Frame
	notify  chan struct{}
}

func newFrameBuffer() *frameBuffer {
	return &frameBuffer{notify: make(chan struct{}, 1)}
}

func (b *frameBuffer) push(f replay.Frame) {
	b.mu.Lock()
	b.pending = append(b.pending, f)
	if len(b.pending) > bufferCapacity {
		b.pending = b.pending[len(b.pending)-bufferCapacity:]
	}
	b.mu.Unlock()

	select {
	case b.notify <- struct{}{}:
	default:
	}
}

func (b *frameBuffer) drain() []replay.Frame {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.pending
	b.pending = nil
	return out
}
