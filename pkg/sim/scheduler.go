package sim

// Handle identifies a requested frame callback so it can be cancelled
type Handle uint64

// FrameFunc is called with the frame timestamp in milliseconds
type FrameFunc func(timestamp float64)

// Scheduler is the host's per-frame callback mechanism
type Scheduler interface {
	RequestFrame(fn FrameFunc) Handle
	CancelFrame(h Handle)
}

type pendingFrame struct {
	handle Handle
	fn     FrameFunc
}

// FrameScheduler queues frame callbacks until the host fires the next frame.
// Callbacks requested while a frame is firing run on the following frame.
// It is not safe for concurrent use; the game loop owns it.
type FrameScheduler struct {
	last    Handle
	pending []pendingFrame
}

func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

func (f *FrameScheduler) RequestFrame(fn FrameFunc) Handle {
	f.last++
	f.pending = append(f.pending, pendingFrame{handle: f.last, fn: fn})
	return f.last
}

// CancelFrame drops a pending callback. Unknown or already fired handles
// are ignored.
func (f *FrameScheduler) CancelFrame(h Handle) {
	for i, p := range f.pending {
		if p.handle == h {
			f.pending = append(f.pending[:i], f.pending[i+1:]...)
			return
		}
	}
}

// Pending reports how many callbacks are waiting for the next frame
func (f *FrameScheduler) Pending() int {
	return len(f.pending)
}

// Fire runs every callback queued before this call, in request order.
func (f *FrameScheduler) Fire(timestamp float64) {
	batch := f.pending
	f.pending = nil
	for _, p := range batch {
		p.fn(timestamp)
	}
}
