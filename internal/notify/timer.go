package notify

import (
	"sync"
	"time"
)

// Timer is a Banner that dismisses itself after a delay. Showing a new
// notice stops the previous dismissal before scheduling its own.
type Timer struct {
	mu       sync.Mutex
	banner   Banner
	delay    time.Duration
	pending  *time.Timer
	onChange func(Notice)

	cbMu      sync.Mutex
	delivered int // event key of the last onChange call
}

// NewTimer returns a Timer. A non-positive delay uses DefaultDelay.
// onChange, if set, runs after every show and dismissal with the notice
// now on display (zero after a dismissal). It runs without the banner lock
// held, one call at a time, and a call overtaken by a later event is
// dropped.
func NewTimer(delay time.Duration, onChange func(Notice)) *Timer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Timer{delay: delay, onChange: onChange}
}

// Notify shows text and schedules its dismissal.
func (t *Timer) Notify(text string, sev Severity) {
	t.mu.Lock()
	if t.pending != nil {
		t.pending.Stop()
	}
	n := t.banner.Show(text, sev)
	seq := n.Seq
	t.pending = time.AfterFunc(t.delay, func() { t.expire(seq) })
	t.mu.Unlock()

	t.changed(seq, false, n)
}

func (t *Timer) expire(seq int) {
	t.mu.Lock()
	ok := t.banner.Dismiss(seq)
	if ok {
		t.pending = nil
	}
	t.mu.Unlock()

	if ok {
		t.changed(seq, true, Notice{})
	}
}

// changed reports the show or dismissal of notice seq. Events are ordered
// by seq, and a dismissal follows the show of the same seq.
func (t *Timer) changed(seq int, dismissed bool, n Notice) {
	if t.onChange == nil {
		return
	}
	key := seq * 2
	if dismissed {
		key++
	}
	t.cbMu.Lock()
	defer t.cbMu.Unlock()
	if key <= t.delivered {
		return
	}
	t.delivered = key
	t.onChange(n)
}

// Current returns the notice on display, or a zero Notice.
func (t *Timer) Current() Notice {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.banner.Current()
}

// Delay returns the display time of a notice.
func (t *Timer) Delay() time.Duration { return t.delay }

// Stop cancels a pending dismissal. The current notice stays up.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.pending != nil {
		t.pending.Stop()
		t.pending = nil
	}
}
