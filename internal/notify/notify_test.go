package notify

import (
	"sync"
	"testing"
	"time"
)

func TestBanner_LastShowWins(t *testing.T) {
	var b Banner
	first := b.Show("item added to the list", Success)
	second := b.Show("item removed", Danger)

	if b.Dismiss(first.Seq) {
		t.Fatalf("stale dismissal cleared the banner")
	}
	if got := b.Current(); got.Text != "item removed" || got.Severity != Danger {
		t.Fatalf("Current: got %+v", got)
	}
	if !b.Dismiss(second.Seq) {
		t.Fatalf("current dismissal was ignored")
	}
	if !b.Current().IsZero() {
		t.Fatalf("banner not cleared: %+v", b.Current())
	}
	if b.Dismiss(second.Seq) {
		t.Fatalf("double dismissal reported success")
	}
}

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, d time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return cond()
}

func TestTimer_AutoDismiss(t *testing.T) {
	var mu sync.Mutex
	var seen []Notice
	tm := NewTimer(20*time.Millisecond, func(n Notice) {
		mu.Lock()
		seen = append(seen, n)
		mu.Unlock()
	})

	tm.Notify("value changed", Success)
	if got := tm.Current(); got.Text != "value changed" {
		t.Fatalf("Current: got %+v", got)
	}
	if !waitFor(t, time.Second, func() bool { return tm.Current().IsZero() }) {
		t.Fatalf("notice never dismissed")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(seen) != 2 || seen[0].Text != "value changed" || !seen[1].IsZero() {
		t.Fatalf("onChange calls: got %+v", seen)
	}
}

func TestTimer_SupersedeCancelsEarlierDismissal(t *testing.T) {
	tm := NewTimer(80*time.Millisecond, nil)

	tm.Notify("item added to the list", Success)
	time.Sleep(50 * time.Millisecond)
	tm.Notify("please enter value", Danger)

	// The first notice's dismissal would have fired by now.
	time.Sleep(45 * time.Millisecond)
	if got := tm.Current(); got.Text != "please enter value" {
		t.Fatalf("second notice cleared early: %+v", got)
	}
	if !waitFor(t, time.Second, func() bool { return tm.Current().IsZero() }) {
		t.Fatalf("second notice never dismissed")
	}
}

func TestTimer_StopKeepsNotice(t *testing.T) {
	tm := NewTimer(10*time.Millisecond, nil)
	tm.Notify("empty list", Danger)
	tm.Stop()
	time.Sleep(40 * time.Millisecond)
	if got := tm.Current(); got.Text != "empty list" {
		t.Fatalf("Stop did not cancel dismissal: %+v", got)
	}
}

func TestNewTimer_DefaultDelay(t *testing.T) {
	if d := NewTimer(0, nil).Delay(); d != DefaultDelay {
		t.Fatalf("Delay: got %v, want %v", d, DefaultDelay)
	}
}

func TestTimer_LateCallbackIsDropped(t *testing.T) {
	var seen []Notice
	tm := NewTimer(time.Minute, func(n Notice) { seen = append(seen, n) })

	tm.changed(2, false, Notice{Text: "item removed", Seq: 2})
	tm.changed(1, false, Notice{Text: "item added to the list", Seq: 1})
	tm.changed(1, true, Notice{})
	tm.changed(2, true, Notice{})

	if len(seen) != 2 || seen[0].Seq != 2 || !seen[1].IsZero() {
		t.Fatalf("onChange calls: got %+v", seen)
	}
}

func TestTimer_ConcurrentNotifyReportsInOrder(t *testing.T) {
	var mu sync.Mutex
	var seqs []int
	tm := NewTimer(time.Minute, func(n Notice) {
		mu.Lock()
		seqs = append(seqs, n.Seq)
		mu.Unlock()
	})
	defer tm.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tm.Notify("value changed", Success)
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	for i := 1; i < len(seqs); i++ {
		if seqs[i] <= seqs[i-1] {
			t.Fatalf("onChange out of order: %v", seqs)
		}
	}
	if last := seqs[len(seqs)-1]; last != tm.Current().Seq {
		t.Fatalf("last reported seq %d, on display %d", last, tm.Current().Seq)
	}
}
