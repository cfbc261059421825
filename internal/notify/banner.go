// Package notify holds the transient status message shown after each
// list operation.
package notify

import "time"

// DefaultDelay is how long a notice stays up.
const DefaultDelay = time.Second

// Severity tags a notice for styling.
type Severity string

const (
	Success Severity = "success"
	Danger  Severity = "danger"
)

// Notice is one status message. Seq increases with every Show so a
// scheduled dismissal can tell whether it has been superseded.
type Notice struct {
	Text     string
	Severity Severity
	Seq      int
}

func (n Notice) IsZero() bool { return n.Text == "" && n.Severity == "" }

// Banner holds the latest notice. It has no clock of its own; callers
// schedule Dismiss with the Seq returned by Show.
type Banner struct {
	current Notice
	seq     int
}

// Show replaces the current notice immediately.
func (b *Banner) Show(text string, sev Severity) Notice {
	b.seq++
	b.current = Notice{Text: text, Severity: sev, Seq: b.seq}
	return b.current
}

// Dismiss clears the banner if seq still names the current notice.
func (b *Banner) Dismiss(seq int) bool {
	if b.current.IsZero() || b.current.Seq != seq {
		return false
	}
	b.current = Notice{}
	return true
}

func (b *Banner) Current() Notice { return b.current }
