// Package idle tracks user activity and decides when the menu should
// auto-close. The host polls on a short interval; the monitor itself owns
// no timer.
package idle

import "time"

// PollInterval is the suggested cadence for the host's idle check.
const PollInterval = 100 * time.Millisecond

// Monitor compares time-since-last-activity against a threshold. A zero
// threshold disables auto-close entirely.
type Monitor struct {
	threshold    time.Duration
	lastActivity time.Time
	stopped      bool
}

// NewMonitor builds a monitor with the configured idle threshold.
func NewMonitor(threshold time.Duration, now time.Time) *Monitor {
	return &Monitor{threshold: threshold, lastActivity: now}
}

// Enabled reports whether auto-close is active at all.
func (m *Monitor) Enabled() bool {
	return m.threshold > 0 && !m.stopped
}

// Touch records user activity (pointer motion, click, key press, scroll).
func (m *Monitor) Touch(now time.Time) {
	m.lastActivity = now
}

// Expired reports whether the idle threshold has been exceeded. Once it
// fires the monitor stops, so the host polls no further.
func (m *Monitor) Expired(now time.Time) bool {
	if !m.Enabled() {
		return false
	}
	if now.Sub(m.lastActivity) >= m.threshold {
		m.stopped = true
		return true
	}
	return false
}

// Stop halts polling, e.g. when the menu is already closing.
func (m *Monitor) Stop() {
	m.stopped = true
}
