// Package notify surfaces captured command output as a desktop
// notification via notify-send.
package notify

import (
	"fmt"
	"os/exec"
	"strings"
	"unicode/utf8"
)

// maxBodyLen truncates runaway command output before it reaches the
// notification daemon.
const maxBodyLen = 512

// Notifier sends desktop notifications. Implementations must tolerate an
// absent notification daemon.
type Notifier interface {
	Send(title, body string) error
}

// NotifySend invokes notify-send with the title and body as argv
// elements. No shell is involved, so the strings go through verbatim;
// only length is bounded.
type NotifySend struct{}

// Send delivers one notification. A missing notify-send binary degrades to
// a silent no-op: notifications are best-effort.
func (NotifySend) Send(title, body string) error {
	path, err := exec.LookPath("notify-send")
	if err != nil {
		return nil
	}

	cmd := exec.Command(path, sendArgs(title, body)...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("notify: send: %w", err)
	}
	return nil
}

func sendArgs(title, body string) []string {
	return []string{title, truncate(body, maxBodyLen)}
}

// Discard drops notifications, for tests and headless runs.
type Discard struct{}

// Send implements Notifier.
func (Discard) Send(string, string) error { return nil }

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "…"
}
