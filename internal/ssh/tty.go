// Package ssh adapts a gliderlabs SSH session into a tcell terminal so the
// rite runs over the wire exactly as it does locally.
package ssh

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// SessionTty implements tcell.Tty on top of one SSH session. Every seeker
// who connects gets their own SessionTty and screen.
type SessionTty struct {
	session gossh.Session

	mu     sync.Mutex
	window gossh.Window
	notify func()
}

// NewSessionTty wraps an SSH session as a tcell Tty. pty carries the
// initial window size; winCh delivers resizes, which are forwarded to
// tcell until the channel closes with the session.
func NewSessionTty(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *SessionTty {
	t := &SessionTty{session: s, window: pty.Window}
	go func() {
		for win := range winCh {
			t.mu.Lock()
			t.window = win
			cb := t.notify
			t.mu.Unlock()
			if cb != nil {
				cb()
			}
		}
	}()
	return t
}

// Read pulls keyboard bytes from the session.
func (t *SessionTty) Read(b []byte) (int, error) { return t.session.Read(b) }

// Write pushes rendered cells to the session.
func (t *SessionTty) Write(b []byte) (int, error) { return t.session.Write(b) }

// Close closes the underlying SSH channel.
func (t *SessionTty) Close() error { return t.session.Close() }

// Start is a no-op; the SSH channel is already open when the Tty is built.
func (t *SessionTty) Start() error { return nil }

// Stop is a no-op; the channel's lifetime belongs to the server handler.
func (t *SessionTty) Stop() error { return nil }

// Drain is a no-op; writes are not buffered on our side.
func (t *SessionTty) Drain() error { return nil }

// WindowSize reports the latest size announced by the client.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers tcell's resize callback.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.notify = cb
	t.mu.Unlock()
}
