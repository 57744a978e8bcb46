package ssh

import (
	"io"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// SessionTty implements tcell.Tty over an SSH channel, so every connected
// client gets its own tcell screen.
type SessionTty struct {
	ch     io.ReadWriteCloser
	mu     sync.Mutex
	window gossh.Window
	winCh  <-chan gossh.Window
	cb     func()
}

// NewSessionTty wraps ch as a tcell Tty. pty holds the initial window size;
// winCh delivers later resizes and may be nil.
func NewSessionTty(ch io.ReadWriteCloser, pty gossh.Pty, winCh <-chan gossh.Window) *SessionTty {
	return &SessionTty{ch: ch, window: pty.Window, winCh: winCh}
}

func (t *SessionTty) Read(b []byte) (int, error)  { return t.ch.Read(b) }
func (t *SessionTty) Write(b []byte) (int, error) { return t.ch.Write(b) }
func (t *SessionTty) Close() error                { return t.ch.Close() }

// The channel is opened and closed by the SSH server, not by tcell.
func (t *SessionTty) Start() error { return nil }
func (t *SessionTty) Stop() error  { return nil }
func (t *SessionTty) Drain() error { return nil }

// WindowSize returns the latest terminal size the client reported.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers cb and starts draining the window-change channel.
// cb runs after every resize the client sends.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.cb = cb
	t.mu.Unlock()
	if t.winCh == nil {
		return
	}
	go func() {
		for win := range t.winCh {
			t.mu.Lock()
			t.window = win
			fn := t.cb
			t.mu.Unlock()
			if fn != nil {
				fn()
			}
		}
	}()
}
