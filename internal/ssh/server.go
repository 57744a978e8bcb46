// Package ssh serves the game over SSH: every connection with a PTY gets
// its own tcell screen and its own game session.
package ssh

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"unicode"

	"cavecrawler/internal/config"
	"cavecrawler/internal/game"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxNameBytes = 16

// allowedTerms are the TERM values the server builds terminfo screens for.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode-256color": true,
}

const defaultTerm = "xterm-256color"

// termMu guards the process-wide TERM variable while a screen is created.
var termMu sync.Mutex

// Server hands each SSH connection a fresh game session.
type Server struct {
	cfg  *config.Config
	log  *zap.Logger
	opts []game.SessionOption
}

// NewServer creates a Server whose sessions are built from cfg.
func NewServer(cfg *config.Config, log *zap.Logger, opts ...game.SessionOption) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{cfg: cfg, log: log.Named("ssh"), opts: opts}
}

// ListenAndServe accepts SSH connections on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string, signer gossh.Signer) error {
	srv := &gossh.Server{
		Addr:        addr,
		Handler:     s.Handle,
		PtyCallback: func(gossh.Context, gossh.Pty) bool { return true },
		HostSigners: []gossh.Signer{signer},
	}
	go func() {
		<-ctx.Done()
		if err := srv.Close(); err != nil {
			s.log.Warn("ssh server close", zap.Error(err))
		}
	}()
	s.log.Info("ssh server listening", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, gossh.ErrServerClosed) {
		return err
	}
	return nil
}

// Handle runs one connection. It blocks until the player quits or the
// client disconnects.
func (s *Server) Handle(conn gossh.Session) {
	id := uuid.NewString()
	userLog := s.log.With(zap.String("user", sanitizeName(conn.User())))
	log := userLog.With(zap.String("session", id))

	pty, winCh, ok := conn.Pty()
	if !ok {
		fmt.Fprintln(conn, "This game requires a PTY. Connect with: ssh -t <host>")
		return
	}
	term := termFromEnv(pty.Term, conn.Environ())

	screen, err := newScreen(NewSessionTty(conn, pty, winCh), term)
	if err != nil {
		log.Warn("terminal setup failed", zap.String("term", term), zap.Error(err))
		fmt.Fprintf(conn, "Terminal setup failed: %v\n", err)
		return
	}
	defer screen.Fini()

	sess, err := game.Open(s.cfg, userLog, id, s.opts...)
	if err != nil {
		log.Error("open session", zap.Error(err))
		return
	}
	defer sess.Close()

	log.Info("player connected", zap.String("term", term))
	if err := game.Play(conn.Context(), screen, sess); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("session ended", zap.Error(err))
		return
	}
	log.Info("player disconnected")
}

func newScreen(tty tcell.Tty, term string) (tcell.Screen, error) {
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return screen, nil
}

// termFromEnv picks the client's terminal type: the PTY request first, then
// a TERM entry in the environment, falling back to xterm-256color when the
// value is unknown.
func termFromEnv(ptyTerm string, environ []string) string {
	term := ptyTerm
	if term == "" {
		for _, env := range environ {
			if v, ok := strings.CutPrefix(env, "TERM="); ok {
				term = v
				break
			}
		}
	}
	if !allowedTerms[term] {
		return defaultTerm
	}
	return term
}

// sanitizeName strips control characters from a client-supplied user name
// and cuts it to at most maxNameBytes without splitting a rune.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsControl(r) || r == unicode.ReplacementChar {
			continue
		}
		if b.Len()+len(string(r)) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}
