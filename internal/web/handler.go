// Package web serves the game to browsers over a websocket: the client
// sends key events and gets a frame back after each one.
package web

import (
	"encoding/json"
	"net/http"

	"cavecrawler/internal/config"
	"cavecrawler/internal/game"
	"cavecrawler/internal/render"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Message types sent to the client.
const (
	TypeFrame = "frame"
	TypeError = "error"
)

// Message is the envelope of everything sent to the client.
type Message struct {
	Type    string        `json:"type"`
	Session string        `json:"session,omitempty"`
	Frame   *render.Frame `json:"frame,omitempty"`
	Error   string        `json:"error,omitempty"`
}

// Handler upgrades requests to websockets and runs one game session per
// connection.
type Handler struct {
	cfg      *config.Config
	log      *zap.Logger
	opts     []game.SessionOption
	upgrader websocket.Upgrader
}

// NewHandler creates a Handler whose sessions are built from cfg.
func NewHandler(cfg *config.Config, log *zap.Logger, opts ...game.SessionOption) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		cfg:  cfg,
		log:  log.Named("web"),
		opts: opts,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 16 * 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade", zap.Error(err))
		return
	}
	id := uuid.NewString()
	log := h.log.With(zap.String("session", id), zap.String("remote", r.RemoteAddr))
	conn := NewConnection(ws, log)
	go conn.WritePump()

	sess, err := game.Open(h.cfg, h.log, id, h.opts...)
	if err != nil {
		log.Error("open session", zap.Error(err))
		_ = conn.Send(Message{Type: TypeError, Error: "could not start a game"})
		conn.Close()
		return
	}
	defer sess.Close()

	log.Info("client connected")
	first := sess.Frame()
	if err := conn.Send(Message{Type: TypeFrame, Session: id, Frame: &first}); err != nil {
		return
	}
	conn.ReadPump(func(msg []byte) {
		var in game.Input
		if err := json.Unmarshal(msg, &in); err != nil {
			log.Debug("bad input", zap.ByteString("msg", msg), zap.Error(err))
			_ = conn.Send(Message{Type: TypeError, Error: "malformed input"})
			return
		}
		if in.Action() == game.ActionNone {
			return
		}
		f, err := sess.HandleInput(in)
		if err != nil {
			_ = conn.Send(Message{Type: TypeError, Error: err.Error()})
		}
		_ = conn.Send(Message{Type: TypeFrame, Session: id, Frame: &f})
	})
	log.Info("client disconnected")
}
