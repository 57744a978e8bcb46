package web

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// ErrSendQueueFull is returned when a client reads too slowly to keep up.
var ErrSendQueueFull = errors.New("send queue full")

const sendQueueSize = 64

// Connection wraps a websocket with a buffered outgoing queue drained by
// WritePump.
type Connection struct {
	ws   *websocket.Conn
	send chan []byte
	log  *zap.Logger

	closeOnce sync.Once
	done      chan struct{}
}

// NewConnection wraps ws.
func NewConnection(ws *websocket.Conn, log *zap.Logger) *Connection {
	return &Connection{
		ws:   ws,
		send: make(chan []byte, sendQueueSize),
		log:  log,
		done: make(chan struct{}),
	}
}

// ReadPump hands every incoming text message to handle until the client
// goes away. It closes the connection on return.
func (c *Connection) ReadPump(handle func(msg []byte)) {
	defer c.Close()
	for {
		_, msg, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Warn("websocket read", zap.Error(err))
			}
			return
		}
		handle(msg)
	}
}

// WritePump writes queued messages until the connection is closed. Messages
// queued before Close are still delivered ahead of the close frame.
func (c *Connection) WritePump() {
	defer c.ws.Close()
	for {
		select {
		case msg := <-c.send:
			if !c.write(msg) {
				return
			}
		case <-c.done:
			for drained := false; !drained; {
				select {
				case msg := <-c.send:
					if !c.write(msg) {
						return
					}
				default:
					drained = true
				}
			}
			_ = c.ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}

func (c *Connection) write(msg []byte) bool {
	if err := c.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
		c.log.Debug("websocket write", zap.Error(err))
		c.Close()
		return false
	}
	return true
}

// Send queues v as JSON. A full queue closes the connection.
func (c *Connection) Send(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	select {
	case <-c.done:
		return websocket.ErrCloseSent
	case c.send <- data:
		return nil
	default:
		c.Close()
		return ErrSendQueueFull
	}
}

// Close stops WritePump. It is safe to call more than once.
func (c *Connection) Close() {
	c.closeOnce.Do(func() { close(c.done) })
}
