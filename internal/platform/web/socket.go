package web

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Upgrader creates Conns from HTTP requests by wrapping a gorilla Upgrader.
type Upgrader struct {
	*websocket.Upgrader
}

// NewUpgrader returns an upgrader that accepts same-origin browsers.
func NewUpgrader() *Upgrader {
	u := &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}
	return &Upgrader{u}
}

// Upgrade creates a Conn from the http request.
func (u *Upgrader) Upgrade(w http.ResponseWriter, r *http.Request) (*Conn, error) {
	c, err := u.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		return nil, err
	}
	return &Conn{Conn: c}, nil
}

// Conn wraps a gorilla connection. Writes are serialized so the ping loop
// and the session loop can share it.
type Conn struct {
	*websocket.Conn
	writeMu sync.Mutex
}

// ReadMessage reads the next JSON message.
func (c *Conn) ReadMessage(m *Message) error {
	return c.Conn.ReadJSON(m)
}

// WriteMessage writes the message as JSON.
func (c *Conn) WriteMessage(m Message, wait time.Duration) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := c.Conn.SetWriteDeadline(time.Now().Add(wait)); err != nil {
		return err
	}
	return c.Conn.WriteJSON(m)
}

// WritePing writes a ping control message.
func (c *Conn) WritePing(wait time.Duration) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.Conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wait))
}

// WriteClose writes a normal close message. The connection is NOT closed.
func (c *Conn) WriteClose(reason string, wait time.Duration) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	data := websocket.FormatCloseMessage(websocket.CloseNormalClosure, reason)
	return c.Conn.WriteControl(websocket.CloseMessage, data, time.Now().Add(wait))
}

// IsNormalClose reports whether err is an expected close from the peer.
func (*Conn) IsNormalClose(err error) bool {
	var closeErr *websocket.CloseError
	if !errors.As(err, &closeErr) {
		return false
	}
	return !websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived)
}
