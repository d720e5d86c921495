package web

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/slide2048/internal/board"
	"github.com/vovakirdan/slide2048/internal/session"
	"github.com/vovakirdan/slide2048/internal/storage"
)

const maxMessageSize = 1024

// client is one browser connection playing one game.
// Messages are handled one at a time by run.
type client struct {
	conn     *Conn
	sess     *session.Session
	gameID   string
	logger   *log.Logger
	cfg      Config
	writeErr error
}

func (s *Server) handleSocket(w http.ResponseWriter, r *http.Request) {
	v, ok := webVariant(r.URL.Query().Get("game"))
	if !ok {
		http.Error(w, "unknown game", http.StatusNotFound)
		return
	}

	if !s.track() {
		http.Error(w, "server shutting down", http.StatusServiceUnavailable)
		return
	}
	defer s.wg.Done()

	conn, err := s.upgrader.Upgrade(w, r)
	if err != nil {
		// The upgrader already wrote the HTTP error.
		s.logger.Debug("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	logger := s.logger.With("remote", r.RemoteAddr, "game", v.ID)
	c := &client{
		conn:   conn,
		gameID: v.ID,
		logger: logger,
		cfg:    s.config,
	}
	c.sess = session.New(session.Options{
		GameID:    v.ID,
		Config:    v.Apply(s.config.Game),
		Store:     scoreStore(s.config.Store),
		Presenter: board.PresenterFunc(c.present),
		Seed:      s.config.Seed,
		Logger:    logger,
	})

	logger.Info("websocket connected")
	start := time.Now()
	c.run(s.ctx.Done())
	logger.Info("websocket closed", "duration", time.Since(start).Round(time.Second))
}

// scoreStore keeps a nil *storage.Store from becoming a non-nil interface.
func scoreStore(store *storage.Store) session.ScoreStore {
	if store == nil {
		return nil
	}
	return store
}

// present sends every engine snapshot to the browser.
func (c *client) present(snap board.Snapshot) {
	c.send(Message{Type: TypeState, State: newState(c.gameID, snap)})
}

// send writes a message, remembering the first failure so the read loop
// can stop.
func (c *client) send(m Message) {
	if c.writeErr != nil {
		return
	}
	if err := c.conn.WriteMessage(m, c.cfg.WriteWait); err != nil {
		c.writeErr = err
	}
}

// run reads messages until the peer leaves, a write fails or done closes.
func (c *client) run(done <-chan struct{}) {
	defer c.conn.Close()

	c.conn.SetReadLimit(maxMessageSize)
	//nolint:errcheck // A failed deadline surfaces on the next read
	c.conn.SetReadDeadline(time.Now().Add(c.cfg.ReadWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.cfg.ReadWait))
	})

	stop := make(chan struct{})
	defer close(stop)
	go c.pingLoop(done, stop)

	// The session sent its first state before the loop started.
	if c.writeErr != nil {
		c.logger.Warn("could not send initial state", "error", c.writeErr)
		return
	}

	for {
		var m Message
		if err := c.conn.ReadMessage(&m); err != nil {
			c.logReadError(err)
			return
		}
		if err := c.conn.SetReadDeadline(time.Now().Add(c.cfg.ReadWait)); err != nil {
			return
		}

		c.handle(m)
		if c.writeErr != nil {
			c.logger.Warn("write failed", "error", c.writeErr)
			return
		}
	}
}

// pingLoop keeps the connection alive and closes it on server shutdown.
func (c *client) pingLoop(done <-chan struct{}, stop <-chan struct{}) {
	ticker := time.NewTicker(c.cfg.PingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := c.conn.WritePing(c.cfg.WriteWait); err != nil {
				return
			}
		case <-done:
			//nolint:errcheck // Best-effort goodbye
			c.conn.WriteClose("server shutting down", c.cfg.WriteWait)
			c.conn.Close()
			return
		case <-stop:
			return
		}
	}
}

func (c *client) logReadError(err error) {
	var netErr interface{ Timeout() bool }
	switch {
	case c.conn.IsNormalClose(err):
		c.logger.Debug("peer closed connection")
	case errors.As(err, &netErr) && netErr.Timeout():
		c.logger.Info("connection timed out")
	default:
		c.logger.Debug("read failed", "error", err)
	}
}

// handle applies one client message to the session.
func (c *client) handle(m Message) {
	var (
		out session.Outcome
		err error
	)

	switch m.Type {
	case TypeMove:
		dir, parseErr := board.ParseDirection(m.Direction)
		if parseErr != nil {
			c.sendError(parseErr)
			return
		}
		out, err = c.sess.Move(dir)

	case TypeSwipe:
		if m.Swipe == nil {
			c.sendError(errors.New("swipe message without coordinates"))
			return
		}
		out, err = c.sess.Swipe(m.Swipe.Delta())

	case TypeRestart:
		c.sess.Reset(0)
		return

	default:
		c.sendError(fmt.Errorf("unknown message type %q", m.Type))
		return
	}

	if err != nil {
		c.sendError(err)
		return
	}

	// The move that ended the game carries the ranked list.
	if out.Changed && out.Terminal {
		c.send(Message{
			Type:       TypeGameOver,
			State:      newState(c.gameID, c.sess.Snapshot()),
			HighScores: out.HighScores,
		})
	}
}

func (c *client) sendError(err error) {
	c.send(Message{Type: TypeError, Error: err.Error()})
}
