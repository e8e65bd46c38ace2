package hub

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"auction-room/internal/auth"
	"auction-room/utils"
)

const (
	writeWait    = 10 * time.Second
	pongWait     = 60 * time.Second
	pingInterval = 30 * time.Second
	sendBuffer   = 32
)

// Client is one websocket connection's room-side state. Identity is set on
// the first successful join and reused for subsequent rooms on the same
// connection.
type Client struct {
	ID   string
	conn *websocket.Conn
	send chan Envelope

	mu        sync.RWMutex
	principal auth.Principal
	authed    bool
	closeOnce sync.Once
}

// NewClient wraps an upgraded websocket connection.
func NewClient(id string, conn *websocket.Conn) *Client {
	return &Client{
		ID:   id,
		conn: conn,
		send: make(chan Envelope, sendBuffer),
	}
}

// SetPrincipal records the authenticated identity behind this connection.
func (c *Client) SetPrincipal(p auth.Principal) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.principal = p
	c.authed = true
}

// Principal returns the identity and whether the client has authenticated.
func (c *Client) Principal() (auth.Principal, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.principal, c.authed
}

// TrySend queues an envelope without blocking. A full buffer means the
// consumer is too slow; the caller decides whether to drop the client.
func (c *Client) TrySend(env Envelope) bool {
	defer func() {
		// Sending on a closed channel after disconnect is a benign race.
		recover() //nolint:errcheck
	}()
	select {
	case c.send <- env:
		return true
	default:
		return false
	}
}

// close shuts the send channel exactly once, ending the write pump.
func (c *Client) close() {
	c.closeOnce.Do(func() {
		close(c.send)
	})
}

// WritePump flushes queued envelopes to the connection and keeps it alive
// with pings. Must run in its own goroutine, one per client.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case env, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(env); err != nil {
				utils.Warn("client write failed", map[string]any{"client_id": c.ID, "error": err.Error()})
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ReadEnvelope reads the next inbound frame, refreshing the read deadline.
func (c *Client) ReadEnvelope() (Envelope, error) {
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	var env Envelope
	if err := c.conn.ReadJSON(&env); err != nil {
		return Envelope{}, err
	}
	return env, nil
}
