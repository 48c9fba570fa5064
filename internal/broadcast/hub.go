package broadcast

import (
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	writeWait = 10 * time.Second
	// cards queued per display before it is considered stalled
	sendBuffer = 4
)

type display struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub is a Publisher for browser displays connected over websocket. New
// connections immediately receive the last published payload. Every display
// has its own writer so a stalled socket never holds up the others.
type Hub struct {
	mu       sync.Mutex
	displays map[*websocket.Conn]*display
	last     []byte
}

var _ Publisher = (*Hub)(nil)

func NewHub() *Hub {
	return &Hub{displays: map[*websocket.Conn]*display{}}
}

// Add registers conn and queues the current card, if any.
func (h *Hub) Add(conn *websocket.Conn) {
	d := h.register(conn)
	go h.writeLoop(d)
}

func (h *Hub) register(conn *websocket.Conn) *display {
	d := &display{conn: conn, send: make(chan []byte, sendBuffer)}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.displays[conn] = d
	if h.last != nil {
		d.send <- h.last
	}
	log.Info().Int("displays", len(h.displays)).Msg("display connected")
	return d
}

// Remove unregisters and closes conn.
func (h *Hub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if d, ok := h.displays[conn]; ok {
		h.drop(d)
		log.Info().Int("displays", len(h.displays)).Msg("display disconnected")
	}
}

func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.displays)
}

// Publish queues payload for every display without waiting on the sockets.
// A display whose queue is full is dropped; the topic is ignored.
func (h *Hub) Publish(topic string, payload []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = payload
	for _, d := range h.displays {
		select {
		case d.send <- payload:
		default:
			log.Warn().Str("remote", d.conn.RemoteAddr().String()).Msg("dropping stalled display")
			h.drop(d)
		}
	}
	return nil
}

func (h *Hub) writeLoop(d *display) {
	for payload := range d.send {
		d.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := d.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Warn().Err(err).Str("remote", d.conn.RemoteAddr().String()).Msg("dropping display")
			h.Remove(d.conn)
			return
		}
	}
}

// drop must be called with h.mu held.
func (h *Hub) drop(d *display) {
	delete(h.displays, d.conn)
	close(d.send)
	d.conn.Close()
}

func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, d := range h.displays {
		h.drop(d)
	}
}

// Fanout publishes to several publishers, reporting every failure.
type Fanout []Publisher

func (f Fanout) Publish(topic string, payload []byte) error {
	var errs []error
	for _, p := range f {
		if err := p.Publish(topic, payload); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f Fanout) Close() {
	for _, p := range f {
		p.Close()
	}
}
