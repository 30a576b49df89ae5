package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rafabene/agendasaude-backend/internal/domain/ports"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBufferSize = 32
	broadcastSize  = 256
)

// Event é a mensagem enviada aos assinantes da agenda
type Event struct {
	Type       string    `json:"type"`
	Data       any       `json:"data"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Hub distribui eventos da agenda para as conexões websocket abertas.
// Implementa ports.EventPublisher.
type Hub struct {
	clients    map[*client]struct{}
	register   chan *client
	unregister chan *client
	broadcast  chan []byte
	done       chan struct{}
	upgrader   websocket.Upgrader
	count      atomic.Int64
	logger     ports.Logger
}

type client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// NewHub cria um Hub; checkOrigin nil aceita qualquer origem
func NewHub(logger ports.Logger, checkOrigin func(r *http.Request) bool) *Hub {
	if checkOrigin == nil {
		checkOrigin = func(*http.Request) bool { return true }
	}

	return &Hub{
		clients:    make(map[*client]struct{}),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte, broadcastSize),
		done:       make(chan struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin,
		},
		logger: logger,
	}
}

// Run processa registros e broadcasts até o contexto ser cancelado.
// Deve ser chamado uma única vez.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				h.remove(c)
			}
			return
		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.count.Add(1)
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				h.remove(c)
			}
		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					// Cliente lento: desconecta em vez de travar o hub
					h.logger.Warn("dropping slow websocket client")
					h.remove(c)
				}
			}
		}
	}
}

func (h *Hub) remove(c *client) {
	delete(h.clients, c)
	close(c.send)
	h.count.Add(-1)
}

// ClientCount retorna o número de conexões registradas
func (h *Hub) ClientCount() int {
	return int(h.count.Load())
}

// Publish enfileira o evento sem bloquear; se a fila estiver cheia o evento é descartado
func (h *Hub) Publish(eventType string, payload any) {
	msg, err := json.Marshal(Event{Type: eventType, Data: payload, OccurredAt: time.Now().UTC()})
	if err != nil {
		h.logger.Error("failed to marshal event", "type", eventType, "error", err)
		return
	}

	select {
	case h.broadcast <- msg:
	default:
		h.logger.Warn("event dropped, broadcast queue full", "type", eventType)
	}
}

// ServeWS faz o upgrade da conexão e registra o assinante
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	c := &client{hub: h, conn: conn, send: make(chan []byte, sendBufferSize)}

	select {
	case h.register <- c:
	case <-h.done:
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
		return conn.Close()
	}

	go c.writePump()
	go c.readPump()

	return nil
}

// readPump só existe para processar pongs e detectar desconexão
func (c *client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
