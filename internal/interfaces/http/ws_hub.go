package http

import (
	"sync"

	"github.com/gofiber/contrib/websocket"

	"github.com/jhoicas/acrilico-stock-api/pkg/logger"
)

// WSClient es una conexión suscrita al espejo en vivo.
type WSClient struct {
	Conn     *websocket.Conn
	UserID   string
	UserName string
	Send     chan []byte
}

// WSHub mantiene el conjunto de clientes suscritos y difunde los snapshots.
// Implementa live.Broadcaster.
type WSHub struct {
	clients    map[*WSClient]bool
	register   chan *WSClient
	unregister chan *WSClient
	broadcast  chan []byte
	mu         sync.Mutex
	done       chan struct{}
	log        *logger.Logger
}

// NewWSHub construye el hub.
func NewWSHub(log *logger.Logger) *WSHub {
	return &WSHub{
		clients:    make(map[*WSClient]bool),
		register:   make(chan *WSClient),
		unregister: make(chan *WSClient),
		broadcast:  make(chan []byte, 256),
		done:       make(chan struct{}),
		log:        log,
	}
}

// Run atiende registros, bajas y difusión hasta Shutdown. Ejecutar en goroutine.
func (h *WSHub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mu.Unlock()
			h.log.Debug().Str("user", client.UserName).Int("total", total).Msg("ws: cliente conectado")

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			total := len(h.clients)
			h.mu.Unlock()
			h.log.Debug().Str("user", client.UserName).Int("total", total).Msg("ws: cliente desconectado")

		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.Send <- message:
				default:
					// Cliente lento: se desconecta, al reconectar recibe el snapshot completo
					close(client.Send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()

		case <-h.done:
			return
		}
	}
}

// Shutdown detiene el loop del hub.
func (h *WSHub) Shutdown() {
	close(h.done)
}

// Register suscribe un cliente.
func (h *WSHub) Register(client *WSClient) {
	h.register <- client
}

// Unregister da de baja un cliente.
func (h *WSHub) Unregister(client *WSClient) {
	h.unregister <- client
}

// Broadcast difunde un payload serializado a todos los clientes conectados.
func (h *WSHub) Broadcast(payload []byte) {
	h.broadcast <- payload
}
