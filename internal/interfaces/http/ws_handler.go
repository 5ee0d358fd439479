package http

import (
	"context"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/acrilico-stock-api/internal/application/dto"
	"github.com/jhoicas/acrilico-stock-api/internal/application/live"
	"github.com/jhoicas/acrilico-stock-api/pkg/jwt"
)

const wsReadDeadline = 60 * time.Second

// WSHandler atiende el websocket del espejo en vivo. Al conectar entrega el
// snapshot inicial de las tres colecciones; después, cada cambio confirmado
// llega como snapshot de reemplazo vía el hub.
type WSHandler struct {
	hub       *WSHub
	mirror    *live.Mirror
	jwtSecret string
}

// NewWSHandler construye el handler.
func NewWSHandler(hub *WSHub, mirror *live.Mirror, jwtSecret string) *WSHandler {
	return &WSHandler{hub: hub, mirror: mirror, jwtSecret: jwtSecret}
}

// Upgrade valida el token (query param, los websockets no llevan headers
// custom desde el navegador) y sube la conexión.
func (h *WSHandler) Upgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	token := c.Query("token")
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token requerido"})
	}
	userID, displayName, err := jwt.Parse(h.jwtSecret, token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido"})
	}
	c.Locals(LocalUserID, userID)
	c.Locals(LocalDisplayName, displayName)
	return websocket.New(h.handleConnection)(c)
}

func (h *WSHandler) handleConnection(c *websocket.Conn) {
	userID, _ := c.Locals(LocalUserID).(string)
	displayName, _ := c.Locals(LocalDisplayName).(string)

	client := &WSClient{
		Conn:     c,
		UserID:   userID,
		UserName: displayName,
		Send:     make(chan []byte, 256),
	}

	h.hub.Register(client)
	defer h.hub.Unregister(client)

	// Snapshot inicial de las tres colecciones, antes de cualquier difusión
	ctx := context.Background()
	for _, collection := range []string{live.CollectionSheets, live.CollectionMovements, live.CollectionChat} {
		payload, err := h.mirror.Snapshot(ctx, collection)
		if err != nil {
			return
		}
		select {
		case client.Send <- payload:
		default:
			return
		}
	}

	// Writer goroutine
	go func() {
		defer c.Close()
		for msg := range client.Send {
			if err := c.WriteMessage(websocket.TextMessage, msg); err != nil {
				break
			}
		}
	}()

	// Reader loop: solo keepalive; el cliente no manda datos por este canal
	_ = c.SetReadDeadline(time.Now().Add(wsReadDeadline))
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
		_ = c.SetReadDeadline(time.Now().Add(wsReadDeadline))
	}
}
