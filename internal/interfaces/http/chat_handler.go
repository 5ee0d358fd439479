package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/acrilico-stock-api/internal/application/chat"
	"github.com/jhoicas/acrilico-stock-api/internal/application/dto"
	"github.com/jhoicas/acrilico-stock-api/internal/domain"
)

// ChatHandler maneja el registro de comunicación del equipo.
type ChatHandler struct {
	uc *chat.ChatUseCase
}

// NewChatHandler construye el handler.
func NewChatHandler(uc *chat.ChatUseCase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

// History devuelve los mensajes recientes en orden cronológico.
// GET /api/chat/messages
func (h *ChatHandler) History(c *fiber.Ctx) error {
	msgs, err := h.uc.History(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(msgs), "messages": msgs})
}

// Post agrega un mensaje firmado por la sesión.
// POST /api/chat/messages
func (h *ChatHandler) Post(c *fiber.Ctx) error {
	var in dto.PostMessageRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	msg, err := h.uc.Post(c.Context(), GetUserID(c), GetDisplayName(c), in.Text)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "texto vacío o demasiado largo"})
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(msg)
}
