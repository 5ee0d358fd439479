package repository

import (
	"context"

	"github.com/jhoicas/acrilico-stock-api/internal/domain/entity"
)

// ChatRepository define el puerto de persistencia para el chat (append-only).
type ChatRepository interface {
	Create(ctx context.Context, msg *entity.ChatMessage) error
	// ListRecent devuelve los `limit` mensajes más recientes en orden
	// cronológico (el más antiguo primero).
	ListRecent(ctx context.Context, limit int) ([]*entity.ChatMessage, error)
}
