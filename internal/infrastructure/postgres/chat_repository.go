package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/acrilico-stock-api/internal/domain/entity"
	"github.com/jhoicas/acrilico-stock-api/internal/domain/repository"
)

var _ repository.ChatRepository = (*ChatRepo)(nil)

// ChatRepo implementación de ChatRepository sobre PostgreSQL (append-only).
type ChatRepo struct {
	q Querier
}

// NewChatRepository construye el adaptador. Pasar pool o tx (Querier).
func NewChatRepository(q Querier) *ChatRepo {
	return &ChatRepo{q: q}
}

// Create persiste un mensaje.
func (r *ChatRepo) Create(ctx context.Context, m *entity.ChatMessage) error {
	query := `
		INSERT INTO chat_messages (id, actor_id, actor_name, text, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, m.ID, m.ActorID, m.ActorName, m.Text, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("create chat message: %w", err)
	}
	return nil
}

// ListRecent devuelve los `limit` mensajes más recientes en orden cronológico:
// se leen los N últimos DESC y se invierte el slice (patrón habitual de
// historiales con tope).
func (r *ChatRepo) ListRecent(ctx context.Context, limit int) ([]*entity.ChatMessage, error) {
	query := `
		SELECT id, actor_id, actor_name, text, created_at
		FROM chat_messages
		ORDER BY created_at DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list chat messages: %w", err)
	}
	defer rows.Close()

	var msgs []*entity.ChatMessage
	for rows.Next() {
		var m entity.ChatMessage
		if err := rows.Scan(&m.ID, &m.ActorID, &m.ActorName, &m.Text, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan chat message: %w", err)
		}
		msgs = append(msgs, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}
