// Package chat contiene el caso de uso del registro de comunicación del equipo.
package chat

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/jhoicas/acrilico-stock-api/internal/domain"
	"github.com/jhoicas/acrilico-stock-api/internal/domain/entity"
	"github.com/jhoicas/acrilico-stock-api/internal/domain/repository"
)

// ChatNotifier publica que el historial de chat cambió (espejo en vivo).
type ChatNotifier interface {
	ChatChanged(ctx context.Context)
}

// ChatUseCase alta y lectura de mensajes. Los mensajes son inmutables y el
// historial se lee capado a los 50 más recientes.
type ChatUseCase struct {
	repo     repository.ChatRepository
	notifier ChatNotifier
}

// NewChatUseCase construye el caso de uso. notifier puede ser nil.
func NewChatUseCase(repo repository.ChatRepository, notifier ChatNotifier) *ChatUseCase {
	return &ChatUseCase{repo: repo, notifier: notifier}
}

// Post agrega un mensaje firmado por el actor de la sesión.
func (uc *ChatUseCase) Post(ctx context.Context, actorID, actorName, text string) (*entity.ChatMessage, error) {
	text = strings.TrimSpace(text)
	// El tope es en caracteres, no en bytes (los mensajes llevan acentos).
	if text == "" || utf8.RuneCountInString(text) > entity.ChatMessageMaxLen {
		return nil, domain.ErrInvalidInput
	}
	msg := &entity.ChatMessage{
		ID:        uuid.New().String(),
		ActorID:   actorID,
		ActorName: actorName,
		Text:      text,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, msg); err != nil {
		return nil, err
	}
	if uc.notifier != nil {
		uc.notifier.ChatChanged(ctx)
	}
	return msg, nil
}

// History devuelve los mensajes recientes en orden cronológico.
func (uc *ChatUseCase) History(ctx context.Context) ([]*entity.ChatMessage, error) {
	return uc.repo.ListRecent(ctx, entity.ChatHistoryLimit)
}
