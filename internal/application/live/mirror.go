// Package live implementa el espejo de datos en vivo: cada escritura confirmada
// republica el snapshot completo de la colección tocada a todos los clientes
// suscritos, que reemplazan su estado local sin parcheo incremental.
package live

import (
	"context"
	"encoding/json"

	"github.com/jhoicas/acrilico-stock-api/internal/domain/entity"
	"github.com/jhoicas/acrilico-stock-api/internal/domain/repository"
	"github.com/jhoicas/acrilico-stock-api/pkg/logger"
)

// Colecciones espejadas.
const (
	CollectionSheets    = "sheets"
	CollectionMovements = "movements"
	CollectionChat      = "chat_messages"
)

// Event es el mensaje que viaja por el websocket: la colección que cambió y su
// snapshot completo del lado servidor.
type Event struct {
	Collection string `json:"collection"`
	Data       any    `json:"data"`
}

// Broadcaster envía un mensaje serializado a todos los clientes conectados.
type Broadcaster interface {
	Broadcast(payload []byte)
}

// Mirror relee el snapshot de una colección tras cada cambio y lo difunde.
// Las lecturas respetan el contrato de cada colección: láminas sin orden,
// movimientos del más reciente al más antiguo, chat cronológico capado a 50.
type Mirror struct {
	hub       Broadcaster
	sheetRepo repository.SheetRepository
	movRepo   repository.MovementRepository
	chatRepo  repository.ChatRepository
	log       *logger.Logger
}

// NewMirror construye el espejo.
func NewMirror(
	hub Broadcaster,
	sheetRepo repository.SheetRepository,
	movRepo repository.MovementRepository,
	chatRepo repository.ChatRepository,
	log *logger.Logger,
) *Mirror {
	return &Mirror{hub: hub, sheetRepo: sheetRepo, movRepo: movRepo, chatRepo: chatRepo, log: log}
}

// SheetsChanged republica el snapshot de láminas.
func (m *Mirror) SheetsChanged(ctx context.Context) { m.publish(ctx, CollectionSheets) }

// MovementsChanged republica el snapshot de movimientos.
func (m *Mirror) MovementsChanged(ctx context.Context) { m.publish(ctx, CollectionMovements) }

// ChatChanged republica el historial de chat.
func (m *Mirror) ChatChanged(ctx context.Context) { m.publish(ctx, CollectionChat) }

// Snapshot serializa el estado actual de una colección como Event.
// Se usa también al conectar un cliente para entregar el estado inicial.
func (m *Mirror) Snapshot(ctx context.Context, collection string) ([]byte, error) {
	var data any
	var err error
	switch collection {
	case CollectionSheets:
		var sheets []*entity.Sheet
		sheets, err = m.sheetRepo.List(ctx)
		data = sheets
	case CollectionMovements:
		var movs []*entity.StockMovement
		movs, err = m.movRepo.ListRecent(ctx, 0)
		data = movs
	case CollectionChat:
		var msgs []*entity.ChatMessage
		msgs, err = m.chatRepo.ListRecent(ctx, entity.ChatHistoryLimit)
		data = msgs
	}
	if err != nil {
		return nil, err
	}
	return json.Marshal(Event{Collection: collection, Data: data})
}

// publish difunde el snapshot; un error de lectura se loguea y se descarta
// (el siguiente cambio volverá a sincronizar, sin reintento propio).
func (m *Mirror) publish(ctx context.Context, collection string) {
	payload, err := m.Snapshot(ctx, collection)
	if err != nil {
		m.log.Error().Err(err).Str("collection", collection).Msg("espejo en vivo: snapshot")
		return
	}
	m.hub.Broadcast(payload)
}
