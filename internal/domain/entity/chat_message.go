package entity

import "time"

// Longitud máxima del texto de un mensaje de chat.
const ChatMessageMaxLen = 500

// ChatHistoryLimit es el tope de mensajes recientes que se cargan del historial.
const ChatHistoryLimit = 50

// ChatMessage es un mensaje del registro de comunicación del equipo.
// Inmutable y append-only; las lecturas devuelven como máximo los
// ChatHistoryLimit más recientes en orden cronológico.
type ChatMessage struct {
	ID        string    `json:"id"`
	ActorID   string    `json:"actor_id"`
	ActorName string    `json:"actor_name"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
