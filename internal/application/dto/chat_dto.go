package dto

// PostMessageRequest body para POST /api/chat/messages.
type PostMessageRequest struct {
	Text string `json:"text"`
}
