package store

import (
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Session is one chatbot conversation kept in memory.
type Session struct {
	ID        string                         `json:"id"`
	UserID    string                         `json:"user_id"`
	Role      string                         `json:"role"`
	Messages  []openai.ChatCompletionMessage `json:"messages"`
	UpdatedAt time.Time                      `json:"updated_at"`
}

// MaxHistory bounds how many non-system messages a session replays.
const MaxHistory = 30

// Trim keeps the most recent messages without splitting a tool exchange.
func (s *Session) Trim() {
	if len(s.Messages) <= MaxHistory {
		return
	}
	cut := len(s.Messages) - MaxHistory
	for cut < len(s.Messages) && s.Messages[cut].Role != openai.ChatMessageRoleUser {
		cut++
	}
	s.Messages = append([]openai.ChatCompletionMessage(nil), s.Messages[cut:]...)
}
