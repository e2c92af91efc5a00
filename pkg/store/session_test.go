package store

import (
	"fmt"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
)

func TestSessionTrimStartsAtUserTurn(t *testing.T) {
	s := &Session{}
	for i := 0; i < 20; i++ {
		s.Messages = append(s.Messages,
			openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: fmt.Sprint("q", i)},
			openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: fmt.Sprint("a", i)},
		)
	}

	s.Trim()

	assert.LessOrEqual(t, len(s.Messages), MaxHistory)
	assert.Equal(t, openai.ChatMessageRoleUser, s.Messages[0].Role)
	assert.Equal(t, "a19", s.Messages[len(s.Messages)-1].Content)
}

func TestSessionTrimShortHistoryUntouched(t *testing.T) {
	s := &Session{Messages: []openai.ChatCompletionMessage{{Role: openai.ChatMessageRoleUser, Content: "hi"}}}
	s.Trim()
	assert.Len(t, s.Messages, 1)
}
