package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"mentoria-be/internal/constant"
	"mentoria-be/internal/dto"
	"mentoria-be/internal/pkg/logger"
	"mentoria-be/internal/repository/memory"
	"mentoria-be/pkg/chatbot"
	"mentoria-be/pkg/store"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"
)

const chatbotModule = "CHATBOT"

type IChatbotService interface {
	Chat(ctx context.Context, userID uuid.UUID, role string, req *dto.ChatRequest) (*dto.ChatResponse, error)
	ResetSession(ctx context.Context, userID uuid.UUID, sessionID string) error
}

type chatbotService struct {
	completer     chatbot.Completer
	sessionRepo   *memory.SessionRepository
	mentors       IMentorService
	meetings      IMeetingService
	logger        logger.ILogger
	maxToolRounds int
	currency      string
}

func NewChatbotService(
	completer chatbot.Completer,
	sessionRepo *memory.SessionRepository,
	mentors IMentorService,
	meetings IMeetingService,
	log logger.ILogger,
	maxToolRounds int,
	currency string,
) IChatbotService {
	if maxToolRounds <= 0 {
		maxToolRounds = 5
	}
	return &chatbotService{
		completer:     completer,
		sessionRepo:   sessionRepo,
		mentors:       mentors,
		meetings:      meetings,
		logger:        log,
		maxToolRounds: maxToolRounds,
		currency:      strings.ToUpper(currency),
	}
}

// session returns the caller's conversation, starting a new one when the id
// is unknown, expired or owned by someone else.
func (cs *chatbotService) session(userID uuid.UUID, role, sessionID string) *store.Session {
	if sessionID != "" {
		if sess, ok := cs.sessionRepo.Get(sessionID); ok && sess.UserID == userID.String() {
			return sess
		}
	}
	return &store.Session{
		ID:     uuid.NewString(),
		UserID: userID.String(),
		Role:   role,
	}
}

func (cs *chatbotService) Chat(ctx context.Context, userID uuid.UUID, role string, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	sess := cs.session(userID, role, req.SessionId)

	system := openai.ChatCompletionMessage{
		Role:    chatbot.ChatMessageRoleSystem,
		Content: fmt.Sprintf(constant.ChatbotSystemPrompt, cs.currency, role),
	}
	history := append(sess.Messages, openai.ChatCompletionMessage{
		Role:    chatbot.ChatMessageRoleUser,
		Content: req.Message,
	})
	tools := chatbot.MarketplaceTools(role)

	var (
		reply     string
		toolsUsed []string
		answered  bool
	)
	for round := 0; round < cs.maxToolRounds; round++ {
		msg, err := cs.completer.Complete(ctx, append([]openai.ChatCompletionMessage{system}, history...), tools)
		if err != nil {
			cs.logger.Error(chatbotModule, "Completion failed", map[string]interface{}{
				"session_id": sess.ID,
				"round":      round,
				"error":      err.Error(),
			})
			return nil, fmt.Errorf("chat completion: %w", err)
		}
		history = append(history, msg)

		if len(msg.ToolCalls) == 0 {
			reply = msg.Content
			answered = true
			break
		}

		for _, call := range msg.ToolCalls {
			toolsUsed = append(toolsUsed, call.Function.Name)
			history = append(history, openai.ChatCompletionMessage{
				Role:       chatbot.ChatMessageRoleTool,
				Content:    cs.executeTool(ctx, userID, role, call),
				Name:       call.Function.Name,
				ToolCallID: call.ID,
			})
		}
	}

	if !answered {
		cs.logger.Warn(chatbotModule, "Tool round limit reached", map[string]interface{}{"session_id": sess.ID, "tools": toolsUsed})
		reply = constant.ChatbotToolRoundsExceeded
		history = append(history, openai.ChatCompletionMessage{
			Role:    chatbot.ChatMessageRoleAssistant,
			Content: reply,
		})
	}

	sess.Messages = history
	sess.Trim()
	cs.sessionRepo.Save(sess)

	return &dto.ChatResponse{
		SessionId: sess.ID,
		Reply:     reply,
		ToolsUsed: toolsUsed,
	}, nil
}

func (cs *chatbotService) ResetSession(ctx context.Context, userID uuid.UUID, sessionID string) error {
	sess, ok := cs.sessionRepo.Get(sessionID)
	if !ok {
		return nil
	}
	if sess.UserID != userID.String() {
		return ErrForbidden
	}
	cs.sessionRepo.Delete(sessionID)
	return nil
}

type toolArgs struct {
	Query    string   `json:"query"`
	Skill    string   `json:"skill"`
	MinPrice *float64 `json:"min_price"`
	MaxPrice *float64 `json:"max_price"`
	Limit    int      `json:"limit"`
	MentorId string   `json:"mentor_id"`
	Status   string   `json:"status"`
}

// executeTool runs one tool call on behalf of the caller and returns the
// JSON handed back to the model. Failures are reported to the model, not the user.
func (cs *chatbotService) executeTool(ctx context.Context, userID uuid.UUID, role string, call openai.ToolCall) string {
	var args toolArgs
	if call.Function.Arguments != "" {
		if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
			return toolError("arguments are not valid JSON")
		}
	}

	var (
		result interface{}
		err    error
	)
	switch call.Function.Name {
	case chatbot.ToolSearchMentors:
		limit := args.Limit
		if limit <= 0 || limit > 10 {
			limit = 5
		}
		result, err = cs.mentors.SearchMentors(ctx, &dto.MentorSearchQuery{
			Query:    args.Query,
			Skill:    args.Skill,
			MinPrice: args.MinPrice,
			MaxPrice: args.MaxPrice,
			Limit:    limit,
		})
	case chatbot.ToolGetMentorProfile:
		mentorID, parseErr := uuid.Parse(args.MentorId)
		if parseErr != nil {
			return toolError("mentor_id must be a UUID")
		}
		result, err = cs.mentors.GetMentorProfile(ctx, mentorID)
	case chatbot.ToolGetMenteeMeetings:
		if role != "mentee" {
			return toolError("tool not available for this user")
		}
		result, err = cs.meetings.ListMenteeMeetings(ctx, userID, &dto.ListMeetingsQuery{Status: args.Status, Limit: 10})
	case chatbot.ToolGetMentorMeetings:
		if role != "mentor" {
			return toolError("tool not available for this user")
		}
		result, err = cs.meetings.ListMentorMeetings(ctx, userID, &dto.ListMeetingsQuery{Status: args.Status, Limit: 10})
	default:
		return toolError("unknown tool " + call.Function.Name)
	}

	if err != nil {
		cs.logger.Warn(chatbotModule, "Tool call failed", map[string]interface{}{
			"tool":  call.Function.Name,
			"error": err.Error(),
		})
		return toolError(err.Error())
	}

	out, err := json.Marshal(result)
	if err != nil {
		return toolError("could not encode result")
	}
	return string(out)
}

func toolError(message string) string {
	out, _ := json.Marshal(map[string]string{"error": message})
	return string(out)
}
