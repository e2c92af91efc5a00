package dto

type ChatRequest struct {
	SessionId string `json:"session_id" validate:"omitempty,max=64"`
	Message   string `json:"message" validate:"required,max=4000"`
}

type ChatResponse struct {
	SessionId string   `json:"session_id"`
	Reply     string   `json:"reply"`
	ToolsUsed []string `json:"tools_used,omitempty"`
}
