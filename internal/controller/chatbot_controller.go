package controller

import (
	"mentoria-be/internal/dto"
	"mentoria-be/internal/pkg/serverutils"
	"mentoria-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatbotController interface {
	RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler)
	Chat(ctx *fiber.Ctx) error
	ResetSession(ctx *fiber.Ctx) error
}

type chatbotController struct {
	service service.IChatbotService
}

func NewChatbotController(service service.IChatbotService) IChatbotController {
	return &chatbotController{service: service}
}

func (c *chatbotController) RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler) {
	h := r.Group("/chatbot", jwtMiddleware)
	h.Post("/chat", c.Chat)
	h.Delete("/sessions/:id", c.ResetSession)
}

// Chat sends one message to the assistant. The reply may draw on the
// caller's meetings and the mentor catalog.
// @Summary Chat with the assistant
// @Tags Chatbot
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.ChatRequest true "Message and optional session"
// @Success 200 {object} dto.ChatResponse
// @Router /api/chatbot/chat [post]
func (c *chatbotController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	userID, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Chat(ctx.UserContext(), userID, serverutils.CurrentRole(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Reply generated", res))
}

// @Summary Forget a chat session
// @Tags Chatbot
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Router /api/chatbot/sessions/{id} [delete]
func (c *chatbotController) ResetSession(ctx *fiber.Ctx) error {
	userID, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	if err := c.service.ResetSession(ctx.UserContext(), userID, ctx.Params("id")); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Session cleared", nil))
}
