package handler

import (
	"mentoria-be/internal/pkg/logger"
	"mentoria-be/internal/pkg/serverutils"
	"mentoria-be/internal/service"
	internalWS "mentoria-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type NotificationHandler struct {
	service *service.NotificationService
	hub     *internalWS.Hub
	logger  logger.ILogger
}

func NewNotificationHandler(service *service.NotificationService, hub *internalWS.Hub, log logger.ILogger) *NotificationHandler {
	return &NotificationHandler{
		service: service,
		hub:     hub,
		logger:  log,
	}
}

// wsToken lets browsers, which cannot set headers on a websocket handshake,
// pass the token as ?token=.
func wsToken(c *fiber.Ctx) error {
	if c.Get(fiber.HeaderAuthorization) == "" {
		if token := c.Query("token"); token != "" {
			c.Request().Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		}
	}
	return c.Next()
}

func requireUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// ServeWs upgrades the connection and registers it with the hub.
func (h *NotificationHandler) ServeWs(c *fiber.Ctx) error {
	userID, err := serverutils.CurrentUserID(c)
	if err != nil {
		return err
	}
	return websocket.New(func(conn *websocket.Conn) {
		h.logger.Info("NotificationHandler", "Starting WebSocket session", map[string]interface{}{"user_id": userID.String()})
		internalWS.ServeWs(h.hub, conn, userID)
		h.logger.Info("NotificationHandler", "WebSocket session ended", map[string]interface{}{"user_id": userID.String()})
	})(c)
}

// GetNotifications returns the user's notifications, newest first.
func (h *NotificationHandler) GetNotifications(c *fiber.Ctx) error {
	userID, err := serverutils.CurrentUserID(c)
	if err != nil {
		return err
	}

	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	res, err := h.service.GetNotifications(c.UserContext(), userID, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(serverutils.SuccessResponse("Notifications retrieved", res))
}

// MarkAsRead marks a specific notification as read.
func (h *NotificationHandler) MarkAsRead(c *fiber.Ctx) error {
	id, err := serverutils.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	userID, err := serverutils.CurrentUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.MarkAsRead(c.UserContext(), userID, id); err != nil {
		return err
	}
	return c.JSON(serverutils.SuccessResponse[any]("Notification marked as read", nil))
}

// MarkAllAsRead marks all user's notifications as read.
func (h *NotificationHandler) MarkAllAsRead(c *fiber.Ctx) error {
	userID, err := serverutils.CurrentUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.MarkAllAsRead(c.UserContext(), userID); err != nil {
		return err
	}
	return c.JSON(serverutils.SuccessResponse[any]("All notifications marked as read", nil))
}

// RegisterRoutes registers the notification routes.
func (h *NotificationHandler) RegisterRoutes(router fiber.Router, jwtMiddleware fiber.Handler) {
	notif := router.Group("/notifications", jwtMiddleware)
	notif.Get("/", h.GetNotifications)
	// Static path before :id
	notif.Patch("/read-all", h.MarkAllAsRead)
	notif.Patch("/:id/read", h.MarkAsRead)

	router.Get("/ws", wsToken, jwtMiddleware, requireUpgrade, h.ServeWs)
}
