package controller

import (
	"mentoria-be/internal/dto"
	"mentoria-be/internal/entity"
	"mentoria-be/internal/pkg/serverutils"
	"mentoria-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler)
	GetAllUsers(ctx *fiber.Ctx) error
	UpdateUserStatus(ctx *fiber.Ctx) error
	GetBalances(ctx *fiber.Ctx) error
	GetPayouts(ctx *fiber.Ctx) error
	CreatePayout(ctx *fiber.Ctx) error
	GetLogs(ctx *fiber.Ctx) error
}

type adminController struct {
	service service.IAdminService
}

func NewAdminController(service service.IAdminService) IAdminController {
	return &adminController{service: service}
}

func (c *adminController) RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler) {
	h := r.Group("/admin", jwtMiddleware, serverutils.RequireRole(string(entity.UserRoleAdmin)))

	// User Management
	h.Get("/users", c.GetAllUsers)
	h.Patch("/users/:id/status", c.UpdateUserStatus)

	// Payouts
	h.Get("/payouts/balances", c.GetBalances)
	h.Get("/payouts", c.GetPayouts)
	h.Post("/payouts", c.CreatePayout)

	// Logs
	h.Get("/logs", c.GetLogs)
}

// @Summary List users
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param q query string false "Name or email"
// @Param role query string false "mentee, mentor or admin"
// @Param status query string false "active or banned"
// @Router /api/admin/users [get]
func (c *adminController) GetAllUsers(ctx *fiber.Ctx) error {
	var query dto.ListUsersQuery
	if err := parseQuery(ctx, &query); err != nil {
		return err
	}

	res, err := c.service.ListUsers(ctx.UserContext(), &query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Users retrieved", res))
}

// @Summary Ban or reactivate a user
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param body body dto.UpdateUserStatusRequest true "Status"
// @Router /api/admin/users/{id}/status [patch]
func (c *adminController) UpdateUserStatus(ctx *fiber.Ctx) error {
	userID, err := serverutils.ParseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateUserStatusRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	adminID, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.UpdateUserStatus(ctx.UserContext(), adminID, userID, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("User status updated", res))
}

// GetBalances shows what each mentor earned and what is still owed
// @Summary Mentor balances
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} []dto.MentorBalanceResponse
// @Router /api/admin/payouts/balances [get]
func (c *adminController) GetBalances(ctx *fiber.Ctx) error {
	res, err := c.service.ListMentorBalances(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Balances retrieved", res))
}

// @Summary List payouts
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param mentor_id query string false "Mentor filter"
// @Router /api/admin/payouts [get]
func (c *adminController) GetPayouts(ctx *fiber.Ctx) error {
	var query dto.ListPayoutsQuery
	if err := parseQuery(ctx, &query); err != nil {
		return err
	}

	res, err := c.service.ListPayouts(ctx.UserContext(), &query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Payouts retrieved", res))
}

// @Summary Record a payout to a mentor
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.CreatePayoutRequest true "Payout"
// @Success 201 {object} dto.PayoutResponse
// @Router /api/admin/payouts [post]
func (c *adminController) CreatePayout(ctx *fiber.Ctx) error {
	var req dto.CreatePayoutRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	adminID, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.CreatePayout(ctx.UserContext(), adminID, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Payout recorded", res))
}

// @Summary Read the application log
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param level query string false "Log level"
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Router /api/admin/logs [get]
func (c *adminController) GetLogs(ctx *fiber.Ctx) error {
	level := ctx.Query("level")
	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.service.GetSystemLogs(ctx.UserContext(), level, limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Logs retrieved", res))
}
