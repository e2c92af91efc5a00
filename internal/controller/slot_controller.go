package controller

import (
	"mentoria-be/internal/dto"
	"mentoria-be/internal/entity"
	"mentoria-be/internal/pkg/serverutils"
	"mentoria-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISlotController interface {
	RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler)
	ListMine(ctx *fiber.Ctx) error
	ListAvailable(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type slotController struct {
	service service.ISlotService
}

func NewSlotController(service service.ISlotService) ISlotController {
	return &slotController{service: service}
}

func (c *slotController) RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler) {
	r.Get("/mentors/:id/slots", c.ListAvailable)

	h := r.Group("/slots", jwtMiddleware, serverutils.RequireRole(string(entity.UserRoleMentor)))
	h.Get("/mentor", c.ListMine)
	h.Post("/", c.Create)
	h.Put("/", c.Update)
	h.Delete("/", c.Delete)
}

// @Summary List the mentor's own slots
// @Tags Slots
// @Security BearerAuth
// @Produce json
// @Param plan_id query string false "Plan filter"
// @Param status query string false "Available or Booked"
// @Param from query string false "YYYY-MM-DD"
// @Success 200 {object} []dto.SlotResponse
// @Router /api/slots/mentor [get]
func (c *slotController) ListMine(ctx *fiber.Ctx) error {
	var query dto.ListSlotsQuery
	if err := parseQuery(ctx, &query); err != nil {
		return err
	}
	userID, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.ListMentorSlots(ctx.UserContext(), userID, &query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Slots retrieved", res))
}

// ListAvailable is the public booking calendar of a mentor
// @Summary List bookable slots
// @Tags Slots
// @Produce json
// @Param id path string true "Mentor ID"
// @Success 200 {object} []dto.SlotResponse
// @Router /api/mentors/{id}/slots [get]
func (c *slotController) ListAvailable(ctx *fiber.Ctx) error {
	mentorID, err := serverutils.ParseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	var query dto.ListSlotsQuery
	if err := parseQuery(ctx, &query); err != nil {
		return err
	}

	res, err := c.service.ListAvailableSlots(ctx.UserContext(), mentorID, &query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Slots retrieved", res))
}

// @Summary Create a slot
// @Tags Slots
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.CreateSlotRequest true "Plan, date and times"
// @Success 201 {object} dto.SlotResponse
// @Router /api/slots [post]
func (c *slotController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateSlotRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	userID, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.CreateSlot(ctx.UserContext(), userID, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Slot created", res))
}

// Update moves an Available slot, identified by its original key
// @Summary Move a slot
// @Tags Slots
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.UpdateSlotRequest true "Original key and new times"
// @Success 200 {object} dto.SlotResponse
// @Router /api/slots [put]
func (c *slotController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdateSlotRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	userID, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.UpdateSlot(ctx.UserContext(), userID, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Slot updated", res))
}

// @Summary Delete an Available slot
// @Tags Slots
// @Security BearerAuth
// @Accept json
// @Param body body dto.SlotKeyRequest true "Slot key"
// @Router /api/slots [delete]
func (c *slotController) Delete(ctx *fiber.Ctx) error {
	var req dto.SlotKeyRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	userID, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	if err := c.service.DeleteSlot(ctx.UserContext(), userID, &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Slot deleted", nil))
}
