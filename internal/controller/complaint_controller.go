package controller

import (
	"mentoria-be/internal/dto"
	"mentoria-be/internal/entity"
	"mentoria-be/internal/pkg/serverutils"
	"mentoria-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IComplaintController interface {
	RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler)
	FileComplaint(ctx *fiber.Ctx) error
	ListMine(ctx *fiber.Ctx) error
	CheckExpiredPending(ctx *fiber.Ctx) error
	ListAll(ctx *fiber.Ctx) error
	GetComplaint(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
}

type complaintController struct {
	service service.IComplaintService
}

func NewComplaintController(service service.IComplaintService) IComplaintController {
	return &complaintController{service: service}
}

func (c *complaintController) RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler) {
	mentee := r.Group("/complaints", jwtMiddleware, serverutils.RequireRole(string(entity.UserRoleMentee)))
	mentee.Post("/", c.FileComplaint)
	mentee.Get("/mine", c.ListMine)
	mentee.Get("/meetings/:id/expired-pending", c.CheckExpiredPending)

	admin := r.Group("/admin/complaints", jwtMiddleware, serverutils.RequireRole(string(entity.UserRoleAdmin)))
	admin.Get("/", c.ListAll)
	admin.Get("/:id", c.GetComplaint)
	admin.Patch("/:id", c.UpdateStatus)
}

// FileComplaint lets a mentee complain about a meeting left Pending too long
// @Summary File a complaint
// @Tags Complaints
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.FileComplaintRequest true "Meeting and complaint text"
// @Success 201 {object} dto.ComplaintResponse
// @Router /api/complaints [post]
func (c *complaintController) FileComplaint(ctx *fiber.Ctx) error {
	var req dto.FileComplaintRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	userID, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.FileComplaint(ctx.UserContext(), userID, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Complaint filed", res))
}

// @Summary List the mentee's complaints
// @Tags Complaints
// @Security BearerAuth
// @Produce json
// @Router /api/complaints/mine [get]
func (c *complaintController) ListMine(ctx *fiber.Ctx) error {
	var query dto.ListComplaintsQuery
	if err := parseQuery(ctx, &query); err != nil {
		return err
	}
	userID, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.ListMenteeComplaints(ctx.UserContext(), userID, &query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Complaints retrieved", res))
}

// CheckExpiredPending tells the client whether the complaint button applies
// @Summary Check complaint eligibility
// @Tags Complaints
// @Security BearerAuth
// @Produce json
// @Param id path string true "Meeting ID"
// @Success 200 {object} dto.ExpiredPendingResponse
// @Router /api/complaints/meetings/{id}/expired-pending [get]
func (c *complaintController) CheckExpiredPending(ctx *fiber.Ctx) error {
	meetingID, err := serverutils.ParseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	userID, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.CheckMeetingExpiredPending(ctx.UserContext(), userID, meetingID)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Eligibility checked", res))
}

// @Summary List complaints
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param status query string false "Pending, Reviewed, Resolved or Rejected"
// @Router /api/admin/complaints [get]
func (c *complaintController) ListAll(ctx *fiber.Ctx) error {
	var query dto.ListComplaintsQuery
	if err := parseQuery(ctx, &query); err != nil {
		return err
	}

	res, err := c.service.ListComplaints(ctx.UserContext(), &query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Complaints retrieved", res))
}

// @Summary Get a complaint
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Complaint ID"
// @Router /api/admin/complaints/{id} [get]
func (c *complaintController) GetComplaint(ctx *fiber.Ctx) error {
	complaintID, err := serverutils.ParseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.GetComplaint(ctx.UserContext(), complaintID)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Complaint retrieved", res))
}

// UpdateStatus reviews, resolves or rejects a complaint
// @Summary Update complaint status
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Complaint ID"
// @Param body body dto.UpdateComplaintRequest true "Status and response"
// @Router /api/admin/complaints/{id} [patch]
func (c *complaintController) UpdateStatus(ctx *fiber.Ctx) error {
	complaintID, err := serverutils.ParseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateComplaintRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.UpdateComplaintStatus(ctx.UserContext(), complaintID, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Complaint updated", res))
}
