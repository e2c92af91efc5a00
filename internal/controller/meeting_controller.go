package controller

import (
	"mentoria-be/internal/dto"
	"mentoria-be/internal/entity"
	"mentoria-be/internal/pkg/serverutils"
	"mentoria-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMeetingController interface {
	RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler)
	ListMenteeMeetings(ctx *fiber.Ctx) error
	ListMentorMeetings(ctx *fiber.Ctx) error
	GetMeeting(ctx *fiber.Ctx) error
	UpdateLocation(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
	UpdateReviewLink(ctx *fiber.Ctx) error
}

type meetingController struct {
	service service.IMeetingService
}

func NewMeetingController(service service.IMeetingService) IMeetingController {
	return &meetingController{service: service}
}

func (c *meetingController) RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler) {
	h := r.Group("/meetings", jwtMiddleware)

	mentor := serverutils.RequireRole(string(entity.UserRoleMentor))
	h.Get("/mentee", serverutils.RequireRole(string(entity.UserRoleMentee)), c.ListMenteeMeetings)
	h.Get("/mentor", mentor, c.ListMentorMeetings)
	h.Get("/:id", c.GetMeeting)
	h.Patch("/:id/location", mentor, c.UpdateLocation)
	h.Patch("/:id/status", mentor, c.UpdateStatus)
	h.Patch("/:id/review-link", mentor, c.UpdateReviewLink)
}

// @Summary List the mentee's meetings
// @Tags Meetings
// @Security BearerAuth
// @Produce json
// @Param status query string false "Pending, Scheduled, Completed or Cancelled"
// @Success 200 {object} serverutils.PaginatedData[dto.MeetingResponse]
// @Router /api/meetings/mentee [get]
func (c *meetingController) ListMenteeMeetings(ctx *fiber.Ctx) error {
	var query dto.ListMeetingsQuery
	if err := parseQuery(ctx, &query); err != nil {
		return err
	}
	userID, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.ListMenteeMeetings(ctx.UserContext(), userID, &query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Meetings retrieved", res))
}

// @Summary List the mentor's meetings
// @Tags Meetings
// @Security BearerAuth
// @Produce json
// @Router /api/meetings/mentor [get]
func (c *meetingController) ListMentorMeetings(ctx *fiber.Ctx) error {
	var query dto.ListMeetingsQuery
	if err := parseQuery(ctx, &query); err != nil {
		return err
	}
	userID, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.ListMentorMeetings(ctx.UserContext(), userID, &query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Meetings retrieved", res))
}

// @Summary Get a meeting
// @Tags Meetings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Meeting ID"
// @Success 200 {object} dto.MeetingResponse
// @Router /api/meetings/{id} [get]
func (c *meetingController) GetMeeting(ctx *fiber.Ctx) error {
	meetingID, err := serverutils.ParseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	userID, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetMeeting(ctx.UserContext(), userID, serverutils.CurrentRole(ctx), meetingID)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Meeting retrieved", res))
}

// UpdateLocation sets the meeting link and schedules the meeting
// @Summary Set meeting location
// @Tags Meetings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Meeting ID"
// @Param body body dto.UpdateLocationRequest true "Location"
// @Success 200 {object} dto.MeetingResponse
// @Router /api/meetings/{id}/location [patch]
func (c *meetingController) UpdateLocation(ctx *fiber.Ctx) error {
	meetingID, err := serverutils.ParseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateLocationRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	userID, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.UpdateLocation(ctx.UserContext(), userID, meetingID, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Meeting location updated", res))
}

// @Summary Change meeting status
// @Tags Meetings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Meeting ID"
// @Param body body dto.UpdateMeetingStatusRequest true "New status"
// @Success 200 {object} dto.MeetingResponse
// @Router /api/meetings/{id}/status [patch]
func (c *meetingController) UpdateStatus(ctx *fiber.Ctx) error {
	meetingID, err := serverutils.ParseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateMeetingStatusRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	userID, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.UpdateStatus(ctx.UserContext(), userID, meetingID, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Meeting status updated", res))
}

// @Summary Attach a review link to a completed meeting
// @Tags Meetings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Meeting ID"
// @Router /api/meetings/{id}/review-link [patch]
func (c *meetingController) UpdateReviewLink(ctx *fiber.Ctx) error {
	meetingID, err := serverutils.ParseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateReviewLinkRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	userID, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.UpdateReviewLink(ctx.UserContext(), userID, meetingID, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Review link updated", res))
}
