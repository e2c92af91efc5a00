package controller

import (
	"mentoria-be/internal/dto"
	"mentoria-be/internal/entity"
	"mentoria-be/internal/pkg/serverutils"
	"mentoria-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMentorController interface {
	RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler)
	Search(ctx *fiber.Ctx) error
	GetProfile(ctx *fiber.Ctx) error
	UpdateProfile(ctx *fiber.Ctx) error
	ListFeedback(ctx *fiber.Ctx) error
	CreateFeedback(ctx *fiber.Ctx) error
}

type mentorController struct {
	mentors  service.IMentorService
	feedback service.IFeedbackService
}

func NewMentorController(mentors service.IMentorService, feedback service.IFeedbackService) IMentorController {
	return &mentorController{
		mentors:  mentors,
		feedback: feedback,
	}
}

func (c *mentorController) RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler) {
	// Public catalog
	r.Get("/mentors", c.Search)
	r.Put("/mentors/me", jwtMiddleware, serverutils.RequireRole(string(entity.UserRoleMentor)), c.UpdateProfile)
	r.Get("/mentors/:id", c.GetProfile)
	r.Get("/mentors/:id/feedback", c.ListFeedback)

	r.Post("/feedback", jwtMiddleware, serverutils.RequireRole(string(entity.UserRoleMentee)), c.CreateFeedback)
}

// @Summary Search mentors
// @Tags Mentors
// @Produce json
// @Param q query string false "Name, headline or company"
// @Param skill query string false "Skill"
// @Param min_price query number false "Minimum starting price"
// @Param max_price query number false "Maximum starting price"
// @Router /api/mentors [get]
func (c *mentorController) Search(ctx *fiber.Ctx) error {
	var query dto.MentorSearchQuery
	if err := parseQuery(ctx, &query); err != nil {
		return err
	}

	res, err := c.mentors.SearchMentors(ctx.UserContext(), &query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Mentors retrieved", res))
}

// @Summary Mentor profile with active plans
// @Tags Mentors
// @Produce json
// @Param id path string true "Mentor ID"
// @Success 200 {object} dto.MentorProfileResponse
// @Router /api/mentors/{id} [get]
func (c *mentorController) GetProfile(ctx *fiber.Ctx) error {
	mentorID, err := serverutils.ParseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.mentors.GetMentorProfile(ctx.UserContext(), mentorID)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Mentor retrieved", res))
}

// @Summary Update own mentor profile
// @Tags Mentors
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.UpdateMentorProfileRequest true "Profile"
// @Router /api/mentors/me [put]
func (c *mentorController) UpdateProfile(ctx *fiber.Ctx) error {
	var req dto.UpdateMentorProfileRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	userID, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.mentors.UpdateProfile(ctx.UserContext(), userID, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Profile updated", res))
}

// @Summary Feedback left for a mentor
// @Tags Mentors
// @Produce json
// @Param id path string true "Mentor ID"
// @Router /api/mentors/{id}/feedback [get]
func (c *mentorController) ListFeedback(ctx *fiber.Ctx) error {
	mentorID, err := serverutils.ParseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.feedback.ListMentorFeedback(ctx.UserContext(), mentorID)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Feedback retrieved", res))
}

// @Summary Rate a completed meeting
// @Tags Mentors
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.FeedbackRequest true "Rating"
// @Success 201 {object} dto.FeedbackResponse
// @Router /api/feedback [post]
func (c *mentorController) CreateFeedback(ctx *fiber.Ctx) error {
	var req dto.FeedbackRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	userID, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.feedback.Create(ctx.UserContext(), userID, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Feedback saved", res))
}
