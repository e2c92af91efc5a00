// Controller for the mentor's catalog: plans and discount codes
package controller

import (
	"mentoria-be/internal/dto"
	"mentoria-be/internal/entity"
	"mentoria-be/internal/pkg/serverutils"
	"mentoria-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPlanController interface {
	RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler)
}

type planController struct {
	plans     service.IPlanService
	discounts service.IDiscountService
}

func NewPlanController(plans service.IPlanService, discounts service.IDiscountService) IPlanController {
	return &planController{
		plans:     plans,
		discounts: discounts,
	}
}

func (c *planController) RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler) {
	mentor := serverutils.RequireRole(string(entity.UserRoleMentor))

	plans := r.Group("/plans", jwtMiddleware, mentor)
	plans.Get("/mine", c.ListPlans)
	plans.Post("/mine", c.CreatePlan)
	plans.Put("/:id", c.UpdatePlan)
	plans.Delete("/:id", c.DeactivatePlan)

	discounts := r.Group("/discounts", jwtMiddleware)
	// Any signed-in user may check a code before checkout
	discounts.Get("/validate", c.ValidateDiscount)
	discounts.Get("/", mentor, c.ListDiscounts)
	discounts.Post("/", mentor, c.CreateDiscount)
	discounts.Put("/:id", mentor, c.UpdateDiscount)
	discounts.Delete("/:id", mentor, c.DeleteDiscount)
}

// @Summary List the mentor's plans
// @Tags Plans
// @Security BearerAuth
// @Produce json
// @Success 200 {object} []dto.PlanResponse
// @Router /api/plans/mine [get]
func (c *planController) ListPlans(ctx *fiber.Ctx) error {
	userID, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.plans.ListMentorPlans(ctx.UserContext(), userID)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Plans retrieved", res))
}

// @Summary Create a plan
// @Tags Plans
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.PlanRequest true "Plan"
// @Success 201 {object} dto.PlanResponse
// @Router /api/plans/mine [post]
func (c *planController) CreatePlan(ctx *fiber.Ctx) error {
	var req dto.PlanRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	userID, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.plans.CreatePlan(ctx.UserContext(), userID, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Plan created", res))
}

// @Summary Update a plan
// @Tags Plans
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Plan ID"
// @Param body body dto.PlanRequest true "Plan"
// @Router /api/plans/{id} [put]
func (c *planController) UpdatePlan(ctx *fiber.Ctx) error {
	userID, planID, err := ownerAndID(ctx)
	if err != nil {
		return err
	}
	var req dto.PlanRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.plans.UpdatePlan(ctx.UserContext(), userID, planID, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Plan updated", res))
}

// DeactivatePlan hides a plan from the catalog. Existing meetings keep it.
// @Summary Deactivate a plan
// @Tags Plans
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Router /api/plans/{id} [delete]
func (c *planController) DeactivatePlan(ctx *fiber.Ctx) error {
	userID, planID, err := ownerAndID(ctx)
	if err != nil {
		return err
	}

	if err := c.plans.DeactivatePlan(ctx.UserContext(), userID, planID); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Plan deactivated", nil))
}

// @Summary List the mentor's discount codes
// @Tags Discounts
// @Security BearerAuth
// @Produce json
// @Router /api/discounts [get]
func (c *planController) ListDiscounts(ctx *fiber.Ctx) error {
	userID, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.discounts.ListDiscounts(ctx.UserContext(), userID)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Discounts retrieved", res))
}

// @Summary Create a discount code
// @Tags Discounts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.DiscountRequest true "Discount"
// @Success 201 {object} dto.DiscountResponse
// @Router /api/discounts [post]
func (c *planController) CreateDiscount(ctx *fiber.Ctx) error {
	var req dto.DiscountRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	userID, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.discounts.CreateDiscount(ctx.UserContext(), userID, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Discount created", res))
}

// @Summary Update a discount code
// @Tags Discounts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Discount ID"
// @Router /api/discounts/{id} [put]
func (c *planController) UpdateDiscount(ctx *fiber.Ctx) error {
	userID, discountID, err := ownerAndID(ctx)
	if err != nil {
		return err
	}
	var req dto.DiscountRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.discounts.UpdateDiscount(ctx.UserContext(), userID, discountID, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Discount updated", res))
}

// @Summary Delete a discount code
// @Tags Discounts
// @Security BearerAuth
// @Param id path string true "Discount ID"
// @Router /api/discounts/{id} [delete]
func (c *planController) DeleteDiscount(ctx *fiber.Ctx) error {
	userID, discountID, err := ownerAndID(ctx)
	if err != nil {
		return err
	}

	if err := c.discounts.DeleteDiscount(ctx.UserContext(), userID, discountID); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Discount deleted", nil))
}

// ValidateDiscount checks a code against a mentor without redeeming it
// @Summary Validate a discount code
// @Tags Discounts
// @Security BearerAuth
// @Produce json
// @Param code query string true "Code"
// @Param mentor_id query string true "Mentor ID"
// @Success 200 {object} dto.ValidateDiscountResponse
// @Router /api/discounts/validate [get]
func (c *planController) ValidateDiscount(ctx *fiber.Ctx) error {
	code := ctx.Query("code")
	if code == "" {
		return serverutils.NewValidationError("code is required")
	}
	mentorID, err := uuid.Parse(ctx.Query("mentor_id"))
	if err != nil {
		return serverutils.NewValidationError("invalid mentor_id")
	}

	res, err := c.discounts.ValidateCode(ctx.UserContext(), code, mentorID)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Discount checked", res))
}

func ownerAndID(ctx *fiber.Ctx) (uuid.UUID, uuid.UUID, error) {
	id, err := serverutils.ParseUUIDParam(ctx, "id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	userID, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return userID, id, nil
}
