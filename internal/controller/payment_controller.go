package controller

import (
	"mentoria-be/internal/dto"
	"mentoria-be/internal/entity"
	"mentoria-be/internal/pkg/serverutils"
	"mentoria-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPaymentController interface {
	RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler)
	Checkout(ctx *fiber.Ctx) error
	Preview(ctx *fiber.Ctx) error
	Webhook(ctx *fiber.Ctx) error
	GetInvoices(ctx *fiber.Ctx) error
}

type paymentController struct {
	service service.ICheckoutService
}

func NewPaymentController(service service.ICheckoutService) IPaymentController {
	return &paymentController{service: service}
}

func (c *paymentController) RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler) {
	h := r.Group("/payments")
	// Stripe calls this one; the signature header authenticates it.
	h.Post("/webhook", c.Webhook)

	mentee := serverutils.RequireRole(string(entity.UserRoleMentee))
	h.Post("/checkout", jwtMiddleware, mentee, c.Checkout)
	h.Post("/preview", jwtMiddleware, mentee, c.Preview)
	h.Get("/invoices", jwtMiddleware, c.GetInvoices)
}

// Checkout opens a Stripe checkout session for one slot
// @Summary Start checkout
// @Tags Payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.CheckoutRequest true "Slot, plan and optional discount"
// @Success 200 {object} dto.CheckoutResponse
// @Router /api/payments/checkout [post]
func (c *paymentController) Checkout(ctx *fiber.Ctx) error {
	var req dto.CheckoutRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	userID, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.CreateCheckoutSession(ctx.UserContext(), userID, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Checkout session created", res))
}

// Preview prices a checkout without opening a session
// @Summary Preview price
// @Tags Payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.CheckoutRequest true "Slot, plan and optional discount"
// @Success 200 {object} dto.PriceBreakdown
// @Router /api/payments/preview [post]
func (c *paymentController) Preview(ctx *fiber.Ctx) error {
	var req dto.CheckoutRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	userID, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.PreviewPrice(ctx.UserContext(), userID, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Price preview", res))
}

// Webhook receives Stripe events. Anything but a 2xx makes Stripe retry.
// @Summary Stripe webhook
// @Tags Payments
// @Accept json
// @Param Stripe-Signature header string true "Stripe signature"
// @Success 200
// @Router /api/payments/webhook [post]
func (c *paymentController) Webhook(ctx *fiber.Ctx) error {
	// fasthttp reuses the body buffer once the handler returns.
	payload := append([]byte(nil), ctx.Body()...)
	signature := ctx.Get("Stripe-Signature")

	if err := c.service.HandleWebhook(ctx.UserContext(), payload, signature); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Webhook processed", nil))
}

// GetInvoices lists invoices visible to the caller
// @Summary List invoices
// @Tags Payments
// @Security BearerAuth
// @Produce json
// @Success 200 {object} []dto.InvoiceResponse
// @Router /api/payments/invoices [get]
func (c *paymentController) GetInvoices(ctx *fiber.Ctx) error {
	userID, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.ListInvoices(ctx.UserContext(), userID, serverutils.CurrentRole(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Invoices retrieved", res))
}
