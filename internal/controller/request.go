package controller

import (
	"mentoria-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

// parseBody decodes and validates a JSON body into req.
func parseBody(ctx *fiber.Ctx, req interface{}) error {
	if err := ctx.BodyParser(req); err != nil {
		return serverutils.WrapValidation("invalid request body", err)
	}
	return serverutils.ValidateRequest(req)
}

// parseQuery decodes and validates query parameters into req.
func parseQuery(ctx *fiber.Ctx, req interface{}) error {
	if err := ctx.QueryParser(req); err != nil {
		return serverutils.WrapValidation("invalid query parameters", err)
	}
	return serverutils.ValidateRequest(req)
}
