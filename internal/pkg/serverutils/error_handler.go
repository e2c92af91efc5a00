package serverutils

import (
	"errors"

	"mentoria-be/internal/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware turns errors returned by handlers into the JSON envelope.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		return WriteError(ctx, log, err)
	}
}

func WriteError(ctx *fiber.Ctx, log logger.ILogger, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return ctx.Status(appErr.Code).JSON(ErrorResponse(appErr.Code, appErr.Message))
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return ctx.Status(fiber.StatusBadRequest).JSON(
			ErrorResponseWithData(fiber.StatusBadRequest, "validation failed", toFieldErrors(validationErrs)),
		)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
	}

	if log != nil {
		log.Error("HTTP", "Unhandled error", map[string]interface{}{
			"error":  err.Error(),
			"method": ctx.Method(),
			"path":   ctx.Path(),
		})
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, "internal server error"))
}
