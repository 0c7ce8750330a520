package serverutils

import (
	"errors"

	"mindshift-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware turns errors bubbled up from controllers into
// consistent JSON error responses.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Message: "Validation failed",
				Errors:  validationErr.Fields,
			})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse{Message: fiberErr.Message})
		}

		return ctx.Status(statusFor(err)).JSON(ErrorResponse{Message: err.Error()})
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrEmptyMessage),
		errors.Is(err, service.ErrInvalidMode),
		errors.Is(err, service.ErrUnknownVoice),
		errors.Is(err, service.ErrUnknownEventKind):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
