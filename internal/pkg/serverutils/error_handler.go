// FILE: internal/pkg/serverutils/error_handler.go
package serverutils

import (
	"errors"
	"log"

	"contractdesk-be/internal/pkg/apperr"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps service errors to HTTP status codes so
// controllers can simply return them.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		}

		switch apperr.KindOf(err) {
		case apperr.KindValidation:
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(err.Error()))
		case apperr.KindNotFound:
			return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(err.Error()))
		case apperr.KindStateConflict:
			return ctx.Status(fiber.StatusConflict).JSON(ErrorResponse(err.Error()))
		default:
			log.Printf("[ERROR] unhandled error: %v", err)
			return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("internal server error"))
		}
	}
}
