package serverutils

import (
	"errors"

	"hireup-be/internal/entity"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps domain errors returned by controllers onto
// HTTP status codes so controllers can just bubble errors up.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := fiber.StatusInternalServerError
		switch {
		case errors.Is(err, entity.ErrNotFound):
			code = fiber.StatusNotFound
		case errors.Is(err, entity.ErrInvalidTransition),
			errors.Is(err, entity.ErrInvalidScore):
			code = fiber.StatusBadRequest
		case errors.Is(err, entity.ErrDuplicateApply):
			code = fiber.StatusConflict
		case errors.Is(err, entity.ErrApplyLimit):
			code = fiber.StatusTooManyRequests
		case errors.Is(err, entity.ErrProvider):
			code = fiber.StatusBadGateway
		default:
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
			}
		}

		return ctx.Status(code).JSON(ErrorResponse(code, err.Error()))
	}
}
