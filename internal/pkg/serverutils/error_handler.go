package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"pest-assess-be/internal/service"
	"pest-assess-be/pkg/assessment"
	"pest-assess-be/pkg/llm"
	"pest-assess-be/pkg/questionbank"
)

// ErrorHandlerMiddleware converts domain errors surfacing from the service
// layer into stable HTTP responses. Anything unmapped is a 500 with no
// internals leaked.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var (
			fiberErr       *fiber.Error
			validationErr  *ValidationError
			unknownCat     *questionbank.UnknownCategoryError
			cardinalityErr *assessment.CardinalityMismatchError
		)

		switch {
		case errors.As(err, &fiberErr):
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))

		case errors.As(err, &validationErr):
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(400, validationErr.Error()))

		case errors.As(err, &unknownCat):
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(400, unknownCat.Error()))

		case errors.As(err, &cardinalityErr):
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(400, cardinalityErr.Error()))

		case errors.Is(err, assessment.ErrEmptySelection),
			errors.Is(err, assessment.ErrOutOfRange):
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(400, err.Error()))

		case errors.Is(err, service.ErrSessionNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(404, err.Error()))

		case errors.Is(err, service.ErrLeadNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(404, err.Error()))

		case errors.Is(err, service.ErrSessionNotCompleted):
			return ctx.Status(fiber.StatusConflict).JSON(ErrorResponse(409, err.Error()))

		case errors.Is(err, llm.ErrTimeout), errors.Is(err, llm.ErrBackend):
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse(503, "assistant temporarily unavailable"))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(500, "internal server error"))
	}
}
