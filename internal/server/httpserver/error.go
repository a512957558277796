package httpserver

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/wishtally/backend/internal/pkg/apperr"
)

func handleCustomError(ctx *fiber.Ctx, e *apperr.AppError) error {
	log.Warn().
		Err(e).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Msg(e.Message)

	body := fiber.Map{
		"code":    e.ErrorCode,
		"message": e.Message,
	}
	if e.Extras != nil && len(*e.Extras) > 0 {
		for k, v := range *e.Extras {
			body[k] = v
		}
	}

	return ctx.Status(e.StatusCode).JSON(body)
}

func ErrorHandler(ctx *fiber.Ctx, err error) error {
	if e, ok := err.(*apperr.AppError); ok {
		return handleCustomError(ctx, e)
	}

	re := *apperr.ErrInternalError
	if e, ok := err.(*fiber.Error); ok {
		re.StatusCode = e.Code
		re.ErrorCode = "UNKNOWN_ERROR"
		re.Message = e.Message
	}

	log.Error().
		Stack().
		Err(err).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Int("status", re.StatusCode).
		Msg("Internal Server Error")

	return handleCustomError(ctx, &re)
}
