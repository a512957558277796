// Package rekuest provides request-body binding and validation helpers for
// fiber handlers.
package rekuest

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/wishtally/backend/internal/pkg/apperr"
)

var Validate = validator.New()

type Violation struct {
	Field     string `json:"field"`
	Violation string `json:"violation"`
}

// ValidBody binds the request body into dest and validates it with the
// struct's validate tags. Failures surface as INVALID_REQUEST app errors.
func ValidBody(ctx *fiber.Ctx, dest interface{}) error {
	if err := ctx.BodyParser(dest); err != nil {
		return apperr.ErrInvalidReq.Msg("invalid request body: %s", err)
	}

	if err := Validate.Struct(dest); err != nil {
		ve, ok := err.(validator.ValidationErrors)
		if !ok {
			return apperr.ErrInvalidReq
		}
		violations := make([]Violation, 0, len(ve))
		for _, fe := range ve {
			violations = append(violations, Violation{
				Field:     fe.Field(),
				Violation: fe.Tag(),
			})
		}
		return apperr.NewInvalidViolations(violations)
	}

	return nil
}
