package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/onegoal/tracker/pkg/types"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`
}

// errorHandler maps the storage error taxonomy onto status codes. Anything
// outside the taxonomy is a 500 with the detail kept out of the response.
func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	var (
		notFound   *types.NotFoundError
		validation *types.ValidationError
		conflict   *types.ConflictError
		foreignKey *types.ForeignKeyError
		fiberErr   *fiber.Error
	)

	switch {
	case errors.As(err, &notFound):
		return c.Status(fiber.StatusNotFound).JSON(errorBody{
			Error: notFound.Error(),
			Code:  "not_found",
		})
	case errors.As(err, &validation):
		return c.Status(fiber.StatusBadRequest).JSON(errorBody{
			Error:   validation.Error(),
			Code:    "validation_error",
			Details: fiber.Map{"field": validation.Field},
		})
	case errors.As(err, &conflict):
		return c.Status(fiber.StatusConflict).JSON(errorBody{
			Error: conflict.Error(),
			Code:  "conflict",
		})
	case errors.As(err, &foreignKey):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(errorBody{
			Error: foreignKey.Error(),
			Code:  "foreign_key_violation",
		})
	case errors.As(err, &fiberErr):
		return c.Status(fiberErr.Code).JSON(errorBody{
			Error: fiberErr.Message,
			Code:  "http_error",
		})
	}

	s.log.Error("unhandled error",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	return c.Status(fiber.StatusInternalServerError).JSON(errorBody{
		Error: "internal server error",
		Code:  "internal_error",
	})
}

// badRequest wraps a body-parse failure in the validation shape.
func badRequest(message string) error {
	return &types.ValidationError{Message: message}
}
