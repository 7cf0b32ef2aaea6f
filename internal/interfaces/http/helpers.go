package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/invitados-api/internal/application/dto"
	"github.com/rs/zerolog/log"
)

// internalError registra el error real y responde un 500 genérico sin
// detalle interno.
func internalError(c *fiber.Ctx, err error) error {
	log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code:    "INTERNAL",
		Message: "error interno, intente más tarde",
	})
}
