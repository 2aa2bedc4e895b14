package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/vitrina-api/internal/application/dto"
)

// actionStatus mapea el código de un ActionState al status HTTP de la respuesta.
// El cuerpo siempre es el ActionState completo; el cliente decide por type/code.
func actionStatus(state dto.ActionState) int {
	if state.IsSuccess() {
		return fiber.StatusOK
	}
	switch state.Code {
	case dto.CodeUnauthorized:
		return fiber.StatusUnauthorized
	case dto.CodeValidation, dto.CodeMissingReference:
		return fiber.StatusBadRequest
	case dto.CodeDuplicate:
		return fiber.StatusConflict
	case dto.CodeNotFound:
		return fiber.StatusNotFound
	default:
		// DB_ERROR y PARTIAL: el cliente distingue por code, no por status.
		return fiber.StatusInternalServerError
	}
}
