package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wumbao/panaderia-pos/internal/application/usecase"
)

// AuditoriaHandler expone el historial de cambios sobre productos.
type AuditoriaHandler struct {
	uc *usecase.AuditoriaUseCase
}

func NewAuditoriaHandler(uc *usecase.AuditoriaUseCase) *AuditoriaHandler {
	return &AuditoriaHandler{uc: uc}
}

// Listar godoc
// @Summary      Listar registros de auditoría
// @Tags         auditoria
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AuditoriaResponse
// @Router       /Auditoria [get]
func (h *AuditoriaHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.Listar()
	if err != nil {
		return errorDominio(c, err)
	}
	return c.JSON(out)
}
