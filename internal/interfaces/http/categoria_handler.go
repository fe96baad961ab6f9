package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/wumbao/panaderia-pos/internal/application/dto"
	"github.com/wumbao/panaderia-pos/internal/application/usecase"
)

// CategoriaHandler maneja el CRUD de categorías de producto.
type CategoriaHandler struct {
	uc *usecase.CategoriaUseCase
}

func NewCategoriaHandler(uc *usecase.CategoriaUseCase) *CategoriaHandler {
	return &CategoriaHandler{uc: uc}
}

// Listar godoc
// @Summary      Listar categorías
// @Tags         categorias
// @Produce      json
// @Success      200  {array}  dto.CategoriaResponse
// @Router       /Categorias [get]
func (h *CategoriaHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.Listar()
	if err != nil {
		return errorDominio(c, err)
	}
	return c.JSON(out)
}

// Crear godoc
// @Summary      Crear categoría
// @Tags         categorias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        categoria  body  dto.CrearCategoriaRequest  true  "Datos de la categoría"
// @Success      201  {object}  dto.CategoriaResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /Categorias [post]
func (h *CategoriaHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearCategoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Codigo: "BAD_BODY", Mensaje: "cuerpo inválido"})
	}
	if hecho, err := validarDTO(c, in); hecho {
		return err
	}
	out, err := h.uc.Crear(in)
	if err != nil {
		return errorDominio(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Actualizar godoc
// @Summary      Actualizar categoría
// @Tags         categorias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id         path  int                            true  "ID de la categoría"
// @Param        categoria  body  dto.ActualizarCategoriaRequest true  "Datos de la categoría"
// @Success      200  {object}  dto.CategoriaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /Categorias/{id} [put]
func (h *CategoriaHandler) Actualizar(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Codigo: "MISSING_ID", Mensaje: "id inválido"})
	}
	var in dto.ActualizarCategoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Codigo: "BAD_BODY", Mensaje: "cuerpo inválido"})
	}
	if hecho, err := validarDTO(c, in); hecho {
		return err
	}
	out, err := h.uc.Actualizar(id, in)
	if err != nil {
		return errorDominio(c, err)
	}
	return c.JSON(out)
}

// Eliminar godoc
// @Summary      Eliminar categoría (rechazada si tiene productos)
// @Tags         categorias
// @Security     Bearer
// @Param        id  path  int  true  "ID de la categoría"
// @Success      200  {object}  map[string]bool
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /Categorias/{id} [delete]
func (h *CategoriaHandler) Eliminar(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Codigo: "MISSING_ID", Mensaje: "id inválido"})
	}
	if err := h.uc.Eliminar(id); err != nil {
		return errorDominio(c, err)
	}
	return c.JSON(fiber.Map{"eliminado": true})
}
