package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/wumbao/panaderia-pos/internal/application/dto"
	"github.com/wumbao/panaderia-pos/internal/application/usecase"
)

// EmpleadoHandler maneja el CRUD de empleados (solo administradores).
type EmpleadoHandler struct {
	uc *usecase.EmpleadoUseCase
}

func NewEmpleadoHandler(uc *usecase.EmpleadoUseCase) *EmpleadoHandler {
	return &EmpleadoHandler{uc: uc}
}

// Listar godoc
// @Summary      Listar empleados
// @Tags         empleados
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.EmpleadoResponse
// @Router       /Empleados [get]
func (h *EmpleadoHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.Listar()
	if err != nil {
		return errorDominio(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener empleado por ID
// @Tags         empleados
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del empleado"
// @Success      200  {object}  dto.EmpleadoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /Empleados/{id} [get]
func (h *EmpleadoHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Codigo: "MISSING_ID", Mensaje: "id inválido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return errorDominio(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Codigo: "NOT_FOUND", Mensaje: "empleado no encontrado"})
	}
	return c.JSON(out)
}

// Crear godoc
// @Summary      Crear empleado (con credenciales opcionales)
// @Tags         empleados
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        empleado  body  dto.CrearEmpleadoRequest  true  "Datos del empleado"
// @Success      201  {object}  dto.EmpleadoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /Empleados [post]
func (h *EmpleadoHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearEmpleadoRequest
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
// @Summary      Actualizar empleado (idEmpleado en el cuerpo)
// @Tags         empleados
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        empleado  body  dto.ActualizarEmpleadoRequest  true  "Datos del empleado"
// @Success      200  {object}  dto.EmpleadoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /Empleados [put]
func (h *EmpleadoHandler) Actualizar(c *fiber.Ctx) error {
	var in dto.ActualizarEmpleadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Codigo: "BAD_BODY", Mensaje: "cuerpo inválido"})
	}
	if hecho, err := validarDTO(c, in); hecho {
		return err
	}
	out, err := h.uc.Actualizar(in)
	if err != nil {
		return errorDominio(c, err)
	}
	return c.JSON(out)
}

// Eliminar godoc
// @Summary      Eliminar empleado (y su usuario asociado si existe)
// @Tags         empleados
// @Security     Bearer
// @Param        id  path  int  true  "ID del empleado"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /Empleados/{id} [delete]
func (h *EmpleadoHandler) Eliminar(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Codigo: "MISSING_ID", Mensaje: "id inválido"})
	}
	if err := h.uc.Eliminar(id); err != nil {
		return errorDominio(c, err)
	}
	return c.JSON(fiber.Map{"eliminado": true})
}
