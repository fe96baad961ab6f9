package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/wumbao/panaderia-pos/internal/application/dto"
	"github.com/wumbao/panaderia-pos/internal/domain"
	"github.com/wumbao/panaderia-pos/pkg/validator"
)

// errorDominio mapea errores de dominio al código HTTP y envelope estándar.
func errorDominio(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUsuarioNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Codigo: "NOT_FOUND", Mensaje: "el recurso solicitado no existe"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Codigo: "UNAUTHORIZED", Mensaje: "usuario o contraseña incorrectos"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Codigo: "FORBIDDEN", Mensaje: "no tienes permiso para realizar esta acción"})
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrUsuarioYaExiste):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Codigo: "DUPLICATE", Mensaje: "ya existe un registro con estos datos"})
	case errors.Is(err, domain.ErrCategoriaEnUso):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Codigo: "CONFLICT", Mensaje: "la categoría tiene productos asociados"})
	case errors.Is(err, domain.ErrStockInsuficiente):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Codigo: "STOCK", Mensaje: "stock insuficiente para completar la venta"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Codigo: "VALIDATION", Mensaje: "los datos enviados no son válidos"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Codigo: "INTERNAL", Mensaje: err.Error()})
}

// validarDTO corre el validador y, si hay violaciones, responde 400 con la primera.
// Devuelve true si hubo error (la respuesta ya fue escrita).
func validarDTO(c *fiber.Ctx, in interface{}) (bool, error) {
	if errores := validator.ValidateStruct(in); len(errores) > 0 {
		e := errores[0]
		return true, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Codigo:  "VALIDATION",
			Mensaje: fmt.Sprintf("campo %s no cumple la regla %s", e.Campo, e.Regla),
		})
	}
	return false, nil
}
