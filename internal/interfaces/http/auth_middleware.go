package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/wumbao/panaderia-pos/internal/application/dto"
	"github.com/wumbao/panaderia-pos/internal/domain/entity"
	"github.com/wumbao/panaderia-pos/pkg/jwt"
)

// Locals keys para identidad en Fiber.
const (
	LocalIDUsuario  = "id_usuario"
	LocalIDEmpleado = "id_empleado"
	LocalRol        = "rol"
)

// AuthMiddleware valida el Bearer Token JWT y extrae idUsuario, idEmpleado y rol a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Codigo: "MISSING_TOKEN", Mensaje: "cabecera Authorization requerida"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Codigo: "INVALID_TOKEN", Mensaje: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Codigo: "MISSING_TOKEN", Mensaje: "token vacío"})
		}
		idUsuario, idEmpleado, rol, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Codigo: "INVALID_TOKEN", Mensaje: "token inválido o expirado"})
		}
		c.Locals(LocalIDUsuario, idUsuario)
		c.Locals(LocalIDEmpleado, idEmpleado)
		c.Locals(LocalRol, rol)
		return c.Next()
	}
}

// RequireAdmin autoriza solo a administradores (después de AuthMiddleware).
// El rol se resuelve con match exhaustivo sobre el enum de dos variantes.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rol := GetRol(c)
		if !rol.Valido() {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Codigo: "INVALID_TOKEN", Mensaje: "token sin rol"})
		}
		switch rol {
		case entity.RolAdministrador:
			return c.Next()
		case entity.RolEmpleado:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Codigo: "FORBIDDEN", Mensaje: "no tienes permiso para realizar esta acción"})
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Codigo: "FORBIDDEN", Mensaje: "no tienes permiso para realizar esta acción"})
	}
}

// GetIDUsuario devuelve el idUsuario del contexto (después del middleware de auth).
func GetIDUsuario(c *fiber.Ctx) int64 {
	v, _ := c.Locals(LocalIDUsuario).(int64)
	return v
}

// GetIDEmpleado devuelve el idEmpleado del contexto.
func GetIDEmpleado(c *fiber.Ctx) int64 {
	v, _ := c.Locals(LocalIDEmpleado).(int64)
	return v
}

// GetRol devuelve el rol del contexto, ya normalizado al enum.
func GetRol(c *fiber.Ctx) entity.Rol {
	s, ok := c.Locals(LocalRol).(string)
	if !ok || s == "" {
		return ""
	}
	return entity.ParseRol(s)
}
