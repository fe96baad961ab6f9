package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wumbao/panaderia-pos/internal/application/auth"
	"github.com/wumbao/panaderia-pos/internal/application/dto"
)

// AuthHandler maneja login y alta de credenciales.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         acceso
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "nombreUsuario, clave"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /Acceso/Login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Codigo: "INVALID_BODY", Mensaje: "cuerpo inválido"})
	}
	if hecho, err := validarDTO(c, in); hecho {
		return err
	}
	out, err := h.uc.Login(in)
	if err != nil {
		// Credenciales malas y usuario inexistente responden igual: 401.
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Codigo: "UNAUTHORIZED", Mensaje: "usuario o contraseña incorrectos"})
	}
	return c.JSON(out)
}

// Registrar godoc
// @Summary      Registrar credenciales para un empleado
// @Tags         acceso
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarUsuarioRequest  true  "nombreUsuario, clave, rol, idEmpleado"
// @Success      201   {object}  dto.UsuarioResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /Acceso/Registrar [post]
func (h *AuthHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Codigo: "INVALID_BODY", Mensaje: "cuerpo inválido"})
	}
	if hecho, err := validarDTO(c, in); hecho {
		return err
	}
	out, err := h.uc.RegistrarUsuario(in)
	if err != nil {
		return errorDominio(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
