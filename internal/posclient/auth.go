package posclient

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/wumbao/panaderia-pos/internal/application/dto"
	"github.com/wumbao/panaderia-pos/internal/domain/entity"
)

// AuthService login y logout del terminal. En el login arma la sesión,
// la persiste y deja el token fijado en el cliente HTTP.
type AuthService struct {
	cliente *Cliente
	almacen *AlmacenSesion
	log     zerolog.Logger
}

// NewAuthService construye el servicio.
func NewAuthService(cliente *Cliente, almacen *AlmacenSesion, log zerolog.Logger) *AuthService {
	return &AuthService{cliente: cliente, almacen: almacen, log: log}
}

// Login autentica contra el backend y devuelve la sesión ya persistida.
func (s *AuthService) Login(ctx context.Context, nombreUsuario, clave string) (*Sesion, error) {
	var resp dto.LoginResponse
	in := dto.LoginRequest{NombreUsuario: nombreUsuario, Clave: clave}
	if err := s.cliente.Post(ctx, "/Acceso/Login", in, &resp); err != nil {
		s.log.Warn().Err(err).Str("nombreUsuario", nombreUsuario).Msg("login fallido")
		return nil, err
	}
	sesion := &Sesion{
		Token:         resp.Token,
		IDUsuario:     resp.Usuario.IDUsuario,
		IDEmpleado:    resp.Usuario.IDEmpleado,
		NombreUsuario: resp.Usuario.NombreUsuario,
		Rol:           entity.ParseRol(resp.Usuario.Rol),
	}
	s.cliente.SetToken(sesion.Token)
	if err := s.almacen.Guardar(sesion); err != nil {
		// La sesión en memoria sigue siendo válida aunque no se pudiera persistir.
		s.log.Warn().Err(err).Msg("persistir sesión")
	}
	s.log.Info().Str("nombreUsuario", sesion.NombreUsuario).Str("rol", string(sesion.Rol)).Msg("sesión iniciada")
	return sesion, nil
}

// CargarSesion rehidrata la sesión persistida, si la hay, y fija el token.
func (s *AuthService) CargarSesion() (*Sesion, error) {
	sesion, err := s.almacen.Cargar()
	if err != nil {
		return nil, err
	}
	if sesion != nil {
		s.cliente.SetToken(sesion.Token)
	}
	return sesion, nil
}

// Logout descarta el token y elimina la sesión persistida.
func (s *AuthService) Logout() error {
	s.cliente.SetToken("")
	if err := s.almacen.Limpiar(); err != nil {
		s.log.Warn().Err(err).Msg("limpiar sesión")
		return err
	}
	s.log.Info().Msg("sesión cerrada")
	return nil
}
