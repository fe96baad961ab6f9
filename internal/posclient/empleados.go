package posclient

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/wumbao/panaderia-pos/internal/application/dto"
)

// EmpleadosService CRUD de empleados (solo administradores).
type EmpleadosService struct {
	cliente *Cliente
	log     zerolog.Logger
}

// NewEmpleadosService construye el servicio.
func NewEmpleadosService(cliente *Cliente, log zerolog.Logger) *EmpleadosService {
	return &EmpleadosService{cliente: cliente, log: log}
}

// Listar trae todos los empleados.
func (s *EmpleadosService) Listar(ctx context.Context) ([]dto.EmpleadoResponse, error) {
	var resp []dto.EmpleadoResponse
	if err := s.cliente.Get(ctx, "/Empleados", &resp); err != nil {
		s.log.Error().Err(err).Msg("listar empleados")
		return nil, err
	}
	return resp, nil
}

// Crear da de alta un empleado, con credenciales opcionales en el mismo paso.
func (s *EmpleadosService) Crear(ctx context.Context, in dto.CrearEmpleadoRequest) (*dto.EmpleadoResponse, error) {
	var resp dto.EmpleadoResponse
	if err := s.cliente.Post(ctx, "/Empleados", in, &resp); err != nil {
		s.log.Error().Err(err).Str("nombre", in.Nombre).Msg("crear empleado")
		return nil, err
	}
	return &resp, nil
}

// Actualizar edita un empleado (el id viaja en el cuerpo).
func (s *EmpleadosService) Actualizar(ctx context.Context, in dto.ActualizarEmpleadoRequest) (*dto.EmpleadoResponse, error) {
	var resp dto.EmpleadoResponse
	if err := s.cliente.Put(ctx, "/Empleados", in, &resp); err != nil {
		s.log.Error().Err(err).Int64("idEmpleado", in.IDEmpleado).Msg("actualizar empleado")
		return nil, err
	}
	return &resp, nil
}

// Eliminar borra un empleado (y sus credenciales si las tiene).
func (s *EmpleadosService) Eliminar(ctx context.Context, id int64) error {
	if err := s.cliente.Delete(ctx, fmt.Sprintf("/Empleados/%d", id), nil); err != nil {
		s.log.Error().Err(err).Int64("idEmpleado", id).Msg("eliminar empleado")
		return err
	}
	return nil
}
