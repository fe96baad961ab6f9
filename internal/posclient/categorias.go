package posclient

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/wumbao/panaderia-pos/internal/application/dto"
)

// CategoriasService CRUD de categorías de producto.
type CategoriasService struct {
	cliente *Cliente
	log     zerolog.Logger
}

// NewCategoriasService construye el servicio.
func NewCategoriasService(cliente *Cliente, log zerolog.Logger) *CategoriasService {
	return &CategoriasService{cliente: cliente, log: log}
}

// Listar trae todas las categorías.
func (s *CategoriasService) Listar(ctx context.Context) ([]dto.CategoriaResponse, error) {
	var resp []dto.CategoriaResponse
	if err := s.cliente.Get(ctx, "/Categorias", &resp); err != nil {
		s.log.Error().Err(err).Msg("listar categorías")
		return nil, err
	}
	return resp, nil
}

// Crear da de alta una categoría.
func (s *CategoriasService) Crear(ctx context.Context, in dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error) {
	var resp dto.CategoriaResponse
	if err := s.cliente.Post(ctx, "/Categorias", in, &resp); err != nil {
		s.log.Error().Err(err).Str("nombre", in.Nombre).Msg("crear categoría")
		return nil, err
	}
	return &resp, nil
}

// Actualizar edita una categoría.
func (s *CategoriasService) Actualizar(ctx context.Context, id int64, in dto.ActualizarCategoriaRequest) (*dto.CategoriaResponse, error) {
	var resp dto.CategoriaResponse
	if err := s.cliente.Put(ctx, fmt.Sprintf("/Categorias/%d", id), in, &resp); err != nil {
		s.log.Error().Err(err).Int64("idCategoria", id).Msg("actualizar categoría")
		return nil, err
	}
	return &resp, nil
}

// Eliminar borra una categoría sin productos asociados.
func (s *CategoriasService) Eliminar(ctx context.Context, id int64) error {
	if err := s.cliente.Delete(ctx, fmt.Sprintf("/Categorias/%d", id), nil); err != nil {
		s.log.Error().Err(err).Int64("idCategoria", id).Msg("eliminar categoría")
		return err
	}
	return nil
}
