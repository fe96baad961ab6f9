package posclient

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/wumbao/panaderia-pos/internal/application/dto"
)

// AuditoriaService consulta del historial de cambios sobre productos.
type AuditoriaService struct {
	cliente *Cliente
	log     zerolog.Logger
}

// NewAuditoriaService construye el servicio.
func NewAuditoriaService(cliente *Cliente, log zerolog.Logger) *AuditoriaService {
	return &AuditoriaService{cliente: cliente, log: log}
}

// Listar trae los registros de auditoría, del más reciente al más antiguo.
func (s *AuditoriaService) Listar(ctx context.Context) ([]dto.AuditoriaResponse, error) {
	var resp []dto.AuditoriaResponse
	if err := s.cliente.Get(ctx, "/Auditoria", &resp); err != nil {
		s.log.Error().Err(err).Msg("listar auditoría")
		return nil, err
	}
	return resp, nil
}
