package usecase

import (
	"time"

	"github.com/wumbao/panaderia-pos/internal/application/dto"
	"github.com/wumbao/panaderia-pos/internal/domain/repository"
)

// AuditoriaUseCase lectura del historial de auditoría (solo administradores).
type AuditoriaUseCase struct {
	repo repository.AuditoriaRepository
}

// NewAuditoriaUseCase construye el caso de uso.
func NewAuditoriaUseCase(repo repository.AuditoriaRepository) *AuditoriaUseCase {
	return &AuditoriaUseCase{repo: repo}
}

// Listar devuelve todos los registros, más recientes primero.
func (uc *AuditoriaUseCase) Listar() ([]*dto.AuditoriaResponse, error) {
	registros, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AuditoriaResponse, 0, len(registros))
	for _, r := range registros {
		out = append(out, &dto.AuditoriaResponse{
			IDAuditoria:   r.IDAuditoria,
			FechaHora:     r.FechaHora.Format(time.RFC3339),
			Usuario:       r.Usuario,
			Accion:        r.Accion,
			IDProducto:    r.IDProducto,
			ValorAnterior: r.ValorAnterior,
			ValorNuevo:    r.ValorNuevo,
		})
	}
	return out, nil
}
