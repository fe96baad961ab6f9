package repository

import "github.com/wumbao/panaderia-pos/internal/domain/entity"

// AuditoriaRepository define el puerto de persistencia para los registros de auditoría.
type AuditoriaRepository interface {
	Create(registro *entity.Auditoria) error
	List() ([]*entity.Auditoria, error)
}
