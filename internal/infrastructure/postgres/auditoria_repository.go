package postgres

import (
	"context"
	"fmt"

	"github.com/wumbao/panaderia-pos/internal/domain/entity"
	"github.com/wumbao/panaderia-pos/internal/domain/repository"
)

var _ repository.AuditoriaRepository = (*AuditoriaRepo)(nil)

// AuditoriaRepo implementación del puerto AuditoriaRepository sobre PostgreSQL.
type AuditoriaRepo struct {
	q Querier
}

// NewAuditoriaRepository construye el adaptador de persistencia para auditoría.
func NewAuditoriaRepository(q Querier) *AuditoriaRepo {
	return &AuditoriaRepo{q: q}
}

// Create persiste un registro de auditoría.
func (r *AuditoriaRepo) Create(registro *entity.Auditoria) error {
	query := `
		INSERT INTO auditoria (id_auditoria, fecha_hora, usuario, accion, id_producto, valor_anterior, valor_nuevo)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		registro.IDAuditoria, registro.FechaHora, registro.Usuario, registro.Accion,
		registro.IDProducto, registro.ValorAnterior, registro.ValorNuevo,
	)
	if err != nil {
		return fmt.Errorf("insert auditoria: %w", err)
	}
	return nil
}

// List devuelve todos los registros, más recientes primero.
func (r *AuditoriaRepo) List() ([]*entity.Auditoria, error) {
	query := `
		SELECT id_auditoria, fecha_hora, usuario, accion, id_producto, valor_anterior, valor_nuevo
		FROM auditoria ORDER BY fecha_hora DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list auditoria: %w", err)
	}
	defer rows.Close()
	var list []*entity.Auditoria
	for rows.Next() {
		var a entity.Auditoria
		if err := rows.Scan(&a.IDAuditoria, &a.FechaHora, &a.Usuario, &a.Accion,
			&a.IDProducto, &a.ValorAnterior, &a.ValorNuevo); err != nil {
			return nil, fmt.Errorf("scan auditoria: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
