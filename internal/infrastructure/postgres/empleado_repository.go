package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/wumbao/panaderia-pos/internal/domain"
	"github.com/wumbao/panaderia-pos/internal/domain/entity"
	"github.com/wumbao/panaderia-pos/internal/domain/repository"
)

var _ repository.EmpleadoRepository = (*EmpleadoRepo)(nil)

// EmpleadoRepo implementación del puerto EmpleadoRepository sobre PostgreSQL.
type EmpleadoRepo struct {
	q Querier
}

// NewEmpleadoRepository construye el adaptador de persistencia para empleados.
func NewEmpleadoRepository(q Querier) *EmpleadoRepo {
	return &EmpleadoRepo{q: q}
}

// Create persiste un nuevo empleado y asigna el id generado.
func (r *EmpleadoRepo) Create(empleado *entity.Empleado) error {
	query := `
		INSERT INTO empleados (nombre, telefono, rol, salario, fecha_ingreso, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id_empleado`
	err := r.q.QueryRow(context.Background(), query,
		empleado.Nombre, empleado.Telefono, string(empleado.Rol), empleado.Salario,
		empleado.FechaIngreso, empleado.CreatedAt, empleado.UpdatedAt,
	).Scan(&empleado.IDEmpleado)
	if err != nil {
		return fmt.Errorf("insert empleado: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID; nil si no existe.
func (r *EmpleadoRepo) GetByID(id int64) (*entity.Empleado, error) {
	query := `
		SELECT id_empleado, nombre, telefono, rol, salario, fecha_ingreso, created_at, updated_at
		FROM empleados WHERE id_empleado = $1`
	var e entity.Empleado
	var rol string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.IDEmpleado, &e.Nombre, &e.Telefono, &rol, &e.Salario, &e.FechaIngreso, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empleado: %w", err)
	}
	e.Rol = entity.ParseRol(rol)
	return &e, nil
}

// List devuelve todos los empleados ordenados por nombre.
func (r *EmpleadoRepo) List() ([]*entity.Empleado, error) {
	query := `
		SELECT id_empleado, nombre, telefono, rol, salario, fecha_ingreso, created_at, updated_at
		FROM empleados ORDER BY nombre`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list empleados: %w", err)
	}
	defer rows.Close()
	var list []*entity.Empleado
	for rows.Next() {
		var e entity.Empleado
		var rol string
		if err := rows.Scan(&e.IDEmpleado, &e.Nombre, &e.Telefono, &rol, &e.Salario,
			&e.FechaIngreso, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan empleado: %w", err)
		}
		e.Rol = entity.ParseRol(rol)
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update actualiza un empleado existente.
func (r *EmpleadoRepo) Update(empleado *entity.Empleado) error {
	query := `
		UPDATE empleados
		SET nombre = $2, telefono = $3, rol = $4, salario = $5, fecha_ingreso = $6, updated_at = $7
		WHERE id_empleado = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		empleado.IDEmpleado, empleado.Nombre, empleado.Telefono, string(empleado.Rol),
		empleado.Salario, empleado.FechaIngreso, empleado.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update empleado: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un empleado por ID.
func (r *EmpleadoRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM empleados WHERE id_empleado = $1`, id)
	if err != nil {
		return fmt.Errorf("delete empleado: %w", err)
	}
	return nil
}
