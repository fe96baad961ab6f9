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

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios.
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste credenciales nuevas y asigna el id generado.
func (r *UsuarioRepo) Create(usuario *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (nombre_usuario, clave_hash, rol, id_empleado, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id_usuario`
	err := r.q.QueryRow(context.Background(), query,
		usuario.NombreUsuario, usuario.ClaveHash, string(usuario.Rol), usuario.IDEmpleado, usuario.CreatedAt,
	).Scan(&usuario.IDUsuario)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsuarioYaExiste
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID; nil si no existe.
func (r *UsuarioRepo) GetByID(id int64) (*entity.Usuario, error) {
	return r.findOne(`WHERE id_usuario = $1`, id)
}

// FindByNombreUsuario obtiene un usuario por nombre de usuario; nil si no existe.
func (r *UsuarioRepo) FindByNombreUsuario(nombreUsuario string) (*entity.Usuario, error) {
	return r.findOne(`WHERE nombre_usuario = $1`, nombreUsuario)
}

func (r *UsuarioRepo) findOne(where string, arg any) (*entity.Usuario, error) {
	query := `
		SELECT id_usuario, nombre_usuario, clave_hash, rol, id_empleado, created_at
		FROM usuarios ` + where
	var u entity.Usuario
	var rol string
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.IDUsuario, &u.NombreUsuario, &u.ClaveHash, &rol, &u.IDEmpleado, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	u.Rol = entity.ParseRol(rol)
	return &u, nil
}

// DeleteByEmpleado elimina las credenciales ligadas a un empleado.
func (r *UsuarioRepo) DeleteByEmpleado(idEmpleado int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM usuarios WHERE id_empleado = $1`, idEmpleado)
	if err != nil {
		return fmt.Errorf("delete usuario por empleado: %w", err)
	}
	return nil
}
