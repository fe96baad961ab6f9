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

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

// CategoriaRepo implementación del puerto CategoriaRepository sobre PostgreSQL.
type CategoriaRepo struct {
	q Querier
}

// NewCategoriaRepository construye el adaptador de persistencia para categorías.
func NewCategoriaRepository(q Querier) *CategoriaRepo {
	return &CategoriaRepo{q: q}
}

// Create persiste una categoría nueva y asigna el id generado.
func (r *CategoriaRepo) Create(categoria *entity.Categoria) error {
	query := `
		INSERT INTO categorias (nombre, descripcion, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id_categoria`
	err := r.q.QueryRow(context.Background(), query,
		categoria.Nombre, categoria.Descripcion, categoria.CreatedAt, categoria.UpdatedAt,
	).Scan(&categoria.IDCategoria)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert categoria: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID; nil si no existe.
func (r *CategoriaRepo) GetByID(id int64) (*entity.Categoria, error) {
	query := `
		SELECT id_categoria, nombre, descripcion, created_at, updated_at
		FROM categorias WHERE id_categoria = $1`
	var c entity.Categoria
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.IDCategoria, &c.Nombre, &c.Descripcion, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoria: %w", err)
	}
	return &c, nil
}

// List devuelve todas las categorías ordenadas por nombre.
func (r *CategoriaRepo) List() ([]*entity.Categoria, error) {
	query := `SELECT id_categoria, nombre, descripcion, created_at, updated_at FROM categorias ORDER BY nombre`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()
	var list []*entity.Categoria
	for rows.Next() {
		var c entity.Categoria
		if err := rows.Scan(&c.IDCategoria, &c.Nombre, &c.Descripcion, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza una categoría existente.
func (r *CategoriaRepo) Update(categoria *entity.Categoria) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE categorias SET nombre = $2, descripcion = $3, updated_at = $4 WHERE id_categoria = $1`,
		categoria.IDCategoria, categoria.Nombre, categoria.Descripcion, categoria.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update categoria: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una categoría; ErrCategoriaEnUso si tiene productos asociados.
func (r *CategoriaRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM categorias WHERE id_categoria = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCategoriaEnUso
		}
		return fmt.Errorf("delete categoria: %w", err)
	}
	return nil
}
