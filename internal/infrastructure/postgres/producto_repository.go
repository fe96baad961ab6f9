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

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

const productoColumns = `id_producto, nombre, descripcion, precio, stock, costo, nivel_reorden, id_categoria, imagen, imagen_url, created_at, updated_at`

// Create persiste un nuevo producto y asigna el id generado.
func (r *ProductoRepo) Create(producto *entity.Producto) error {
	query := `
		INSERT INTO productos (nombre, descripcion, precio, stock, costo, nivel_reorden, id_categoria, imagen, imagen_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id_producto`
	err := r.q.QueryRow(context.Background(), query,
		producto.Nombre, producto.Descripcion, producto.Precio, producto.Stock, producto.Costo,
		producto.NivelReorden, producto.IDCategoria, producto.Imagen, producto.ImagenURL,
		producto.CreatedAt, producto.UpdatedAt,
	).Scan(&producto.IDProducto)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID; nil si no existe.
func (r *ProductoRepo) GetByID(id int64) (*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE id_producto = $1`
	var p entity.Producto
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.IDProducto, &p.Nombre, &p.Descripcion, &p.Precio, &p.Stock, &p.Costo,
		&p.NivelReorden, &p.IDCategoria, &p.Imagen, &p.ImagenURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// List devuelve el catálogo completo ordenado por nombre.
func (r *ProductoRepo) List() ([]*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos ORDER BY nombre`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(&p.IDProducto, &p.Nombre, &p.Descripcion, &p.Precio, &p.Stock, &p.Costo,
			&p.NivelReorden, &p.IDCategoria, &p.Imagen, &p.ImagenURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un producto existente.
func (r *ProductoRepo) Update(producto *entity.Producto) error {
	query := `
		UPDATE productos
		SET nombre = $2, descripcion = $3, precio = $4, stock = $5, costo = $6,
		    nivel_reorden = $7, id_categoria = $8, imagen = $9, imagen_url = $10, updated_at = $11
		WHERE id_producto = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		producto.IDProducto, producto.Nombre, producto.Descripcion, producto.Precio, producto.Stock,
		producto.Costo, producto.NivelReorden, producto.IDCategoria, producto.Imagen, producto.ImagenURL,
		producto.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductoRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id_producto = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}

// DescontarStock resta cantidad de forma condicional en una sola sentencia:
// cero filas afectadas significa que el stock disponible no alcanza.
func (r *ProductoRepo) DescontarStock(id int64, cantidad int) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE productos SET stock = stock - $2, updated_at = now() WHERE id_producto = $1 AND stock >= $2`,
		id, cantidad,
	)
	if err != nil {
		return fmt.Errorf("descontar stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrStockInsuficiente
	}
	return nil
}
