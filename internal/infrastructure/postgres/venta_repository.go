package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/wumbao/panaderia-pos/internal/domain/entity"
	"github.com/wumbao/panaderia-pos/internal/domain/repository"
)

var _ repository.VentaRepository = (*VentaRepo)(nil)

// VentaRepo implementación del puerto VentaRepository sobre PostgreSQL (usable con pool o tx).
type VentaRepo struct {
	q Querier
}

// NewVentaRepository construye el adaptador de persistencia para ventas. Pasar pool o tx (Querier).
func NewVentaRepository(q Querier) *VentaRepo {
	return &VentaRepo{q: q}
}

// Create persiste la cabecera de la venta y asigna el id generado.
func (r *VentaRepo) Create(venta *entity.Venta) error {
	query := `
		INSERT INTO ventas (referencia, fecha, id_empleado, total)
		VALUES ($1, $2, $3, $4)
		RETURNING id_venta`
	err := r.q.QueryRow(context.Background(), query,
		venta.Referencia, venta.Fecha, venta.IDEmpleado, venta.Total,
	).Scan(&venta.IDVenta)
	if err != nil {
		return fmt.Errorf("insert venta: %w", err)
	}
	return nil
}

// CreateDetalle persiste una línea de la venta.
func (r *VentaRepo) CreateDetalle(detalle *entity.DetalleVenta) error {
	query := `
		INSERT INTO detalles_venta (id_venta, id_producto, cantidad, precio_unitario)
		VALUES ($1, $2, $3, $4)
		RETURNING id_detalle`
	err := r.q.QueryRow(context.Background(), query,
		detalle.IDVenta, detalle.IDProducto, detalle.Cantidad, detalle.PrecioUnitario,
	).Scan(&detalle.IDDetalle)
	if err != nil {
		return fmt.Errorf("insert detalle de venta: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una venta; nil si no existe.
func (r *VentaRepo) GetByID(id int64) (*entity.Venta, error) {
	query := `SELECT id_venta, referencia, fecha, id_empleado, total FROM ventas WHERE id_venta = $1`
	var v entity.Venta
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.IDVenta, &v.Referencia, &v.Fecha, &v.IDEmpleado, &v.Total,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	return &v, nil
}

// GetDetalles devuelve las líneas de una venta en orden de inserción.
func (r *VentaRepo) GetDetalles(idVenta int64) ([]*entity.DetalleVenta, error) {
	query := `
		SELECT id_detalle, id_venta, id_producto, cantidad, precio_unitario
		FROM detalles_venta WHERE id_venta = $1 ORDER BY id_detalle`
	rows, err := r.q.Query(context.Background(), query, idVenta)
	if err != nil {
		return nil, fmt.Errorf("list detalles de venta: %w", err)
	}
	defer rows.Close()
	var list []*entity.DetalleVenta
	for rows.Next() {
		var d entity.DetalleVenta
		if err := rows.Scan(&d.IDDetalle, &d.IDVenta, &d.IDProducto, &d.Cantidad, &d.PrecioUnitario); err != nil {
			return nil, fmt.Errorf("scan detalle de venta: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// List devuelve todas las cabeceras, más recientes primero.
func (r *VentaRepo) List() ([]*entity.Venta, error) {
	query := `SELECT id_venta, referencia, fecha, id_empleado, total FROM ventas ORDER BY fecha DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Venta
	for rows.Next() {
		var v entity.Venta
		if err := rows.Scan(&v.IDVenta, &v.Referencia, &v.Fecha, &v.IDEmpleado, &v.Total); err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// ResumenDiario agrega el total vendido por día calendario en el rango dado.
func (r *VentaRepo) ResumenDiario(desde, hasta time.Time) ([]*repository.ResumenDia, error) {
	query := `
		SELECT date_trunc('day', fecha) AS dia, COALESCE(SUM(total), 0)
		FROM ventas
		WHERE fecha >= $1 AND fecha <= $2
		GROUP BY dia ORDER BY dia`
	rows, err := r.q.Query(context.Background(), query, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("resumen diario: %w", err)
	}
	defer rows.Close()
	var list []*repository.ResumenDia
	for rows.Next() {
		var d repository.ResumenDia
		if err := rows.Scan(&d.Dia, &d.Total); err != nil {
			return nil, fmt.Errorf("scan resumen: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
