package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wumbao/panaderia-pos/internal/domain/entity"
)

// ResumenDia total vendido en un día calendario (para el gráfico de ventas).
type ResumenDia struct {
	Dia   time.Time
	Total decimal.Decimal
}

// VentaRepository define el puerto de persistencia para Venta y sus detalles.
type VentaRepository interface {
	Create(venta *entity.Venta) error
	CreateDetalle(detalle *entity.DetalleVenta) error
	GetByID(id int64) (*entity.Venta, error)
	GetDetalles(idVenta int64) ([]*entity.DetalleVenta, error)
	List() ([]*entity.Venta, error)
	ResumenDiario(desde, hasta time.Time) ([]*ResumenDia, error)
}
