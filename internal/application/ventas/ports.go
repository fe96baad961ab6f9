package ventas

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/wumbao/panaderia-pos/internal/domain/entity"
	"github.com/wumbao/panaderia-pos/internal/domain/repository"
)

// TxRunner ejecuta el registro de una venta dentro de una transacción: el
// callback recibe repos atados a la misma tx, de modo que el descuento de
// stock y los inserts de cabecera y detalles son atómicos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		ventaRepo repository.VentaRepository,
		productoRepo repository.ProductoRepository,
	) error) error
}

// LineaRecibo línea desnormalizada para el recibo PDF.
type LineaRecibo struct {
	Nombre         string
	Cantidad       int
	PrecioUnitario decimal.Decimal
	Subtotal       decimal.Decimal
}

// ReciboPDFGenerator genera la representación PDF de un recibo de venta.
type ReciboPDFGenerator interface {
	GenerarReciboPDF(ctx context.Context, venta *entity.Venta, empleado *entity.Empleado, lineas []LineaRecibo) ([]byte, error)
}
