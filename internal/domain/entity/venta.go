package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Venta es la cabecera de una venta finalizada. Inmutable una vez creada:
// no existe flujo de edición ni cancelación desde el terminal.
type Venta struct {
	IDVenta    int64
	Referencia string // uuid asignado por el servidor, impreso en el recibo
	Fecha      time.Time
	IDEmpleado int64
	Total      decimal.Decimal // calculado por el servidor, nunca por el cliente
	Detalles   []DetalleVenta
}

// DetalleVenta es una línea de la venta: producto, cantidad y el precio
// unitario vigente al momento de armar el carrito.
type DetalleVenta struct {
	IDDetalle      int64
	IDVenta        int64
	IDProducto     int64
	Cantidad       int
	PrecioUnitario decimal.Decimal
}
