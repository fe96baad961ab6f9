package dto

import "github.com/shopspring/decimal"

// LineaVentaRequest una línea de la venta a registrar.
type LineaVentaRequest struct {
	IDProducto     int64           `json:"idProducto" validate:"required,gt=0"`
	Cantidad       int             `json:"cantidad" validate:"required,gt=0"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario" validate:"decimal_positivo"`
}

// RegistrarVentaRequest cuerpo de POST /Ventas/Registrar. El total NO viaja:
// lo calcula el servidor a partir de las líneas.
type RegistrarVentaRequest struct {
	IDEmpleado int64               `json:"idEmpleado" validate:"required,gt=0"`
	Productos  []LineaVentaRequest `json:"productos" validate:"required,min=1,dive"`
}

// VentaResponse cabecera de venta registrada.
type VentaResponse struct {
	IDVenta    int64           `json:"idVenta"`
	Referencia string          `json:"referencia"`
	Fecha      string          `json:"fecha"` // RFC 3339
	IDEmpleado int64           `json:"idEmpleado"`
	Total      decimal.Decimal `json:"total"`
}

// DetalleVentaResponse línea de una venta consultada.
type DetalleVentaResponse struct {
	IDProducto     int64           `json:"idProducto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
}

// VentaConDetallesResponse venta con sus líneas (GET /Ventas/:id).
type VentaConDetallesResponse struct {
	VentaResponse
	Detalles []DetalleVentaResponse `json:"detalles"`
}

// ResumenDiaResponse total vendido por día (GET /Ventas/Resumen).
type ResumenDiaResponse struct {
	Dia   string          `json:"dia"` // YYYY-MM-DD
	Total decimal.Decimal `json:"total"`
}
