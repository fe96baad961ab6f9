package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un producto del catálogo de la panadería.
// Stock nunca es negativo: el descuento se hace de forma condicional en la
// misma sentencia SQL que registra la venta.
type Producto struct {
	IDProducto   int64
	Nombre       string
	Descripcion  *string // nullable en el backend original
	Precio       decimal.Decimal
	Stock        int
	Costo        decimal.Decimal
	NivelReorden int
	IDCategoria  int64
	Imagen       []byte // bytes crudos de la imagen subida; vacío si no hay
	ImagenURL    string // alternativa: referencia externa
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
