package dto

import (
	"github.com/shopspring/decimal"
)

// CrearProductoRequest campos del formulario multipart de alta de producto.
// La imagen llega como archivo aparte (campo `imagen`).
type CrearProductoRequest struct {
	Nombre       string          `form:"nombre" validate:"required"`
	Descripcion  string          `form:"descripcion"`
	Precio       decimal.Decimal `form:"precio" validate:"decimal_positivo"`
	Stock        int             `form:"stock" validate:"min=0"`
	Costo        decimal.Decimal `form:"costo" validate:"decimal_no_negativo"`
	NivelReorden int             `form:"nivelReorden" validate:"min=0"`
	IDCategoria  int64           `form:"idCategoria" validate:"gt=0"`
	ImagenURL    string          `form:"imagenUrl"`
}

// ActualizarProductoRequest igual que el alta pero con el id en el cuerpo:
// el backend original espera PUT /Productos con idProducto en el form-data.
type ActualizarProductoRequest struct {
	IDProducto   int64           `form:"idProducto" validate:"required,gt=0"`
	Nombre       string          `form:"nombre" validate:"required"`
	Descripcion  string          `form:"descripcion"`
	Precio       decimal.Decimal `form:"precio" validate:"decimal_positivo"`
	Stock        int             `form:"stock" validate:"min=0"`
	Costo        decimal.Decimal `form:"costo" validate:"decimal_no_negativo"`
	NivelReorden int             `form:"nivelReorden" validate:"min=0"`
	IDCategoria  int64           `form:"idCategoria" validate:"gt=0"`
	ImagenURL    string          `form:"imagenUrl"`
}

// ProductoResponse producto tal como viaja al terminal. `imagen` es base64 o
// null; `imagenUrl` es la alternativa por referencia. El cliente normaliza
// ambas formas a una unión etiquetada al ingerir la respuesta.
type ProductoResponse struct {
	IDProducto   int64           `json:"idProducto"`
	Nombre       string          `json:"nombre"`
	Descripcion  *string         `json:"descripcion"`
	Precio       decimal.Decimal `json:"precio"`
	Stock        int             `json:"stock"`
	Costo        decimal.Decimal `json:"costo"`
	NivelReorden int             `json:"nivelReorden"`
	IDCategoria  int64           `json:"idCategoria"`
	Imagen       string          `json:"imagen,omitempty"`
	ImagenURL    string          `json:"imagenUrl,omitempty"`
}
