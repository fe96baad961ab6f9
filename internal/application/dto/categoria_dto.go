package dto

// CrearCategoriaRequest alta de categoría.
type CrearCategoriaRequest struct {
	Nombre      string `json:"nombre" validate:"required"`
	Descripcion string `json:"descripcion"`
}

// ActualizarCategoriaRequest edición de categoría.
type ActualizarCategoriaRequest struct {
	Nombre      string `json:"nombre" validate:"required"`
	Descripcion string `json:"descripcion"`
}

// CategoriaResponse categoría tal como viaja al terminal.
type CategoriaResponse struct {
	IDCategoria int64  `json:"idCategoria"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}
