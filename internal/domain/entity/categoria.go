package entity

import "time"

// Categoria agrupa productos del catálogo (panes, bollería, bebidas…).
type Categoria struct {
	IDCategoria int64
	Nombre      string
	Descripcion string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
