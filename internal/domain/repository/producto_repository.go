package repository

import "github.com/wumbao/panaderia-pos/internal/domain/entity"

// ProductoRepository define el puerto de persistencia para Producto (DIP).
type ProductoRepository interface {
	Create(producto *entity.Producto) error
	GetByID(id int64) (*entity.Producto, error)
	List() ([]*entity.Producto, error)
	Update(producto *entity.Producto) error
	Delete(id int64) error
	// DescontarStock resta cantidad de forma condicional: falla con
	// domain.ErrStockInsuficiente si el stock disponible no alcanza.
	DescontarStock(id int64, cantidad int) error
}
