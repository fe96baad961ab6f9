package repository

import "github.com/wumbao/panaderia-pos/internal/domain/entity"

// CategoriaRepository define el puerto de persistencia para Categoria (DIP).
type CategoriaRepository interface {
	Create(categoria *entity.Categoria) error
	GetByID(id int64) (*entity.Categoria, error)
	List() ([]*entity.Categoria, error)
	Update(categoria *entity.Categoria) error
	Delete(id int64) error
}
