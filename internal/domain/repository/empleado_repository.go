package repository

import "github.com/wumbao/panaderia-pos/internal/domain/entity"

// EmpleadoRepository define el puerto de persistencia para Empleado (DIP).
type EmpleadoRepository interface {
	Create(empleado *entity.Empleado) error
	GetByID(id int64) (*entity.Empleado, error)
	List() ([]*entity.Empleado, error)
	Update(empleado *entity.Empleado) error
	Delete(id int64) error
}
