package repository

import "github.com/wumbao/panaderia-pos/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para Usuario (DIP).
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByID(id int64) (*entity.Usuario, error)
	FindByNombreUsuario(nombreUsuario string) (*entity.Usuario, error)
	DeleteByEmpleado(idEmpleado int64) error
}
