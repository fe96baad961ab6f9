package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUsuarioNotFound    = errors.New("usuario no encontrado")
	ErrUsuarioYaExiste    = errors.New("el nombre de usuario ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrStockInsuficiente  = errors.New("stock insuficiente")
	ErrCategoriaEnUso     = errors.New("la categoría tiene productos asociados")
)
