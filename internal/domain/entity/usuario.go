package entity

import "time"

// Usuario representa las credenciales de acceso ligadas a un empleado.
// Se crean únicamente al dar de alta al empleado; ClaveHash es bcrypt,
// nunca texto plano después de persistir.
type Usuario struct {
	IDUsuario     int64
	NombreUsuario string
	ClaveHash     string
	Rol           Rol
	IDEmpleado    int64
	CreatedAt     time.Time
}
