package entity

// Rol es el conjunto cerrado de roles del sistema. El backend original
// comparaba strings sueltos; aquí se modela como enum de dos variantes con
// match exhaustivo en los puntos de decisión.
type Rol string

const (
	RolEmpleado      Rol = "Empleado"
	RolAdministrador Rol = "Administrador"
)

// ParseRol normaliza el valor transportado a una de las dos variantes.
// Cualquier valor no reconocido degrada a RolEmpleado (menor privilegio).
func ParseRol(s string) Rol {
	if Rol(s) == RolAdministrador {
		return RolAdministrador
	}
	return RolEmpleado
}

// EsAdministrador indica si el rol otorga acceso a las secciones administrativas.
func (r Rol) EsAdministrador() bool {
	switch r {
	case RolAdministrador:
		return true
	case RolEmpleado:
		return false
	}
	return false
}

// Valido indica si el valor es una de las dos variantes conocidas.
func (r Rol) Valido() bool {
	return r == RolEmpleado || r == RolAdministrador
}
