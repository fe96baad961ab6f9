package dto

import "github.com/shopspring/decimal"

// CrearEmpleadoRequest alta de empleado. Las credenciales (nombreUsuario y
// clave) son opcionales y solo pueden crearse en este momento; después el
// empleado se edita sin tocar credenciales.
type CrearEmpleadoRequest struct {
	Nombre       string          `json:"nombre" validate:"required"`
	Telefono     string          `json:"telefono"`
	Rol          string          `json:"rol" validate:"required"`
	Salario      decimal.Decimal `json:"salario" validate:"decimal_no_negativo"`
	FechaIngreso string          `json:"fechaIngreso" validate:"required"` // YYYY-MM-DD

	NombreUsuario string `json:"nombreUsuario"`
	Clave         string `json:"clave"`
}

// ActualizarEmpleadoRequest edición de empleado; el id va en el cuerpo
// (PUT /Empleados/ sin id en la ruta, como espera el frontend original).
type ActualizarEmpleadoRequest struct {
	IDEmpleado   int64           `json:"idEmpleado" validate:"required,gt=0"`
	Nombre       string          `json:"nombre" validate:"required"`
	Telefono     string          `json:"telefono"`
	Rol          string          `json:"rol" validate:"required"`
	Salario      decimal.Decimal `json:"salario" validate:"decimal_no_negativo"`
	FechaIngreso string          `json:"fechaIngreso" validate:"required"`
}

// EmpleadoResponse empleado tal como viaja al terminal.
type EmpleadoResponse struct {
	IDEmpleado   int64           `json:"idEmpleado"`
	Nombre       string          `json:"nombre"`
	Telefono     string          `json:"telefono"`
	Rol          string          `json:"rol"`
	Salario      decimal.Decimal `json:"salario"`
	FechaIngreso string          `json:"fechaIngreso"`
}
