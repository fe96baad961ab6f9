package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Empleado representa un miembro del equipo de la panadería.
type Empleado struct {
	IDEmpleado   int64
	Nombre       string
	Telefono     string
	Rol          Rol
	Salario      decimal.Decimal
	FechaIngreso time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
