package entity

import "time"

// Acciones registradas en auditoría.
const (
	AccionCreate = "CREATE"
	AccionUpdate = "UPDATE"
	AccionDelete = "DELETE"
)

// Auditoria es un registro de solo lectura del historial de cambios sobre
// productos: quién hizo qué y los valores antes/después.
type Auditoria struct {
	IDAuditoria   string // uuid
	FechaHora     time.Time
	Usuario       string // nombre de usuario tal como llega en la cabecera `usuario`
	Accion        string // CREATE | UPDATE | DELETE
	IDProducto    int64
	ValorAnterior string // snapshot JSON; vacío en CREATE
	ValorNuevo    string // snapshot JSON; vacío en DELETE
}
