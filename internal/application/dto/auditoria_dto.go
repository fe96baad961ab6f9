package dto

// AuditoriaResponse registro de auditoría de solo lectura.
type AuditoriaResponse struct {
	IDAuditoria   string `json:"idAuditoria"`
	FechaHora     string `json:"fechaHora"` // RFC 3339
	Usuario       string `json:"usuario"`
	Accion        string `json:"accion"`
	IDProducto    int64  `json:"idProducto,omitempty"`
	ValorAnterior string `json:"valorAnterior,omitempty"`
	ValorNuevo    string `json:"valorNuevo,omitempty"`
}
