package dto

// ErrorResponse cuerpo de error HTTP. El terminal lee `mensaje` para
// sobreescribir la tabla fija de mensajes por código de estado.
type ErrorResponse struct {
	Codigo  string `json:"codigo"`
	Mensaje string `json:"mensaje"`
}
