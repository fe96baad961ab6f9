package dto

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	NombreUsuario string `json:"nombreUsuario" validate:"required"`
	Clave         string `json:"clave" validate:"required"`
}

// UsuarioResponse usuario autenticado tal como viaja dentro de la respuesta de login.
type UsuarioResponse struct {
	IDUsuario     int64  `json:"idUsuario"`
	NombreUsuario string `json:"nombreUsuario"`
	Rol           string `json:"rol"`
	IDEmpleado    int64  `json:"idEmpleado"`
}

// LoginResponse respuesta de POST /Acceso/Login. El terminal persiste este
// blob completo como sesión.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}

// RegistrarUsuarioRequest alta de credenciales (POST /Acceso/Registrar).
type RegistrarUsuarioRequest struct {
	NombreUsuario string `json:"nombreUsuario" validate:"required,min=3"`
	Clave         string `json:"clave" validate:"required,min=8"`
	Rol           string `json:"rol" validate:"required"`
	IDEmpleado    int64  `json:"idEmpleado" validate:"required,gt=0"`
}
