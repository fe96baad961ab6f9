package posclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/wumbao/panaderia-pos/internal/domain/entity"
)

// Sesion contexto de sesión del terminal. Se crea en el login, se pasa
// explícitamente a quien la necesita y se persiste como JSON para que el
// terminal arranque ya autenticado.
type Sesion struct {
	Token         string     `json:"token"`
	IDUsuario     int64      `json:"idUsuario"`
	IDEmpleado    int64      `json:"idEmpleado"`
	NombreUsuario string     `json:"nombreUsuario"`
	Rol           entity.Rol `json:"rol"`
}

// Autenticado indica si hay una sesión con token vigente en memoria.
func (s *Sesion) Autenticado() bool {
	return s != nil && s.Token != "" && s.IDEmpleado > 0
}

// EsAdministrador indica si el usuario de la sesión tiene rol administrador.
func (s *Sesion) EsAdministrador() bool {
	return s != nil && s.Rol.EsAdministrador()
}

// AlmacenSesion persiste la sesión en un archivo JSON.
type AlmacenSesion struct {
	archivo string
}

// NewAlmacenSesion construye el almacén sobre la ruta indicada.
func NewAlmacenSesion(archivo string) *AlmacenSesion {
	return &AlmacenSesion{archivo: archivo}
}

// Guardar escribe la sesión al archivo.
func (a *AlmacenSesion) Guardar(s *Sesion) error {
	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar sesión: %w", err)
	}
	if err := os.WriteFile(a.archivo, raw, 0o600); err != nil {
		return fmt.Errorf("guardar sesión: %w", err)
	}
	return nil
}

// Cargar rehidrata la sesión desde el archivo. Si no existe devuelve
// (nil, nil): arrancar sin sesión no es un error.
func (a *AlmacenSesion) Cargar() (*Sesion, error) {
	raw, err := os.ReadFile(a.archivo)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer sesión: %w", err)
	}
	var s Sesion
	if err := json.Unmarshal(raw, &s); err != nil {
		// Archivo corrupto: se descarta y se pide login de nuevo.
		_ = os.Remove(a.archivo)
		return nil, nil
	}
	if !s.Autenticado() {
		return nil, nil
	}
	return &s, nil
}

// Limpiar elimina la sesión persistida (logout).
func (a *AlmacenSesion) Limpiar() error {
	if err := os.Remove(a.archivo); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("eliminar sesión: %w", err)
	}
	return nil
}
