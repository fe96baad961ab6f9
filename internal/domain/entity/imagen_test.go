package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wumbao/panaderia-pos/internal/domain/entity"
)

func TestNormalizarImagen(t *testing.T) {
	casos := []struct {
		nombre   string
		raw      string
		esperado entity.ImagenRef
	}{
		{"vacio", "", entity.ImagenRef{Tipo: entity.ImagenNinguna}},
		{"solo espacios", "   ", entity.ImagenRef{Tipo: entity.ImagenNinguna}},
		{"url http", "http://cdn.example.com/pan.png",
			entity.ImagenRef{Tipo: entity.ImagenURL, Valor: "http://cdn.example.com/pan.png"}},
		{"url https", "https://cdn.example.com/pan.png",
			entity.ImagenRef{Tipo: entity.ImagenURL, Valor: "https://cdn.example.com/pan.png"}},
		{"data uri", "data:image/png;base64,iVBORw0KGgo=",
			entity.ImagenRef{Tipo: entity.ImagenBase64, Valor: "iVBORw0KGgo="}},
		{"data uri sin payload", "data:image/png;base64",
			entity.ImagenRef{Tipo: entity.ImagenNinguna}},
		{"base64 pelado", "iVBORw0KGgo=",
			entity.ImagenRef{Tipo: entity.ImagenBase64, Valor: "iVBORw0KGgo="}},
	}
	for _, caso := range casos {
		t.Run(caso.nombre, func(t *testing.T) {
			assert.Equal(t, caso.esperado, entity.NormalizarImagen(caso.raw))
		})
	}
}

func TestImagenRef_Vacia(t *testing.T) {
	assert.True(t, entity.NormalizarImagen("").Vacia())
	assert.False(t, entity.NormalizarImagen("https://x.com/a.png").Vacia())
}

func TestParseRol(t *testing.T) {
	assert.Equal(t, entity.RolAdministrador, entity.ParseRol("Administrador"))
	assert.Equal(t, entity.RolEmpleado, entity.ParseRol("Empleado"))
	// Valores desconocidos degradan al rol de menor privilegio.
	assert.Equal(t, entity.RolEmpleado, entity.ParseRol("superusuario"))
	assert.Equal(t, entity.RolEmpleado, entity.ParseRol(""))
}

func TestRol_EsAdministradorYValido(t *testing.T) {
	assert.True(t, entity.RolAdministrador.EsAdministrador())
	assert.False(t, entity.RolEmpleado.EsAdministrador())
	assert.False(t, entity.Rol("").EsAdministrador())

	assert.True(t, entity.RolAdministrador.Valido())
	assert.True(t, entity.RolEmpleado.Valido())
	assert.False(t, entity.Rol("").Valido())
	assert.False(t, entity.Rol("bodeguero").Valido())
}
