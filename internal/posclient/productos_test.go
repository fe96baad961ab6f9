package posclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wumbao/panaderia-pos/internal/domain/entity"
	"github.com/wumbao/panaderia-pos/internal/posclient"
)

// ──────────────────────────────────────────────────────────────────────────────
// Gestión de productos desde el terminal
// ──────────────────────────────────────────────────────────────────────────────

func TestProductos_CrearEnviaFormYCabeceraUsuario(t *testing.T) {
	var metodo, ruta, usuario, precio string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metodo, ruta = r.Method, r.URL.Path
		usuario = r.Header.Get("usuario")
		require.NoError(t, r.ParseMultipartForm(1<<20))
		precio = r.FormValue("precio")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"idProducto":3,"nombre":"Concha","precio":"8.50","stock":12,"idCategoria":1,"imagenUrl":"https://cdn/concha.png"}`))
	}))
	defer srv.Close()
	svc := posclient.NewProductosService(posclient.NewCliente(srv.URL, zerolog.Nop()), zerolog.Nop())

	creado, err := svc.Crear(context.Background(), "admin", posclient.ProductoForm{
		Nombre:      "Concha",
		Precio:      decimal.RequireFromString("8.50"),
		Costo:       decimal.RequireFromString("3.00"),
		Stock:       12,
		IDCategoria: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, metodo)
	assert.Equal(t, "/Productos", ruta)
	assert.Equal(t, "admin", usuario)
	assert.Equal(t, "8.5", precio)
	assert.Equal(t, int64(3), creado.IDProducto)
	assert.Equal(t, entity.ImagenURL, creado.Imagen.Tipo)
}

func TestProductos_ActualizarLlevaIDEnElForm(t *testing.T) {
	var metodo, idProducto string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metodo = r.Method
		require.NoError(t, r.ParseMultipartForm(1<<20))
		idProducto = r.FormValue("idProducto")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"idProducto":3,"nombre":"Concha de chocolate","precio":"9.00","stock":12,"idCategoria":1}`))
	}))
	defer srv.Close()
	svc := posclient.NewProductosService(posclient.NewCliente(srv.URL, zerolog.Nop()), zerolog.Nop())

	actualizado, err := svc.Actualizar(context.Background(), "admin", posclient.ProductoForm{
		IDProducto:  3,
		Nombre:      "Concha de chocolate",
		Precio:      decimal.RequireFromString("9.00"),
		IDCategoria: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, metodo)
	assert.Equal(t, "3", idProducto)
	assert.Equal(t, "Concha de chocolate", actualizado.Nombre)
}

func TestProductos_EliminarUsaRutaYCabecera(t *testing.T) {
	var metodo, ruta, usuario string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metodo, ruta = r.Method, r.URL.Path
		usuario = r.Header.Get("usuario")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()
	svc := posclient.NewProductosService(posclient.NewCliente(srv.URL, zerolog.Nop()), zerolog.Nop())

	require.NoError(t, svc.Eliminar(context.Background(), "admin", 9))

	assert.Equal(t, http.MethodDelete, metodo)
	assert.Equal(t, "/Productos/9", ruta)
	assert.Equal(t, "admin", usuario)
}
