package posclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wumbao/panaderia-pos/internal/posclient"
)

// ──────────────────────────────────────────────────────────────────────────────
// Normalización de errores HTTP
// ──────────────────────────────────────────────────────────────────────────────

// Tabla de mensajes fijos por código cuando el servidor no manda uno propio.
func TestCliente_MensajesPorCodigoDeEstado(t *testing.T) {
	casos := []struct {
		status  int
		mensaje string
	}{
		{http.StatusBadRequest, "Datos inválidos. Por favor verifica la información."},
		{http.StatusUnauthorized, "Usuario o contraseña incorrectos."},
		{http.StatusForbidden, "No tienes permiso para realizar esta acción."},
		{http.StatusNotFound, "El recurso solicitado no existe."},
		{http.StatusConflict, "Ya existe un registro con estos datos."},
		{http.StatusUnprocessableEntity, "Los datos enviados no son válidos."},
		{http.StatusInternalServerError, "Error en el servidor. Intenta más tarde."},
		{http.StatusBadGateway, "El servidor no está disponible."},
		{http.StatusServiceUnavailable, "Servicio no disponible. Intenta más tarde."},
		{http.StatusTeapot, "Error de conexión (418)"},
	}
	for _, caso := range casos {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(caso.status)
		}))
		cliente := posclient.NewCliente(srv.URL, zerolog.Nop())

		err := cliente.Get(context.Background(), "/Productos", nil)
		srv.Close()

		var apiErr *posclient.APIError
		require.ErrorAs(t, err, &apiErr, "status %d", caso.status)
		assert.Equal(t, caso.status, apiErr.Status)
		assert.Equal(t, caso.mensaje, apiErr.Mensaje)
	}
}

// El mensaje del servidor, cuando viene en el cuerpo, gana sobre la tabla.
func TestCliente_MensajeDelServidorTienePrioridad(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"codigo":"STOCK","mensaje":"stock insuficiente para Croissant"}`))
	}))
	defer srv.Close()
	cliente := posclient.NewCliente(srv.URL, zerolog.Nop())

	err := cliente.Post(context.Background(), "/Ventas/Registrar", map[string]int{"x": 1}, nil)

	var apiErr *posclient.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "stock insuficiente para Croissant", apiErr.Mensaje)
}

// También se acepta el campo `message` en inglés.
func TestCliente_CampoMessageTambienSeAcepta(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"bad things"}`))
	}))
	defer srv.Close()
	cliente := posclient.NewCliente(srv.URL, zerolog.Nop())

	err := cliente.Get(context.Background(), "/x", nil)

	var apiErr *posclient.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "bad things", apiErr.Mensaje)
}

func TestCliente_FalloDeRed(t *testing.T) {
	// Puerto cerrado: nadie escucha.
	cliente := posclient.NewCliente("http://127.0.0.1:1", zerolog.Nop())

	err := cliente.Get(context.Background(), "/Productos", nil)

	var apiErr *posclient.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Zero(t, apiErr.Status)
	assert.Equal(t, posclient.MensajeSinConexion, apiErr.Mensaje)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cabeceras y decodificación
// ──────────────────────────────────────────────────────────────────────────────

func TestCliente_TokenBearerYDecodificacion(t *testing.T) {
	var authRecibida string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authRecibida = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"idProducto":7,"nombre":"Torta"}`))
	}))
	defer srv.Close()
	cliente := posclient.NewCliente(srv.URL, zerolog.Nop())
	cliente.SetToken("abc123")

	var out struct {
		IDProducto int64  `json:"idProducto"`
		Nombre     string `json:"nombre"`
	}
	require.NoError(t, cliente.Get(context.Background(), "/Productos/7", &out))

	assert.Equal(t, "Bearer abc123", authRecibida)
	assert.Equal(t, int64(7), out.IDProducto)
	assert.Equal(t, "Torta", out.Nombre)
}

func TestCliente_PostFormDataEnviaMultipartYCabeceras(t *testing.T) {
	var contentType, usuario, nombre string
	var imagen []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		usuario = r.Header.Get("usuario")
		require.NoError(t, r.ParseMultipartForm(1<<20))
		nombre = r.FormValue("nombre")
		f, _, err := r.FormFile("imagen")
		require.NoError(t, err)
		defer f.Close()
		buf := make([]byte, 4)
		n, _ := f.Read(buf)
		imagen = buf[:n]
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()
	cliente := posclient.NewCliente(srv.URL, zerolog.Nop())

	form := posclient.FormCampos{
		Valores: map[string]string{"nombre": "Torta"},
		Archivo: []byte{0x89, 'P', 'N', 'G'},
	}
	err := cliente.PostFormData(context.Background(), "/Productos", form, map[string]string{"usuario": "admin"}, nil)
	require.NoError(t, err)

	assert.Contains(t, contentType, "multipart/form-data")
	assert.Equal(t, "admin", usuario)
	assert.Equal(t, "Torta", nombre)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, imagen)
}
