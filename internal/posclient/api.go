package posclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// MensajeSinConexion se muestra cuando la petición no llegó al servidor.
const MensajeSinConexion = "No se puede conectar al servidor. Verifica tu conexión."

// mensajesPorEstado mensajes fijos por código HTTP cuando el servidor no
// incluye uno propio en el cuerpo.
var mensajesPorEstado = map[int]string{
	http.StatusBadRequest:          "Datos inválidos. Por favor verifica la información.",
	http.StatusUnauthorized:        "Usuario o contraseña incorrectos.",
	http.StatusForbidden:           "No tienes permiso para realizar esta acción.",
	http.StatusNotFound:            "El recurso solicitado no existe.",
	http.StatusConflict:            "Ya existe un registro con estos datos.",
	http.StatusUnprocessableEntity: "Los datos enviados no son válidos.",
	http.StatusInternalServerError: "Error en el servidor. Intenta más tarde.",
	http.StatusBadGateway:          "El servidor no está disponible.",
	http.StatusServiceUnavailable:  "Servicio no disponible. Intenta más tarde.",
}

// APIError error normalizado de una respuesta no exitosa del backend.
type APIError struct {
	Status  int
	Mensaje string
}

func (e *APIError) Error() string { return e.Mensaje }

// mensajeParaEstado resuelve el mensaje a mostrar: el del servidor si viene
// en el cuerpo (`mensaje` o `message`), si no el de la tabla fija.
func mensajeParaEstado(status int, cuerpo []byte) string {
	var parsed struct {
		Mensaje string `json:"mensaje"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(cuerpo, &parsed); err == nil {
		if parsed.Mensaje != "" {
			return parsed.Mensaje
		}
		if parsed.Message != "" {
			return parsed.Message
		}
	}
	if msg, ok := mensajesPorEstado[status]; ok {
		return msg
	}
	return fmt.Sprintf("Error de conexión (%d)", status)
}

// Cliente envoltorio HTTP del backend. Agrega el token Bearer cuando hay
// sesión activa y normaliza toda respuesta no 2xx a *APIError.
type Cliente struct {
	baseURL    string
	httpClient *http.Client
	token      string
	log        zerolog.Logger
}

// NewCliente construye el cliente contra la URL base indicada.
func NewCliente(baseURL string, log zerolog.Logger) *Cliente {
	return &Cliente{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		log:        log,
	}
}

// SetToken fija el token Bearer para las peticiones siguientes.
// Con cadena vacía se deja de enviar la cabecera.
func (c *Cliente) SetToken(token string) { c.token = token }

// Get hace GET a path y decodifica la respuesta JSON en out.
func (c *Cliente) Get(ctx context.Context, path string, out any) error {
	return c.hacer(ctx, http.MethodGet, path, nil, "", out)
}

// Post hace POST con cuerpo JSON y decodifica la respuesta en out.
func (c *Cliente) Post(ctx context.Context, path string, in, out any) error {
	cuerpo, contentType, err := cuerpoJSON(in)
	if err != nil {
		return err
	}
	return c.hacer(ctx, http.MethodPost, path, cuerpo, contentType, out)
}

// Put hace PUT con cuerpo JSON y decodifica la respuesta en out.
func (c *Cliente) Put(ctx context.Context, path string, in, out any) error {
	cuerpo, contentType, err := cuerpoJSON(in)
	if err != nil {
		return err
	}
	return c.hacer(ctx, http.MethodPut, path, cuerpo, contentType, out)
}

// Delete hace DELETE a path; out puede ser nil.
func (c *Cliente) Delete(ctx context.Context, path string, out any) error {
	return c.hacer(ctx, http.MethodDelete, path, nil, "", out)
}

// FormCampos campos de un cuerpo multipart. Archivo es opcional.
type FormCampos struct {
	Valores map[string]string
	Archivo []byte // campo `imagen`
	Nombre  string // nombre de archivo del campo `imagen`
}

// PostFormData hace POST multipart/form-data (altas de producto con imagen).
func (c *Cliente) PostFormData(ctx context.Context, path string, form FormCampos, cabeceras map[string]string, out any) error {
	cuerpo, contentType, err := cuerpoMultipart(form)
	if err != nil {
		return err
	}
	return c.hacerConCabeceras(ctx, http.MethodPost, path, cuerpo, contentType, cabeceras, out)
}

// PutFormData hace PUT multipart/form-data (ediciones de producto).
func (c *Cliente) PutFormData(ctx context.Context, path string, form FormCampos, cabeceras map[string]string, out any) error {
	cuerpo, contentType, err := cuerpoMultipart(form)
	if err != nil {
		return err
	}
	return c.hacerConCabeceras(ctx, http.MethodPut, path, cuerpo, contentType, cabeceras, out)
}

func cuerpoJSON(in any) (io.Reader, string, error) {
	if in == nil {
		return nil, "", nil
	}
	raw, err := json.Marshal(in)
	if err != nil {
		return nil, "", fmt.Errorf("serializar cuerpo: %w", err)
	}
	return bytes.NewReader(raw), "application/json", nil
}

func cuerpoMultipart(form FormCampos) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for campo, valor := range form.Valores {
		if err := w.WriteField(campo, valor); err != nil {
			return nil, "", fmt.Errorf("escribir campo %s: %w", campo, err)
		}
	}
	if len(form.Archivo) > 0 {
		nombre := form.Nombre
		if nombre == "" {
			nombre = "imagen.png"
		}
		fw, err := w.CreateFormFile("imagen", nombre)
		if err != nil {
			return nil, "", fmt.Errorf("crear campo imagen: %w", err)
		}
		if _, err := fw.Write(form.Archivo); err != nil {
			return nil, "", fmt.Errorf("escribir imagen: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

func (c *Cliente) hacer(ctx context.Context, metodo, path string, cuerpo io.Reader, contentType string, out any) error {
	return c.hacerConCabeceras(ctx, metodo, path, cuerpo, contentType, nil, out)
}

func (c *Cliente) hacerConCabeceras(ctx context.Context, metodo, path string, cuerpo io.Reader, contentType string, cabeceras map[string]string, out any) error {
	req, err := http.NewRequestWithContext(ctx, metodo, c.baseURL+path, cuerpo)
	if err != nil {
		return fmt.Errorf("construir petición: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	for k, v := range cabeceras {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("metodo", metodo).Str("path", path).Msg("fallo de red")
		return &APIError{Status: 0, Mensaje: MensajeSinConexion}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Status: 0, Mensaje: MensajeSinConexion}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Mensaje: mensajeParaEstado(resp.StatusCode, raw)}
		c.log.Warn().Int("status", resp.StatusCode).Str("metodo", metodo).Str("path", path).Str("mensaje", apiErr.Mensaje).Msg("respuesta con error")
		return apiErr
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decodificar respuesta de %s: %w", path, err)
		}
	}
	return nil
}
