package posclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/wumbao/panaderia-pos/internal/application/dto"
	"github.com/wumbao/panaderia-pos/internal/domain/entity"
)

// Producto vista del producto tal como la maneja el terminal. La imagen ya
// viene normalizada a la unión etiquetada: nadie vuelve a olfatear cadenas.
type Producto struct {
	IDProducto   int64
	Nombre       string
	Descripcion  string
	Precio       decimal.Decimal
	Costo        decimal.Decimal
	Stock        int
	NivelReorden int
	IDCategoria  int64
	Imagen       entity.ImagenRef
}

// ProductoForm datos de alta o edición de producto desde el terminal.
type ProductoForm struct {
	IDProducto   int64 // 0 en altas
	Nombre       string
	Descripcion  string
	Precio       decimal.Decimal
	Costo        decimal.Decimal
	Stock        int
	NivelReorden int
	IDCategoria  int64
	Imagen       []byte // bytes del archivo, opcional
	ImagenURL    string // alternativa por referencia, opcional
}

// ProductosService operaciones de catálogo contra el backend.
type ProductosService struct {
	cliente *Cliente
	log     zerolog.Logger
}

// NewProductosService construye el servicio.
func NewProductosService(cliente *Cliente, log zerolog.Logger) *ProductosService {
	return &ProductosService{cliente: cliente, log: log}
}

// Listar trae el catálogo completo, opcionalmente filtrado por búsqueda.
func (s *ProductosService) Listar(ctx context.Context, busqueda string) ([]Producto, error) {
	path := "/Productos"
	if busqueda != "" {
		path += "?busqueda=" + url.QueryEscape(busqueda)
	}
	var resp []dto.ProductoResponse
	if err := s.cliente.Get(ctx, path, &resp); err != nil {
		s.log.Error().Err(err).Msg("listar productos")
		return nil, err
	}
	out := make([]Producto, 0, len(resp))
	for _, r := range resp {
		out = append(out, desdeRespuesta(r))
	}
	return out, nil
}

// Get trae un producto por id.
func (s *ProductosService) Get(ctx context.Context, id int64) (*Producto, error) {
	var resp dto.ProductoResponse
	if err := s.cliente.Get(ctx, fmt.Sprintf("/Productos/%d", id), &resp); err != nil {
		s.log.Error().Err(err).Int64("idProducto", id).Msg("obtener producto")
		return nil, err
	}
	p := desdeRespuesta(resp)
	return &p, nil
}

// Crear da de alta un producto. La cabecera `usuario` identifica al operador
// para el registro de auditoría del backend.
func (s *ProductosService) Crear(ctx context.Context, usuario string, form ProductoForm) (*Producto, error) {
	var resp dto.ProductoResponse
	err := s.cliente.PostFormData(ctx, "/Productos", formDeProducto(form), map[string]string{"usuario": usuario}, &resp)
	if err != nil {
		s.log.Error().Err(err).Str("nombre", form.Nombre).Msg("crear producto")
		return nil, err
	}
	p := desdeRespuesta(resp)
	return &p, nil
}

// Actualizar edita un producto existente (idProducto viaja en el form).
func (s *ProductosService) Actualizar(ctx context.Context, usuario string, form ProductoForm) (*Producto, error) {
	var resp dto.ProductoResponse
	err := s.cliente.PutFormData(ctx, "/Productos", formDeProducto(form), map[string]string{"usuario": usuario}, &resp)
	if err != nil {
		s.log.Error().Err(err).Int64("idProducto", form.IDProducto).Msg("actualizar producto")
		return nil, err
	}
	p := desdeRespuesta(resp)
	return &p, nil
}

// Eliminar borra un producto por id.
func (s *ProductosService) Eliminar(ctx context.Context, usuario string, id int64) error {
	path := fmt.Sprintf("/Productos/%d", id)
	if err := s.cliente.hacerConCabeceras(ctx, "DELETE", path, nil, "", map[string]string{"usuario": usuario}, nil); err != nil {
		s.log.Error().Err(err).Int64("idProducto", id).Msg("eliminar producto")
		return err
	}
	return nil
}

// desdeRespuesta convierte la respuesta del backend a la vista del terminal,
// resolviendo la imagen a la unión etiquetada una sola vez aquí.
func desdeRespuesta(r dto.ProductoResponse) Producto {
	descripcion := ""
	if r.Descripcion != nil {
		descripcion = *r.Descripcion
	}
	raw := r.ImagenURL
	if raw == "" {
		raw = r.Imagen
	}
	return Producto{
		IDProducto:   r.IDProducto,
		Nombre:       r.Nombre,
		Descripcion:  descripcion,
		Precio:       r.Precio,
		Costo:        r.Costo,
		Stock:        r.Stock,
		NivelReorden: r.NivelReorden,
		IDCategoria:  r.IDCategoria,
		Imagen:       entity.NormalizarImagen(raw),
	}
}

func formDeProducto(form ProductoForm) FormCampos {
	valores := map[string]string{
		"nombre":       form.Nombre,
		"descripcion":  form.Descripcion,
		"precio":       form.Precio.String(),
		"costo":        form.Costo.String(),
		"stock":        strconv.Itoa(form.Stock),
		"nivelReorden": strconv.Itoa(form.NivelReorden),
		"idCategoria":  strconv.FormatInt(form.IDCategoria, 10),
	}
	if form.IDProducto > 0 {
		valores["idProducto"] = strconv.FormatInt(form.IDProducto, 10)
	}
	if form.ImagenURL != "" {
		valores["imagenUrl"] = form.ImagenURL
	}
	return FormCampos{Valores: valores, Archivo: form.Imagen}
}
