package usecase

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/wumbao/panaderia-pos/internal/application/dto"
	"github.com/wumbao/panaderia-pos/internal/domain"
	"github.com/wumbao/panaderia-pos/internal/domain/entity"
	"github.com/wumbao/panaderia-pos/internal/domain/repository"
	"github.com/wumbao/panaderia-pos/pkg/textutil"
)

// ProductoUseCase casos de uso CRUD para productos. Cada mutación deja un
// registro de auditoría con los valores antes/después.
type ProductoUseCase struct {
	repo      repository.ProductoRepository
	auditoria repository.AuditoriaRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository, auditoria repository.AuditoriaRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo, auditoria: auditoria}
}

// Crear crea un producto y audita el alta. `usuario` es quien opera (cabecera).
func (uc *ProductoUseCase) Crear(usuario string, in dto.CrearProductoRequest, imagen []byte) (*dto.ProductoResponse, error) {
	now := time.Now()
	var descripcion *string
	if in.Descripcion != "" {
		descripcion = &in.Descripcion
	}
	producto := &entity.Producto{
		Nombre:       in.Nombre,
		Descripcion:  descripcion,
		Precio:       in.Precio,
		Stock:        in.Stock,
		Costo:        in.Costo,
		NivelReorden: in.NivelReorden,
		IDCategoria:  in.IDCategoria,
		Imagen:       imagen,
		ImagenURL:    in.ImagenURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(producto); err != nil {
		return nil, err
	}
	uc.auditar(usuario, entity.AccionCreate, producto.IDProducto, nil, producto)
	return toProductoResponse(producto), nil
}

// GetByID obtiene un producto; nil si no existe.
func (uc *ProductoUseCase) GetByID(id int64) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, nil
	}
	return toProductoResponse(producto), nil
}

// Listar devuelve el catálogo completo, opcionalmente filtrado por un término
// de búsqueda insensible a acentos sobre nombre y descripción.
func (uc *ProductoUseCase) Listar(busqueda string) ([]*dto.ProductoResponse, error) {
	productos, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		if busqueda != "" {
			texto := p.Nombre
			if p.Descripcion != nil {
				texto += " " + *p.Descripcion
			}
			if !textutil.Coincide(texto, busqueda) {
				continue
			}
		}
		out = append(out, toProductoResponse(p))
	}
	return out, nil
}

// Actualizar modifica un producto existente y audita el cambio. Una imagen
// vacía conserva la anterior.
func (uc *ProductoUseCase) Actualizar(usuario string, in dto.ActualizarProductoRequest, imagen []byte) (*dto.ProductoResponse, error) {
	anterior, err := uc.repo.GetByID(in.IDProducto)
	if err != nil {
		return nil, err
	}
	if anterior == nil {
		return nil, domain.ErrNotFound
	}
	var descripcion *string
	if in.Descripcion != "" {
		descripcion = &in.Descripcion
	}
	producto := &entity.Producto{
		IDProducto:   in.IDProducto,
		Nombre:       in.Nombre,
		Descripcion:  descripcion,
		Precio:       in.Precio,
		Stock:        in.Stock,
		Costo:        in.Costo,
		NivelReorden: in.NivelReorden,
		IDCategoria:  in.IDCategoria,
		Imagen:       imagen,
		ImagenURL:    in.ImagenURL,
		CreatedAt:    anterior.CreatedAt,
		UpdatedAt:    time.Now(),
	}
	if len(imagen) == 0 {
		producto.Imagen = anterior.Imagen
		if producto.ImagenURL == "" {
			producto.ImagenURL = anterior.ImagenURL
		}
	}
	if err := uc.repo.Update(producto); err != nil {
		return nil, err
	}
	uc.auditar(usuario, entity.AccionUpdate, producto.IDProducto, anterior, producto)
	return toProductoResponse(producto), nil
}

// Eliminar borra un producto y audita la baja con el último snapshot.
func (uc *ProductoUseCase) Eliminar(usuario string, id int64) error {
	anterior, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if anterior == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.auditar(usuario, entity.AccionDelete, id, anterior, nil)
	return nil
}

// auditar registra el cambio. Un fallo de auditoría no revierte la operación
// principal; queda en el log del repositorio.
func (uc *ProductoUseCase) auditar(usuario, accion string, idProducto int64, antes, despues *entity.Producto) {
	registro := &entity.Auditoria{
		IDAuditoria:   uuid.New().String(),
		FechaHora:     time.Now(),
		Usuario:       usuario,
		Accion:        accion,
		IDProducto:    idProducto,
		ValorAnterior: snapshot(antes),
		ValorNuevo:    snapshot(despues),
	}
	_ = uc.auditoria.Create(registro)
}

// snapshot serializa los campos auditables del producto (sin bytes de imagen).
func snapshot(p *entity.Producto) string {
	if p == nil {
		return ""
	}
	b, err := json.Marshal(map[string]interface{}{
		"nombre":       p.Nombre,
		"precio":       p.Precio,
		"stock":        p.Stock,
		"costo":        p.Costo,
		"nivelReorden": p.NivelReorden,
		"idCategoria":  p.IDCategoria,
	})
	if err != nil {
		return ""
	}
	return string(b)
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	out := &dto.ProductoResponse{
		IDProducto:   p.IDProducto,
		Nombre:       p.Nombre,
		Descripcion:  p.Descripcion,
		Precio:       p.Precio,
		Stock:        p.Stock,
		Costo:        p.Costo,
		NivelReorden: p.NivelReorden,
		IDCategoria:  p.IDCategoria,
		ImagenURL:    p.ImagenURL,
	}
	if len(p.Imagen) > 0 {
		out.Imagen = base64.StdEncoding.EncodeToString(p.Imagen)
	}
	return out
}
