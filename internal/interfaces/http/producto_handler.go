package http

import (
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/wumbao/panaderia-pos/internal/application/dto"
	"github.com/wumbao/panaderia-pos/internal/application/usecase"
)

// ProductoHandler maneja las peticiones HTTP del catálogo de productos.
// Las altas y ediciones llegan como multipart form-data (la imagen viaja como
// archivo); la cabecera `usuario` identifica al operador para auditoría.
type ProductoHandler struct {
	uc *usecase.ProductoUseCase
}

// NewProductoHandler construye el handler.
func NewProductoHandler(uc *usecase.ProductoUseCase) *ProductoHandler {
	return &ProductoHandler{uc: uc}
}

// Listar godoc
// @Summary      Listar productos
// @Tags         productos
// @Produce      json
// @Param        busqueda  query  string  false  "Filtro por nombre/descripción (insensible a acentos)"
// @Success      200  {array}  dto.ProductoResponse
// @Router       /Productos [get]
func (h *ProductoHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.Listar(c.Query("busqueda"))
	if err != nil {
		return errorDominio(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         productos
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /Productos/{id} [get]
func (h *ProductoHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Codigo: "MISSING_ID", Mensaje: "id inválido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return errorDominio(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Codigo: "NOT_FOUND", Mensaje: "producto no encontrado"})
	}
	return c.JSON(out)
}

// Crear godoc
// @Summary      Crear producto (multipart)
// @Tags         productos
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Success      201  {object}  dto.ProductoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /Productos [post]
func (h *ProductoHandler) Crear(c *fiber.Ctx) error {
	in, imagen, errResp := parseProductoForm(c)
	if errResp != nil {
		return errResp
	}
	req := dto.CrearProductoRequest{
		Nombre:       in.Nombre,
		Descripcion:  in.Descripcion,
		Precio:       in.Precio,
		Stock:        in.Stock,
		Costo:        in.Costo,
		NivelReorden: in.NivelReorden,
		IDCategoria:  in.IDCategoria,
		ImagenURL:    in.ImagenURL,
	}
	if hecho, err := validarDTO(c, req); hecho {
		return err
	}
	out, err := h.uc.Crear(c.Get("usuario"), req, imagen)
	if err != nil {
		return errorDominio(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Actualizar godoc
// @Summary      Actualizar producto (multipart, idProducto en el form)
// @Tags         productos
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Success      200  {object}  dto.ProductoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /Productos [put]
func (h *ProductoHandler) Actualizar(c *fiber.Ctx) error {
	in, imagen, errResp := parseProductoForm(c)
	if errResp != nil {
		return errResp
	}
	if hecho, err := validarDTO(c, in); hecho {
		return err
	}
	out, err := h.uc.Actualizar(c.Get("usuario"), in, imagen)
	if err != nil {
		return errorDominio(c, err)
	}
	return c.JSON(out)
}

// Eliminar godoc
// @Summary      Eliminar producto
// @Tags         productos
// @Security     Bearer
// @Param        id  path  int  true  "ID del producto"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /Productos/{id} [delete]
func (h *ProductoHandler) Eliminar(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Codigo: "MISSING_ID", Mensaje: "id inválido"})
	}
	if err := h.uc.Eliminar(c.Get("usuario"), id); err != nil {
		return errorDominio(c, err)
	}
	return c.JSON(fiber.Map{"eliminado": true})
}

// parseProductoForm parsea los campos del form-data (y la imagen si viene).
// Los decimales se parsean explícitamente: el decoder genérico no los cubre.
func parseProductoForm(c *fiber.Ctx) (dto.ActualizarProductoRequest, []byte, error) {
	var in dto.ActualizarProductoRequest
	fail := func(campo string) (dto.ActualizarProductoRequest, []byte, error) {
		return in, nil, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Codigo: "VALIDATION", Mensaje: "campo " + campo + " inválido",
		})
	}

	in.Nombre = c.FormValue("nombre")
	in.Descripcion = c.FormValue("descripcion")
	in.ImagenURL = c.FormValue("imagenUrl")

	var err error
	if raw := c.FormValue("idProducto"); raw != "" {
		if in.IDProducto, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return fail("idProducto")
		}
	}
	if in.Precio, err = decimal.NewFromString(c.FormValue("precio", "0")); err != nil {
		return fail("precio")
	}
	if in.Costo, err = decimal.NewFromString(c.FormValue("costo", "0")); err != nil {
		return fail("costo")
	}
	if in.Stock, err = strconv.Atoi(c.FormValue("stock", "0")); err != nil {
		return fail("stock")
	}
	if in.NivelReorden, err = strconv.Atoi(c.FormValue("nivelReorden", "0")); err != nil {
		return fail("nivelReorden")
	}
	if in.IDCategoria, err = strconv.ParseInt(c.FormValue("idCategoria", "0"), 10, 64); err != nil {
		return fail("idCategoria")
	}

	var imagen []byte
	if fh, err := c.FormFile("imagen"); err == nil && fh != nil {
		f, err := fh.Open()
		if err != nil {
			return fail("imagen")
		}
		defer f.Close()
		if imagen, err = io.ReadAll(f); err != nil {
			return fail("imagen")
		}
	}
	return in, imagen, nil
}
