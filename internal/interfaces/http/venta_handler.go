package http

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/wumbao/panaderia-pos/internal/application/dto"
	"github.com/wumbao/panaderia-pos/internal/application/ventas"
)

// VentaHandler maneja el registro y la consulta de ventas.
type VentaHandler struct {
	registrar *ventas.RegistrarVentaUseCase
	consulta  *ventas.ConsultaVentasUseCase
	recibo    *ventas.ReciboUseCase
}

func NewVentaHandler(registrar *ventas.RegistrarVentaUseCase, consulta *ventas.ConsultaVentasUseCase, recibo *ventas.ReciboUseCase) *VentaHandler {
	return &VentaHandler{registrar: registrar, consulta: consulta, recibo: recibo}
}

// Registrar godoc
// @Summary      Registrar una venta
// @Description  Descuenta stock y persiste cabecera y detalles en una sola
// @Description  transacción. El total se calcula en el servidor.
// @Tags         ventas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        venta  body  dto.RegistrarVentaRequest  true  "Líneas de la venta"
// @Success      201  {object}  dto.VentaResponse
// @Failure      409  {object}  dto.ErrorResponse  "Stock insuficiente"
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /Ventas/Registrar [post]
func (h *VentaHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Codigo: "BAD_BODY", Mensaje: "cuerpo inválido"})
	}
	if hecho, err := validarDTO(c, in); hecho {
		return err
	}
	out, err := h.registrar.Registrar(c.UserContext(), in)
	if err != nil {
		return errorDominio(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Listar godoc
// @Summary      Historial de ventas
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.VentaResponse
// @Router       /Ventas [get]
func (h *VentaHandler) Listar(c *fiber.Ctx) error {
	out, err := h.consulta.Listar()
	if err != nil {
		return errorDominio(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de una venta
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la venta"
// @Success      200  {object}  dto.VentaConDetallesResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /Ventas/{id} [get]
func (h *VentaHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Codigo: "MISSING_ID", Mensaje: "id inválido"})
	}
	out, err := h.consulta.GetByID(id)
	if err != nil {
		return errorDominio(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Codigo: "NOT_FOUND", Mensaje: "venta no encontrada"})
	}
	return c.JSON(out)
}

// Resumen godoc
// @Summary      Resumen de ventas por día
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        desde  query  string  false  "Fecha inicial YYYY-MM-DD"
// @Param        hasta  query  string  false  "Fecha final YYYY-MM-DD"
// @Success      200  {array}  dto.ResumenDiaResponse
// @Router       /Ventas/Resumen [get]
func (h *VentaHandler) Resumen(c *fiber.Ctx) error {
	var desde, hasta time.Time
	var err error
	if raw := c.Query("desde"); raw != "" {
		if desde, err = time.Parse("2006-01-02", raw); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Codigo: "VALIDATION", Mensaje: "desde inválido, se espera YYYY-MM-DD"})
		}
	}
	if raw := c.Query("hasta"); raw != "" {
		if hasta, err = time.Parse("2006-01-02", raw); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Codigo: "VALIDATION", Mensaje: "hasta inválido, se espera YYYY-MM-DD"})
		}
	}
	out, err := h.consulta.Resumen(desde, hasta)
	if err != nil {
		return errorDominio(c, err)
	}
	return c.JSON(out)
}

// Recibo godoc
// @Summary      Recibo de venta en PDF
// @Tags         ventas
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID de la venta"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /Ventas/{id}/Recibo [get]
func (h *VentaHandler) Recibo(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Codigo: "MISSING_ID", Mensaje: "id inválido"})
	}
	pdf, err := h.recibo.Generar(c.UserContext(), id)
	if err != nil {
		return errorDominio(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=recibo_venta_%d.pdf", id))
	return c.Send(pdf)
}
