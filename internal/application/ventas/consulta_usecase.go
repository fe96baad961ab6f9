package ventas

import (
	"time"

	"github.com/wumbao/panaderia-pos/internal/application/dto"
	"github.com/wumbao/panaderia-pos/internal/domain/repository"
)

// ConsultaVentasUseCase lecturas del historial de ventas y su resumen diario.
type ConsultaVentasUseCase struct {
	repo repository.VentaRepository
}

// NewConsultaVentasUseCase construye el caso de uso.
func NewConsultaVentasUseCase(repo repository.VentaRepository) *ConsultaVentasUseCase {
	return &ConsultaVentasUseCase{repo: repo}
}

// Listar devuelve todas las cabeceras de venta, más recientes primero.
func (uc *ConsultaVentasUseCase) Listar() ([]*dto.VentaResponse, error) {
	ventas, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.VentaResponse, 0, len(ventas))
	for _, v := range ventas {
		out = append(out, toVentaResponse(v))
	}
	return out, nil
}

// GetByID devuelve la venta con sus líneas; nil si no existe.
func (uc *ConsultaVentasUseCase) GetByID(id int64) (*dto.VentaConDetallesResponse, error) {
	venta, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if venta == nil {
		return nil, nil
	}
	detalles, err := uc.repo.GetDetalles(id)
	if err != nil {
		return nil, err
	}
	out := &dto.VentaConDetallesResponse{VentaResponse: *toVentaResponse(venta)}
	for _, d := range detalles {
		out.Detalles = append(out.Detalles, dto.DetalleVentaResponse{
			IDProducto:     d.IDProducto,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
		})
	}
	return out, nil
}

// Resumen devuelve el total vendido por día en el rango [desde, hasta].
// Con fechas cero se usa el mes corriente.
func (uc *ConsultaVentasUseCase) Resumen(desde, hasta time.Time) ([]*dto.ResumenDiaResponse, error) {
	if desde.IsZero() || hasta.IsZero() {
		now := time.Now()
		desde = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		hasta = now
	}
	dias, err := uc.repo.ResumenDiario(desde, hasta)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ResumenDiaResponse, 0, len(dias))
	for _, d := range dias {
		out = append(out, &dto.ResumenDiaResponse{
			Dia:   d.Dia.Format("2006-01-02"),
			Total: d.Total,
		})
	}
	return out, nil
}
