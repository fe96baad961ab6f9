package ventas

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/wumbao/panaderia-pos/internal/domain"
	"github.com/wumbao/panaderia-pos/internal/domain/repository"
)

// ReciboUseCase arma los datos desnormalizados de una venta y delega la
// generación del PDF del recibo.
type ReciboUseCase struct {
	ventaRepo    repository.VentaRepository
	empleadoRepo repository.EmpleadoRepository
	productoRepo repository.ProductoRepository
	generator    ReciboPDFGenerator
}

// NewReciboUseCase construye el caso de uso.
func NewReciboUseCase(
	ventaRepo repository.VentaRepository,
	empleadoRepo repository.EmpleadoRepository,
	productoRepo repository.ProductoRepository,
	generator ReciboPDFGenerator,
) *ReciboUseCase {
	return &ReciboUseCase{
		ventaRepo:    ventaRepo,
		empleadoRepo: empleadoRepo,
		productoRepo: productoRepo,
		generator:    generator,
	}
}

// Generar devuelve los bytes del PDF del recibo de la venta indicada.
func (uc *ReciboUseCase) Generar(ctx context.Context, idVenta int64) ([]byte, error) {
	venta, err := uc.ventaRepo.GetByID(idVenta)
	if err != nil {
		return nil, err
	}
	if venta == nil {
		return nil, domain.ErrNotFound
	}
	detalles, err := uc.ventaRepo.GetDetalles(idVenta)
	if err != nil {
		return nil, err
	}
	empleado, err := uc.empleadoRepo.GetByID(venta.IDEmpleado)
	if err != nil {
		return nil, err
	}

	lineas := make([]LineaRecibo, 0, len(detalles))
	for _, d := range detalles {
		nombre := "(producto eliminado)"
		if p, err := uc.productoRepo.GetByID(d.IDProducto); err == nil && p != nil {
			nombre = p.Nombre
		}
		lineas = append(lineas, LineaRecibo{
			Nombre:         nombre,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Subtotal:       d.PrecioUnitario.Mul(decimal.NewFromInt(int64(d.Cantidad))),
		})
	}
	return uc.generator.GenerarReciboPDF(ctx, venta, empleado, lineas)
}
