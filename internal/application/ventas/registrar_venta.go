package ventas

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wumbao/panaderia-pos/internal/application/dto"
	"github.com/wumbao/panaderia-pos/internal/domain"
	"github.com/wumbao/panaderia-pos/internal/domain/entity"
	"github.com/wumbao/panaderia-pos/internal/domain/repository"
)

// RegistrarVentaUseCase registra una venta y descuenta el stock en una sola
// transacción. El total lo calcula el servidor a partir de las líneas; el
// cliente nunca lo envía.
type RegistrarVentaUseCase struct {
	txRunner     TxRunner
	empleadoRepo repository.EmpleadoRepository
	productoRepo repository.ProductoRepository
}

// NewRegistrarVentaUseCase construye el caso de uso.
func NewRegistrarVentaUseCase(txRunner TxRunner, empleadoRepo repository.EmpleadoRepository, productoRepo repository.ProductoRepository) *RegistrarVentaUseCase {
	return &RegistrarVentaUseCase{txRunner: txRunner, empleadoRepo: empleadoRepo, productoRepo: productoRepo}
}

// Registrar valida la orden, descuenta stock línea por línea y persiste
// cabecera y detalles. Cualquier línea sin stock suficiente revierte la venta
// completa (sin efectos parciales).
func (uc *RegistrarVentaUseCase) Registrar(ctx context.Context, in dto.RegistrarVentaRequest) (*dto.VentaResponse, error) {
	if in.IDEmpleado <= 0 || len(in.Productos) == 0 {
		return nil, domain.ErrInvalidInput
	}

	empleado, err := uc.empleadoRepo.GetByID(in.IDEmpleado)
	if err != nil {
		return nil, err
	}
	if empleado == nil {
		return nil, domain.ErrNotFound
	}

	// Validación de líneas y existencia de productos (solo lectura, fuera de la tx).
	total := decimal.Zero
	for _, linea := range in.Productos {
		if linea.IDProducto <= 0 || linea.Cantidad <= 0 || !linea.PrecioUnitario.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		producto, err := uc.productoRepo.GetByID(linea.IDProducto)
		if err != nil {
			return nil, err
		}
		if producto == nil {
			return nil, domain.ErrNotFound
		}
		total = total.Add(linea.PrecioUnitario.Mul(decimal.NewFromInt(int64(linea.Cantidad))))
	}

	venta := &entity.Venta{
		Referencia: uuid.New().String(),
		Fecha:      time.Now(),
		IDEmpleado: in.IDEmpleado,
		Total:      total,
	}

	err = uc.txRunner.Run(ctx, func(ventaRepo repository.VentaRepository, productoRepo repository.ProductoRepository) error {
		for _, linea := range in.Productos {
			if err := productoRepo.DescontarStock(linea.IDProducto, linea.Cantidad); err != nil {
				return err
			}
		}
		if err := ventaRepo.Create(venta); err != nil {
			return err
		}
		for _, linea := range in.Productos {
			detalle := &entity.DetalleVenta{
				IDVenta:        venta.IDVenta,
				IDProducto:     linea.IDProducto,
				Cantidad:       linea.Cantidad,
				PrecioUnitario: linea.PrecioUnitario,
			}
			if err := ventaRepo.CreateDetalle(detalle); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toVentaResponse(venta), nil
}

func toVentaResponse(v *entity.Venta) *dto.VentaResponse {
	return &dto.VentaResponse{
		IDVenta:    v.IDVenta,
		Referencia: v.Referencia,
		Fecha:      v.Fecha.Format(time.RFC3339),
		IDEmpleado: v.IDEmpleado,
		Total:      v.Total,
	}
}
