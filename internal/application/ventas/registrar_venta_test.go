package ventas_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wumbao/panaderia-pos/internal/application/dto"
	"github.com/wumbao/panaderia-pos/internal/application/ventas"
	"github.com/wumbao/panaderia-pos/internal/domain"
	"github.com/wumbao/panaderia-pos/internal/domain/entity"
	"github.com/wumbao/panaderia-pos/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de prueba: repos en memoria y un TxRunner que simula el rollback
// descartando los cambios cuando el callback falla.
// ──────────────────────────────────────────────────────────────────────────────

type productoRepoFake struct {
	productos map[int64]*entity.Producto
}

func (r *productoRepoFake) Create(*entity.Producto) error      { return nil }
func (r *productoRepoFake) Update(*entity.Producto) error      { return nil }
func (r *productoRepoFake) Delete(int64) error                 { return nil }
func (r *productoRepoFake) List() ([]*entity.Producto, error)  { return nil, nil }
func (r *productoRepoFake) GetByID(id int64) (*entity.Producto, error) {
	return r.productos[id], nil
}

func (r *productoRepoFake) DescontarStock(id int64, cantidad int) error {
	p, ok := r.productos[id]
	if !ok || p.Stock < cantidad {
		return domain.ErrStockInsuficiente
	}
	p.Stock -= cantidad
	return nil
}

func (r *productoRepoFake) clonar() *productoRepoFake {
	copia := &productoRepoFake{productos: make(map[int64]*entity.Producto, len(r.productos))}
	for id, p := range r.productos {
		clon := *p
		copia.productos[id] = &clon
	}
	return copia
}

type ventaRepoFake struct {
	ventas   []*entity.Venta
	detalles []*entity.DetalleVenta
}

func (r *ventaRepoFake) Create(v *entity.Venta) error {
	v.IDVenta = int64(len(r.ventas) + 1)
	r.ventas = append(r.ventas, v)
	return nil
}

func (r *ventaRepoFake) CreateDetalle(d *entity.DetalleVenta) error {
	r.detalles = append(r.detalles, d)
	return nil
}

func (r *ventaRepoFake) GetByID(int64) (*entity.Venta, error)               { return nil, nil }
func (r *ventaRepoFake) GetDetalles(int64) ([]*entity.DetalleVenta, error)  { return nil, nil }
func (r *ventaRepoFake) List() ([]*entity.Venta, error)                     { return nil, nil }
func (r *ventaRepoFake) ResumenDiario(_, _ time.Time) ([]*repository.ResumenDia, error) {
	return nil, nil
}

// txRunnerFake ejecuta el callback sobre copias y solo publica los cambios si
// el callback termina sin error, igual que un commit real.
type txRunnerFake struct {
	productoRepo *productoRepoFake
	ventaRepo    *ventaRepoFake
}

func (t *txRunnerFake) Run(_ context.Context, fn func(repository.VentaRepository, repository.ProductoRepository) error) error {
	productosTx := t.productoRepo.clonar()
	ventasTx := &ventaRepoFake{
		ventas:   append([]*entity.Venta(nil), t.ventaRepo.ventas...),
		detalles: append([]*entity.DetalleVenta(nil), t.ventaRepo.detalles...),
	}
	if err := fn(ventasTx, productosTx); err != nil {
		return err
	}
	t.productoRepo.productos = productosTx.productos
	t.ventaRepo.ventas = ventasTx.ventas
	t.ventaRepo.detalles = ventasTx.detalles
	return nil
}

type empleadoRepoFake struct {
	empleados map[int64]*entity.Empleado
}

func (r *empleadoRepoFake) Create(*entity.Empleado) error     { return nil }
func (r *empleadoRepoFake) Update(*entity.Empleado) error     { return nil }
func (r *empleadoRepoFake) Delete(int64) error                { return nil }
func (r *empleadoRepoFake) List() ([]*entity.Empleado, error) { return nil, nil }
func (r *empleadoRepoFake) GetByID(id int64) (*entity.Empleado, error) {
	return r.empleados[id], nil
}

func precio(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func armarCasoDeUso() (*ventas.RegistrarVentaUseCase, *productoRepoFake, *ventaRepoFake) {
	productoRepo := &productoRepoFake{productos: map[int64]*entity.Producto{
		1: {IDProducto: 1, Nombre: "Baguette", Precio: precio("1.80"), Stock: 10},
		2: {IDProducto: 2, Nombre: "Croissant", Precio: precio("2.50"), Stock: 1},
	}}
	ventaRepo := &ventaRepoFake{}
	empleadoRepo := &empleadoRepoFake{empleados: map[int64]*entity.Empleado{
		7: {IDEmpleado: 7, Nombre: "Cajera"},
	}}
	runner := &txRunnerFake{productoRepo: productoRepo, ventaRepo: ventaRepo}
	return ventas.NewRegistrarVentaUseCase(runner, empleadoRepo, productoRepo), productoRepo, ventaRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrar_VentaValida_DescuentaStockYCalculaTotal(t *testing.T) {
	uc, productoRepo, ventaRepo := armarCasoDeUso()

	resp, err := uc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		IDEmpleado: 7,
		Productos: []dto.LineaVentaRequest{
			{IDProducto: 1, Cantidad: 3, PrecioUnitario: precio("1.80")},
			{IDProducto: 2, Cantidad: 1, PrecioUnitario: precio("2.50")},
		},
	})
	require.NoError(t, err)

	// Total calculado en el servidor: 3x1.80 + 1x2.50 = 7.90
	assert.True(t, precio("7.90").Equal(resp.Total), "total esperado 7.90, obtenido %s", resp.Total)
	assert.NotEmpty(t, resp.Referencia, "cada venta lleva una referencia única")
	assert.Equal(t, int64(7), resp.IDEmpleado)

	assert.Equal(t, 7, productoRepo.productos[1].Stock)
	assert.Equal(t, 0, productoRepo.productos[2].Stock)
	require.Len(t, ventaRepo.ventas, 1)
	assert.Len(t, ventaRepo.detalles, 2)
}

func TestRegistrar_StockInsuficiente_RevierteTodo(t *testing.T) {
	uc, productoRepo, ventaRepo := armarCasoDeUso()

	_, err := uc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		IDEmpleado: 7,
		Productos: []dto.LineaVentaRequest{
			{IDProducto: 1, Cantidad: 3, PrecioUnitario: precio("1.80")},
			{IDProducto: 2, Cantidad: 5, PrecioUnitario: precio("2.50")}, // solo hay 1
		},
	})
	require.ErrorIs(t, err, domain.ErrStockInsuficiente)

	// Sin efectos parciales: ni la primera línea descontó stock.
	assert.Equal(t, 10, productoRepo.productos[1].Stock, "la línea válida también se revierte")
	assert.Equal(t, 1, productoRepo.productos[2].Stock)
	assert.Empty(t, ventaRepo.ventas)
	assert.Empty(t, ventaRepo.detalles)
}

func TestRegistrar_EmpleadoInexistente(t *testing.T) {
	uc, _, ventaRepo := armarCasoDeUso()

	_, err := uc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		IDEmpleado: 999,
		Productos:  []dto.LineaVentaRequest{{IDProducto: 1, Cantidad: 1, PrecioUnitario: precio("1.80")}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, ventaRepo.ventas)
}

func TestRegistrar_ProductoInexistente(t *testing.T) {
	uc, _, ventaRepo := armarCasoDeUso()

	_, err := uc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		IDEmpleado: 7,
		Productos:  []dto.LineaVentaRequest{{IDProducto: 42, Cantidad: 1, PrecioUnitario: precio("1.80")}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, ventaRepo.ventas)
}

func TestRegistrar_EntradaInvalida(t *testing.T) {
	uc, _, _ := armarCasoDeUso()

	casos := []dto.RegistrarVentaRequest{
		{IDEmpleado: 0, Productos: []dto.LineaVentaRequest{{IDProducto: 1, Cantidad: 1, PrecioUnitario: precio("1.80")}}},
		{IDEmpleado: 7},
		{IDEmpleado: 7, Productos: []dto.LineaVentaRequest{{IDProducto: 1, Cantidad: 0, PrecioUnitario: precio("1.80")}}},
		{IDEmpleado: 7, Productos: []dto.LineaVentaRequest{{IDProducto: 1, Cantidad: 1, PrecioUnitario: decimal.Zero}}},
		{IDEmpleado: 7, Productos: []dto.LineaVentaRequest{{IDProducto: -1, Cantidad: 1, PrecioUnitario: precio("1.80")}}},
	}
	for _, caso := range casos {
		_, err := uc.Registrar(context.Background(), caso)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}
