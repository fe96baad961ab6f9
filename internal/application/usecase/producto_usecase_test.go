package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wumbao/panaderia-pos/internal/application/dto"
	"github.com/wumbao/panaderia-pos/internal/application/usecase"
	"github.com/wumbao/panaderia-pos/internal/domain"
	"github.com/wumbao/panaderia-pos/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de prueba
// ──────────────────────────────────────────────────────────────────────────────

type productoRepoMem struct {
	porID     map[int64]*entity.Producto
	siguiente int64
}

func nuevoProductoRepoMem() *productoRepoMem {
	return &productoRepoMem{porID: make(map[int64]*entity.Producto), siguiente: 1}
}

func (r *productoRepoMem) Create(p *entity.Producto) error {
	p.IDProducto = r.siguiente
	r.siguiente++
	clon := *p
	r.porID[p.IDProducto] = &clon
	return nil
}

func (r *productoRepoMem) GetByID(id int64) (*entity.Producto, error) {
	p, ok := r.porID[id]
	if !ok {
		return nil, nil
	}
	clon := *p
	return &clon, nil
}

func (r *productoRepoMem) List() ([]*entity.Producto, error) {
	out := make([]*entity.Producto, 0, len(r.porID))
	for id := int64(1); id < r.siguiente; id++ {
		if p, ok := r.porID[id]; ok {
			clon := *p
			out = append(out, &clon)
		}
	}
	return out, nil
}

func (r *productoRepoMem) Update(p *entity.Producto) error {
	clon := *p
	r.porID[p.IDProducto] = &clon
	return nil
}

func (r *productoRepoMem) Delete(id int64) error {
	delete(r.porID, id)
	return nil
}

func (r *productoRepoMem) DescontarStock(id int64, cantidad int) error {
	p, ok := r.porID[id]
	if !ok || p.Stock < cantidad {
		return domain.ErrStockInsuficiente
	}
	p.Stock -= cantidad
	return nil
}

type auditoriaRepoMem struct {
	registros []*entity.Auditoria
}

func (r *auditoriaRepoMem) Create(a *entity.Auditoria) error {
	r.registros = append(r.registros, a)
	return nil
}

func (r *auditoriaRepoMem) List() ([]*entity.Auditoria, error) { return r.registros, nil }

func crearRequest(nombre string) dto.CrearProductoRequest {
	return dto.CrearProductoRequest{
		Nombre:      nombre,
		Precio:      decimal.RequireFromString("2.50"),
		Costo:       decimal.RequireFromString("1.00"),
		Stock:       10,
		IDCategoria: 1,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestProducto_CrearDejaAuditoria(t *testing.T) {
	repo := nuevoProductoRepoMem()
	auditoria := &auditoriaRepoMem{}
	uc := usecase.NewProductoUseCase(repo, auditoria)

	resp, err := uc.Crear("admin", crearRequest("Croissant"), []byte{0x01})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.IDProducto)

	require.Len(t, auditoria.registros, 1)
	registro := auditoria.registros[0]
	assert.Equal(t, entity.AccionCreate, registro.Accion)
	assert.Equal(t, "admin", registro.Usuario)
	assert.Equal(t, int64(1), registro.IDProducto)
	assert.Empty(t, registro.ValorAnterior)
	assert.Contains(t, registro.ValorNuevo, "Croissant")
	assert.NotEmpty(t, registro.IDAuditoria)
	assert.WithinDuration(t, time.Now(), registro.FechaHora, time.Minute)
}

func TestProducto_ActualizarSinImagen_ConservaLaAnterior(t *testing.T) {
	repo := nuevoProductoRepoMem()
	uc := usecase.NewProductoUseCase(repo, &auditoriaRepoMem{})

	creado, err := uc.Crear("admin", crearRequest("Croissant"), []byte{0xAA, 0xBB})
	require.NoError(t, err)

	_, err = uc.Actualizar("admin", dto.ActualizarProductoRequest{
		IDProducto:  creado.IDProducto,
		Nombre:      "Croissant de mantequilla",
		Precio:      decimal.RequireFromString("3.00"),
		Costo:       decimal.RequireFromString("1.20"),
		Stock:       8,
		IDCategoria: 1,
	}, nil)
	require.NoError(t, err)

	guardado, err := repo.GetByID(creado.IDProducto)
	require.NoError(t, err)
	assert.Equal(t, "Croissant de mantequilla", guardado.Nombre)
	assert.Equal(t, []byte{0xAA, 0xBB}, guardado.Imagen, "imagen vacía conserva la anterior")
}

func TestProducto_ActualizarInexistente(t *testing.T) {
	uc := usecase.NewProductoUseCase(nuevoProductoRepoMem(), &auditoriaRepoMem{})

	_, err := uc.Actualizar("admin", dto.ActualizarProductoRequest{
		IDProducto:  99,
		Nombre:      "Nada",
		Precio:      decimal.RequireFromString("1.00"),
		IDCategoria: 1,
	}, nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProducto_EliminarAuditaConUltimoSnapshot(t *testing.T) {
	repo := nuevoProductoRepoMem()
	auditoria := &auditoriaRepoMem{}
	uc := usecase.NewProductoUseCase(repo, auditoria)

	creado, err := uc.Crear("admin", crearRequest("Torta"), nil)
	require.NoError(t, err)

	require.NoError(t, uc.Eliminar("gerente", creado.IDProducto))

	guardado, err := repo.GetByID(creado.IDProducto)
	require.NoError(t, err)
	assert.Nil(t, guardado)

	require.Len(t, auditoria.registros, 2)
	baja := auditoria.registros[1]
	assert.Equal(t, entity.AccionDelete, baja.Accion)
	assert.Equal(t, "gerente", baja.Usuario)
	assert.Contains(t, baja.ValorAnterior, "Torta")
	assert.Empty(t, baja.ValorNuevo)
}

func TestProducto_ListarConBusquedaInsensibleAAcentos(t *testing.T) {
	repo := nuevoProductoRepoMem()
	uc := usecase.NewProductoUseCase(repo, &auditoriaRepoMem{})

	_, err := uc.Crear("admin", crearRequest("Panqué de vainilla"), nil)
	require.NoError(t, err)
	_, err = uc.Crear("admin", crearRequest("Baguette"), nil)
	require.NoError(t, err)

	resultados, err := uc.Listar("panque")
	require.NoError(t, err)
	require.Len(t, resultados, 1)
	assert.Equal(t, "Panqué de vainilla", resultados[0].Nombre)

	todos, err := uc.Listar("")
	require.NoError(t, err)
	assert.Len(t, todos, 2)
}
