package carrito_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wumbao/panaderia-pos/internal/application/dto"
	"github.com/wumbao/panaderia-pos/internal/domain/entity"
	"github.com/wumbao/panaderia-pos/internal/posclient"
	"github.com/wumbao/panaderia-pos/internal/posclient/carrito"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de prueba
// ──────────────────────────────────────────────────────────────────────────────

// catalogoFake devuelve siempre el catálogo configurado y cuenta las recargas.
type catalogoFake struct {
	productos []posclient.Producto
	err       error
	llamadas  int
}

func (c *catalogoFake) Listar(_ context.Context, _ string) ([]posclient.Producto, error) {
	c.llamadas++
	if c.err != nil {
		return nil, c.err
	}
	out := make([]posclient.Producto, len(c.productos))
	copy(out, c.productos)
	return out, nil
}

// registradorFake captura la petición y responde lo configurado. Si alHacer
// no es nil se invoca antes de responder (para simular reentradas).
type registradorFake struct {
	resp     *dto.VentaResponse
	err      error
	peticion *dto.RegistrarVentaRequest
	llamadas int
	alHacer  func()
}

func (r *registradorFake) Registrar(_ context.Context, in dto.RegistrarVentaRequest) (*dto.VentaResponse, error) {
	r.llamadas++
	r.peticion = &in
	if r.alHacer != nil {
		r.alHacer()
	}
	if r.err != nil {
		return nil, r.err
	}
	return r.resp, nil
}

func sesionEmpleado() *posclient.Sesion {
	return &posclient.Sesion{
		Token:         "tok",
		IDUsuario:     1,
		IDEmpleado:    7,
		NombreUsuario: "cajera",
		Rol:           entity.RolEmpleado,
	}
}

func productoDePrueba(id int64, nombre string, precio string, stock int) posclient.Producto {
	p, _ := decimal.NewFromString(precio)
	return posclient.Producto{IDProducto: id, Nombre: nombre, Precio: p, Stock: stock}
}

// nuevoCarrito arma un carrito con el catálogo indicado ya cargado.
func nuevoCarrito(t *testing.T, registrador *registradorFake, catalogo *catalogoFake) *carrito.Carrito {
	t.Helper()
	c := carrito.New(registrador, catalogo, sesionEmpleado(), zerolog.Nop())
	require.NoError(t, c.CargarProductos(context.Background()))
	return c
}

// verificarEspejo comprueba que para cada producto el stock del espejo más lo
// que hay en el carrito suma el stock original.
func verificarEspejo(t *testing.T, c *carrito.Carrito, originales map[int64]int) {
	t.Helper()
	enCarrito := make(map[int64]int)
	for _, l := range c.Lineas() {
		enCarrito[l.IDProducto] = l.Cantidad
	}
	for _, p := range c.Productos() {
		original, ok := originales[p.IDProducto]
		if !ok {
			continue
		}
		assert.Equal(t, original, p.Stock+enCarrito[p.IDProducto],
			"stock del espejo más carrito debe sumar el original para producto %d", p.IDProducto)
	}
}

func stockDe(c *carrito.Carrito, id int64) int {
	for _, p := range c.Productos() {
		if p.IDProducto == id {
			return p.Stock
		}
	}
	return -1
}

// ──────────────────────────────────────────────────────────────────────────────
// Agregar / QuitarUno / QuitarTodo
// ──────────────────────────────────────────────────────────────────────────────

// Escenario de referencia: producto con stock 3, tres agregados lo agotan, el
// cuarto no hace nada, quitar una unidad y luego la línea restaura todo.
func TestCarrito_EscenarioDeReferencia(t *testing.T) {
	catalogo := &catalogoFake{productos: []posclient.Producto{
		productoDePrueba(5, "Croissant", "2.50", 3),
	}}
	c := nuevoCarrito(t, &registradorFake{}, catalogo)
	originales := map[int64]int{5: 3}

	c.Agregar(5)
	c.Agregar(5)
	c.Agregar(5)
	assert.Equal(t, 0, stockDe(c, 5), "tres agregados agotan el stock")
	require.Len(t, c.Lineas(), 1)
	assert.Equal(t, 3, c.Lineas()[0].Cantidad)
	verificarEspejo(t, c, originales)

	// Cuarto agregado con stock cero: no pasa nada.
	c.Agregar(5)
	assert.Equal(t, 0, stockDe(c, 5))
	assert.Equal(t, 3, c.Lineas()[0].Cantidad, "sin stock el agregado es un no-op")
	verificarEspejo(t, c, originales)

	c.QuitarUno(5)
	assert.Equal(t, 1, stockDe(c, 5))
	assert.Equal(t, 2, c.Lineas()[0].Cantidad)
	verificarEspejo(t, c, originales)

	c.QuitarTodo(5)
	assert.Equal(t, 3, stockDe(c, 5), "quitar la línea devuelve toda la cantidad")
	assert.Empty(t, c.Lineas())
	verificarEspejo(t, c, originales)
}

func TestCarrito_AgregarProductoDesconocido_NoHaceNada(t *testing.T) {
	catalogo := &catalogoFake{productos: []posclient.Producto{
		productoDePrueba(1, "Baguette", "1.80", 5),
	}}
	c := nuevoCarrito(t, &registradorFake{}, catalogo)

	c.Agregar(99)
	assert.Empty(t, c.Lineas())
	assert.Equal(t, 5, stockDe(c, 1))
}

func TestCarrito_QuitarSinLinea_NoHaceNada(t *testing.T) {
	catalogo := &catalogoFake{productos: []posclient.Producto{
		productoDePrueba(1, "Baguette", "1.80", 5),
	}}
	c := nuevoCarrito(t, &registradorFake{}, catalogo)

	c.QuitarUno(1)
	c.QuitarTodo(1)
	assert.Equal(t, 5, stockDe(c, 1), "quitar sin línea no toca el espejo")
	assert.Empty(t, c.Lineas())
}

func TestCarrito_QuitarUnoConCantidadUno_EliminaLaLinea(t *testing.T) {
	catalogo := &catalogoFake{productos: []posclient.Producto{
		productoDePrueba(1, "Baguette", "1.80", 5),
	}}
	c := nuevoCarrito(t, &registradorFake{}, catalogo)

	c.Agregar(1)
	require.Len(t, c.Lineas(), 1)
	c.QuitarUno(1)
	assert.Empty(t, c.Lineas(), "cantidad 1 menos 1 elimina la línea, no deja cantidad 0")
	assert.Equal(t, 5, stockDe(c, 1))
}

// El precio de la línea se captura al insertar: ediciones posteriores del
// espejo no cambian líneas ya existentes.
func TestCarrito_PrecioCapturadoAlInsertar(t *testing.T) {
	catalogo := &catalogoFake{productos: []posclient.Producto{
		productoDePrueba(1, "Baguette", "1.80", 5),
	}}
	c := nuevoCarrito(t, &registradorFake{}, catalogo)

	c.Agregar(1)
	require.Len(t, c.Lineas(), 1)
	assert.True(t, decimal.RequireFromString("1.80").Equal(c.Lineas()[0].PrecioUnitario))
}

func TestCarrito_LineasConservanOrdenDeInsercion(t *testing.T) {
	catalogo := &catalogoFake{productos: []posclient.Producto{
		productoDePrueba(1, "Baguette", "1.80", 5),
		productoDePrueba(2, "Croissant", "2.50", 5),
		productoDePrueba(3, "Torta", "15.00", 5),
	}}
	c := nuevoCarrito(t, &registradorFake{}, catalogo)

	c.Agregar(2)
	c.Agregar(1)
	c.Agregar(3)
	c.Agregar(2) // repetido: suma a la línea existente, no la mueve

	lineas := c.Lineas()
	require.Len(t, lineas, 3)
	assert.Equal(t, int64(2), lineas[0].IDProducto)
	assert.Equal(t, int64(1), lineas[1].IDProducto)
	assert.Equal(t, int64(3), lineas[2].IDProducto)
	assert.Equal(t, 2, lineas[0].Cantidad)
}

func TestCarrito_Total(t *testing.T) {
	catalogo := &catalogoFake{productos: []posclient.Producto{
		productoDePrueba(1, "Baguette", "1.80", 5),
		productoDePrueba(2, "Croissant", "2.50", 5),
	}}
	c := nuevoCarrito(t, &registradorFake{}, catalogo)

	c.Agregar(1)
	c.Agregar(1)
	c.Agregar(2)
	assert.True(t, decimal.RequireFromString("6.10").Equal(c.Total()),
		"2x1.80 + 1x2.50 = 6.10, total obtenido %s", c.Total())
}

// Invariante bajo una secuencia arbitraria de operaciones.
func TestCarrito_InvarianteBajoSecuencias(t *testing.T) {
	catalogo := &catalogoFake{productos: []posclient.Producto{
		productoDePrueba(1, "Baguette", "1.80", 4),
		productoDePrueba(2, "Croissant", "2.50", 2),
	}}
	c := nuevoCarrito(t, &registradorFake{}, catalogo)
	originales := map[int64]int{1: 4, 2: 2}

	operaciones := []func(){
		func() { c.Agregar(1) },
		func() { c.Agregar(2) },
		func() { c.Agregar(2) },
		func() { c.Agregar(2) }, // sin stock, no-op
		func() { c.QuitarUno(1) },
		func() { c.Agregar(1) },
		func() { c.Agregar(1) },
		func() { c.QuitarTodo(2) },
		func() { c.QuitarUno(2) }, // sin línea, no-op
		func() { c.Agregar(2) },
	}
	for _, op := range operaciones {
		op()
		verificarEspejo(t, c, originales)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Finalizar
// ──────────────────────────────────────────────────────────────────────────────

func TestFinalizar_CarritoVacio_NoTocaLaRed(t *testing.T) {
	registrador := &registradorFake{}
	catalogo := &catalogoFake{productos: []posclient.Producto{
		productoDePrueba(1, "Baguette", "1.80", 5),
	}}
	c := nuevoCarrito(t, registrador, catalogo)

	_, err := c.Finalizar(context.Background())
	assert.ErrorIs(t, err, carrito.ErrCarritoVacio)
	assert.Zero(t, registrador.llamadas, "con carrito vacío no debe haber llamada al backend")
}

func TestFinalizar_SinSesion_Rechaza(t *testing.T) {
	registrador := &registradorFake{}
	catalogo := &catalogoFake{productos: []posclient.Producto{
		productoDePrueba(1, "Baguette", "1.80", 5),
	}}
	c := carrito.New(registrador, catalogo, &posclient.Sesion{}, zerolog.Nop())
	require.NoError(t, c.CargarProductos(context.Background()))
	c.Agregar(1)

	_, err := c.Finalizar(context.Background())
	assert.ErrorIs(t, err, carrito.ErrSinSesion)
	assert.Zero(t, registrador.llamadas)
}

// Un producto con precio cero en el catálogo llega al carrito, pero la venta
// se rechaza en la validación de líneas sin tocar la red.
func TestFinalizar_LineaConPrecioInvalido_NoTocaLaRed(t *testing.T) {
	registrador := &registradorFake{}
	catalogo := &catalogoFake{productos: []posclient.Producto{
		productoDePrueba(1, "Baguette", "1.80", 5),
		productoDePrueba(2, "Muestra gratis", "0", 5),
	}}
	c := nuevoCarrito(t, registrador, catalogo)
	c.Agregar(1)
	c.Agregar(2)

	_, err := c.Finalizar(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "precio inválido")
	assert.Contains(t, err.Error(), "Muestra gratis")
	assert.Zero(t, registrador.llamadas, "la validación debe cortar antes de la red")
	assert.Len(t, c.Lineas(), 2, "el carrito queda intacto para corregir")

	// Y un reintento sigue bloqueado mientras la línea inválida exista.
	_, err = c.Finalizar(context.Background())
	require.Error(t, err)
	assert.Zero(t, registrador.llamadas)
}

func TestFinalizar_Exito_VaciaElCarritoYRecarga(t *testing.T) {
	registrador := &registradorFake{
		resp: &dto.VentaResponse{IDVenta: 42, Referencia: "ref-42", IDEmpleado: 7, Total: decimal.RequireFromString("3.60")},
	}
	catalogo := &catalogoFake{productos: []posclient.Producto{
		productoDePrueba(1, "Baguette", "1.80", 5),
	}}
	c := nuevoCarrito(t, registrador, catalogo)
	c.Agregar(1)
	c.Agregar(1)

	recargasAntes := catalogo.llamadas
	venta, err := c.Finalizar(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), venta.IDVenta)

	// Petición armada desde las líneas, con el empleado de la sesión.
	require.NotNil(t, registrador.peticion)
	assert.Equal(t, int64(7), registrador.peticion.IDEmpleado)
	require.Len(t, registrador.peticion.Productos, 1)
	assert.Equal(t, int64(1), registrador.peticion.Productos[0].IDProducto)
	assert.Equal(t, 2, registrador.peticion.Productos[0].Cantidad)

	assert.Empty(t, c.Lineas(), "la venta exitosa vacía el carrito")
	assert.Equal(t, recargasAntes+1, catalogo.llamadas, "tras la venta se recarga el catálogo completo")
	assert.Equal(t, 5, stockDe(c, 1), "el espejo queda con la verdad del servidor")
}

func TestFinalizar_Fallo_DejaCarritoYEspejoIntactos(t *testing.T) {
	registrador := &registradorFake{err: errors.New("stock insuficiente")}
	catalogo := &catalogoFake{productos: []posclient.Producto{
		productoDePrueba(1, "Baguette", "1.80", 5),
	}}
	c := nuevoCarrito(t, registrador, catalogo)
	c.Agregar(1)
	c.Agregar(1)
	recargasAntes := catalogo.llamadas

	_, err := c.Finalizar(context.Background())
	require.Error(t, err)

	require.Len(t, c.Lineas(), 1, "el carrito queda intacto para reintentar")
	assert.Equal(t, 2, c.Lineas()[0].Cantidad)
	assert.Equal(t, 3, stockDe(c, 1), "el espejo tampoco se toca")
	assert.Equal(t, recargasAntes, catalogo.llamadas, "en fallo no se recarga el catálogo")

	// Reintento permitido: al quitar el error el mismo carrito se registra.
	registrador.err = nil
	registrador.resp = &dto.VentaResponse{IDVenta: 1, Total: decimal.RequireFromString("3.60")}
	_, err = c.Finalizar(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, c.Lineas())
}

func TestFinalizar_VentaEnCurso_RechazaReentrada(t *testing.T) {
	registrador := &registradorFake{
		resp: &dto.VentaResponse{IDVenta: 1, Total: decimal.RequireFromString("1.80")},
	}
	catalogo := &catalogoFake{productos: []posclient.Producto{
		productoDePrueba(1, "Baguette", "1.80", 5),
	}}
	c := nuevoCarrito(t, registrador, catalogo)
	c.Agregar(1)

	var errReentrada error
	registrador.alHacer = func() {
		// Segunda finalización disparada mientras la primera sigue en vuelo.
		_, errReentrada = c.Finalizar(context.Background())
	}

	_, err := c.Finalizar(context.Background())
	require.NoError(t, err)
	assert.ErrorIs(t, errReentrada, carrito.ErrVentaEnCurso)
	assert.Equal(t, 1, registrador.llamadas, "la reentrada no debe llegar al backend")
}
