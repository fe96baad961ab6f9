// Package carrito implementa el estado del punto de venta: un espejo local
// del catálogo con stock mutable y las líneas del carrito, conciliados contra
// el backend al finalizar la venta.
//
// El carrito NO es seguro para uso concurrente: todas las mutaciones deben
// venir del bucle del terminal, que es un único goroutine.
package carrito

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/wumbao/panaderia-pos/internal/application/dto"
	"github.com/wumbao/panaderia-pos/internal/posclient"
)

var (
	// ErrCarritoVacio finalizar sin líneas no toca la red.
	ErrCarritoVacio = errors.New("carrito vacío")
	// ErrVentaEnCurso ya hay una finalización en vuelo.
	ErrVentaEnCurso = errors.New("ya hay una venta en curso")
	// ErrSinSesion no hay empleado autenticado.
	ErrSinSesion = errors.New("no hay sesión de empleado activa")
)

// RegistradorVentas puerto hacia el backend para registrar la venta.
type RegistradorVentas interface {
	Registrar(ctx context.Context, in dto.RegistrarVentaRequest) (*dto.VentaResponse, error)
}

// CatalogoProductos puerto para recargar el catálogo completo tras una venta.
type CatalogoProductos interface {
	Listar(ctx context.Context, busqueda string) ([]posclient.Producto, error)
}

// Linea una línea del carrito. El precio se captura del espejo al insertar
// y no cambia aunque el producto se edite después.
type Linea struct {
	IDProducto     int64
	Nombre         string
	Cantidad       int
	PrecioUnitario decimal.Decimal
}

// Subtotal precio por cantidad de la línea.
func (l Linea) Subtotal() decimal.Decimal {
	return l.PrecioUnitario.Mul(decimal.NewFromInt(int64(l.Cantidad)))
}

// Carrito estado del punto de venta. El stock del espejo y las cantidades de
// las líneas se mueven en espejo: para cada producto, stock más lo que hay en
// el carrito siempre suma el stock con que llegó del servidor.
type Carrito struct {
	ventas   RegistradorVentas
	catalogo CatalogoProductos
	sesion   *posclient.Sesion
	log      zerolog.Logger

	productos []posclient.Producto
	indice    map[int64]int // idProducto -> posición en productos
	lineas    []Linea
	enviando  bool
}

// New construye un carrito vacío sin catálogo cargado.
func New(ventas RegistradorVentas, catalogo CatalogoProductos, sesion *posclient.Sesion, log zerolog.Logger) *Carrito {
	return &Carrito{
		ventas:   ventas,
		catalogo: catalogo,
		sesion:   sesion,
		log:      log,
		indice:   make(map[int64]int),
	}
}

// CargarProductos reemplaza el espejo completo con la verdad del servidor.
func (c *Carrito) CargarProductos(ctx context.Context) error {
	productos, err := c.catalogo.Listar(ctx, "")
	if err != nil {
		return err
	}
	c.reemplazarEspejo(productos)
	return nil
}

func (c *Carrito) reemplazarEspejo(productos []posclient.Producto) {
	c.productos = productos
	c.indice = make(map[int64]int, len(productos))
	for i, p := range productos {
		c.indice[p.IDProducto] = i
	}
}

// Productos devuelve una copia del espejo del catálogo.
func (c *Carrito) Productos() []posclient.Producto {
	out := make([]posclient.Producto, len(c.productos))
	copy(out, c.productos)
	return out
}

// Lineas devuelve una copia de las líneas en orden de inserción.
func (c *Carrito) Lineas() []Linea {
	out := make([]Linea, len(c.lineas))
	copy(out, c.lineas)
	return out
}

// Vacio indica si el carrito no tiene líneas.
func (c *Carrito) Vacio() bool { return len(c.lineas) == 0 }

// Total suma de los subtotales de todas las líneas.
func (c *Carrito) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lineas {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Agregar añade una unidad del producto al carrito. Si el espejo no tiene
// stock disponible no hace nada: el stock en pantalla ya muestra cero.
func (c *Carrito) Agregar(idProducto int64) {
	i, ok := c.indice[idProducto]
	if !ok || c.productos[i].Stock <= 0 {
		return
	}
	c.productos[i].Stock--
	for j := range c.lineas {
		if c.lineas[j].IDProducto == idProducto {
			c.lineas[j].Cantidad++
			return
		}
	}
	c.lineas = append(c.lineas, Linea{
		IDProducto:     idProducto,
		Nombre:         c.productos[i].Nombre,
		Cantidad:       1,
		PrecioUnitario: c.productos[i].Precio,
	})
}

// QuitarUno retira una unidad del producto. Con cantidad uno la línea
// desaparece; sin línea no hace nada.
func (c *Carrito) QuitarUno(idProducto int64) {
	for j := range c.lineas {
		if c.lineas[j].IDProducto != idProducto {
			continue
		}
		c.devolverStock(idProducto, 1)
		if c.lineas[j].Cantidad > 1 {
			c.lineas[j].Cantidad--
		} else {
			c.lineas = append(c.lineas[:j], c.lineas[j+1:]...)
		}
		return
	}
}

// QuitarTodo elimina la línea completa devolviendo toda su cantidad al espejo.
func (c *Carrito) QuitarTodo(idProducto int64) {
	for j := range c.lineas {
		if c.lineas[j].IDProducto != idProducto {
			continue
		}
		c.devolverStock(idProducto, c.lineas[j].Cantidad)
		c.lineas = append(c.lineas[:j], c.lineas[j+1:]...)
		return
	}
}

func (c *Carrito) devolverStock(idProducto int64, cantidad int) {
	if i, ok := c.indice[idProducto]; ok {
		c.productos[i].Stock += cantidad
	}
}

// Finalizar registra la venta en el backend. Valida todas las líneas antes de
// tocar la red; si el registro tiene éxito vacía el carrito y recarga el
// catálogo completo, si falla el carrito y el espejo quedan intactos para
// reintentar.
func (c *Carrito) Finalizar(ctx context.Context) (*dto.VentaResponse, error) {
	if c.enviando {
		return nil, ErrVentaEnCurso
	}
	if len(c.lineas) == 0 {
		return nil, ErrCarritoVacio
	}
	if !c.sesion.Autenticado() {
		return nil, ErrSinSesion
	}
	for n, l := range c.lineas {
		if err := validarLinea(n, l); err != nil {
			return nil, err
		}
	}

	c.enviando = true
	defer func() { c.enviando = false }()

	in := dto.RegistrarVentaRequest{
		IDEmpleado: c.sesion.IDEmpleado,
		Productos:  make([]dto.LineaVentaRequest, 0, len(c.lineas)),
	}
	for _, l := range c.lineas {
		in.Productos = append(in.Productos, dto.LineaVentaRequest{
			IDProducto:     l.IDProducto,
			Cantidad:       l.Cantidad,
			PrecioUnitario: l.PrecioUnitario,
		})
	}

	resp, err := c.ventas.Registrar(ctx, in)
	if err != nil {
		return nil, err
	}

	c.lineas = nil
	if err := c.CargarProductos(ctx); err != nil {
		// La venta ya quedó registrada; el catálogo se recarga en el
		// siguiente ciclo del terminal.
		c.log.Warn().Err(err).Msg("recargar catálogo tras la venta")
	}
	return resp, nil
}

func validarLinea(n int, l Linea) error {
	switch {
	case l.IDProducto <= 0:
		return fmt.Errorf("línea %d: producto inválido", n+1)
	case l.Cantidad <= 0:
		return fmt.Errorf("línea %d (%s): cantidad inválida", n+1, l.Nombre)
	case !l.PrecioUnitario.IsPositive():
		return fmt.Errorf("línea %d (%s): precio inválido", n+1, l.Nombre)
	}
	return nil
}
