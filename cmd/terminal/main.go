package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/wumbao/panaderia-pos/internal/application/dto"
	"github.com/wumbao/panaderia-pos/internal/domain/entity"
	"github.com/wumbao/panaderia-pos/internal/posclient"
	"github.com/wumbao/panaderia-pos/internal/posclient/carrito"
	"github.com/wumbao/panaderia-pos/pkg/config"
	"github.com/wumbao/panaderia-pos/pkg/logger"
)

type terminal struct {
	in  *bufio.Scanner
	ctx context.Context

	sesion     *posclient.Sesion
	auth       *posclient.AuthService
	productos  *posclient.ProductosService
	empleados  *posclient.EmpleadosService
	categorias *posclient.CategoriasService
	ventas     *posclient.VentasService
	auditoria  *posclient.AuditoriaService
	carrito    *carrito.Carrito
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "warn"})
	zl := log.Zerolog()

	cliente := posclient.NewCliente(cfg.Terminal.APIBaseURL, zl)
	almacen := posclient.NewAlmacenSesion(cfg.Terminal.SessionFile)

	t := &terminal{
		in:         bufio.NewScanner(os.Stdin),
		ctx:        context.Background(),
		auth:       posclient.NewAuthService(cliente, almacen, zl),
		productos:  posclient.NewProductosService(cliente, zl),
		empleados:  posclient.NewEmpleadosService(cliente, zl),
		categorias: posclient.NewCategoriasService(cliente, zl),
		ventas:     posclient.NewVentasService(cliente, zl),
		auditoria:  posclient.NewAuditoriaService(cliente, zl),
	}

	fmt.Println("=== Panadería Wum Bao - Punto de Venta ===")

	t.sesion, err = t.auth.CargarSesion()
	if err != nil {
		fmt.Println("No se pudo recuperar la sesión:", err)
	}
	for !t.sesion.Autenticado() {
		if !t.login() {
			return
		}
	}
	fmt.Printf("Sesión de %s (%s)\n\n", t.sesion.NombreUsuario, t.sesion.Rol)

	t.carrito = carrito.New(t.ventas, t.productos, t.sesion, zl)
	if err := t.carrito.CargarProductos(t.ctx); err != nil {
		fmt.Println("No se pudo cargar el catálogo:", err)
	}

	t.menu()
}

func (t *terminal) login() bool {
	usuario := t.leer("Usuario (vacío para salir): ")
	if usuario == "" {
		return false
	}
	clave := t.leer("Clave: ")
	sesion, err := t.auth.Login(t.ctx, usuario, clave)
	if err != nil {
		fmt.Println(err)
		return true
	}
	t.sesion = sesion
	return true
}

// menu bucle principal. Las opciones dependen del rol: venta y catálogo para
// todos; gestión de empleados, historial y auditoría solo para administradores.
func (t *terminal) menu() {
	for {
		fmt.Println()
		fmt.Println("1) Ver catálogo")
		fmt.Println("2) Agregar producto al carrito")
		fmt.Println("3) Quitar una unidad")
		fmt.Println("4) Quitar línea completa")
		fmt.Println("5) Ver carrito")
		fmt.Println("6) Finalizar venta")
		fmt.Println("7) Recargar catálogo")

		esAdmin := false
		switch t.sesion.Rol {
		case entity.RolAdministrador:
			esAdmin = true
			fmt.Println("8) Productos")
			fmt.Println("9) Empleados")
			fmt.Println("10) Categorías")
			fmt.Println("11) Historial de ventas")
			fmt.Println("12) Resumen de ventas")
			fmt.Println("13) Auditoría")
		case entity.RolEmpleado:
		}
		fmt.Println("0) Cerrar sesión y salir")

		switch t.leer("> ") {
		case "1":
			t.verCatalogo()
		case "2":
			if id, ok := t.leerID("ID del producto: "); ok {
				t.carrito.Agregar(id)
				t.verCarrito()
			}
		case "3":
			if id, ok := t.leerID("ID del producto: "); ok {
				t.carrito.QuitarUno(id)
				t.verCarrito()
			}
		case "4":
			if id, ok := t.leerID("ID del producto: "); ok {
				t.carrito.QuitarTodo(id)
				t.verCarrito()
			}
		case "5":
			t.verCarrito()
		case "6":
			t.finalizarVenta()
		case "7":
			if err := t.carrito.CargarProductos(t.ctx); err != nil {
				fmt.Println(err)
			} else {
				fmt.Println("Catálogo actualizado.")
			}
		case "8":
			if esAdmin {
				t.menuProductos()
			}
		case "9":
			if esAdmin {
				t.menuEmpleados()
			}
		case "10":
			if esAdmin {
				t.menuCategorias()
			}
		case "11":
			if esAdmin {
				t.historialVentas()
			}
		case "12":
			if esAdmin {
				t.resumenVentas()
			}
		case "13":
			if esAdmin {
				t.verAuditoria()
			}
		case "0":
			if err := t.auth.Logout(); err != nil {
				fmt.Println(err)
			}
			fmt.Println("Hasta luego.")
			return
		}
	}
}

func (t *terminal) verCatalogo() {
	productos := t.carrito.Productos()
	if len(productos) == 0 {
		fmt.Println("Catálogo vacío.")
		return
	}
	fmt.Printf("%-5s %-30s %10s %7s\n", "ID", "Producto", "Precio", "Stock")
	for _, p := range productos {
		fmt.Printf("%-5d %-30s %10s %7d\n", p.IDProducto, p.Nombre, p.Precio.StringFixed(2), p.Stock)
	}
}

func (t *terminal) verCarrito() {
	lineas := t.carrito.Lineas()
	if len(lineas) == 0 {
		fmt.Println("Carrito vacío.")
		return
	}
	for _, l := range lineas {
		fmt.Printf("  %dx %-30s %10s\n", l.Cantidad, l.Nombre, l.Subtotal().StringFixed(2))
	}
	fmt.Printf("  TOTAL: %s\n", t.carrito.Total().StringFixed(2))
}

func (t *terminal) finalizarVenta() {
	venta, err := t.carrito.Finalizar(t.ctx)
	if err != nil {
		fmt.Println("No se registró la venta:", err)
		return
	}
	fmt.Printf("Venta #%d registrada. Total: %s (ref %s)\n", venta.IDVenta, venta.Total.StringFixed(2), venta.Referencia)
}

func (t *terminal) menuProductos() {
	switch t.leer("productos: [l]istar [c]rear [a]ctualizar [e]liminar > ") {
	case "l":
		busqueda := t.leer("Búsqueda (vacío = todo): ")
		productos, err := t.productos.Listar(t.ctx, busqueda)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("%-5s %-30s %10s %10s %7s %5s\n", "ID", "Producto", "Precio", "Costo", "Stock", "Cat")
		for _, p := range productos {
			fmt.Printf("%-5d %-30s %10s %10s %7d %5d\n",
				p.IDProducto, p.Nombre, p.Precio.StringFixed(2), p.Costo.StringFixed(2), p.Stock, p.IDCategoria)
		}
	case "c":
		form, ok := t.leerFormProducto(0)
		if !ok {
			return
		}
		if _, err := t.productos.Crear(t.ctx, t.sesion.NombreUsuario, form); err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println("Producto creado.")
		t.recargarCatalogo()
	case "a":
		id, ok := t.leerID("ID del producto: ")
		if !ok {
			return
		}
		form, ok := t.leerFormProducto(id)
		if !ok {
			return
		}
		if _, err := t.productos.Actualizar(t.ctx, t.sesion.NombreUsuario, form); err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println("Producto actualizado.")
		t.recargarCatalogo()
	case "e":
		if id, ok := t.leerID("ID del producto: "); ok {
			if err := t.productos.Eliminar(t.ctx, t.sesion.NombreUsuario, id); err != nil {
				fmt.Println(err)
				return
			}
			fmt.Println("Producto eliminado.")
			t.recargarCatalogo()
		}
	}
}

// leerFormProducto lee el formulario de alta o edición. La imagen puede venir
// de un archivo local o de una URL; ambos vacíos la omiten.
func (t *terminal) leerFormProducto(id int64) (posclient.ProductoForm, bool) {
	form := posclient.ProductoForm{
		IDProducto:  id,
		Nombre:      t.leer("Nombre: "),
		Descripcion: t.leer("Descripción: "),
	}
	form.Precio = t.leerDecimal("Precio: ")
	form.Costo = t.leerDecimal("Costo: ")
	form.Stock = t.leerEntero("Stock: ")
	form.NivelReorden = t.leerEntero("Nivel de reorden: ")
	idCategoria, ok := t.leerID("ID de categoría: ")
	if !ok {
		return form, false
	}
	form.IDCategoria = idCategoria

	ruta := t.leer("Archivo de imagen (vacío para omitir): ")
	if ruta != "" {
		imagen, err := os.ReadFile(ruta)
		if err != nil {
			fmt.Println("No se pudo leer la imagen:", err)
			return form, false
		}
		form.Imagen = imagen
	} else {
		form.ImagenURL = t.leer("URL de imagen (vacío para omitir): ")
	}
	return form, true
}

func (t *terminal) recargarCatalogo() {
	if err := t.carrito.CargarProductos(t.ctx); err != nil {
		fmt.Println("No se pudo recargar el catálogo:", err)
	}
}

func (t *terminal) menuEmpleados() {
	switch t.leer("empleados: [l]istar [c]rear [a]ctualizar [e]liminar > ") {
	case "l":
		empleados, err := t.empleados.Listar(t.ctx)
		if err != nil {
			fmt.Println(err)
			return
		}
		for _, e := range empleados {
			fmt.Printf("  %-5d %-25s %-15s %s\n", e.IDEmpleado, e.Nombre, e.Rol, e.FechaIngreso)
		}
	case "c":
		in := dto.CrearEmpleadoRequest{
			Nombre:       t.leer("Nombre: "),
			Telefono:     t.leer("Teléfono: "),
			Rol:          t.leer("Rol (Empleado/Administrador): "),
			FechaIngreso: t.leer("Fecha de ingreso (YYYY-MM-DD): "),
		}
		in.Salario = t.leerDecimal("Salario: ")
		in.NombreUsuario = t.leer("Nombre de usuario (vacío para omitir credenciales): ")
		if in.NombreUsuario != "" {
			in.Clave = t.leer("Clave: ")
		}
		if _, err := t.empleados.Crear(t.ctx, in); err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println("Empleado creado.")
	case "a":
		id, ok := t.leerID("ID del empleado: ")
		if !ok {
			return
		}
		in := dto.ActualizarEmpleadoRequest{
			IDEmpleado:   id,
			Nombre:       t.leer("Nombre: "),
			Telefono:     t.leer("Teléfono: "),
			Rol:          t.leer("Rol (Empleado/Administrador): "),
			FechaIngreso: t.leer("Fecha de ingreso (YYYY-MM-DD): "),
		}
		in.Salario = t.leerDecimal("Salario: ")
		if _, err := t.empleados.Actualizar(t.ctx, in); err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println("Empleado actualizado.")
	case "e":
		if id, ok := t.leerID("ID del empleado: "); ok {
			if err := t.empleados.Eliminar(t.ctx, id); err != nil {
				fmt.Println(err)
				return
			}
			fmt.Println("Empleado eliminado.")
		}
	}
}

func (t *terminal) menuCategorias() {
	switch t.leer("categorías: [l]istar [c]rear [e]liminar > ") {
	case "l":
		categorias, err := t.categorias.Listar(t.ctx)
		if err != nil {
			fmt.Println(err)
			return
		}
		for _, c := range categorias {
			fmt.Printf("  %-5d %-25s %s\n", c.IDCategoria, c.Nombre, c.Descripcion)
		}
	case "c":
		in := dto.CrearCategoriaRequest{
			Nombre:      t.leer("Nombre: "),
			Descripcion: t.leer("Descripción: "),
		}
		if _, err := t.categorias.Crear(t.ctx, in); err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println("Categoría creada.")
	case "e":
		if id, ok := t.leerID("ID de la categoría: "); ok {
			if err := t.categorias.Eliminar(t.ctx, id); err != nil {
				fmt.Println(err)
				return
			}
			fmt.Println("Categoría eliminada.")
		}
	}
}

func (t *terminal) historialVentas() {
	ventas, err := t.ventas.Listar(t.ctx)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, v := range ventas {
		fmt.Printf("  #%-5d %s  empleado %-4d  total %s\n", v.IDVenta, v.Fecha, v.IDEmpleado, v.Total.StringFixed(2))
	}
}

func (t *terminal) resumenVentas() {
	desde := t.leer("Desde (YYYY-MM-DD, vacío = mes actual): ")
	hasta := t.leer("Hasta (YYYY-MM-DD, vacío = mes actual): ")
	resumen, err := t.ventas.Resumen(t.ctx, desde, hasta)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, r := range resumen {
		fmt.Printf("  %s  %s\n", r.Dia, r.Total.StringFixed(2))
	}
}

func (t *terminal) verAuditoria() {
	registros, err := t.auditoria.Listar(t.ctx)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, r := range registros {
		fmt.Printf("  %s  %-8s producto %-4d por %s\n", r.FechaHora, r.Accion, r.IDProducto, r.Usuario)
	}
}

func (t *terminal) leer(prompt string) string {
	fmt.Print(prompt)
	if !t.in.Scan() {
		return ""
	}
	return strings.TrimSpace(t.in.Text())
}

func (t *terminal) leerID(prompt string) (int64, bool) {
	raw := t.leer(prompt)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		fmt.Println("ID inválido.")
		return 0, false
	}
	return id, true
}

// leerDecimal insiste hasta obtener un monto válido; un error de tipeo no
// debe convertirse en cero silencioso.
func (t *terminal) leerDecimal(prompt string) decimal.Decimal {
	for {
		d, err := decimal.NewFromString(t.leer(prompt))
		if err == nil {
			return d
		}
		fmt.Println("Monto inválido.")
	}
}

func (t *terminal) leerEntero(prompt string) int {
	for {
		n, err := strconv.Atoi(t.leer(prompt))
		if err == nil && n >= 0 {
			return n
		}
		fmt.Println("Número inválido.")
	}
}
