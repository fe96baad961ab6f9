package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wumbao/panaderia-pos/internal/application/auth"
	"github.com/wumbao/panaderia-pos/internal/application/usecase"
	"github.com/wumbao/panaderia-pos/internal/application/ventas"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ProductoUC   *usecase.ProductoUseCase
	EmpleadoUC   *usecase.EmpleadoUseCase
	CategoriaUC  *usecase.CategoriaUseCase
	AuditoriaUC  *usecase.AuditoriaUseCase
	RegistrarUC  *ventas.RegistrarVentaUseCase
	ConsultaUC   *ventas.ConsultaVentasUseCase
	ReciboUC     *ventas.ReciboUseCase
	JWTSecret    string
}

// Router registra las rutas de la API. Los nombres de ruta en castellano
// vienen del contrato original que consume el terminal.
func Router(app *fiber.App, deps RouterDeps) {
	// Acceso (login público, registro solo para administradores)
	authHandler := NewAuthHandler(deps.AuthUC)
	acceso := app.Group("/Acceso")
	acceso.Post("/Login", authHandler.Login)
	acceso.Post("/Registrar", AuthMiddleware(deps.JWTSecret), RequireAdmin(), authHandler.Registrar)

	// Productos: lectura pública, escritura solo administradores
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos := app.Group("/Productos")
	productos.Get("/", productoHandler.Listar)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Post("/", AuthMiddleware(deps.JWTSecret), RequireAdmin(), productoHandler.Crear)
	productos.Put("/", AuthMiddleware(deps.JWTSecret), RequireAdmin(), productoHandler.Actualizar)
	productos.Delete("/:id", AuthMiddleware(deps.JWTSecret), RequireAdmin(), productoHandler.Eliminar)

	// Categorías: lectura pública, escritura solo administradores
	categoriaHandler := NewCategoriaHandler(deps.CategoriaUC)
	categorias := app.Group("/Categorias")
	categorias.Get("/", categoriaHandler.Listar)
	categorias.Post("/", AuthMiddleware(deps.JWTSecret), RequireAdmin(), categoriaHandler.Crear)
	categorias.Put("/:id", AuthMiddleware(deps.JWTSecret), RequireAdmin(), categoriaHandler.Actualizar)
	categorias.Delete("/:id", AuthMiddleware(deps.JWTSecret), RequireAdmin(), categoriaHandler.Eliminar)

	// Empleados: todo bajo rol administrador
	empleadoHandler := NewEmpleadoHandler(deps.EmpleadoUC)
	empleados := app.Group("/Empleados", AuthMiddleware(deps.JWTSecret), RequireAdmin())
	empleados.Get("/", empleadoHandler.Listar)
	empleados.Get("/:id", empleadoHandler.GetByID)
	empleados.Post("/", empleadoHandler.Crear)
	empleados.Put("/", empleadoHandler.Actualizar)
	empleados.Delete("/:id", empleadoHandler.Eliminar)

	// Ventas: registrar requiere sesión; historial y recibos, administrador.
	// /Ventas/Registrar y /Ventas/Resumen van antes que /Ventas/:id para que
	// el parámetro no los capture.
	ventaHandler := NewVentaHandler(deps.RegistrarUC, deps.ConsultaUC, deps.ReciboUC)
	grupoVentas := app.Group("/Ventas", AuthMiddleware(deps.JWTSecret))
	grupoVentas.Post("/Registrar", ventaHandler.Registrar)
	grupoVentas.Get("/Resumen", RequireAdmin(), ventaHandler.Resumen)
	grupoVentas.Get("/", RequireAdmin(), ventaHandler.Listar)
	grupoVentas.Get("/:id", RequireAdmin(), ventaHandler.GetByID)
	grupoVentas.Get("/:id/Recibo", RequireAdmin(), ventaHandler.Recibo)

	// Auditoría: solo administradores
	auditoriaHandler := NewAuditoriaHandler(deps.AuditoriaUC)
	app.Get("/Auditoria", AuthMiddleware(deps.JWTSecret), RequireAdmin(), auditoriaHandler.Listar)
}
