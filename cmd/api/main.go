package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/wumbao/panaderia-pos/internal/application/auth"
	"github.com/wumbao/panaderia-pos/internal/application/usecase"
	"github.com/wumbao/panaderia-pos/internal/application/ventas"
	infrapdf "github.com/wumbao/panaderia-pos/internal/infrastructure/pdf"
	"github.com/wumbao/panaderia-pos/internal/infrastructure/postgres"
	httpRouter "github.com/wumbao/panaderia-pos/internal/interfaces/http"
	"github.com/wumbao/panaderia-pos/pkg/config"
	"github.com/wumbao/panaderia-pos/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productoRepo := postgres.NewProductoRepository(pool)
	empleadoRepo := postgres.NewEmpleadoRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	ventaRepo := postgres.NewVentaRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	auditoriaRepo := postgres.NewAuditoriaRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(usuarioRepo, empleadoRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productoUC := usecase.NewProductoUseCase(productoRepo, auditoriaRepo)
	empleadoUC := usecase.NewEmpleadoUseCase(empleadoRepo, usuarioRepo)
	categoriaUC := usecase.NewCategoriaUseCase(categoriaRepo)
	auditoriaUC := usecase.NewAuditoriaUseCase(auditoriaRepo)

	registrarUC := ventas.NewRegistrarVentaUseCase(txRunner, empleadoRepo, productoRepo)
	consultaUC := ventas.NewConsultaVentasUseCase(ventaRepo)

	// PDF: recibo imprimible de la venta
	reciboGenerator := infrapdf.NewMarotoReciboGenerator()
	reciboUC := ventas.NewReciboUseCase(ventaRepo, empleadoRepo, productoRepo, reciboGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Panadería POS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductoUC:  productoUC,
		EmpleadoUC:  empleadoUC,
		CategoriaUC: categoriaUC,
		AuditoriaUC: auditoriaUC,
		RegistrarUC: registrarUC,
		ConsultaUC:  consultaUC,
		ReciboUC:    reciboUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
