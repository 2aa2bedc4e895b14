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
	"github.com/jhoicas/vitrina-api/internal/application/auth"
	"github.com/jhoicas/vitrina-api/internal/application/upload"
	"github.com/jhoicas/vitrina-api/internal/application/usecase"
	"github.com/jhoicas/vitrina-api/internal/infrastructure/memcache"
	"github.com/jhoicas/vitrina-api/internal/infrastructure/postgres"
	"github.com/jhoicas/vitrina-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/vitrina-api/internal/interfaces/http"
	"github.com/jhoicas/vitrina-api/pkg/config"
	"github.com/jhoicas/vitrina-api/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	// Para desarrollo local; en producción las env vars vienen del entorno.
	_ = godotenv.Load()

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

	userRepo := postgres.NewUserRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Caché de vistas: memoización con TTL corto e invalidación por tags
	// desde las acciones.
	viewCache := memcache.New(time.Minute)

	supabaseStorage := storage.NewSupabaseStorage(cfg.Storage)
	uploadOpts := upload.Options{
		AllowedMIMEs: []string{"image/*"},
		MaxFileSize:  cfg.Storage.MaxFileSize,
		MaxFiles:     cfg.Storage.MaxFiles,
		CacheControl: cfg.Storage.CacheControl,
		Upsert:       cfg.Storage.Upsert,
	}

	actionLog := log.Component("actions")
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	companyUC := usecase.NewCompanyUseCase(companyRepo, actionLog)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, txRunner, viewCache, actionLog)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, viewCache, actionLog)
	dashboardUC := usecase.NewDashboardUseCase(productRepo, categoryRepo)
	storefrontUC := usecase.NewStorefrontUseCase(userRepo, companyRepo, productRepo, viewCache)

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
		Title:    "Vitrina API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		CompanyUC:     companyUC,
		CategoryUC:    categoryUC,
		ProductUC:     productUC,
		DashboardUC:   dashboardUC,
		StorefrontUC:  storefrontUC,
		UploadStorage: supabaseStorage,
		UploadOpts:    uploadOpts,
		Logger:        log.Component("http"),
		JWTSecret:     cfg.JWT.Secret,
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
