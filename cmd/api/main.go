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

	"github.com/khakhra/business-manager/internal/application/auth"
	"github.com/khakhra/business-manager/internal/application/usecase"
	"github.com/khakhra/business-manager/internal/infrastructure/cache"
	infraexcel "github.com/khakhra/business-manager/internal/infrastructure/excel"
	infrapdf "github.com/khakhra/business-manager/internal/infrastructure/pdf"
	"github.com/khakhra/business-manager/internal/infrastructure/storage"
	httpRouter "github.com/khakhra/business-manager/internal/interfaces/http"
	"github.com/khakhra/business-manager/pkg/config"
	"github.com/khakhra/business-manager/pkg/logger"
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
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Backend de almacenamiento: archivo JSON local o PostgreSQL.
	var backend storage.Backend
	switch cfg.Storage.Driver {
	case "postgres":
		pg, err := storage.NewPostgresBackend(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pg.Close()
		backend = pg
	default:
		fb, err := storage.NewFileBackend(cfg.Storage.DataFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", cfg.Storage.DataFile).Msg("abrir archivo de datos")
		}
		backend = fb
	}
	store := storage.New(backend, log)

	// Caché de analítica: Redis si está configurado, si no noop.
	var summaryCache cache.SummaryCache = cache.NoopCache{}
	if cfg.Redis.Addr != "" {
		rc := cache.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := rc.Ping(ctx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis no disponible, analítica sin caché")
		} else {
			defer rc.Close()
			summaryCache = rc
			log.Info().Str("addr", cfg.Redis.Addr).Msg("caché de analítica en Redis")
		}
	}

	biz := usecase.BusinessInfo{
		Name:           cfg.Report.BusinessName,
		AddressLine:    cfg.Report.BusinessLine1,
		ContactLine:    cfg.Report.BusinessLine2,
		GSTIN:          cfg.Report.GSTIN,
		CurrencySymbol: cfg.Report.CurrencySymbol,
	}

	authUC := auth.NewAuthUseCase(store, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	customerUC := usecase.NewCustomerUseCase(store)
	productUC := usecase.NewProductUseCase(store)
	rawMaterialUC := usecase.NewRawMaterialUseCase(store)
	orderUC := usecase.NewOrderUseCase(store, cfg.Report.DefaultGSTRate)
	expenseUC := usecase.NewExpenseUseCase(store)
	profitLossUC := usecase.NewProfitLossUseCase(store)
	analyticsUC := usecase.NewAnalyticsUseCase(store, summaryCache, time.Duration(cfg.Redis.TTLSeconds)*time.Second, log)
	reportUC := usecase.NewReportUseCase(store, infrapdf.NewMarotoPDFGenerator(), infraexcel.NewExcelizeExporter(), biz)

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
		Title:    "Khakhra Business Manager API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		CustomerUC:    customerUC,
		ProductUC:     productUC,
		RawMaterialUC: rawMaterialUC,
		OrderUC:       orderUC,
		ExpenseUC:     expenseUC,
		ProfitLossUC:  profitLossUC,
		AnalyticsUC:   analyticsUC,
		ReportUC:      reportUC,
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
