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

	"github.com/jhoicas/retail-analytics-api/internal/application/auth"
	"github.com/jhoicas/retail-analytics-api/internal/application/ingest"
	"github.com/jhoicas/retail-analytics-api/internal/application/ports"
	"github.com/jhoicas/retail-analytics-api/internal/application/usecase"
	infraai "github.com/jhoicas/retail-analytics-api/internal/infrastructure/ai"
	infrapdf "github.com/jhoicas/retail-analytics-api/internal/infrastructure/pdf"
	"github.com/jhoicas/retail-analytics-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/retail-analytics-api/internal/interfaces/http"
	"github.com/jhoicas/retail-analytics-api/pkg/config"
	"github.com/jhoicas/retail-analytics-api/pkg/logger"
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

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	txRunner := postgres.NewTxRunner(pool, postgres.TxBudgets{
		LockWait:  time.Duration(cfg.Ingest.LockWaitSeconds) * time.Second,
		TxTimeout: time.Duration(cfg.Ingest.TxTimeoutSeconds) * time.Second,
	})

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	ingestUC := ingest.NewIngestUseCase(txRunner)
	productUC := usecase.NewProductUseCase(productRepo)
	reportUC := usecase.NewReportUseCase(productRepo, infrapdf.NewMarotoReportGenerator())

	// Colaborador LLM: OpenAI por defecto, Anthropic como alternativa.
	var llm ports.LLMService
	switch cfg.AI.Provider {
	case "anthropic":
		llm = infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	default:
		llm = infraai.NewOpenAIService(cfg.AI.OpenAIAPIKey, cfg.AI.OpenAIModel)
	}
	insightsUC := usecase.NewInsightsUseCase(
		productRepo, llm, time.Duration(cfg.AI.TimeoutSeconds)*time.Second,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    (cfg.Ingest.MaxUploadMB + 1) * 1024 * 1024,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Retail Analytics API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		IngestUC:    ingestUC,
		ProductUC:   productUC,
		ReportUC:    reportUC,
		InsightsUC:  insightsUC,
		JWTSecret:   cfg.JWT.Secret,
		MaxUploadMB: cfg.Ingest.MaxUploadMB,
		Logger:      log.Zerolog(),
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
