package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/retail-analytics-api/internal/application/auth"
	"github.com/jhoicas/retail-analytics-api/internal/application/ingest"
	"github.com/jhoicas/retail-analytics-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	IngestUC    *ingest.IngestUseCase
	ProductUC   *usecase.ProductUseCase
	ReportUC    *usecase.ReportUseCase
	InsightsUC  *usecase.InsightsUseCase
	JWTSecret   string
	MaxUploadMB int
	Logger      zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/reset-password", authHandler.ResetPassword)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Carga de planilla (protegido)
	uploadHandler := NewUploadHandler(deps.IngestUC, deps.MaxUploadMB, deps.Logger)
	protected.Post("/upload", uploadHandler.Upload)

	// Productos (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.ReportUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetHistory)
	products.Get("/:id/report", productHandler.Report)

	// Insights IA (protegido)
	aiGroup := protected.Group("/ai")
	insightsHandler := NewInsightsHandler(deps.InsightsUC, deps.Logger)
	aiGroup.Post("/insights", insightsHandler.Generate)
}
