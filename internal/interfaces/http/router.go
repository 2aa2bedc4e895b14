package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/vitrina-api/internal/application/auth"
	"github.com/jhoicas/vitrina-api/internal/application/upload"
	"github.com/jhoicas/vitrina-api/internal/application/usecase"
	"github.com/jhoicas/vitrina-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	CompanyUC     *usecase.CompanyUseCase
	CategoryUC    *usecase.CategoryUseCase
	ProductUC     *usecase.ProductUseCase
	DashboardUC   *usecase.DashboardUseCase
	StorefrontUC  *usecase.StorefrontUseCase
	UploadStorage upload.ObjectStorage
	UploadOpts    upload.Options
	Logger        *logger.Logger
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Vitrina pública (sin token): perfil del vendedor, detalle de producto
	// y vitrina por empresa.
	storefrontHandler := NewStorefrontHandler(deps.StorefrontUC)
	api.Get("/sellers/:user_id", storefrontHandler.Seller)
	api.Get("/sellers/:user_id/products/:id", storefrontHandler.SellerProduct)
	api.Get("/storefront/:company_id", storefrontHandler.Company)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Companies (onboarding)
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Put("/:id/words", companyHandler.SaveWords)

	// Categories
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Delete("/:id", categoryHandler.Delete)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/:id/categories", productHandler.LinkCategories)

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stats", dashboardHandler.Stats)

	// Uploads (imágenes de producto)
	uploadHandler := NewUploadHandler(deps.UploadStorage, deps.UploadOpts, deps.Logger)
	protected.Post("/uploads", uploadHandler.Upload)
}
