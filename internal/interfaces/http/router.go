package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/homer-api/internal/application/auth"
	appfridge "github.com/jhoicas/homer-api/internal/application/fridge"
	"github.com/jhoicas/homer-api/internal/application/usecase"
	"github.com/jhoicas/homer-api/internal/domain/entity"
	"github.com/jhoicas/homer-api/internal/infrastructure/nameday"
	"github.com/jhoicas/homer-api/internal/infrastructure/weather"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC     *usecase.ItemUseCase
	CategoryUC *usecase.CategoryUseCase
	TagUC      *usecase.TagUseCase
	RoleUC     *usecase.RoleUseCase
	AuthUC     *auth.AuthUseCase
	FridgeUC   *appfridge.UseCase
	Nameday    *nameday.Lookup
	Weather    *weather.Client
	JWTSecret  string
}

// Router registra las rutas de la API.
//
// Reparto de capacidades: ver y consultar el inventario exige CanViewFridge
// (admin, member u host); escribirlo exige CanEditFridge (admin o member).
// La gestión de roles es solo admin. Las páginas /admin usan el guard con
// redirección en vez de respuestas JSON.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	canView := RequireCapability(entity.RoleSet.CanViewFridge)
	canEdit := RequireCapability(entity.RoleSet.CanEditFridge)

	// Items (protegido)
	items := protected.Group("/items", canView)
	itemHandler := NewItemHandler(deps.ItemUC, deps.FridgeUC)
	items.Get("/", itemHandler.List)
	items.Post("/", canEdit, itemHandler.Create)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", canEdit, itemHandler.Update)
	items.Delete("/:id", canEdit, itemHandler.Delete)
	items.Put("/:id/categories", canEdit, itemHandler.ReplaceCategories)
	items.Post("/:id/categories/:categoryID", canEdit, itemHandler.AddCategory)
	items.Delete("/:id/categories/:categoryID", canEdit, itemHandler.RemoveCategory)
	items.Put("/:id/tags", canEdit, itemHandler.ReplaceTags)
	items.Post("/:id/tags/:tagID", canEdit, itemHandler.AddTag)
	items.Delete("/:id/tags/:tagID", canEdit, itemHandler.RemoveTag)

	// Categories (protegido)
	categories := protected.Group("/categories", canView)
	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.FridgeUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", canEdit, categoryHandler.Create)
	categories.Put("/:id", canEdit, categoryHandler.Update)
	categories.Delete("/:id", canEdit, categoryHandler.Delete)
	categories.Get("/:id/usage", categoryHandler.Usage)

	// Tags (protegido)
	tags := protected.Group("/tags", canView)
	tagHandler := NewTagHandler(deps.TagUC, deps.FridgeUC)
	tags.Get("/", tagHandler.List)
	tags.Post("/", canEdit, tagHandler.Create)
	tags.Put("/:id", canEdit, tagHandler.Update)
	tags.Delete("/:id", canEdit, tagHandler.Delete)

	// Fridge views (protegido, solo lectura)
	fridgeGroup := protected.Group("/fridge", canView)
	fridgeHandler := NewFridgeHandler(deps.FridgeUC)
	fridgeGroup.Get("/views", fridgeHandler.Views)
	fridgeGroup.Get("/stats", fridgeHandler.Stats)
	fridgeGroup.Get("/filter", fridgeHandler.Filter)
	fridgeGroup.Get("/shopping-list.pdf", fridgeHandler.ShoppingListPDF)

	// Roles del usuario autenticado
	userHandler := NewUserHandler(deps.RoleUC)
	protected.Get("/me/roles", userHandler.MyRoles)

	// Gestión de roles (solo admin)
	adminGroup := protected.Group("/admin", RequireRole(entity.RoleAdmin))
	adminGroup.Post("/roles", userHandler.AssignRole)
	adminGroup.Delete("/roles/:userID/:role", userHandler.RevokeRole)

	// Utilidades
	calendarHandler := NewCalendarHandler(deps.Nameday)
	protected.Get("/calendar/nameday", calendarHandler.Nameday)
	weatherHandler := NewWeatherHandler(deps.Weather)
	protected.Get("/weather", weatherHandler.Current)

	// Páginas /admin: guard con redirección, no JSON. Resuelve los roles
	// contra la DB en cada petición.
	adminPages := app.Group("/admin", OptionalAuth(deps.JWTSecret), AdminGuard(deps.RoleUC))
	adminPages.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("panel de administración")
	})
}
