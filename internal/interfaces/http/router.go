package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-registros/internal/application/auth"
	appinventory "github.com/jhoicas/almacen-registros/internal/application/inventory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Orchestrator *appinventory.Orchestrator
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Registros de inventario (protegido: requiere Bearer Token)
	entries := api.Group("/entries", AuthMiddleware(deps.JWTSecret))
	entryHandler := NewEntryHandler(deps.Orchestrator)
	entries.Get("/", entryHandler.List)
	entries.Post("/", entryHandler.Create)
	entries.Post("/refresh", entryHandler.Refresh)
	entries.Get("/export", entryHandler.Export)
	entries.Get("/units", entryHandler.UnitOptions)
	entries.Put("/:id", entryHandler.Update)
	entries.Delete("/:id", entryHandler.Delete)
}
