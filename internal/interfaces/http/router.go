package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/invitados-api/internal/application/auth"
	"github.com/jhoicas/invitados-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	GuestUC   *usecase.GuestUseCase
	StatsUC   *usecase.StatsUseCase
	AuthUC    *auth.AuthUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Invitados (protegido: requiere Bearer Token). La propiedad por registro
	// se decide en el use case; aquí solo se exige autenticación.
	guests := api.Group("/guests", AuthMiddleware(deps.JWTSecret))
	guestHandler := NewGuestHandler(deps.GuestUC, deps.StatsUC)

	// Las rutas fijas van antes que /:id para que Fiber no las capture como ID.
	guests.Get("/stats", guestHandler.Stats)
	guests.Get("/verify/:qrCode", guestHandler.VerifyByQR)

	guests.Post("/", guestHandler.Create)
	guests.Get("/", guestHandler.List)
	guests.Get("/:id", guestHandler.GetByID)
	guests.Put("/:id", guestHandler.Update)
	guests.Delete("/:id", guestHandler.Delete)
	guests.Post("/:id/entry", guestHandler.RegisterEntry)
	guests.Post("/:id/gift", guestHandler.RegisterGift)
}
