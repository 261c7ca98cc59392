package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/omarashraf/quiz_platform/handlers"
	"github.com/omarashraf/quiz_platform/middleware"
)

func AuthRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/register", handlers.RegisterUser)
	auth.Post("/login", handlers.LoginUser)

	me := api.Group("/me", middleware.Protected())
	me.Get("", handlers.GetMe)
	me.Get("/results", handlers.MyResults)
	me.Get("/results/:resultId", handlers.MyResultDetail)
	me.Get("/certificates", handlers.MyCertificates)
}
