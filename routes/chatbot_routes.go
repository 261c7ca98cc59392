package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/omarashraf/quiz_platform/handlers"
	"github.com/omarashraf/quiz_platform/middleware"
)

func ChatbotRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	chatbot := api.Group("/chatbot/sessions", middleware.OptionalAuth())
	chatbot.Post("", handlers.StartChatSession)
	chatbot.Get("/:token", handlers.GetChatSession)
	chatbot.Post("/:token/subject", handlers.ChatSelectSubject)
	chatbot.Post("/:token/level", handlers.ChatSelectLevel)
}
