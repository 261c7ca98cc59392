package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/omarashraf/quiz_platform/handlers"
	"github.com/omarashraf/quiz_platform/middleware"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	subjects := admin.Group("/subjects")
	subjects.Post("", handlers.CreateSubject)
	subjects.Put("/:code", handlers.UpdateSubject)
	subjects.Delete("/:code", handlers.DeleteSubject)

	questions := admin.Group("/questions")
	questions.Post("", handlers.CreateQuestion)
	questions.Get("", handlers.ListQuestions)
	questions.Get("/:questionId", handlers.GetQuestion)
	questions.Put("/:questionId", handlers.UpdateQuestion)
	questions.Delete("/:questionId", handlers.DeleteQuestion)

	admin.Post("/uploads/signature", handlers.GenerateUploadSignature)
}
