package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/omarashraf/quiz_platform/handlers"
	"github.com/omarashraf/quiz_platform/middleware"
)

func QuizRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/subjects", handlers.ListSubjects)
	api.Get("/subjects/:code", handlers.GetSubject)
	api.Get("/stats", handlers.QuizStats)

	quiz := api.Group("/quiz")
	quiz.Post("/generate", handlers.GenerateQuiz)
	quiz.Post("/submit", handlers.SubmitQuiz)

	attempts := api.Group("/attempts", middleware.OptionalAuth())
	attempts.Post("", handlers.StartAttempt)
	attempts.Get("/:attemptId", handlers.GetAttempt)
	attempts.Post("/:attemptId/answers", handlers.SubmitAttemptAnswer)
	attempts.Post("/:attemptId/finish", handlers.FinishAttempt)
}
