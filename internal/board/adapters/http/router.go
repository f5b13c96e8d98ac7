// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"

	"gumboard/internal/board/adapters/http/middleware"
	"gumboard/internal/board/adapters/http/notes"
	"gumboard/internal/board/ports/api"
	"gumboard/internal/board/ports/services"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, tokens services.TokenService, noteService api.NoteService) {
	notesHandler := notes.NewHandler(noteService)

	// Middleware для всех запросов.
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())
	app.Use(middleware.NewAuthMiddleware(tokens))

	// API версии 1.
	apiV1 := app.Group("/api/v1")

	// Маршруты заметок доски. Личность необязательна: доступ решает
	// бизнес-логика в зависимости от видимости доски.
	boardRoutes := apiV1.Group("/boards")
	boardRoutes.Get("/:board_id/notes", notesHandler.ListNotes)
	boardRoutes.Post("/:board_id/notes", notesHandler.CreateNote)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
