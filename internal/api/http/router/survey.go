package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/opora-health/opora_backend/internal/api/http/handler"
)

func (r *Router) registerSurveyRoutes(
	api fiber.Router,
	sh *handler.SurveyHandler,
	auth fiber.Handler,
) {
	// assessments work anonymously; a valid token attaches the owner
	sv := api.Group("/survey", auth)

	sv.Post("/start", sh.Start)
	sv.Post("/variants", sh.Variants)

	s := sv.Group("/:id")
	s.Get("/", sh.Get)
	s.Post("/intake", sh.SubmitIntake)
	s.Post("/answers", sh.SubmitAnswers)
}
