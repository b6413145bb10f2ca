package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/opora-health/opora_backend/internal/service/survey"
	"github.com/opora-health/opora_backend/pkg/reqctx"
)

type SurveyHandler struct {
	svc survey.Service
}

func NewSurveyHandler(svc survey.Service) *SurveyHandler {
	return &SurveyHandler{svc: svc}
}

func mapSurveyError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, survey.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, survey.ErrInvalidState),
		errors.Is(err, survey.ErrConflictingTransition):
		return conflict(c, err.Error())
	case errors.Is(err, survey.ErrEmptyIntake),
		errors.Is(err, survey.ErrIncompleteAnswers):
		return badRequest(c, err.Error())
	case errors.Is(err, survey.ErrGenerationFailed):
		return badGateway(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /survey/start
func (h *SurveyHandler) Start(c fiber.Ctx) error {
	var ownerID *uuid.UUID
	if uid, authed := reqctx.UserIDFromContext(c.Context()); authed {
		ownerID = &uid
	}

	res, err := h.svc.Start(c.Context(), ownerID)
	if err != nil {
		return mapSurveyError(c, err)
	}
	return created(c, res)
}

// POST /survey/variants
func (h *SurveyHandler) Variants(c fiber.Ctx) error {
	var body struct {
		Complaint string `json:"complaint"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	variants, err := h.svc.PreviewVariants(c.Context(), body.Complaint)
	if err != nil {
		return mapSurveyError(c, err)
	}
	return ok(c, fiber.Map{"variants": variants})
}

// GET /survey/:id
func (h *SurveyHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}

	sess, err := h.svc.GetSession(c.Context(), id)
	if err != nil {
		return mapSurveyError(c, err)
	}
	return ok(c, sess)
}

// POST /survey/:id/intake
func (h *SurveyHandler) SubmitIntake(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}

	var body survey.Intake
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	res, err := h.svc.SubmitIntake(c.Context(), id, body)
	if err != nil {
		return mapSurveyError(c, err)
	}
	return ok(c, res)
}

// POST /survey/:id/answers
func (h *SurveyHandler) SubmitAnswers(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}

	var body struct {
		Answers survey.AnswerSet `json:"answers"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if len(body.Answers) == 0 {
		return badRequest(c, "answers are required")
	}

	res, err := h.svc.SubmitAnswers(c.Context(), id, body.Answers)
	if err != nil {
		return mapSurveyError(c, err)
	}
	return ok(c, res)
}
