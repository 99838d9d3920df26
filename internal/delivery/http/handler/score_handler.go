package handler

import (
	"tutor-match/internal/delivery/http/middleware"
	"tutor-match/internal/pkg/response"
	"tutor-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ScoreHandler struct {
	uc usecase.ScoreUsecase
}

type updateScoreRequest struct {
	Email string `json:"email"`
	// Score is a signed delta, not an absolute value.
	Score int `json:"score"`
}

func NewScoreHandler(uc usecase.ScoreUsecase) *ScoreHandler {
	return &ScoreHandler{uc: uc}
}

func (h *ScoreHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/update-score", h.UpdateScore)
}

// UpdateScore applies the delta atomically. An unknown email is a
// no-op that still reports success.
func (h *ScoreHandler) UpdateScore(c fiber.Ctx) error {
	var req updateScoreRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", err)
	}

	if err := h.uc.AdjustScore(c.Context(), req.Email, req.Score); err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return response.Message(c, fiber.StatusOK, "Score updated")
}
