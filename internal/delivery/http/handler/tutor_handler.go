package handler

import (
	"tutor-match/internal/delivery/http/dto"
	"tutor-match/internal/delivery/http/middleware"
	"tutor-match/internal/pkg/response"
	"tutor-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type TutorHandler struct {
	uc usecase.TutorUsecase
}

func NewTutorHandler(uc usecase.TutorUsecase) *TutorHandler {
	return &TutorHandler{uc: uc}
}

func (h *TutorHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/tutors", h.ListTutors)
}

// ListTutors filters tutors by exact skill match. An absent ?skill=
// parameter matches nothing and yields an empty list.
func (h *TutorHandler) ListTutors(c fiber.Ctx) error {
	skill := c.Query("skill")

	tutors, err := h.uc.FindTutors(c.Context(), skill)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return response.JSON(c, fiber.StatusOK, dto.NewUserResponses(tutors))
}
