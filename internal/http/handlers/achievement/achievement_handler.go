package achievement

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"growth-tracker/internal/http/api"
	"growth-tracker/internal/lib/sl"
	repo "growth-tracker/internal/repository"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type achievementService interface {
	Create(ctx context.Context, userID, title string, description, badge *string) (*api.AchievementSchema, error)
	GetByUser(ctx context.Context, userID string) ([]api.AchievementSchema, error)
}

type AchievementHandler struct {
	log     *slog.Logger
	service achievementService
}

func NewAchievementHandler(log *slog.Logger, s achievementService) *AchievementHandler {
	return &AchievementHandler{
		log:     log,
		service: s,
	}
}

type CreateRequest struct {
	UserID      string  `json:"user_id" validate:"required"`
	Title       string  `json:"title"   validate:"required,max=255"`
	Description *string `json:"description"`
	Badge       *string `json:"badge"`
}

func (h *AchievementHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.achievement.Create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	var input CreateRequest
	if err := render.DecodeJSON(r.Body, &input); err != nil {
		log.Error("failed to decode request body", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "bad request"))
		return
	}

	if err := validator.New().Struct(input); err != nil {
		validateError := err.(validator.ValidationErrors)

		log.Error("invalid request", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.ValidationError(validateError))
		return
	}

	resp, err := h.service.Create(ctx, input.UserID, input.Title, input.Description, input.Badge)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("user not found", sl.Err(err))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
			return
		}
		log.Error("error while creating achievement", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.AchievementResponse{Achievement: *resp})
}

func (h *AchievementHandler) GetByUser(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.achievement.GetByUser"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "user_id is required"))
		return
	}

	resp, err := h.service.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("user not found", sl.Err(err))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
			return
		}
		log.Error("error while retrieving achievements", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, api.AchievementsResponse{Achievements: resp})
}
