package integration

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

type integrationService interface {
	Connect(ctx context.Context, userID, provider string, externalID *string) (*api.IntegrationSchema, error)
	GetByUser(ctx context.Context, userID string) ([]api.IntegrationSchema, error)
	Disconnect(ctx context.Context, integrationID string) error
}

type IntegrationHandler struct {
	log     *slog.Logger
	service integrationService
}

func NewIntegrationHandler(log *slog.Logger, s integrationService) *IntegrationHandler {
	return &IntegrationHandler{
		log:     log,
		service: s,
	}
}

type ConnectRequest struct {
	UserID     string  `json:"user_id"  validate:"required"`
	Provider   string  `json:"provider" validate:"required,max=64"`
	ExternalID *string `json:"external_id"`
}

func (h *IntegrationHandler) Connect(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.integration.Connect"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	var input ConnectRequest
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

	resp, err := h.service.Connect(ctx, input.UserID, input.Provider, input.ExternalID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("user not found", sl.Err(err))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
			return
		}
		if errors.Is(err, repo.ErrIntegrationExists) {
			log.Info("integration already connected", sl.Err(err))
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, api.Error(api.ErrCodeIntegrationExists, err.Error()))
			return
		}
		log.Error("error while connecting integration", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.IntegrationResponse{Integration: *resp})
}

func (h *IntegrationHandler) GetByUser(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.integration.GetByUser"
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
		log.Error("error while retrieving integrations", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, api.IntegrationsResponse{Integrations: resp})
}

type DisconnectRequest struct {
	IntegrationID string `json:"integration_id" validate:"required"`
}

func (h *IntegrationHandler) Disconnect(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.integration.Disconnect"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	var input DisconnectRequest
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

	if err := h.service.Disconnect(ctx, input.IntegrationID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("integration not found", sl.Err(err))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
			return
		}
		log.Error("error while disconnecting integration", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, map[string]string{"status": "disconnected"})
}
