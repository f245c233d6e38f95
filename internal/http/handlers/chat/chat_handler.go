package chat

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

type chatService interface {
	CreateSession(ctx context.Context, userID, topic string) (*api.ChatSessionSchema, error)
	CreateMessage(ctx context.Context, sessionID, sender, content string) (*api.ChatMessageSchema, error)
	ListMessages(ctx context.Context, sessionID string) (*api.ChatMessagesResponse, error)
}

type ChatHandler struct {
	log     *slog.Logger
	service chatService
}

func NewChatHandler(log *slog.Logger, s chatService) *ChatHandler {
	return &ChatHandler{
		log:     log,
		service: s,
	}
}

type CreateSessionRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Topic  string `json:"topic"   validate:"required,max=255"`
}

func (h *ChatHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.chat.CreateSession"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	var input CreateSessionRequest
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

	resp, err := h.service.CreateSession(ctx, input.UserID, input.Topic)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("user not found", sl.Err(err))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
			return
		}
		log.Error("error while creating chat session", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.ChatSessionResponse{Session: *resp})
}

type CreateMessageRequest struct {
	SessionID string `json:"session_id" validate:"required"`
	Sender    string `json:"sender"     validate:"required,oneof=user assistant"`
	Content   string `json:"content"    validate:"required"`
}

func (h *ChatHandler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.chat.CreateMessage"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	var input CreateMessageRequest
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

	resp, err := h.service.CreateMessage(ctx, input.SessionID, input.Sender, input.Content)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("session not found", sl.Err(err))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
			return
		}
		log.Error("error while creating chat message", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.ChatMessageResponse{Message: *resp})
}

func (h *ChatHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.chat.ListMessages"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "session_id is required"))
		return
	}

	resp, err := h.service.ListMessages(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("session not found", sl.Err(err))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
			return
		}
		log.Error("error while retrieving chat messages", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, resp)
}
