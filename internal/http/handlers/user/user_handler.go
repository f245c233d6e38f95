package user

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"growth-tracker/internal/http/api"
	"growth-tracker/internal/lib/sl"
	repo "growth-tracker/internal/repository"
	usersvc "growth-tracker/internal/service/user"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type userService interface {
	Create(ctx context.Context, input usersvc.CreateInput) (*api.UserSchema, error)
	Get(ctx context.Context, userID string) (*api.UserSchema, error)
	List(ctx context.Context) ([]api.UserSchema, error)
	Update(ctx context.Context, userID string, input usersvc.UpdateInput) (*api.UserSchema, error)
}

type UserHandler struct {
	log     *slog.Logger
	service userService
}

func NewUserHandler(log *slog.Logger, s userService) *UserHandler {
	return &UserHandler{
		log:     log,
		service: s,
	}
}

type CreateRequest struct {
	Email      string  `json:"email"      validate:"required,email"`
	Name       string  `json:"name"       validate:"required,max=128"`
	Role       string  `json:"role"       validate:"required,oneof=Employee Manager HR_Admin System_Admin"`
	ManagerID  *string `json:"manager_id"`
	Department *string `json:"department"`
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.Create"
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

	resp, err := h.service.Create(ctx, usersvc.CreateInput{
		Email:      input.Email,
		Name:       input.Name,
		Role:       input.Role,
		ManagerID:  input.ManagerID,
		Department: input.Department,
	})
	if err != nil {
		if errors.Is(err, repo.ErrUserExists) {
			log.Info("user already exists", sl.Err(err))
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, api.Error(api.ErrCodeUserExists, err.Error()))
			return
		}
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("manager not found", sl.Err(err))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
			return
		}
		if errors.Is(err, repo.ErrInvalidRole) {
			log.Info("unknown role", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error(api.ErrBadRequest, err.Error()))
			return
		}
		log.Error("error while creating user", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	log.Info("user created successfully")
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.UserResponse{User: *resp})
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.Get"
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

	resp, err := h.service.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("user not found", sl.Err(err))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
			return
		}
		log.Error("error while retrieving user", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, api.UserResponse{User: *resp})
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.List"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	resp, err := h.service.List(ctx)
	if err != nil {
		log.Error("error while listing users", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, api.UsersResponse{Users: resp})
}

type UpdateRequest struct {
	UserID       string  `json:"user_id" validate:"required"`
	Email        *string `json:"email"   validate:"omitempty,email"`
	Name         *string `json:"name"    validate:"omitempty,max=128"`
	Role         *string `json:"role"    validate:"omitempty,oneof=Employee Manager HR_Admin System_Admin"`
	ManagerID    *string `json:"manager_id"`
	Department   *string `json:"department"`
	ProfileImage *string `json:"profile_image"`
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.Update"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	var input UpdateRequest
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

	resp, err := h.service.Update(ctx, input.UserID, usersvc.UpdateInput{
		Email:        input.Email,
		Name:         input.Name,
		Role:         input.Role,
		ManagerID:    input.ManagerID,
		Department:   input.Department,
		ProfileImage: input.ProfileImage,
	})
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("user not found", sl.Err(err))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
			return
		}
		if errors.Is(err, repo.ErrSelfManagement) {
			log.Info("user cannot manage themselves", sl.Err(err))
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, api.Error(api.ErrCodeSelfManagement, err.Error()))
			return
		}
		if errors.Is(err, repo.ErrUserExists) {
			log.Info("email already taken", sl.Err(err))
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, api.Error(api.ErrCodeUserExists, err.Error()))
			return
		}
		log.Error("error while updating user", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	log.Info("user updated successfully")
	render.JSON(w, r, api.UserResponse{User: *resp})
}
