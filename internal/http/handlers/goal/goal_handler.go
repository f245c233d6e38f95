package goal

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"growth-tracker/internal/http/api"
	"growth-tracker/internal/lib/sl"
	repo "growth-tracker/internal/repository"
	goalsvc "growth-tracker/internal/service/goal"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type goalService interface {
	Create(ctx context.Context, employeeID string, managerID *string, title string, description *string) (*api.GoalSchema, error)
	Approve(ctx context.Context, goalID, actorID string) (*api.GoalSchema, error)
	Submit(ctx context.Context, goalID string) (*api.GoalSchema, error)
	Update(ctx context.Context, goalID string, input goalsvc.UpdateInput) (*api.GoalSchema, error)
	Get(ctx context.Context, goalID string) (*api.GoalSchema, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]api.GoalSchema, error)
}

type GoalHandler struct {
	log     *slog.Logger
	service goalService
}

func NewGoalHandler(log *slog.Logger, s goalService) *GoalHandler {
	return &GoalHandler{
		log:     log,
		service: s,
	}
}

type CreateRequest struct {
	EmployeeID  string  `json:"employee_id" validate:"required"`
	ManagerID   *string `json:"manager_id"`
	Title       string  `json:"title"       validate:"required,max=255"`
	Description *string `json:"description"`
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.goal.Create"
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

	resp, err := h.service.Create(ctx, input.EmployeeID, input.ManagerID, input.Title, input.Description)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("referenced user not found", sl.Err(err))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
			return
		}
		log.Error("error while creating goal", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.GoalResponse{Goal: *resp})
}

type ApproveRequest struct {
	GoalID    string `json:"goal_id"    validate:"required"`
	ManagerID string `json:"manager_id" validate:"required"`
}

func (h *GoalHandler) Approve(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.goal.Approve"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	var input ApproveRequest
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

	resp, err := h.service.Approve(ctx, input.GoalID, input.ManagerID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("goal or manager not found", sl.Err(err))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
			return
		}
		if errors.Is(err, repo.ErrGoalNotPending) {
			log.Info("goal not pending approval", sl.Err(err))
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, api.Error(api.ErrCodeInvalidState, err.Error()))
			return
		}
		if errors.Is(err, repo.ErrInsufficientRole) {
			log.Info("actor role cannot approve", sl.Err(err))
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, api.Error(api.ErrCodeInsufficientRole, err.Error()))
			return
		}
		if errors.Is(err, repo.ErrNoPermission) {
			log.Info("actor has no permission for this goal", sl.Err(err))
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, api.Error(api.ErrCodeNoPermission, err.Error()))
			return
		}
		log.Error("error while approving goal", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	log.Info("goal approved")
	render.JSON(w, r, api.GoalResponse{Goal: *resp})
}

type SubmitRequest struct {
	GoalID string `json:"goal_id" validate:"required"`
}

func (h *GoalHandler) Submit(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.goal.Submit"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	var input SubmitRequest
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

	resp, err := h.service.Submit(ctx, input.GoalID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("goal not found", sl.Err(err))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
			return
		}
		if errors.Is(err, repo.ErrInvalidTransition) {
			log.Info("goal not in draft", sl.Err(err))
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, api.Error(api.ErrCodeInvalidState, err.Error()))
			return
		}
		log.Error("error while submitting goal", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, api.GoalResponse{Goal: *resp})
}

type UpdateRequest struct {
	GoalID      string  `json:"goal_id" validate:"required"`
	ManagerID   *string `json:"manager_id"`
	Title       *string `json:"title"   validate:"omitempty,max=255"`
	Description *string `json:"description"`
	Status      *string `json:"status"  validate:"omitempty,oneof=Draft Pending_Approval Approved In_Progress Completed Cancelled"`
}

func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.goal.Update"
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

	resp, err := h.service.Update(ctx, input.GoalID, goalsvc.UpdateInput{
		ManagerID:   input.ManagerID,
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
	})
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("goal not found", sl.Err(err))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
			return
		}
		if errors.Is(err, repo.ErrInvalidTransition) {
			log.Info("invalid status transition", sl.Err(err))
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, api.Error(api.ErrCodeInvalidState, err.Error()))
			return
		}
		log.Error("error while updating goal", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, api.GoalResponse{Goal: *resp})
}

func (h *GoalHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.goal.Get"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	goalID := r.URL.Query().Get("goal_id")
	if goalID == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "goal_id is required"))
		return
	}

	resp, err := h.service.Get(ctx, goalID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("goal not found", sl.Err(err))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
			return
		}
		log.Error("error while retrieving goal", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, api.GoalResponse{Goal: *resp})
}

func (h *GoalHandler) GetByEmployee(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.goal.GetByEmployee"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	employeeID := r.URL.Query().Get("employee_id")
	if employeeID == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "employee_id is required"))
		return
	}

	resp, err := h.service.GetByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("employee not found", sl.Err(err))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
			return
		}
		log.Error("error while retrieving goals", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, api.GoalsResponse{Goals: resp})
}
