package membership

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

type membershipService interface {
	Create(ctx context.Context, managerID, employeeID string) (*api.MembershipSchema, error)
	GetByManager(ctx context.Context, managerID string) ([]api.MembershipSchema, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]api.MembershipSchema, error)
}

type MembershipHandler struct {
	log     *slog.Logger
	service membershipService
}

func NewMembershipHandler(log *slog.Logger, s membershipService) *MembershipHandler {
	return &MembershipHandler{
		log:     log,
		service: s,
	}
}

type CreateRequest struct {
	ManagerID  string `json:"manager_id"  validate:"required"`
	EmployeeID string `json:"employee_id" validate:"required"`
}

func (h *MembershipHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.membership.Create"
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

	resp, err := h.service.Create(ctx, input.ManagerID, input.EmployeeID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("referenced user not found", sl.Err(err))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
			return
		}
		if errors.Is(err, repo.ErrSelfManagement) {
			log.Info("self-management rejected", sl.Err(err))
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, api.Error(api.ErrCodeSelfManagement, err.Error()))
			return
		}
		if errors.Is(err, repo.ErrInsufficientRole) {
			log.Info("manager role cannot own memberships", sl.Err(err))
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, api.Error(api.ErrCodeInsufficientRole, err.Error()))
			return
		}
		if errors.Is(err, repo.ErrMembershipExists) {
			log.Info("duplicate membership", sl.Err(err))
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, api.Error(api.ErrCodeMembershipExists, err.Error()))
			return
		}
		if errors.Is(err, repo.ErrCircularReporting) {
			log.Info("membership would create a cycle", sl.Err(err))
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, api.Error(api.ErrCodeCircular, err.Error()))
			return
		}
		log.Error("error while creating membership", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	log.Info("membership created successfully")
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.MembershipResponse{Membership: *resp})
}

func (h *MembershipHandler) GetByManager(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.membership.GetByManager"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	managerID := r.URL.Query().Get("manager_id")
	if managerID == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "manager_id is required"))
		return
	}

	resp, err := h.service.GetByManager(ctx, managerID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("manager not found", sl.Err(err))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
			return
		}
		log.Error("error while retrieving memberships", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, api.MembershipsResponse{Memberships: resp})
}

func (h *MembershipHandler) GetByEmployee(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.membership.GetByEmployee"
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
		log.Error("error while retrieving memberships", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, api.MembershipsResponse{Memberships: resp})
}
