package goal

import (
	"context"
	"fmt"
	"time"

	"growth-tracker/internal/http/api"
	"growth-tracker/internal/models"
	repo "growth-tracker/internal/repository"
	"growth-tracker/internal/service"

	"github.com/google/uuid"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=GoalProvider
type GoalProvider interface {
	Create(ctx context.Context, goal *models.Goal) (string, error)
	GetById(ctx context.Context, goalID string) (*models.Goal, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]*models.Goal, error)
	Update(ctx context.Context, goal *models.Goal) error
	ApproveIfPending(ctx context.Context, goalID, managerID string) (bool, error)
	SubmitIfDraft(ctx context.Context, goalID string) (bool, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=UserGetter
type UserGetter interface {
	GetById(ctx context.Context, userID string) (*models.User, error)
}

type GoalService struct {
	trm   service.TransactionManager
	goals GoalProvider
	users UserGetter
}

func NewGoalService(trm service.TransactionManager, goals GoalProvider, users UserGetter) *GoalService {
	return &GoalService{
		trm:   trm,
		goals: goals,
		users: users,
	}
}

type UpdateInput struct {
	ManagerID   *string
	Title       *string
	Description *string
	Status      *string
}

func (s *GoalService) Create(ctx context.Context, employeeID string, managerID *string, title string, description *string) (*api.GoalSchema, error) {
	resp := &api.GoalSchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		if _, err := s.users.GetById(ctx, employeeID); err != nil {
			return err
		}

		if managerID != nil {
			if _, err := s.users.GetById(ctx, *managerID); err != nil {
				return err
			}
		}

		goal := &models.Goal{
			ID:          uuid.NewString(),
			EmployeeID:  employeeID,
			ManagerID:   managerID,
			Title:       title,
			Description: description,
			Status:      models.GoalStatusDraft,
		}

		goalID, err := s.goals.Create(ctx, goal)
		if err != nil {
			return err
		}

		goal.ID = goalID
		toGoalSchema(resp, goal)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// Approve runs the authorization chain for the Pending_Approval -> Approved
// transition and performs it. The acting user may approve when they are the
// goal's manager of record, hold an admin role, or are the employee's direct
// manager. The write itself is conditional on the status still being
// Pending_Approval, so a concurrent approval loses with ErrGoalNotPending
// instead of double-writing.
func (s *GoalService) Approve(ctx context.Context, goalID, actorID string) (*api.GoalSchema, error) {
	resp := &api.GoalSchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		goal, err := s.goals.GetById(ctx, goalID)
		if err != nil {
			return err
		}

		if goal.Status != models.GoalStatusPendingApproval {
			return fmt.Errorf("%w: current status is %s", repo.ErrGoalNotPending, goal.Status)
		}

		actor, err := s.users.GetById(ctx, actorID)
		if err != nil {
			return err
		}

		if !actor.Role.CanManage() {
			return repo.ErrInsufficientRole
		}

		allowed := actor.Role.IsAdmin() ||
			(goal.ManagerID != nil && *goal.ManagerID == actor.ID)
		if !allowed {
			employee, err := s.users.GetById(ctx, goal.EmployeeID)
			if err != nil {
				return err
			}
			allowed = employee.ManagerID != nil && *employee.ManagerID == actor.ID
		}
		if !allowed {
			return repo.ErrNoPermission
		}

		approved, err := s.goals.ApproveIfPending(ctx, goalID, actorID)
		if err != nil {
			return err
		}
		if !approved {
			return repo.ErrGoalNotPending
		}

		goal, err = s.goals.GetById(ctx, goalID)
		if err != nil {
			return err
		}

		toGoalSchema(resp, goal)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (s *GoalService) Submit(ctx context.Context, goalID string) (*api.GoalSchema, error) {
	resp := &api.GoalSchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		goal, err := s.goals.GetById(ctx, goalID)
		if err != nil {
			return err
		}

		submitted, err := s.goals.SubmitIfDraft(ctx, goalID)
		if err != nil {
			return err
		}
		if !submitted {
			return fmt.Errorf("%w: current status is %s", repo.ErrInvalidTransition, goal.Status)
		}

		goal, err = s.goals.GetById(ctx, goalID)
		if err != nil {
			return err
		}

		toGoalSchema(resp, goal)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// Update applies a partial field update. Status bookkeeping follows the goal
// lifecycle: entering Approved for the first time stamps approval_date,
// entering Completed stamps completed_date, and leaving Completed clears it.
func (s *GoalService) Update(ctx context.Context, goalID string, input UpdateInput) (*api.GoalSchema, error) {
	resp := &api.GoalSchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		goal, err := s.goals.GetById(ctx, goalID)
		if err != nil {
			return err
		}

		if input.ManagerID != nil {
			if _, err := s.users.GetById(ctx, *input.ManagerID); err != nil {
				return err
			}
			goal.ManagerID = input.ManagerID
		}
		if input.Title != nil {
			goal.Title = *input.Title
		}
		if input.Description != nil {
			goal.Description = input.Description
		}
		if input.Status != nil {
			newStatus := models.GoalStatus(*input.Status)
			if !newStatus.IsValid() {
				return repo.ErrInvalidTransition
			}
			now := time.Now()
			if newStatus == models.GoalStatusApproved && goal.ApprovalDate == nil {
				goal.ApprovalDate = &now
			}
			if newStatus == models.GoalStatusCompleted && goal.Status != models.GoalStatusCompleted {
				goal.CompletedDate = &now
			}
			if newStatus != models.GoalStatusCompleted && goal.Status == models.GoalStatusCompleted {
				goal.CompletedDate = nil
			}
			goal.Status = newStatus
		}

		if err := s.goals.Update(ctx, goal); err != nil {
			return err
		}

		goal, err = s.goals.GetById(ctx, goalID)
		if err != nil {
			return err
		}

		toGoalSchema(resp, goal)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (s *GoalService) Get(ctx context.Context, goalID string) (*api.GoalSchema, error) {
	goal, err := s.goals.GetById(ctx, goalID)
	if err != nil {
		return nil, err
	}

	resp := &api.GoalSchema{}
	toGoalSchema(resp, goal)
	return resp, nil
}

func (s *GoalService) GetByEmployee(ctx context.Context, employeeID string) ([]api.GoalSchema, error) {
	if _, err := s.users.GetById(ctx, employeeID); err != nil {
		return nil, err
	}

	goals, err := s.goals.GetByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	schemas := make([]api.GoalSchema, 0, len(goals))
	for _, g := range goals {
		schema := api.GoalSchema{}
		toGoalSchema(&schema, g)
		schemas = append(schemas, schema)
	}
	return schemas, nil
}

func toGoalSchema(resp *api.GoalSchema, goal *models.Goal) {
	resp.GoalID = goal.ID
	resp.EmployeeID = goal.EmployeeID
	resp.ManagerID = goal.ManagerID
	resp.Title = goal.Title
	resp.Description = goal.Description
	resp.Status = string(goal.Status)
	resp.ApprovalDate = goal.ApprovalDate
	resp.CompletedDate = goal.CompletedDate
}
