package membership

import (
	"context"
	"errors"

	"growth-tracker/internal/http/api"
	"growth-tracker/internal/models"
	repo "growth-tracker/internal/repository"
	"growth-tracker/internal/service"

	"github.com/google/uuid"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=MembershipProvider
type MembershipProvider interface {
	Create(ctx context.Context, m *models.TeamMembership) (string, error)
	Get(ctx context.Context, managerID, employeeID string) (*models.TeamMembership, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]*models.TeamMembership, error)
	GetByManager(ctx context.Context, managerID string) ([]*models.TeamMembership, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=UserGetter
type UserGetter interface {
	GetById(ctx context.Context, userID string) (*models.User, error)
}

type TeamMembershipService struct {
	trm         service.TransactionManager
	memberships MembershipProvider
	users       UserGetter
}

func NewTeamMembershipService(
	trm service.TransactionManager,
	memberships MembershipProvider,
	users UserGetter,
) *TeamMembershipService {
	return &TeamMembershipService{
		trm:         trm,
		memberships: memberships,
		users:       users,
	}
}

// Create inserts a manager->employee edge after the full precondition chain:
// both users exist, no self-management, manager role allows managing,
// no duplicate edge, and the edge does not close a reporting cycle.
func (s *TeamMembershipService) Create(ctx context.Context, managerID, employeeID string) (*api.MembershipSchema, error) {
	resp := &api.MembershipSchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		manager, err := s.users.GetById(ctx, managerID)
		if err != nil {
			return err
		}

		if _, err := s.users.GetById(ctx, employeeID); err != nil {
			return err
		}

		if managerID == employeeID {
			return repo.ErrSelfManagement
		}

		if !manager.Role.CanManage() {
			return repo.ErrInsufficientRole
		}

		_, err = s.memberships.Get(ctx, managerID, employeeID)
		if err == nil {
			return repo.ErrMembershipExists
		}
		if !errors.Is(err, repo.ErrNotFound) {
			return err
		}

		cycle, err := s.wouldCreateCycle(ctx, managerID, employeeID)
		if err != nil {
			return err
		}
		if cycle {
			return repo.ErrCircularReporting
		}

		m := &models.TeamMembership{
			ID:         uuid.NewString(),
			ManagerID:  managerID,
			EmployeeID: employeeID,
		}

		membershipID, err := s.memberships.Create(ctx, m)
		if err != nil {
			return err
		}

		resp.MembershipID = membershipID
		resp.ManagerID = managerID
		resp.EmployeeID = employeeID

		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// wouldCreateCycle reports whether the proposed manager->employee edge would
// make someone transitively their own manager. It walks upward from the
// proposed manager through existing membership edges ("who manages this
// node"); reaching the proposed employee closes the loop. The visited set is
// the sole termination guard: a revisit only stops that branch, it is not a
// cycle signal.
func (s *TeamMembershipService) wouldCreateCycle(ctx context.Context, managerID, employeeID string) (bool, error) {
	visited := make(map[string]struct{})
	stack := []string{managerID}

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, seen := visited[node]; seen {
			continue
		}
		visited[node] = struct{}{}

		edges, err := s.memberships.GetByEmployee(ctx, node)
		if err != nil {
			return false, err
		}

		for _, e := range edges {
			if e.ManagerID == employeeID {
				return true, nil
			}
			if _, seen := visited[e.ManagerID]; !seen {
				stack = append(stack, e.ManagerID)
			}
		}
	}

	return false, nil
}

func (s *TeamMembershipService) GetByManager(ctx context.Context, managerID string) ([]api.MembershipSchema, error) {
	if _, err := s.users.GetById(ctx, managerID); err != nil {
		return nil, err
	}

	memberships, err := s.memberships.GetByManager(ctx, managerID)
	if err != nil {
		return nil, err
	}

	return toSchemas(memberships), nil
}

func (s *TeamMembershipService) GetByEmployee(ctx context.Context, employeeID string) ([]api.MembershipSchema, error) {
	if _, err := s.users.GetById(ctx, employeeID); err != nil {
		return nil, err
	}

	memberships, err := s.memberships.GetByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	return toSchemas(memberships), nil
}

func toSchemas(memberships []*models.TeamMembership) []api.MembershipSchema {
	schemas := make([]api.MembershipSchema, 0, len(memberships))
	for _, m := range memberships {
		schemas = append(schemas, api.MembershipSchema{
			MembershipID: m.ID,
			ManagerID:    m.ManagerID,
			EmployeeID:   m.EmployeeID,
		})
	}
	return schemas
}
