package repo

import (
	"context"
	"database/sql"
	"errors"

	"growth-tracker/internal/lib"
	"growth-tracker/internal/models"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type TeamMembershipRepository interface {
	Create(ctx context.Context, m *models.TeamMembership) (string, error)
	Get(ctx context.Context, managerID, employeeID string) (*models.TeamMembership, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]*models.TeamMembership, error)
	GetByManager(ctx context.Context, managerID string) ([]*models.TeamMembership, error)
}

type TeamMembershipRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewTeamMembershipRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *TeamMembershipRepo {
	return &TeamMembershipRepo{
		db:     db,
		getter: c,
	}
}

func (r *TeamMembershipRepo) Create(ctx context.Context, m *models.TeamMembership) (string, error) {
	const op = "membership_repo.Create"

	query := `
		INSERT INTO team_memberships (id, manager_id, employee_id, created_at)
		VALUES ($1, $2, $3, now())
		RETURNING id;
	`

	var membershipID string
	err := r.getter.
		DefaultTrOrDB(ctx, r.db).
		QueryRowContext(ctx, query, m.ID, m.ManagerID, m.EmployeeID).Scan(&membershipID)
	if err != nil {
		pgErr := &pq.Error{}
		if errors.As(err, &pgErr) {
			if pgErr.Code == uniqueViolationCode {
				return "", ErrMembershipExists
			}
		}
		return "", lib.Err(op, err)
	}

	return membershipID, nil
}

func (r *TeamMembershipRepo) Get(ctx context.Context, managerID, employeeID string) (*models.TeamMembership, error) {
	const op = "membership_repo.Get"

	query := `
		SELECT id, manager_id, employee_id, created_at
		FROM team_memberships
		WHERE manager_id = $1 AND employee_id = $2;
	`

	var m models.TeamMembership
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &m, query, managerID, employeeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &m, nil
}

// GetByEmployee returns the memberships where the given user is the employee,
// i.e. the set of managers above that node. The cycle walk expands nodes
// through this query.
func (r *TeamMembershipRepo) GetByEmployee(ctx context.Context, employeeID string) ([]*models.TeamMembership, error) {
	const op = "membership_repo.GetByEmployee"

	query := `
		SELECT id, manager_id, employee_id, created_at
		FROM team_memberships
		WHERE employee_id = $1;
	`

	var memberships []*models.TeamMembership
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &memberships, query, employeeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.TeamMembership{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return memberships, nil
}

func (r *TeamMembershipRepo) GetByManager(ctx context.Context, managerID string) ([]*models.TeamMembership, error) {
	const op = "membership_repo.GetByManager"

	query := `
		SELECT id, manager_id, employee_id, created_at
		FROM team_memberships
		WHERE manager_id = $1;
	`

	var memberships []*models.TeamMembership
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &memberships, query, managerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.TeamMembership{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return memberships, nil
}
