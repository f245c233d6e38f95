package repo

import (
	"context"
	"database/sql"
	"errors"

	"growth-tracker/internal/lib"
	"growth-tracker/internal/models"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
)

type GoalRepository interface {
	Create(ctx context.Context, goal *models.Goal) (string, error)
	GetById(ctx context.Context, goalID string) (*models.Goal, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]*models.Goal, error)
	Update(ctx context.Context, goal *models.Goal) error
	ApproveIfPending(ctx context.Context, goalID, managerID string) (bool, error)
	SubmitIfDraft(ctx context.Context, goalID string) (bool, error)
}

type GoalRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewGoalRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *GoalRepo {
	return &GoalRepo{
		db:     db,
		getter: c,
	}
}

func (r *GoalRepo) Create(ctx context.Context, goal *models.Goal) (string, error) {
	const op = "goal_repo.Create"

	query := `
		INSERT INTO goals (id, employee_id, manager_id, title, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now(), now())
		RETURNING id;
	`

	var goalID string
	err := r.getter.
		DefaultTrOrDB(ctx, r.db).
		QueryRowContext(ctx, query,
			goal.ID, goal.EmployeeID, goal.ManagerID,
			goal.Title, goal.Description, goal.Status,
		).Scan(&goalID)
	if err != nil {
		return "", lib.Err(op, err)
	}

	return goalID, nil
}

func (r *GoalRepo) GetById(ctx context.Context, goalID string) (*models.Goal, error) {
	const op = "goal_repo.GetById"

	query := `
		SELECT id, employee_id, manager_id, title, description, status,
			approval_date, completed_date, created_at, updated_at
		FROM goals
		WHERE id = $1;
	`

	var goal models.Goal
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &goal, query, goalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &goal, nil
}

func (r *GoalRepo) GetByEmployee(ctx context.Context, employeeID string) ([]*models.Goal, error) {
	const op = "goal_repo.GetByEmployee"

	query := `
		SELECT id, employee_id, manager_id, title, description, status,
			approval_date, completed_date, created_at, updated_at
		FROM goals
		WHERE employee_id = $1
		ORDER BY created_at DESC;
	`

	var goals []*models.Goal
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &goals, query, employeeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.Goal{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return goals, nil
}

func (r *GoalRepo) Update(ctx context.Context, goal *models.Goal) error {
	const op = "goal_repo.Update"

	query := `
		UPDATE goals
		SET manager_id = $1, title = $2, description = $3, status = $4,
			approval_date = $5, completed_date = $6, updated_at = now()
		WHERE id = $7;
	`

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query,
		goal.ManagerID, goal.Title, goal.Description, goal.Status,
		goal.ApprovalDate, goal.CompletedDate, goal.ID,
	)
	if err != nil {
		return lib.Err(op, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return lib.Err(op, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// ApproveIfPending performs the Pending_Approval -> Approved transition as a
// single conditional update. Zero affected rows means the goal was no longer
// pending when the write landed; the caller maps that to ErrGoalNotPending.
func (r *GoalRepo) ApproveIfPending(ctx context.Context, goalID, managerID string) (bool, error) {
	const op = "goal_repo.ApproveIfPending"

	query := `
		UPDATE goals
		SET status = 'Approved', approval_date = now(), manager_id = $2, updated_at = now()
		WHERE id = $1 AND status = 'Pending_Approval';
	`

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, goalID, managerID)
	if err != nil {
		return false, lib.Err(op, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return false, lib.Err(op, err)
	}

	return rowsAffected > 0, nil
}

func (r *GoalRepo) SubmitIfDraft(ctx context.Context, goalID string) (bool, error) {
	const op = "goal_repo.SubmitIfDraft"

	query := `
		UPDATE goals
		SET status = 'Pending_Approval', updated_at = now()
		WHERE id = $1 AND status = 'Draft';
	`

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, goalID)
	if err != nil {
		return false, lib.Err(op, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return false, lib.Err(op, err)
	}

	return rowsAffected > 0, nil
}
