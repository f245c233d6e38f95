package repo

import (
	"context"
	"database/sql"
	"errors"

	"growth-tracker/internal/lib"
	"growth-tracker/internal/models"

	"github.com/jmoiron/sqlx"
)

type StatisticsRepo struct {
	db *sqlx.DB
}

func NewStatisticsRepo(db *sqlx.DB) *StatisticsRepo {
	return &StatisticsRepo{
		db: db,
	}
}

func (r *StatisticsRepo) GetGoalStatusCounts(ctx context.Context) ([]*models.GoalStatusCount, error) {
	const op = "stats_repo.GetGoalStatusCounts"

	query := `
		SELECT status, COUNT(*) as count
		FROM goals
		GROUP BY status
		ORDER BY status ASC;
	`

	var counts []*models.GoalStatusCount
	err := r.db.SelectContext(ctx, &counts, query)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.GoalStatusCount{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return counts, nil
}

func (r *StatisticsRepo) GetRoleCounts(ctx context.Context) ([]*models.RoleCount, error) {
	const op = "stats_repo.GetRoleCounts"

	query := `
		SELECT role, COUNT(*) as count
		FROM users
		GROUP BY role
		ORDER BY role ASC;
	`

	var counts []*models.RoleCount
	err := r.db.SelectContext(ctx, &counts, query)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.RoleCount{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return counts, nil
}

func (r *StatisticsRepo) GetTotals(ctx context.Context) (*models.Totals, error) {
	const op = "stats_repo.GetTotals"

	query := `
		SELECT
		(SELECT COUNT(*) FROM achievements) as achievement_count,
		(SELECT COUNT(*) FROM team_memberships) as membership_count
	`

	var totals models.Totals
	err := r.db.GetContext(ctx, &totals, query)
	if err != nil {
		return nil, lib.Err(op, err)
	}
	return &totals, nil
}
