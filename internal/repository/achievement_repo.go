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

type AchievementRepository interface {
	Create(ctx context.Context, a *models.Achievement) (string, error)
	GetByUser(ctx context.Context, userID string) ([]*models.Achievement, error)
}

type AchievementRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewAchievementRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *AchievementRepo {
	return &AchievementRepo{
		db:     db,
		getter: c,
	}
}

func (r *AchievementRepo) Create(ctx context.Context, a *models.Achievement) (string, error) {
	const op = "achievement_repo.Create"

	query := `
		INSERT INTO achievements (id, user_id, title, description, badge, awarded_at)
		VALUES ($1, $2, $3, $4, $5, now())
		RETURNING id;
	`

	var achievementID string
	err := r.getter.
		DefaultTrOrDB(ctx, r.db).
		QueryRowContext(ctx, query, a.ID, a.UserID, a.Title, a.Description, a.Badge).
		Scan(&achievementID)
	if err != nil {
		return "", lib.Err(op, err)
	}

	return achievementID, nil
}

func (r *AchievementRepo) GetByUser(ctx context.Context, userID string) ([]*models.Achievement, error) {
	const op = "achievement_repo.GetByUser"

	query := `
		SELECT id, user_id, title, description, badge, awarded_at
		FROM achievements
		WHERE user_id = $1
		ORDER BY awarded_at DESC;
	`

	var achievements []*models.Achievement
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &achievements, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.Achievement{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return achievements, nil
}
