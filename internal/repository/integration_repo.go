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

type IntegrationRepository interface {
	Create(ctx context.Context, i *models.Integration) (string, error)
	GetByUser(ctx context.Context, userID string) ([]*models.Integration, error)
	Disconnect(ctx context.Context, integrationID string) error
}

type IntegrationRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewIntegrationRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *IntegrationRepo {
	return &IntegrationRepo{
		db:     db,
		getter: c,
	}
}

func (r *IntegrationRepo) Create(ctx context.Context, i *models.Integration) (string, error) {
	const op = "integration_repo.Create"

	query := `
		INSERT INTO integrations (id, user_id, provider, external_id, status, connected_at)
		VALUES ($1, $2, $3, $4, $5, now())
		RETURNING id;
	`

	var integrationID string
	err := r.getter.
		DefaultTrOrDB(ctx, r.db).
		QueryRowContext(ctx, query, i.ID, i.UserID, i.Provider, i.ExternalID, i.Status).
		Scan(&integrationID)
	if err != nil {
		pgErr := &pq.Error{}
		if errors.As(err, &pgErr) {
			if pgErr.Code == uniqueViolationCode {
				return "", ErrIntegrationExists
			}
		}
		return "", lib.Err(op, err)
	}

	return integrationID, nil
}

func (r *IntegrationRepo) GetByUser(ctx context.Context, userID string) ([]*models.Integration, error) {
	const op = "integration_repo.GetByUser"

	query := `
		SELECT id, user_id, provider, external_id, status, connected_at
		FROM integrations
		WHERE user_id = $1
		ORDER BY connected_at DESC;
	`

	var integrations []*models.Integration
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &integrations, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.Integration{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return integrations, nil
}

func (r *IntegrationRepo) Disconnect(ctx context.Context, integrationID string) error {
	const op = "integration_repo.Disconnect"

	query := `UPDATE integrations SET status = 'disconnected' WHERE id = $1`

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, integrationID)
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
