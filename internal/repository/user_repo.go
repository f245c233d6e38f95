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

type UserRepository interface {
	Create(ctx context.Context, user *models.User) (string, error)
	GetById(ctx context.Context, userID string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

type UserRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewUserRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *UserRepo {
	return &UserRepo{
		db:     db,
		getter: c,
	}
}

func (r *UserRepo) Create(ctx context.Context, user *models.User) (string, error) {
	const op = "user_repo.Create"

	query := `
		INSERT INTO users (id, email, name, role, manager_id, department, profile_image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
		RETURNING id;
	`

	var userID string
	err := r.getter.
		DefaultTrOrDB(ctx, r.db).
		QueryRowContext(ctx, query,
			user.ID, user.Email, user.Name, user.Role,
			user.ManagerID, user.Department, user.ProfileImage,
		).Scan(&userID)
	if err != nil {
		pgErr := &pq.Error{}
		if errors.As(err, &pgErr) {
			if pgErr.Code == uniqueViolationCode {
				return "", ErrUserExists
			}
		}
		return "", lib.Err(op, err)
	}

	return userID, nil
}

func (r *UserRepo) GetById(ctx context.Context, userID string) (*models.User, error) {
	const op = "user_repo.GetById"

	query := `
		SELECT id, email, name, role, manager_id, department, profile_image, created_at, updated_at
		FROM users
		WHERE id = $1;
	`

	var user models.User
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &user, nil
}

func (r *UserRepo) List(ctx context.Context) ([]*models.User, error) {
	const op = "user_repo.List"

	query := `
		SELECT id, email, name, role, manager_id, department, profile_image, created_at, updated_at
		FROM users
		ORDER BY name ASC;
	`

	var users []*models.User
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &users, query)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.User{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return users, nil
}

func (r *UserRepo) Update(ctx context.Context, user *models.User) error {
	const op = "user_repo.Update"

	query := `
		UPDATE users
		SET email = $1, name = $2, role = $3, manager_id = $4,
			department = $5, profile_image = $6, updated_at = now()
		WHERE id = $7;
	`

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query,
		user.Email, user.Name, user.Role, user.ManagerID,
		user.Department, user.ProfileImage, user.ID,
	)
	if err != nil {
		pgErr := &pq.Error{}
		if errors.As(err, &pgErr) {
			if pgErr.Code == uniqueViolationCode {
				return ErrUserExists
			}
		}
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
