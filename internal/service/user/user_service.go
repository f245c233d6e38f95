package user

import (
	"context"

	"growth-tracker/internal/http/api"
	"growth-tracker/internal/models"
	repo "growth-tracker/internal/repository"
	"growth-tracker/internal/service"

	"github.com/google/uuid"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=UserProvider
type UserProvider interface {
	Create(ctx context.Context, user *models.User) (string, error)
	GetById(ctx context.Context, userID string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

type UserService struct {
	trm   service.TransactionManager
	users UserProvider
}

func NewUserService(trm service.TransactionManager, users UserProvider) *UserService {
	return &UserService{
		trm:   trm,
		users: users,
	}
}

type CreateInput struct {
	Email      string
	Name       string
	Role       string
	ManagerID  *string
	Department *string
}

type UpdateInput struct {
	Email        *string
	Name         *string
	Role         *string
	ManagerID    *string
	Department   *string
	ProfileImage *string
}

func (s *UserService) Create(ctx context.Context, input CreateInput) (*api.UserSchema, error) {
	resp := &api.UserSchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		role := models.Role(input.Role)
		if !role.IsValid() {
			return repo.ErrInvalidRole
		}

		if input.ManagerID != nil {
			if _, err := s.users.GetById(ctx, *input.ManagerID); err != nil {
				return err
			}
		}

		user := &models.User{
			ID:         uuid.NewString(),
			Email:      input.Email,
			Name:       input.Name,
			Role:       role,
			ManagerID:  input.ManagerID,
			Department: input.Department,
		}

		userID, err := s.users.Create(ctx, user)
		if err != nil {
			return err
		}

		user.ID = userID
		toUserSchema(resp, user)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (s *UserService) Get(ctx context.Context, userID string) (*api.UserSchema, error) {
	user, err := s.users.GetById(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &api.UserSchema{}
	toUserSchema(resp, user)
	return resp, nil
}

func (s *UserService) List(ctx context.Context) ([]api.UserSchema, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	schemas := make([]api.UserSchema, 0, len(users))
	for _, u := range users {
		schema := api.UserSchema{}
		toUserSchema(&schema, u)
		schemas = append(schemas, schema)
	}
	return schemas, nil
}

func (s *UserService) Update(ctx context.Context, userID string, input UpdateInput) (*api.UserSchema, error) {
	resp := &api.UserSchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		user, err := s.users.GetById(ctx, userID)
		if err != nil {
			return err
		}

		if input.Email != nil {
			user.Email = *input.Email
		}
		if input.Name != nil {
			user.Name = *input.Name
		}
		if input.Role != nil {
			role := models.Role(*input.Role)
			if !role.IsValid() {
				return repo.ErrInvalidRole
			}
			user.Role = role
		}
		if input.ManagerID != nil {
			// a user is never their own manager
			if *input.ManagerID == userID {
				return repo.ErrSelfManagement
			}
			if _, err := s.users.GetById(ctx, *input.ManagerID); err != nil {
				return err
			}
			user.ManagerID = input.ManagerID
		}
		if input.Department != nil {
			user.Department = input.Department
		}
		if input.ProfileImage != nil {
			user.ProfileImage = input.ProfileImage
		}

		if err := s.users.Update(ctx, user); err != nil {
			return err
		}

		toUserSchema(resp, user)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func toUserSchema(resp *api.UserSchema, user *models.User) {
	resp.UserID = user.ID
	resp.Email = user.Email
	resp.Name = user.Name
	resp.Role = string(user.Role)
	resp.ManagerID = user.ManagerID
	resp.Department = user.Department
	resp.ProfileImage = user.ProfileImage
}
