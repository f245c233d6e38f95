package achievement

import (
	"context"

	"growth-tracker/internal/http/api"
	"growth-tracker/internal/models"
	"growth-tracker/internal/service"

	"github.com/google/uuid"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=AchievementProvider
type AchievementProvider interface {
	Create(ctx context.Context, a *models.Achievement) (string, error)
	GetByUser(ctx context.Context, userID string) ([]*models.Achievement, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=UserGetter
type UserGetter interface {
	GetById(ctx context.Context, userID string) (*models.User, error)
}

type AchievementService struct {
	trm          service.TransactionManager
	achievements AchievementProvider
	users        UserGetter
}

func NewAchievementService(
	trm service.TransactionManager,
	achievements AchievementProvider,
	users UserGetter,
) *AchievementService {
	return &AchievementService{
		trm:          trm,
		achievements: achievements,
		users:        users,
	}
}

func (s *AchievementService) Create(ctx context.Context, userID, title string, description, badge *string) (*api.AchievementSchema, error) {
	resp := &api.AchievementSchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		if _, err := s.users.GetById(ctx, userID); err != nil {
			return err
		}

		a := &models.Achievement{
			ID:          uuid.NewString(),
			UserID:      userID,
			Title:       title,
			Description: description,
			Badge:       badge,
		}

		achievementID, err := s.achievements.Create(ctx, a)
		if err != nil {
			return err
		}

		resp.AchievementID = achievementID
		resp.UserID = userID
		resp.Title = title
		resp.Description = description
		resp.Badge = badge

		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (s *AchievementService) GetByUser(ctx context.Context, userID string) ([]api.AchievementSchema, error) {
	if _, err := s.users.GetById(ctx, userID); err != nil {
		return nil, err
	}

	achievements, err := s.achievements.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	schemas := make([]api.AchievementSchema, 0, len(achievements))
	for _, a := range achievements {
		schemas = append(schemas, api.AchievementSchema{
			AchievementID: a.ID,
			UserID:        a.UserID,
			Title:         a.Title,
			Description:   a.Description,
			Badge:         a.Badge,
			AwardedAt:     a.AwardedAt,
		})
	}
	return schemas, nil
}
