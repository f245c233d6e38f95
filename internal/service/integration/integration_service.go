package integration

import (
	"context"

	"growth-tracker/internal/http/api"
	"growth-tracker/internal/models"
	"growth-tracker/internal/service"

	"github.com/google/uuid"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=IntegrationProvider
type IntegrationProvider interface {
	Create(ctx context.Context, i *models.Integration) (string, error)
	GetByUser(ctx context.Context, userID string) ([]*models.Integration, error)
	Disconnect(ctx context.Context, integrationID string) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=UserGetter
type UserGetter interface {
	GetById(ctx context.Context, userID string) (*models.User, error)
}

type IntegrationService struct {
	trm          service.TransactionManager
	integrations IntegrationProvider
	users        UserGetter
}

func NewIntegrationService(
	trm service.TransactionManager,
	integrations IntegrationProvider,
	users UserGetter,
) *IntegrationService {
	return &IntegrationService{
		trm:          trm,
		integrations: integrations,
		users:        users,
	}
}

func (s *IntegrationService) Connect(ctx context.Context, userID, provider string, externalID *string) (*api.IntegrationSchema, error) {
	resp := &api.IntegrationSchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		if _, err := s.users.GetById(ctx, userID); err != nil {
			return err
		}

		i := &models.Integration{
			ID:         uuid.NewString(),
			UserID:     userID,
			Provider:   provider,
			ExternalID: externalID,
			Status:     models.IntegrationStatusConnected,
		}

		integrationID, err := s.integrations.Create(ctx, i)
		if err != nil {
			return err
		}

		resp.IntegrationID = integrationID
		resp.UserID = userID
		resp.Provider = provider
		resp.ExternalID = externalID
		resp.Status = models.IntegrationStatusConnected

		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (s *IntegrationService) GetByUser(ctx context.Context, userID string) ([]api.IntegrationSchema, error) {
	if _, err := s.users.GetById(ctx, userID); err != nil {
		return nil, err
	}

	integrations, err := s.integrations.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	schemas := make([]api.IntegrationSchema, 0, len(integrations))
	for _, i := range integrations {
		schemas = append(schemas, api.IntegrationSchema{
			IntegrationID: i.ID,
			UserID:        i.UserID,
			Provider:      i.Provider,
			ExternalID:    i.ExternalID,
			Status:        i.Status,
		})
	}
	return schemas, nil
}

func (s *IntegrationService) Disconnect(ctx context.Context, integrationID string) error {
	return s.integrations.Disconnect(ctx, integrationID)
}
