package integration_test

import (
	"context"
	"testing"

	"growth-tracker/internal/models"
	repo "growth-tracker/internal/repository"
	"growth-tracker/internal/service/integration"
	"growth-tracker/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestIntegrationService_Connect_Success(t *testing.T) {
	ctx := context.Background()
	userID := "user-1"
	externalID := "acct-42"

	integrationProv := mocks.NewIntegrationProvider(t)
	userGetter := mocks.NewUserGetter(t)
	trm := &mocks.MockManager{}
	trm.Test(t)
	t.Cleanup(func() { trm.AssertExpectations(t) })

	userGetter.On("GetById", ctx, userID).
		Return(&models.User{ID: userID, Role: models.RoleEmployee}, nil).Once()
	integrationProv.On("Create", ctx, mock.AnythingOfType("*models.Integration")).
		Return("int-1", nil).Once()

	trm.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.NoError(t, fn(ctx))
		}).Return(nil).Once()

	svc := integration.NewIntegrationService(trm, integrationProv, userGetter)
	resp, err := svc.Connect(ctx, userID, "linkedin", &externalID)

	assert.NoError(t, err)
	assert.Equal(t, "int-1", resp.IntegrationID)
	assert.Equal(t, "linkedin", resp.Provider)
	assert.Equal(t, models.IntegrationStatusConnected, resp.Status)
}

func TestIntegrationService_Connect_Duplicate(t *testing.T) {
	ctx := context.Background()
	userID := "user-1"

	integrationProv := mocks.NewIntegrationProvider(t)
	userGetter := mocks.NewUserGetter(t)
	trm := &mocks.MockManager{}
	trm.Test(t)
	t.Cleanup(func() { trm.AssertExpectations(t) })

	userGetter.On("GetById", ctx, userID).
		Return(&models.User{ID: userID, Role: models.RoleEmployee}, nil).Once()
	integrationProv.On("Create", ctx, mock.AnythingOfType("*models.Integration")).
		Return("", repo.ErrIntegrationExists).Once()

	trm.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.ErrorIs(t, fn(ctx), repo.ErrIntegrationExists)
		}).Return(repo.ErrIntegrationExists).Once()

	svc := integration.NewIntegrationService(trm, integrationProv, userGetter)
	resp, err := svc.Connect(ctx, userID, "linkedin", nil)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, repo.ErrIntegrationExists)
}

func TestIntegrationService_GetByUser_Success(t *testing.T) {
	ctx := context.Background()
	userID := "user-1"

	integrationProv := mocks.NewIntegrationProvider(t)
	userGetter := mocks.NewUserGetter(t)
	trm := &mocks.MockManager{}

	userGetter.On("GetById", ctx, userID).
		Return(&models.User{ID: userID, Role: models.RoleEmployee}, nil).Once()
	integrationProv.On("GetByUser", ctx, userID).
		Return([]*models.Integration{
			{ID: "int-1", UserID: userID, Provider: "linkedin", Status: models.IntegrationStatusConnected},
		}, nil).Once()

	svc := integration.NewIntegrationService(trm, integrationProv, userGetter)
	resp, err := svc.GetByUser(ctx, userID)

	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, "linkedin", resp[0].Provider)
}

func TestIntegrationService_Disconnect_NotFound(t *testing.T) {
	ctx := context.Background()

	integrationProv := mocks.NewIntegrationProvider(t)
	userGetter := mocks.NewUserGetter(t)
	trm := &mocks.MockManager{}

	integrationProv.On("Disconnect", ctx, "ghost").Return(repo.ErrNotFound).Once()

	svc := integration.NewIntegrationService(trm, integrationProv, userGetter)
	err := svc.Disconnect(ctx, "ghost")

	assert.ErrorIs(t, err, repo.ErrNotFound)
}
