package stats_test

import (
	"context"
	"errors"
	"testing"

	"growth-tracker/internal/models"
	"growth-tracker/internal/service/mocks"
	"growth-tracker/internal/service/stats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestStatsService_GetSummary_Success(t *testing.T) {
	ctx := context.Background()

	statsProv := mocks.NewStatsProvider(t)
	trm := &mocks.MockManager{}
	trm.Test(t)
	t.Cleanup(func() { trm.AssertExpectations(t) })

	statsProv.On("GetGoalStatusCounts", ctx).Return([]*models.GoalStatusCount{
		{Status: "Draft", Count: 3},
		{Status: "Approved", Count: 5},
	}, nil).Once()
	statsProv.On("GetRoleCounts", ctx).Return([]*models.RoleCount{
		{Role: "Employee", Count: 10},
		{Role: "Manager", Count: 2},
	}, nil).Once()
	statsProv.On("GetTotals", ctx).Return(&models.Totals{
		Achievements: 7,
		Memberships:  4,
	}, nil).Once()

	trm.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.NoError(t, fn(ctx))
		}).Return(nil).Once()

	svc := stats.NewStatsService(trm, statsProv)
	resp, err := svc.GetSummary(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 3, resp.GoalsByStatus["Draft"])
	assert.Equal(t, 5, resp.GoalsByStatus["Approved"])
	assert.Equal(t, 10, resp.UsersByRole["Employee"])
	assert.Equal(t, 7, resp.TotalAchievements)
	assert.Equal(t, 4, resp.TotalMemberships)
}

func TestStatsService_GetSummary_ProviderError(t *testing.T) {
	ctx := context.Background()

	statsProv := mocks.NewStatsProvider(t)
	trm := &mocks.MockManager{}
	trm.Test(t)
	t.Cleanup(func() { trm.AssertExpectations(t) })

	queryErr := errors.New("query failed")
	statsProv.On("GetGoalStatusCounts", ctx).
		Return(([]*models.GoalStatusCount)(nil), queryErr).Once()

	trm.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.ErrorIs(t, fn(ctx), queryErr)
		}).Return(queryErr).Once()

	svc := stats.NewStatsService(trm, statsProv)
	resp, err := svc.GetSummary(ctx)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, queryErr)
	statsProv.AssertNotCalled(t, "GetTotals", mock.Anything)
}
