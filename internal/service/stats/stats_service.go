package stats

import (
	"context"

	"growth-tracker/internal/http/api"
	"growth-tracker/internal/models"
	"growth-tracker/internal/service"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=StatsProvider
type StatsProvider interface {
	GetGoalStatusCounts(ctx context.Context) ([]*models.GoalStatusCount, error)
	GetRoleCounts(ctx context.Context) ([]*models.RoleCount, error)
	GetTotals(ctx context.Context) (*models.Totals, error)
}

type StatsService struct {
	statsProvider StatsProvider
	trm           service.TransactionManager
}

func NewStatsService(trm service.TransactionManager, statsProvider StatsProvider) *StatsService {
	return &StatsService{
		trm:           trm,
		statsProvider: statsProvider,
	}
}

func (s *StatsService) GetSummary(ctx context.Context) (*api.AnalyticsResponse, error) {
	resp := &api.AnalyticsResponse{
		GoalsByStatus: map[string]int{},
		UsersByRole:   map[string]int{},
	}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		goalCounts, err := s.statsProvider.GetGoalStatusCounts(ctx)
		if err != nil {
			return err
		}
		roleCounts, err := s.statsProvider.GetRoleCounts(ctx)
		if err != nil {
			return err
		}
		totals, err := s.statsProvider.GetTotals(ctx)
		if err != nil {
			return err
		}

		for _, g := range goalCounts {
			resp.GoalsByStatus[g.Status] = g.Count
		}
		for _, r := range roleCounts {
			resp.UsersByRole[r.Role] = r.Count
		}
		resp.TotalAchievements = totals.Achievements
		resp.TotalMemberships = totals.Memberships

		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}
