package services

import (
	"context"

	"bloodlink/internal/domain"
)

type UserCounter interface {
	Count(ctx context.Context) (int64, error)
}

type RequestCounter interface {
	Count(ctx context.Context) (int64, error)
}

type FundTotaler interface {
	TotalAmount(ctx context.Context) (float64, error)
}

// PanelService assembles the aggregate snapshot for the admin/volunteer panel.
type PanelService struct {
	Users    UserCounter
	Requests RequestCounter
	Funds    FundTotaler
}

func NewPanelService(users UserCounter, requests RequestCounter, funds FundTotaler) *PanelService {
	return &PanelService{Users: users, Requests: requests, Funds: funds}
}

func (s *PanelService) Stats(ctx context.Context) (domain.PanelStats, error) {
	users, err := s.Users.Count(ctx)
	if err != nil {
		return domain.PanelStats{}, err
	}
	reqs, err := s.Requests.Count(ctx)
	if err != nil {
		return domain.PanelStats{}, err
	}
	total, err := s.Funds.TotalAmount(ctx)
	if err != nil {
		return domain.PanelStats{}, err
	}
	return domain.PanelStats{TotalUsers: users, TotalRequests: reqs, TotalFunds: total}, nil
}
