package service

import (
	"context"
	"sort"

	"github.com/dafibh/fortuna/fortuna-web/internal/domain"
	"github.com/rs/zerolog/log"
)

// RecurringOverview is the recurring commitment shown on the dashboard
type RecurringOverview struct {
	ActiveCount   int           `json:"activeCount"`
	InactiveCount int           `json:"inactiveCount"`
	TotalMonthly  domain.Amount `json:"totalMonthly"`
	TotalYearly   domain.Amount `json:"totalYearly"`
}

// DashboardView is the dashboard aggregate with derived figures filled in
type DashboardView struct {
	domain.DashboardData
	Recurring *RecurringOverview `json:"recurring,omitempty"`
}

// DashboardService handles dashboard-related business logic
type DashboardService struct {
	dashboardRepo domain.DashboardRepository
	recurringRepo domain.RecurringExpenseRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	dashboardRepo domain.DashboardRepository,
	recurringRepo domain.RecurringExpenseRepository,
) *DashboardService {
	return &DashboardService{
		dashboardRepo: dashboardRepo,
		recurringRepo: recurringRepo,
	}
}

// GetDashboard returns the dashboard for month (YYYY-MM, empty for the
// current month). A failing recurring lookup leaves Recurring nil rather
// than failing the whole dashboard.
func (s *DashboardService) GetDashboard(ctx context.Context, token string, month string) (*DashboardView, error) {
	data, err := s.dashboardRepo.Get(ctx, token, month)
	if err != nil {
		return nil, err
	}

	view := &DashboardView{DashboardData: DeriveDashboard(*data)}

	recs, err := s.recurringRepo.List(ctx, token)
	if err != nil {
		if domainErrIsAuth(err) {
			return nil, err
		}
		log.Warn().Err(err).Msg("Failed to load recurring expenses for dashboard")
		return view, nil
	}

	summary := Aggregate(recs)
	view.Recurring = &RecurringOverview{
		ActiveCount:   len(summary.Active),
		InactiveCount: len(summary.Inactive),
		TotalMonthly:  summary.TotalMonthly,
		TotalYearly:   summary.TotalYearly,
	}
	return view, nil
}

// DeriveDashboard recomputes the figures that follow from the raw totals:
// balance, savings rate, category percentages and ordering. The input is
// not modified.
func DeriveDashboard(data domain.DashboardData) domain.DashboardData {
	income := data.Summary.TotalIncome.Decimal
	expenses := data.Summary.TotalExpenses.Decimal

	data.Summary.Balance = domain.NewAmount(income.Sub(expenses))
	rate := domain.NewAmount(domain.SavingsRate(income, expenses).Round(percentPlaces))
	data.Summary.SavingsRate = &rate

	spending := make([]domain.CategorySpending, len(data.CategorySpending))
	copy(spending, data.CategorySpending)
	sortSpending(spending)
	data.CategorySpending = WithPercentages(spending, SumSpending(spending))

	trend := make([]domain.MonthlyTrend, len(data.MonthlyTrend))
	copy(trend, data.MonthlyTrend)
	sort.SliceStable(trend, func(i, j int) bool { return trend[i].Month < trend[j].Month })
	data.MonthlyTrend = trend

	if data.RecentTransactions == nil {
		data.RecentTransactions = []domain.RecentTransaction{}
	}
	return data
}
