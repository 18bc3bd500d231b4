package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type TransactionKind string

const (
	TransactionKindIncome  TransactionKind = "income"
	TransactionKindExpense TransactionKind = "expense"
)

// DashboardSummary holds the headline figures of a period
type DashboardSummary struct {
	TotalIncome   Amount  `json:"totalIncome"`
	TotalExpenses Amount  `json:"totalExpenses"`
	Balance       Amount  `json:"balance"`
	SavingsRate   *Amount `json:"savingsRate,omitempty"`
}

// RecentTransaction is an entry of the dashboard activity feed
type RecentTransaction struct {
	ID          ID              `json:"id"`
	Description string          `json:"description"`
	Value       Amount          `json:"value"`
	Type        TransactionKind `json:"type"`
	Category    string          `json:"category"`
	Date        Date            `json:"date"`
}

// CategorySpending is the spending of one category within a period
type CategorySpending struct {
	Category   string  `json:"category"`
	Amount     Amount  `json:"amount"`
	Percentage *Amount `json:"percentage,omitempty"`
}

// MonthlyTrend is the income and expense total of one month
type MonthlyTrend struct {
	Month    string `json:"month"`
	Income   Amount `json:"income"`
	Expenses Amount `json:"expenses"`
}

// DashboardData is assembled by the API and treated as a read-only value
type DashboardData struct {
	Summary            DashboardSummary    `json:"summary"`
	RecentTransactions []RecentTransaction `json:"recentTransactions"`
	CategorySpending   []CategorySpending  `json:"categorySpending"`
	MonthlyTrend       []MonthlyTrend      `json:"monthlyTrend"`
}

// SavingsRate is (income - expenses) / income * 100, 0 without income
func SavingsRate(income, expenses decimal.Decimal) decimal.Decimal {
	if !income.IsPositive() {
		return decimal.Zero
	}
	return income.Sub(expenses).Div(income).Mul(hundred)
}

// Percentage returns part / total * 100, 0 when total is not positive
func Percentage(part, total decimal.Decimal) decimal.Decimal {
	if !total.IsPositive() {
		return decimal.Zero
	}
	return part.Div(total).Mul(hundred)
}

// DashboardRepository is implemented by the remote API client
type DashboardRepository interface {
	Get(ctx context.Context, token string, month string) (*DashboardData, error)
}
