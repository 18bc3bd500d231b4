package service

import (
	"sort"

	"github.com/dafibh/fortuna/fortuna-web/internal/domain"
	"github.com/shopspring/decimal"
)

// percentPlaces is the precision of every derived percentage
const percentPlaces = 2

// SpendingByCategory totals expenses per category and attaches each
// category's share of the grand total. Results are sorted by amount,
// largest first, ties broken by category name. Malformed values count as zero.
func SpendingByCategory(expenses []*domain.Expense) []domain.CategorySpending {
	totals := make(map[string]decimal.Decimal)
	grand := decimal.Zero

	for _, e := range expenses {
		if e == nil || e.Value.Malformed {
			continue
		}
		totals[e.Category] = totals[e.Category].Add(e.Value.Decimal)
		grand = grand.Add(e.Value.Decimal)
	}

	result := make([]domain.CategorySpending, 0, len(totals))
	for category, total := range totals {
		result = append(result, domain.CategorySpending{
			Category: category,
			Amount:   domain.NewAmount(total),
		})
	}
	sortSpending(result)
	return WithPercentages(result, grand)
}

// WithPercentages returns a copy of spending where every entry carries its
// share of total. A non-positive total yields zero percentages.
func WithPercentages(spending []domain.CategorySpending, total decimal.Decimal) []domain.CategorySpending {
	out := make([]domain.CategorySpending, len(spending))
	for i, s := range spending {
		pct := domain.NewAmount(domain.Percentage(s.Amount.Decimal, total).Round(percentPlaces))
		s.Percentage = &pct
		out[i] = s
	}
	return out
}

// SumSpending adds up the amounts of spending
func SumSpending(spending []domain.CategorySpending) decimal.Decimal {
	total := decimal.Zero
	for _, s := range spending {
		total = total.Add(s.Amount.Decimal)
	}
	return total
}

func sortSpending(spending []domain.CategorySpending) {
	sort.SliceStable(spending, func(i, j int) bool {
		a, b := spending[i].Amount.Decimal, spending[j].Amount.Decimal
		if !a.Equal(b) {
			return a.GreaterThan(b)
		}
		return spending[i].Category < spending[j].Category
	})
}
