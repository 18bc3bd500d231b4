package service

import (
	"github.com/dafibh/fortuna/fortuna-web/internal/domain"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var monthsPerYear = decimal.NewFromInt(12)

// RecurringSummary splits recurring expenses by status and totals the
// active ones as a monthly and a yearly commitment
type RecurringSummary struct {
	Active       []*domain.RecurringExpense `json:"active"`
	Inactive     []*domain.RecurringExpense `json:"inactive"`
	TotalMonthly domain.Amount              `json:"totalMonthly"`
	TotalYearly  domain.Amount              `json:"totalYearly"`
}

// Aggregate partitions expenses by IsActive, keeping input order within
// each partition, and sums the monthly equivalent of the active ones.
// Yearly values count as a twelfth, weekly values as 52/12 of the weekly
// amount. Records with an unknown frequency or a malformed value
// contribute nothing. Aggregate holds no state and is safe for concurrent use.
func Aggregate(expenses []*domain.RecurringExpense) RecurringSummary {
	summary := RecurringSummary{
		Active:   make([]*domain.RecurringExpense, 0, len(expenses)),
		Inactive: make([]*domain.RecurringExpense, 0),
	}
	monthlyTotal := decimal.Zero

	for _, rec := range expenses {
		if rec == nil {
			continue
		}
		if !rec.IsActive {
			summary.Inactive = append(summary.Inactive, rec)
			continue
		}
		summary.Active = append(summary.Active, rec)

		if rec.Value.Malformed {
			log.Warn().
				Str("recurring_expense_id", rec.ID.String()).
				Msg("Recurring expense has a malformed value, counted as zero")
			continue
		}

		monthly, known := rec.MonthlyEquivalent()
		if !known {
			log.Warn().
				Str("recurring_expense_id", rec.ID.String()).
				Str("frequency", string(rec.Frequency)).
				Msg("Recurring expense has an unknown frequency, counted as zero")
			continue
		}
		monthlyTotal = monthlyTotal.Add(monthly)
	}

	summary.TotalMonthly = domain.NewAmount(monthlyTotal)
	summary.TotalYearly = domain.NewAmount(monthlyTotal.Mul(monthsPerYear))
	return summary
}
