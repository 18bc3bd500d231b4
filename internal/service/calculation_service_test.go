package service

import (
	"testing"

	"github.com/dafibh/fortuna/fortuna-web/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpendingByCategory_SortedWithPercentages(t *testing.T) {
	expenses := []*domain.Expense{
		{ID: "1", Category: "food", Value: domain.MustAmount("100")},
		{ID: "2", Category: "transport", Value: domain.MustAmount("50")},
		{ID: "3", Category: "fun", Value: domain.MustAmount("50")},
		{ID: "4", Category: "food", Value: domain.MustAmount("100")},
		{ID: "5", Category: "health", Value: domain.MustAmount("33.33")},
	}

	spending := SpendingByCategory(expenses)

	require.Len(t, spending, 4)
	assert.Equal(t, []string{"food", "fun", "transport", "health"}, categories(spending))

	sum := decimal.Zero
	for i, s := range spending {
		require.NotNil(t, s.Percentage)
		sum = sum.Add(s.Percentage.Decimal)
		if i > 0 {
			assert.True(t, spending[i-1].Amount.GreaterThanOrEqual(s.Amount.Decimal))
		}
	}
	diff := sum.Sub(decimal.NewFromInt(100)).Abs()
	assert.True(t, diff.LessThanOrEqual(decimal.RequireFromString("0.05")), "percentages sum to %s", sum)
}

func TestSpendingByCategory_Empty(t *testing.T) {
	spending := SpendingByCategory(nil)

	assert.NotNil(t, spending)
	assert.Empty(t, spending)
}

func TestSpendingByCategory_SkipsMalformed(t *testing.T) {
	spending := SpendingByCategory([]*domain.Expense{
		{ID: "1", Category: "food", Value: domain.AmountFromString("oops")},
		{ID: "2", Category: "food", Value: domain.MustAmount("20")},
		nil,
	})

	require.Len(t, spending, 1)
	assert.Equal(t, "20", spending[0].Amount.String())
	assert.Equal(t, "100", spending[0].Percentage.String())
}

func TestWithPercentages_ZeroTotal(t *testing.T) {
	out := WithPercentages([]domain.CategorySpending{{Category: "a", Amount: domain.MustAmount("0")}}, decimal.Zero)

	require.Len(t, out, 1)
	assert.True(t, out[0].Percentage.IsZero())
}

func categories(spending []domain.CategorySpending) []string {
	out := make([]string, len(spending))
	for i, s := range spending {
		out[i] = s.Category
	}
	return out
}
