package main

import (
	"fmt"
	"time"

	"github.com/dafibh/fortuna/fortuna-web/internal/domain"
	"github.com/dafibh/fortuna/fortuna-web/internal/service"
	"github.com/dafibh/fortuna/fortuna-web/internal/util"
	"github.com/spf13/cobra"
)

func recurringCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recurring",
		Short: "Recurring expenses",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "summary",
		Short: "Active and inactive recurring expenses with monthly and yearly totals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			var summary *service.RecurringSummary
			err = a.withToken(cmd.Context(), func(token string) error {
				var fetchErr error
				summary, fetchErr = a.recurring.GetSummary(cmd.Context(), token)
				return fetchErr
			})
			if err != nil {
				return err
			}

			return renderRecurringSummary(cmd.OutOrStdout(), summary)
		},
	})

	return cmd
}

func expensesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expenses",
		Short: "Expenses",
	}

	byCategory := &cobra.Command{
		Use:   "by-category",
		Short: "Spending per category for a month, largest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			month, err := monthFromFlags(cmd, time.Now())
			if err != nil {
				return err
			}

			a, err := newApp()
			if err != nil {
				return err
			}

			var spending []domain.CategorySpending
			err = a.withToken(cmd.Context(), func(token string) error {
				var fetchErr error
				spending, fetchErr = a.expenses.ExpensesByCategory(cmd.Context(), token, domain.ExpenseFilters{Month: month})
				return fetchErr
			})
			if err != nil {
				return err
			}

			return renderCategorySpending(cmd.OutOrStdout(), month, spending)
		},
	}
	addMonthFlags(byCategory)
	cmd.AddCommand(byCategory)

	return cmd
}

func dashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Monthly summary, spending per category and recurring commitment",
		RunE: func(cmd *cobra.Command, _ []string) error {
			month, err := monthFromFlags(cmd, time.Now())
			if err != nil {
				return err
			}

			a, err := newApp()
			if err != nil {
				return err
			}

			var view *service.DashboardView
			err = a.withToken(cmd.Context(), func(token string) error {
				var fetchErr error
				view, fetchErr = a.dashboard.GetDashboard(cmd.Context(), token, month)
				return fetchErr
			})
			if err != nil {
				return err
			}

			return renderDashboard(cmd.OutOrStdout(), month, view)
		},
	}
	addMonthFlags(cmd)

	return cmd
}

func addMonthFlags(cmd *cobra.Command) {
	cmd.Flags().String("month", "", "month as YYYY-MM (default: current month)")
	cmd.Flags().Bool("previous", false, "use the month before --month")
}

func monthFromFlags(cmd *cobra.Command, now time.Time) (string, error) {
	month, _ := cmd.Flags().GetString("month")
	previous, _ := cmd.Flags().GetBool("previous")
	return resolveMonth(month, previous, now)
}

// resolveMonth validates month, defaulting to the month of now, and steps
// back one month when previous is set
func resolveMonth(month string, previous bool, now time.Time) (string, error) {
	if month == "" {
		month = util.CurrentMonthKey(now)
	}
	if _, _, err := util.ParseMonthKey(month); err != nil {
		return "", fmt.Errorf("invalid --month %q: expected YYYY-MM", month)
	}
	if previous {
		return util.PreviousMonthKey(month)
	}
	return month, nil
}
