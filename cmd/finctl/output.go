package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/dafibh/fortuna/fortuna-web/internal/domain"
	"github.com/dafibh/fortuna/fortuna-web/internal/service"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	totalStyle  = lipgloss.NewStyle().Bold(true)
)

func money(a domain.Amount) string {
	return a.Decimal.StringFixed(2)
}

func percent(a *domain.Amount) string {
	if a == nil {
		return "-"
	}
	return a.Decimal.StringFixed(2) + "%"
}

func renderRecurringSummary(out io.Writer, summary *service.RecurringSummary) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	section := func(title string, recs []*domain.RecurringExpense) {
		fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%s (%d)", title, len(recs))))
		if len(recs) == 0 {
			fmt.Fprintln(w, mutedStyle.Render("  none"))
			return
		}
		for _, r := range recs {
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", r.Name, r.Category, r.Frequency, money(r.Value))
		}
	}

	section("Active", summary.Active)
	section("Inactive", summary.Inactive)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s\t%s\n", totalStyle.Render("Monthly total"), money(summary.TotalMonthly))
	fmt.Fprintf(w, "%s\t%s\n", totalStyle.Render("Yearly total"), money(summary.TotalYearly))

	return w.Flush()
}

func renderCategorySpending(out io.Writer, month string, spending []domain.CategorySpending) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, headerStyle.Render("Spending by category, "+month))
	if len(spending) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("  no expenses"))
		return w.Flush()
	}
	for _, s := range spending {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", s.Category, money(s.Amount), percent(s.Percentage))
	}

	return w.Flush()
}

func renderDashboard(out io.Writer, month string, view *service.DashboardView) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, headerStyle.Render("Dashboard, "+month))
	fmt.Fprintf(w, "  Income\t%s\n", money(view.Summary.TotalIncome))
	fmt.Fprintf(w, "  Expenses\t%s\n", money(view.Summary.TotalExpenses))
	fmt.Fprintf(w, "  Balance\t%s\n", money(view.Summary.Balance))
	fmt.Fprintf(w, "  Savings rate\t%s\n", percent(view.Summary.SavingsRate))

	if len(view.CategorySpending) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, headerStyle.Render("Top categories"))
		for _, s := range view.CategorySpending {
			fmt.Fprintf(w, "  %s\t%s\t%s\n", s.Category, money(s.Amount), percent(s.Percentage))
		}
	}

	fmt.Fprintln(w)
	if view.Recurring == nil {
		fmt.Fprintln(w, mutedStyle.Render("Recurring expenses unavailable"))
	} else {
		fmt.Fprintln(w, headerStyle.Render("Recurring"))
		fmt.Fprintf(w, "  Active / inactive\t%d / %d\n", view.Recurring.ActiveCount, view.Recurring.InactiveCount)
		fmt.Fprintf(w, "  Monthly\t%s\n", money(view.Recurring.TotalMonthly))
		fmt.Fprintf(w, "  Yearly\t%s\n", money(view.Recurring.TotalYearly))
	}

	return w.Flush()
}
