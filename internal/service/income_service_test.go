package service

import (
	"context"
	"errors"
	"testing"

	"github.com/dafibh/fortuna/fortuna-web/internal/domain"
	"github.com/dafibh/fortuna/fortuna-web/internal/testutil"
)

func TestIncomeService_Lifecycle(t *testing.T) {
	repo := testutil.NewMockIncomeRepository()
	publisher := testutil.NewMockEventPublisher()
	svc := NewIncomeService(repo)
	svc.SetEventPublisher(publisher)
	ctx := context.Background()

	created, err := svc.CreateIncome(ctx, "tok", domain.IncomeInput{
		Description: " Salary ",
		Value:       domain.MustAmount("5000"),
		Date:        domain.NewDate(2025, 3, 5),
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if created.Description != "Salary" {
		t.Errorf("Expected trimmed description, got %q", created.Description)
	}

	march, _ := svc.ListIncomes(ctx, "tok", "2025-03")
	april, _ := svc.ListIncomes(ctx, "tok", "2025-04")
	if len(march) != 1 || len(april) != 0 {
		t.Errorf("Expected month filter to apply, got %d/%d", len(march), len(april))
	}

	if _, err := svc.UpdateIncome(ctx, "tok", created.ID, domain.IncomeInput{
		Description: "Salary", Value: domain.MustAmount("5200"), Date: domain.NewDate(2025, 3, 5),
	}); err != nil {
		t.Fatalf("Unexpected update error: %v", err)
	}

	if err := svc.DeleteIncome(ctx, "tok", created.ID); err != nil {
		t.Fatalf("Unexpected delete error: %v", err)
	}

	want := []string{"income.created", "income.updated", "income.deleted"}
	got := publisher.Types()
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Event %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestIncomeService_CreateIncome_Invalid(t *testing.T) {
	repo := testutil.NewMockIncomeRepository()
	svc := NewIncomeService(repo)

	_, err := svc.CreateIncome(context.Background(), "tok", domain.IncomeInput{
		Description: "Gift",
		Value:       domain.MustAmount("-1"),
		Date:        domain.NewDate(2025, 3, 5),
	})

	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
	if len(repo.Incomes) != 0 {
		t.Error("Expected nothing stored")
	}
}
