package services

import (
	"errors"
	"testing"

	"github.com/gfmartins/fintrack/internal/models"
)

func TestBudget_UpsertSameSlot(t *testing.T) {
	db := newTestDB(t)
	svc := NewBudgetService(db)

	first, err := svc.Upsert(1, &BudgetRequest{CategoryID: 2, Month: 3, Year: 2025, Amount: 400})
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	// Same slot again replaces the amount instead of adding a row
	second, err := svc.Upsert(1, &BudgetRequest{CategoryID: 2, Month: 3, Year: 2025, Amount: 600})
	if err != nil {
		t.Fatalf("second Upsert failed: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("upsert created a new row: id %d vs %d", second.ID, first.ID)
	}
	if second.Amount != 600 {
		t.Errorf("amount = %v, expected 600", second.Amount)
	}

	var count int64
	db.Model(&models.Budget{}).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 budget row, got %d", count)
	}

	// A different month is a separate slot
	if _, err := svc.Upsert(1, &BudgetRequest{CategoryID: 2, Month: 4, Year: 2025, Amount: 300}); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	db.Model(&models.Budget{}).Count(&count)
	if count != 2 {
		t.Errorf("expected 2 budget rows, got %d", count)
	}
}

func TestBudget_UpdateAndDeleteScoped(t *testing.T) {
	svc := NewBudgetService(newTestDB(t))

	budget, err := svc.Upsert(1, &BudgetRequest{CategoryID: 2, Month: 5, Year: 2025, Amount: 250})
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	if err := svc.UpdateAmount(2, budget.ID, 999); !errors.Is(err, ErrBudgetNotFound) {
		t.Errorf("cross-profile update: expected ErrBudgetNotFound, got %v", err)
	}
	if err := svc.UpdateAmount(1, budget.ID, 275); err != nil {
		t.Fatalf("UpdateAmount failed: %v", err)
	}

	if err := svc.Delete(2, budget.ID); !errors.Is(err, ErrBudgetNotFound) {
		t.Errorf("cross-profile delete: expected ErrBudgetNotFound, got %v", err)
	}
	if err := svc.Delete(1, budget.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
}

func TestBudget_SummarySpend(t *testing.T) {
	db := newTestDB(t)
	svc := NewBudgetService(db)

	category := models.Category{ID: 2, ProfileID: 1, Name: "Food", Emoji: "🍕", Type: models.TypeExpense}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if _, err := svc.Upsert(1, &BudgetRequest{CategoryID: 2, Month: 1, Year: 2025, Amount: 500}); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	transactions := []models.Transaction{
		{ProfileID: 1, CategoryID: 2, Amount: 120, Type: models.TypeExpense, Date: "2025-01-03"},
		{ProfileID: 1, CategoryID: 2, Amount: 80, Type: models.TypeExpense, Date: "2025-01-20"},
		// Outside the month, must not count
		{ProfileID: 1, CategoryID: 2, Amount: 300, Type: models.TypeExpense, Date: "2025-02-01"},
		// Income never counts as spend
		{ProfileID: 1, CategoryID: 2, Amount: 50, Type: models.TypeIncome, Date: "2025-01-10"},
	}
	for i := range transactions {
		if err := db.Create(&transactions[i]).Error; err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	rows, err := svc.Summary(1, 1, 2025)
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 summary row, got %d", len(rows))
	}
	if rows[0].BudgetAmount != 500 {
		t.Errorf("budget amount = %v, expected 500", rows[0].BudgetAmount)
	}
	if rows[0].SpentAmount != 200 {
		t.Errorf("spent amount = %v, expected 200", rows[0].SpentAmount)
	}
}
