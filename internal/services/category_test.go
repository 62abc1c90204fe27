package services

import (
	"errors"
	"testing"

	"github.com/gfmartins/fintrack/internal/models"
)

func TestCategory_CRUDScopedToProfile(t *testing.T) {
	svc := NewCategoryService(newTestDB(t))

	food, err := svc.Create(1, &CategoryRequest{Name: "Food", Emoji: "🍕", Type: models.TypeExpense})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.Create(1, &CategoryRequest{Name: "Salary", Emoji: "💰", Type: models.TypeIncome}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.Create(2, &CategoryRequest{Name: "Other profile", Emoji: "🏠", Type: models.TypeExpense}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	all, err := svc.List(1, "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 categories for profile 1, got %d", len(all))
	}

	expenses, err := svc.List(1, models.TypeExpense)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(expenses) != 1 || expenses[0].Name != "Food" {
		t.Errorf("type filter failed, got %+v", expenses)
	}

	// Another profile cannot touch this category
	err = svc.Update(2, food.ID, &CategoryRequest{Name: "Stolen", Emoji: "🍕", Type: models.TypeExpense})
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("cross-profile update: expected ErrCategoryNotFound, got %v", err)
	}
	if err := svc.Delete(2, food.ID); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("cross-profile delete: expected ErrCategoryNotFound, got %v", err)
	}

	if err := svc.Update(1, food.ID, &CategoryRequest{Name: "Groceries", Emoji: "🛒", Type: models.TypeExpense}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if err := svc.Delete(1, food.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	all, _ = svc.List(1, "")
	if len(all) != 1 {
		t.Errorf("expected 1 category after delete, got %d", len(all))
	}
}
