package services

import (
	"testing"

	"github.com/gfmartins/fintrack/internal/models"
	"gorm.io/gorm"
)

func seedSummaryData(t *testing.T, db *gorm.DB) {
	t.Helper()

	categories := []models.Category{
		{ID: 1, ProfileID: 1, Name: "Salary", Emoji: "💰", Type: models.TypeIncome},
		{ID: 2, ProfileID: 1, Name: "Food", Emoji: "🍕", Type: models.TypeExpense},
	}
	for i := range categories {
		if err := db.Create(&categories[i]).Error; err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	transactions := []models.Transaction{
		{ProfileID: 1, CategoryID: 1, Amount: 3000, Type: models.TypeIncome, Date: "2025-01-05"},
		{ProfileID: 1, CategoryID: 2, Amount: 200, Type: models.TypeExpense, Date: "2025-01-10"},
		{ProfileID: 1, CategoryID: 2, Amount: 300, Type: models.TypeExpense, Date: "2025-02-14"},
		{ProfileID: 1, CategoryID: 1, Amount: 1000, Type: models.TypeIncome, Date: "2024-12-20"},
		// Another profile's data must never leak into profile 1's numbers
		{ProfileID: 2, CategoryID: 2, Amount: 9999, Type: models.TypeExpense, Date: "2025-01-15"},
	}
	for i := range transactions {
		if err := db.Create(&transactions[i]).Error; err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}
}

func TestSummary_Overall(t *testing.T) {
	db := newTestDB(t)
	seedSummaryData(t, db)
	svc := NewSummaryService(db)

	summary, err := svc.Overall(1)
	if err != nil {
		t.Fatalf("Overall failed: %v", err)
	}
	if summary.Income != 4000 {
		t.Errorf("income = %v, expected 4000", summary.Income)
	}
	if summary.Expense != 500 {
		t.Errorf("expense = %v, expected 500", summary.Expense)
	}
	if summary.Balance != 3500 {
		t.Errorf("balance = %v, expected 3500", summary.Balance)
	}
}

func TestSummary_Monthly(t *testing.T) {
	db := newTestDB(t)
	seedSummaryData(t, db)
	svc := NewSummaryService(db)

	rows, err := svc.Monthly(1, 2025)
	if err != nil {
		t.Fatalf("Monthly failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 months, got %d", len(rows))
	}

	jan := rows[0]
	if jan.Month != 1 || jan.Income != 3000 || jan.Expense != 200 || jan.Balance != 2800 {
		t.Errorf("january: %+v", jan)
	}
	feb := rows[1]
	if feb.Month != 2 || feb.Expense != 300 || feb.Balance != -300 {
		t.Errorf("february: %+v", feb)
	}
}

func TestSummary_Annual(t *testing.T) {
	db := newTestDB(t)
	seedSummaryData(t, db)
	svc := NewSummaryService(db)

	rows, err := svc.Annual(1)
	if err != nil {
		t.Fatalf("Annual failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 years, got %d", len(rows))
	}
	if rows[0].Year != 2024 || rows[0].Income != 1000 {
		t.Errorf("2024 row: %+v", rows[0])
	}
	if rows[1].Year != 2025 || rows[1].Income != 3000 || rows[1].Expense != 500 {
		t.Errorf("2025 row: %+v", rows[1])
	}
}

func TestSummary_ByCategory(t *testing.T) {
	db := newTestDB(t)
	seedSummaryData(t, db)
	svc := NewSummaryService(db)

	rows, err := svc.ByCategory(1, 1, 2025)
	if err != nil {
		t.Fatalf("ByCategory failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 category rows for january, got %d", len(rows))
	}
	// Ordered by total descending
	if rows[0].Name != "Salary" || rows[0].Total != 3000 {
		t.Errorf("top row: %+v", rows[0])
	}
	if rows[1].Name != "Food" || rows[1].Total != 200 {
		t.Errorf("second row: %+v", rows[1])
	}

	// Unfiltered view sums the whole history
	all, err := svc.ByCategory(1, 0, 0)
	if err != nil {
		t.Fatalf("ByCategory failed: %v", err)
	}
	for _, row := range all {
		if row.Name == "Food" && row.Total != 500 {
			t.Errorf("food total = %v, expected 500", row.Total)
		}
	}
}
