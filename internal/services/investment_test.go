package services

import (
	"errors"
	"testing"
)

func TestInvestment_CreateDefaultsCurrentValue(t *testing.T) {
	svc := NewInvestmentService(newTestDB(t))

	inv, err := svc.Create(1, &CreateInvestmentRequest{Name: "Index fund", InvestedAmount: 1000})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if inv.CurrentValue != 1000 {
		t.Errorf("current value should default to invested amount, got %v", inv.CurrentValue)
	}

	explicit, err := svc.Create(1, &CreateInvestmentRequest{Name: "Stock", InvestedAmount: 500, CurrentValue: 650})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if explicit.CurrentValue != 650 {
		t.Errorf("explicit current value overridden, got %v", explicit.CurrentValue)
	}
}

func TestInvestment_ListFilters(t *testing.T) {
	svc := NewInvestmentService(newTestDB(t))

	seeds := []CreateInvestmentRequest{
		{Name: "S&P 500 ETF", Category: "stocks", Broker: "alpha", InvestedAmount: 1000},
		{Name: "Corporate bonds", Category: "bonds", Broker: "alpha", InvestedAmount: 2000},
		{Name: "Tech stocks", Category: "stocks", Broker: "beta", InvestedAmount: 1500},
	}
	for i := range seeds {
		if _, err := svc.Create(1, &seeds[i]); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	stocks, err := svc.List(1, &InvestmentListRequest{Category: "stocks"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if stocks.Total != 2 {
		t.Errorf("category filter: total = %d, expected 2", stocks.Total)
	}

	alpha, err := svc.List(1, &InvestmentListRequest{Broker: "alpha"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if alpha.Total != 2 {
		t.Errorf("broker filter: total = %d, expected 2", alpha.Total)
	}

	byName, err := svc.List(1, &InvestmentListRequest{Q: "bonds"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if byName.Total != 1 || byName.Data[0].Name != "Corporate bonds" {
		t.Errorf("name search: %+v", byName)
	}
}

func TestInvestment_UpdateDeleteScoped(t *testing.T) {
	svc := NewInvestmentService(newTestDB(t))

	inv, err := svc.Create(1, &CreateInvestmentRequest{Name: "Fund", InvestedAmount: 100})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	newValue := 140.0
	if err := svc.Update(2, inv.ID, &UpdateInvestmentRequest{CurrentValue: &newValue}); !errors.Is(err, ErrInvestmentNotFound) {
		t.Errorf("cross-profile update: expected ErrInvestmentNotFound, got %v", err)
	}
	if err := svc.Update(1, inv.ID, &UpdateInvestmentRequest{CurrentValue: &newValue}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if err := svc.Delete(2, inv.ID); !errors.Is(err, ErrInvestmentNotFound) {
		t.Errorf("cross-profile delete: expected ErrInvestmentNotFound, got %v", err)
	}
	if err := svc.Delete(1, inv.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
}

func TestInvestment_Summary(t *testing.T) {
	svc := NewInvestmentService(newTestDB(t))

	seeds := []CreateInvestmentRequest{
		{Name: "ETF", Category: "stocks", InvestedAmount: 1000, CurrentValue: 1200},
		{Name: "Bonds", Category: "bonds", InvestedAmount: 1000, CurrentValue: 900},
	}
	for i := range seeds {
		if _, err := svc.Create(1, &seeds[i]); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	summary, err := svc.Summary(1)
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if summary.TotalInvested != 2000 {
		t.Errorf("totalInvested = %v, expected 2000", summary.TotalInvested)
	}
	if summary.TotalCurrentValue != 2100 {
		t.Errorf("totalCurrentValue = %v, expected 2100", summary.TotalCurrentValue)
	}
	if summary.TotalReturn != 100 {
		t.Errorf("totalReturn = %v, expected 100", summary.TotalReturn)
	}
	if summary.ReturnPercent != 5 {
		t.Errorf("returnPercent = %v, expected 5", summary.ReturnPercent)
	}
	if len(summary.Categories) != 2 {
		t.Errorf("expected 2 category rows, got %d", len(summary.Categories))
	}
}
