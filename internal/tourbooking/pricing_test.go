package tourbooking

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestComputeTotalsNoAddons(t *testing.T) {
	got := ComputeTotals(dec("1500.00"), nil, 2)
	if !got.TotalPerPax.Equal(dec("1500.00")) {
		t.Fatalf("TotalPerPax = %s", got.TotalPerPax)
	}
	if !got.GrandTotal.Equal(dec("3000.00")) {
		t.Fatalf("GrandTotal = %s", got.GrandTotal)
	}
}

func TestComputeTotalsWithAddons(t *testing.T) {
	addons := []Addon{
		{Label: "Travel insurance", Amount: dec("120.50")},
		{Label: "Airport transfer", Amount: dec("35.25")},
	}
	got := ComputeTotals(dec("999.99"), addons, 3)
	if !got.TotalPerPax.Equal(dec("1155.74")) {
		t.Fatalf("TotalPerPax = %s, want 1155.74", got.TotalPerPax)
	}
	if !got.GrandTotal.Equal(dec("3467.22")) {
		t.Fatalf("GrandTotal = %s, want 3467.22", got.GrandTotal)
	}
}

func TestComputeTotalsRoundsToCents(t *testing.T) {
	got := ComputeTotals(dec("10.005"), nil, 1)
	if !got.TotalPerPax.Equal(dec("10.01")) {
		t.Fatalf("TotalPerPax = %s, want 10.01", got.TotalPerPax)
	}
}

func TestValidateAddons(t *testing.T) {
	if err := ValidateAddons([]Addon{{Label: "Visa fee", Amount: dec("80")}}); err != nil {
		t.Fatalf("valid addons rejected: %v", err)
	}
	if err := ValidateAddons([]Addon{{Label: "", Amount: dec("80")}}); err == nil {
		t.Fatal("expected error for missing label")
	}
	if err := ValidateAddons([]Addon{{Label: "Visa fee", Amount: dec("0")}}); err == nil {
		t.Fatal("expected error for zero amount")
	}
	if err := ValidateAddons([]Addon{{Label: "Visa fee", Amount: dec("-5")}}); err == nil {
		t.Fatal("expected error for negative amount")
	}
}
