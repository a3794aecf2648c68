package tourbooking

import (
	"github.com/shopspring/decimal"
)

// Addon is a priced extra on a tour package booking, stored as JSONB.
type Addon struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// Totals are derived per request from the base price, addons and pax count;
// they are never stored.
type Totals struct {
	TotalPerPax decimal.Decimal `json:"totalPerPax"`
	GrandTotal  decimal.Decimal `json:"grandTotal"`
}

const currencyScale = 2

// ComputeTotals derives the booking's money figures:
// total_per_pax = base + sum(addon amounts); grand_total = total_per_pax * pax.
// All arithmetic is decimal; each figure is rounded to the currency scale.
func ComputeTotals(basePerPax decimal.Decimal, addons []Addon, pax int) Totals {
	perPax := basePerPax
	for _, a := range addons {
		perPax = perPax.Add(a.Amount)
	}
	perPax = perPax.Round(currencyScale)

	return Totals{
		TotalPerPax: perPax,
		GrandTotal:  perPax.Mul(decimal.NewFromInt(int64(pax))).Round(currencyScale),
	}
}

// ValidateAddons rejects unlabeled or non-positive addons before they reach
// the money math.
func ValidateAddons(addons []Addon) error {
	for _, a := range addons {
		if a.Label == "" {
			return errAddonLabelRequired
		}
		if a.Amount.LessThanOrEqual(decimal.Zero) {
			return errAddonAmountInvalid
		}
	}
	return nil
}

type pricingError string

func (e pricingError) Error() string { return string(e) }

const (
	errAddonLabelRequired = pricingError("addon label is required")
	errAddonAmountInvalid = pricingError("addon amount must be > 0")
)
