// Package badge holds the display category every status enum maps onto.
// Listing screens use it for row highlighting and sorting.
package badge

type Variant string

const (
	Success Variant = "success"
	Info    Variant = "info"
	Warning Variant = "warning"
	Danger  Variant = "danger"
	Neutral Variant = "neutral"
)
