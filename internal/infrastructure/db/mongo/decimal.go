package mongo

import "github.com/shopspring/decimal"

// Monetary amounts and percentages are persisted as strings to keep exact
// decimal values across the wire; zero-value documents decode to decimal.Zero.

func decToString(d decimal.Decimal) string {
	return d.String()
}

func decFromString(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func decPtrToString(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}

func decPtrFromString(s *string) *decimal.Decimal {
	if s == nil {
		return nil
	}
	d := decFromString(*s)
	return &d
}
