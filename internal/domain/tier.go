package domain

import (
	"fmt"
	"strings"
)

// PriceTier is a coarse budget bucket. Tiers are contiguous on whole-rupee prices.
type PriceTier int

const (
	Budget  PriceTier = iota + 1 // price <= 5000
	Comfort                      // 5001 <= price <= 10000
	Luxury                       // price > 10000
)

const (
	budgetMax  = 5000
	comfortMin = 5001
	comfortMax = 10000
)

// ParsePriceTier accepts budget, comfort or luxury in any case.
func ParsePriceTier(s string) (PriceTier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "budget":
		return Budget, nil
	case "comfort":
		return Comfort, nil
	case "luxury":
		return Luxury, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPriceTier, s)
}

// Contains applies the tier's price predicate. A missing price never matches.
func (p PriceTier) Contains(price *float64) bool {
	if price == nil {
		return false
	}
	v := *price
	switch p {
	case Budget:
		return v <= budgetMax
	case Comfort:
		return v >= comfortMin && v <= comfortMax
	case Luxury:
		return v > comfortMax
	}
	return false
}

func (p PriceTier) String() string {
	switch p {
	case Budget:
		return "budget"
	case Comfort:
		return "comfort"
	case Luxury:
		return "luxury"
	}
	return fmt.Sprintf("PriceTier(%d)", int(p))
}

// Label is the human-readable range shown next to the tier picker.
func (p PriceTier) Label() string {
	switch p {
	case Budget:
		return "Budget (₹0 - ₹5000)"
	case Comfort:
		return "Comfort (₹5001 - ₹10000)"
	case Luxury:
		return "Luxury (₹10001+)"
	}
	return p.String()
}

func (p PriceTier) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *PriceTier) UnmarshalText(b []byte) error {
	t, err := ParsePriceTier(string(b))
	if err != nil {
		return err
	}
	*p = t
	return nil
}
