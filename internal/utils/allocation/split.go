// Package allocation implements the deterministic currency split used when a
// pasture-scoped cost is divided across the animals resident there.
package allocation

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CurrencyPlaces is the persisted precision for monetary amounts.
const CurrencyPlaces = 2

// Split divides amount into n shares at currency precision so that the shares
// sum exactly to amount. Every share is the amount truncated to 2 decimal
// places; the remainder left over by truncation is added to the first share.
// Callers pass recipients in a deterministic order, so re-running a split for
// the same inputs always yields the same assignment.
func Split(amount decimal.Decimal, n int) ([]decimal.Decimal, error) {
	if n <= 0 {
		return nil, fmt.Errorf("share count must be positive, got %d", n)
	}
	if amount.IsNegative() {
		return nil, fmt.Errorf("amount must not be negative, got %s", amount.String())
	}

	count := decimal.NewFromInt(int64(n))
	base := amount.Div(count).Truncate(CurrencyPlaces)
	remainder := amount.Sub(base.Mul(count))

	shares := make([]decimal.Decimal, n)
	for i := range shares {
		shares[i] = base
	}
	shares[0] = shares[0].Add(remainder)
	return shares, nil
}
