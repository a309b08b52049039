// Package cashdesk contains cash-desk related use cases.
package cashdesk

import (
	"github.com/shopspring/decimal"

	"github.com/fleet-manager/backend/internal/domain/entity"
)

// EntryDelta returns the signed balance adjustment a financial entry
// applies to its cash desk at creation time: credit for REVENUE and
// FUNDING, debit otherwise.
func EntryDelta(entryType entity.EntryType, amount decimal.Decimal) decimal.Decimal {
	if entryType == entity.EntryTypeRevenue || entryType == entity.EntryTypeFunding {
		return amount
	}
	return amount.Neg()
}

// ReversalDelta returns the adjustment that undoes an entry's original
// effect, applied when the entry is deleted.
func ReversalDelta(entryType entity.EntryType, amount decimal.Decimal) decimal.Decimal {
	return EntryDelta(entryType, amount).Neg()
}
