// Package ledger provides the append-only transaction history and its
// read-side analytics. Records are never mutated after creation and
// aggregation never writes back.
package ledger

import (
	"github.com/google/uuid"
)

// Kind distinguishes purchases from sales.
type Kind string

const (
	KindBuy  Kind = "buy"
	KindSell Kind = "sell"
)

// Timestamp is the in-game moment a transaction happened.
type Timestamp struct {
	Day    int
	Hour   int
	Minute int
}

// Record is one immutable ledger entry.
//
// CostBasis is the weighted-average unit cost frozen at sale time and
// is only set on sell records. Records imported from archives predating
// cost tracking may lack it; aggregation treats those as zero cost, so
// their reported profit is overstated by the true cost.
type Record struct {
	ID           string
	At           Timestamp
	Kind         Kind
	ItemID       string
	Quantity     int
	UnitPrice    int
	TotalPrice   int
	CostBasis    *float64
	Counterparty string
}

// NewBuy creates a purchase record.
func NewBuy(at Timestamp, itemID string, qty, unitPrice int, counterparty string) Record {
	return Record{
		ID:           uuid.NewString(),
		At:           at,
		Kind:         KindBuy,
		ItemID:       itemID,
		Quantity:     qty,
		UnitPrice:    unitPrice,
		TotalPrice:   unitPrice * qty,
		Counterparty: counterparty,
	}
}

// NewSell creates a sale record with the frozen cost basis.
func NewSell(at Timestamp, itemID string, qty, unitPrice int, costBasis float64, counterparty string) Record {
	basis := costBasis
	return Record{
		ID:           uuid.NewString(),
		At:           at,
		Kind:         KindSell,
		ItemID:       itemID,
		Quantity:     qty,
		UnitPrice:    unitPrice,
		TotalPrice:   unitPrice * qty,
		CostBasis:    &basis,
		Counterparty: counterparty,
	}
}
