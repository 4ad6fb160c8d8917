// Package engine holds the mutable-by-replacement game state and the
// command surface over it: stock accounting, the customer negotiation
// state machine, and the simulated clock. Every command takes a State
// value and returns a new one; a failed command returns its input
// untouched.
package engine

import (
	"github.com/talgya/merchant-world/internal/calendar"
	"github.com/talgya/merchant-world/internal/fortune"
	"github.com/talgya/merchant-world/internal/ledger"
)

// Holding is an undifferentiated possession outside the resale
// pipeline. Entries with zero quantity are removed.
type Holding struct {
	ItemID   string
	Quantity int
}

// StockHolding is wholesaler-sourced merchandise. AverageCost is the
// quantity-weighted mean of every purchase unit-cost folded in so far.
type StockHolding struct {
	ItemID      string
	Quantity    int
	AverageCost float64
}

// DisplayEntry is stock pulled out, priced, and offered to customers.
// CostBasis is the holding's average cost frozen at listing time; later
// purchases at other prices never change it. One entry exists per
// distinct item on display.
type DisplayEntry struct {
	ItemID    string
	Quantity  int
	Price     int
	CostBasis float64
}

// Outcome records how the last customer interaction resolved.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeSold
	OutcomeRefused
	OutcomeTimedOut
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeSold:
		return "sold"
	case OutcomeRefused:
		return "refused"
	case OutcomeTimedOut:
		return "timed out"
	default:
		return "none"
	}
}

// Customer is one generated shopper. Lives from summon until the
// interaction resolves (sold, refused, or negotiation exhausted).
type Customer struct {
	TemplateID    string
	Name          string
	WantItemID    string
	ListedPrice   int // 0 when the wanted item is not on display.
	MaxBudget     int
	RoundsUsed    int
	RoundsAllowed int
	Dialogue      string
}

// Clock is the simulated game time. Minute stays in [0,60) with carry
// into Hour, Hour in [0,24) with carry into Day.
type Clock struct {
	Day    int // Play-day counter, starts at 1.
	Hour   int
	Minute int
}

// Timestamp converts the clock into a ledger timestamp.
func (c Clock) Timestamp() ledger.Timestamp {
	return ledger.Timestamp{Day: c.Day, Hour: c.Hour, Minute: c.Minute}
}

// DailyCondition is the day's weather and luck. Both re-roll exactly
// once per midnight crossing; LuckRevealed resets false at the roll and
// flips true only through the paid reveal.
type DailyCondition struct {
	Weather      fortune.Weather
	Luck         fortune.Luck
	LuckRevealed bool
}

// State is the aggregate game state. Commands never mutate a State in
// place; they clone, modify the clone, and return it.
type State struct {
	Gold         int
	Possessions  []Holding
	Stock        []StockHolding
	Display      []DisplayEntry
	Transactions []ledger.Record // Append-only.
	Clock        Clock
	Condition    DailyCondition

	Customer    *Customer
	LastOutcome Outcome

	// Daily counters, reset when the shop closes for the day.
	SalesToday   int
	RevenueToday int
	ProfitToday  float64
}

// Date derives the calendar date for the current play day.
func (s State) Date() calendar.Date {
	return calendar.DateFor(s.Clock.Day)
}

// clone copies the state deeply enough that mutating the copy never
// aliases the original's slices or customer.
func (s State) clone() State {
	ns := s
	ns.Possessions = append([]Holding(nil), s.Possessions...)
	ns.Stock = append([]StockHolding(nil), s.Stock...)
	ns.Display = append([]DisplayEntry(nil), s.Display...)
	ns.Transactions = append([]ledger.Record(nil), s.Transactions...)
	if s.Customer != nil {
		c := *s.Customer
		ns.Customer = &c
	}
	return ns
}

func findStock(stock []StockHolding, itemID string) int {
	for i := range stock {
		if stock[i].ItemID == itemID {
			return i
		}
	}
	return -1
}

func findDisplay(display []DisplayEntry, itemID string) int {
	for i := range display {
		if display[i].ItemID == itemID {
			return i
		}
	}
	return -1
}

func findPossession(possessions []Holding, itemID string) int {
	for i := range possessions {
		if possessions[i].ItemID == itemID {
			return i
		}
	}
	return -1
}

// mergeStock folds qty units at unitCost into the holding for itemID,
// recomputing the quantity-weighted average cost. Creates the holding
// if absent.
func mergeStock(stock []StockHolding, itemID string, qty int, unitCost float64) []StockHolding {
	i := findStock(stock, itemID)
	if i < 0 {
		return append(stock, StockHolding{ItemID: itemID, Quantity: qty, AverageCost: unitCost})
	}
	h := stock[i]
	total := h.Quantity + qty
	h.AverageCost = (h.AverageCost*float64(h.Quantity) + unitCost*float64(qty)) / float64(total)
	h.Quantity = total
	stock[i] = h
	return stock
}
