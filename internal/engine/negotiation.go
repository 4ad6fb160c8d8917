package engine

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/talgya/merchant-world/internal/fortune"
	"github.com/talgya/merchant-world/internal/ledger"
)

// SummonCustomer generates the next shopper: a uniformly drawn
// template wanting a uniformly drawn item from its preferred list.
// If the wanted item is not on display the listed price is 0 and only
// Refuse is a valid resolution. The budget is
// floor(listPrice * uniform[0.8,1.1) * luck budget multiplier).
func (e *Engine) SummonCustomer(s State) (State, error) {
	if s.Customer != nil {
		return s, ErrCustomerPresent
	}
	if restDay(s) {
		return s, fmt.Errorf("summon: %w", ErrShopClosed)
	}

	ns := s.clone()

	templates := e.catalog.Templates()
	tpl := templates[e.rng.Intn(len(templates))]
	wantID := tpl.PreferredItems[e.rng.Intn(len(tpl.PreferredItems))]
	item, ok := e.catalog.Item(wantID)
	if !ok {
		return s, fmt.Errorf("summon: template %q wants %q: %w", tpl.ID, wantID, ErrUnknownItem)
	}

	listed := 0
	if i := findDisplay(ns.Display, wantID); i >= 0 {
		listed = ns.Display[i].Price
	}

	budgetRate := 0.8 + e.rng.Float()*0.3
	maxBudget := int(float64(item.Price) * budgetRate * fortune.CustomerBudgetMultiplier(ns.Condition.Luck))

	line := tpl.Dialogues[e.rng.Intn(len(tpl.Dialogues))]
	if strings.Contains(line, "%s") {
		line = fmt.Sprintf(line, item.Name)
	}

	ns.Customer = &Customer{
		TemplateID:    tpl.ID,
		Name:          tpl.Name,
		WantItemID:    wantID,
		ListedPrice:   listed,
		MaxBudget:     maxBudget,
		RoundsAllowed: tpl.Rounds,
		Dialogue:      line,
	}
	ns.LastOutcome = OutcomeNone

	slog.Debug("customer arrived",
		"template", tpl.ID, "wants", wantID, "listed", listed)
	return ns, nil
}

// Sell accepts the listed price. Disabled when the item is not stocked
// (listed price 0) and rejected, state unchanged, when the price sits
// above the customer's budget; the merchant must discount instead.
func (e *Engine) Sell(s State) (State, error) {
	c := s.Customer
	if c == nil {
		return s, ErrNoActiveCustomer
	}
	if c.ListedPrice == 0 {
		return s, fmt.Errorf("sell %q: not on display: %w", c.WantItemID, ErrInsufficientStock)
	}
	if c.ListedPrice > c.MaxBudget {
		return s, fmt.Errorf("sell at %d against budget %d: %w",
			c.ListedPrice, c.MaxBudget, ErrBudgetExceeded)
	}
	return e.completeSale(s, c.ListedPrice)
}

// Discount makes a counter-offer. With offered <= 0 the proposal is the
// default step, floor(90% of the current listed price). A proposal
// within budget closes the sale immediately; otherwise it consumes a
// negotiation round, and once the template's rounds run out the
// customer walks with no ledger effect.
func (e *Engine) Discount(s State, offered int) (State, error) {
	c := s.Customer
	if c == nil {
		return s, ErrNoActiveCustomer
	}
	if c.ListedPrice == 0 {
		return s, fmt.Errorf("discount %q: not on display: %w", c.WantItemID, ErrInsufficientStock)
	}

	price := offered
	if price <= 0 {
		price = int(float64(c.ListedPrice) * CounterRate)
	}

	if price <= c.MaxBudget {
		return e.completeSale(s, price)
	}

	if c.RoundsUsed+1 < c.RoundsAllowed {
		ns := s.clone()
		ns.Customer.ListedPrice = price
		ns.Customer.RoundsUsed++
		return ns, nil
	}

	// Rounds exhausted: the customer gives up and leaves.
	ns := s.clone()
	slog.Debug("negotiation exhausted",
		"customer", c.Name, "item", c.WantItemID, "final_offer", price, "budget", c.MaxBudget)
	ns.Customer = nil
	ns.LastOutcome = OutcomeTimedOut
	e.advance(&ns, CustomerMinutes)
	return ns, nil
}

// Refuse turns the customer away. No ledger effect.
func (e *Engine) Refuse(s State) (State, error) {
	if s.Customer == nil {
		return s, ErrNoActiveCustomer
	}
	ns := s.clone()
	ns.Customer = nil
	ns.LastOutcome = OutcomeRefused
	e.advance(&ns, CustomerMinutes)
	return ns, nil
}

// completeSale executes a sale at the agreed price: one unit off the
// display, gold credited, a sell record appended with the entry's
// frozen cost basis, half an hour spent.
func (e *Engine) completeSale(s State, price int) (State, error) {
	ns := s.clone()
	c := ns.Customer

	i := findDisplay(ns.Display, c.WantItemID)
	if i < 0 {
		return s, fmt.Errorf("sell %q: not on display: %w", c.WantItemID, ErrInsufficientStock)
	}
	entry := ns.Display[i]
	basis := entry.CostBasis

	entry.Quantity--
	if entry.Quantity == 0 {
		ns.Display = append(ns.Display[:i], ns.Display[i+1:]...)
	} else {
		ns.Display[i] = entry
	}

	ns.Gold += price
	ns.Transactions = append(ns.Transactions,
		ledger.NewSell(ns.Clock.Timestamp(), c.WantItemID, 1, price, basis, c.Name))

	ns.SalesToday++
	ns.RevenueToday += price
	ns.ProfitToday += float64(price) - basis

	slog.Debug("sale closed",
		"customer", c.Name, "item", c.WantItemID, "price", price, "gold", ns.Gold)

	ns.Customer = nil
	ns.LastOutcome = OutcomeSold
	e.advance(&ns, CustomerMinutes)
	return ns, nil
}

// NextCustomer drives the shop floor forward after a resolution: sold
// out or past closing time shuts the shop for the day, otherwise the
// next customer is summoned.
func (e *Engine) NextCustomer(s State) (State, error) {
	if s.Customer != nil {
		return s, ErrCustomerPresent
	}
	if len(s.Display) == 0 {
		slog.Info("sold out, closing up", "day", s.Clock.Day, "sales", s.SalesToday)
		return e.CloseForDay(s), nil
	}
	if s.Clock.Hour >= ClosingHour {
		slog.Info("closing time", "day", s.Clock.Day, "sales", s.SalesToday)
		return e.CloseForDay(s), nil
	}
	return e.SummonCustomer(s)
}
