package engine

import (
	"fmt"
	"log/slog"

	"github.com/talgya/merchant-world/internal/fortune"
	"github.com/talgya/merchant-world/internal/ledger"
)

// wholesaleUnitCost is the per-unit price the wholesaler charges today:
// floor(listPrice * 0.9 * luck multiplier), never below 1.
func wholesaleUnitCost(listPrice int, luck fortune.Luck) int {
	cost := int(float64(listPrice) * WholesaleRate * fortune.PurchaseCostMultiplier(luck))
	if cost < 1 {
		cost = 1
	}
	return cost
}

// Purchase buys qty units from the wholesaler, folding them into stock
// at the quantity-weighted average cost and appending a buy record.
func (e *Engine) Purchase(s State, itemID string, qty int) (State, error) {
	if qty <= 0 {
		return s, fmt.Errorf("purchase %q: quantity must be positive", itemID)
	}
	item, ok := e.catalog.Item(itemID)
	if !ok {
		return s, fmt.Errorf("purchase %q: %w", itemID, ErrUnknownItem)
	}
	if restDay(s) {
		return s, fmt.Errorf("purchase %q: %w", itemID, ErrShopClosed)
	}

	unit := wholesaleUnitCost(item.Price, s.Condition.Luck)
	total := unit * qty
	if s.Gold < total {
		return s, fmt.Errorf("purchase %q needs %d gold: %w", itemID, total, ErrInsufficientFunds)
	}

	ns := s.clone()
	ns.Gold -= total
	ns.Stock = mergeStock(ns.Stock, itemID, qty, float64(unit))
	ns.Transactions = append(ns.Transactions,
		ledger.NewBuy(ns.Clock.Timestamp(), itemID, qty, unit, WholesalerLabel))

	slog.Debug("stock purchased",
		"item", itemID, "quantity", qty, "unit_cost", unit, "gold", ns.Gold)
	return ns, nil
}

// ListForSale moves qty units from stock onto the display at the given
// price, freezing the holding's average cost as the entry's cost basis.
// An item carries one active price at a time: listing at the current
// price extends the entry, any other price is rejected.
func (e *Engine) ListForSale(s State, itemID string, qty, price int) (State, error) {
	if qty <= 0 {
		return s, fmt.Errorf("list %q: quantity must be positive", itemID)
	}
	if price <= 0 {
		return s, fmt.Errorf("list %q: price must be positive", itemID)
	}

	i := findStock(s.Stock, itemID)
	if i < 0 || s.Stock[i].Quantity < qty {
		return s, fmt.Errorf("list %q x%d: %w", itemID, qty, ErrInsufficientStock)
	}
	if j := findDisplay(s.Display, itemID); j >= 0 && s.Display[j].Price != price {
		return s, fmt.Errorf("list %q at %d (already at %d): %w",
			itemID, price, s.Display[j].Price, ErrPriceConflict)
	}

	ns := s.clone()
	h := ns.Stock[i]
	basis := h.AverageCost
	h.Quantity -= qty
	if h.Quantity == 0 {
		ns.Stock = append(ns.Stock[:i], ns.Stock[i+1:]...)
	} else {
		ns.Stock[i] = h
	}

	if j := findDisplay(ns.Display, itemID); j >= 0 {
		ns.Display[j].Quantity += qty
	} else {
		ns.Display = append(ns.Display, DisplayEntry{
			ItemID:    itemID,
			Quantity:  qty,
			Price:     price,
			CostBasis: basis,
		})
	}
	return ns, nil
}

// CloseForDay folds every remaining display entry back into stock
// (re-averaging against whatever the holding now contains), dismisses
// any waiting customer, and resets the daily counters.
func (e *Engine) CloseForDay(s State) State {
	ns := s.clone()
	for _, entry := range ns.Display {
		ns.Stock = mergeStock(ns.Stock, entry.ItemID, entry.Quantity, entry.CostBasis)
	}
	ns.Display = nil
	ns.Customer = nil

	slog.Info("shop closed",
		"day", ns.Clock.Day,
		"sales", ns.SalesToday,
		"revenue", ns.RevenueToday,
		"profit", fmt.Sprintf("%.1f", ns.ProfitToday),
	)
	ns.SalesToday = 0
	ns.RevenueToday = 0
	ns.ProfitToday = 0
	return ns
}

// SellToWholesaler sells stock back to the market at half the list
// price per unit. The holding's average cost rides along as the cost
// basis on the sell record.
func (e *Engine) SellToWholesaler(s State, itemID string, qty int) (State, error) {
	if qty <= 0 {
		return s, fmt.Errorf("sell back %q: quantity must be positive", itemID)
	}
	item, ok := e.catalog.Item(itemID)
	if !ok {
		return s, fmt.Errorf("sell back %q: %w", itemID, ErrUnknownItem)
	}
	if restDay(s) {
		return s, fmt.Errorf("sell back %q: %w", itemID, ErrShopClosed)
	}
	i := findStock(s.Stock, itemID)
	if i < 0 || s.Stock[i].Quantity < qty {
		return s, fmt.Errorf("sell back %q x%d: %w", itemID, qty, ErrInsufficientStock)
	}

	unit := item.Price / 2
	ns := s.clone()
	h := ns.Stock[i]
	basis := h.AverageCost
	h.Quantity -= qty
	if h.Quantity == 0 {
		ns.Stock = append(ns.Stock[:i], ns.Stock[i+1:]...)
	} else {
		ns.Stock[i] = h
	}
	ns.Gold += unit * qty
	ns.Transactions = append(ns.Transactions,
		ledger.NewSell(ns.Clock.Timestamp(), itemID, qty, unit, basis, WholesalerLabel))
	return ns, nil
}

// MoveToPossessions pulls qty units out of the resale pipeline for
// personal use. The cost basis is dropped; possessions are unpriced.
func (e *Engine) MoveToPossessions(s State, itemID string, qty int) (State, error) {
	if qty <= 0 {
		return s, fmt.Errorf("move %q: quantity must be positive", itemID)
	}
	i := findStock(s.Stock, itemID)
	if i < 0 || s.Stock[i].Quantity < qty {
		return s, fmt.Errorf("move %q x%d: %w", itemID, qty, ErrInsufficientStock)
	}

	ns := s.clone()
	h := ns.Stock[i]
	h.Quantity -= qty
	if h.Quantity == 0 {
		ns.Stock = append(ns.Stock[:i], ns.Stock[i+1:]...)
	} else {
		ns.Stock[i] = h
	}

	if j := findPossession(ns.Possessions, itemID); j >= 0 {
		ns.Possessions[j].Quantity += qty
	} else {
		ns.Possessions = append(ns.Possessions, Holding{ItemID: itemID, Quantity: qty})
	}
	return ns, nil
}

// ConsumeItem uses up one possessed item, removing the holding at zero.
func (e *Engine) ConsumeItem(s State, itemID string) (State, error) {
	i := findPossession(s.Possessions, itemID)
	if i < 0 {
		return s, fmt.Errorf("consume %q: %w", itemID, ErrInsufficientStock)
	}

	ns := s.clone()
	ns.Possessions[i].Quantity--
	if ns.Possessions[i].Quantity == 0 {
		ns.Possessions = append(ns.Possessions[:i], ns.Possessions[i+1:]...)
	}
	return ns, nil
}
