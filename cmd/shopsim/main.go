// Command shopsim runs an autonomous shopkeeping simulation: buy from
// the wholesaler each morning, put stock on display, haggle with
// customers until closing, and report the ledger at the end.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/dustin/go-humanize"

	"github.com/talgya/merchant-world/internal/calendar"
	"github.com/talgya/merchant-world/internal/catalog"
	"github.com/talgya/merchant-world/internal/config"
	"github.com/talgya/merchant-world/internal/engine"
	"github.com/talgya/merchant-world/internal/entropy"
	"github.com/talgya/merchant-world/internal/ledger"
	"github.com/talgya/merchant-world/internal/persistence"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	slog.Info("merchant-world shop simulation",
		"days", cfg.Days, "seed", cfg.Seed, "starting_gold", cfg.StartingGold)

	// ── Catalog ───────────────────────────────────────────────────────
	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		cat, err = catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			slog.Error("failed to load catalog", "path", cfg.CatalogPath, "error", err)
			os.Exit(1)
		}
		slog.Info("catalog loaded", "path", cfg.CatalogPath, "items", len(cat.Items()))
	}

	// ── Engine ────────────────────────────────────────────────────────
	var src entropy.Source
	if cfg.Seed != 0 {
		src = entropy.NewSeeded(cfg.Seed)
	} else {
		src = entropy.Default()
	}
	eng := engine.New(cat, src)
	st := eng.NewGame(cfg.StartingGold)

	// ── Day loop ──────────────────────────────────────────────────────
	for st.Clock.Day <= cfg.Days {
		date := st.Date()
		slog.Info("day begins",
			"day", st.Clock.Day,
			"date", fmt.Sprintf("%d-%02d-%02d %s, %s", date.Year, date.Month, date.Day, date.Weekday, date.Season),
			"weather", st.Condition.Weather,
			"gold", st.Gold)

		if date.Weekday == calendar.Sunday {
			slog.Info("rest day, shop stays shut", "day", st.Clock.Day)
			st = eng.SleepUntilMorning(st)
			continue
		}

		if cfg.RevealLuck {
			if ns, err := eng.RevealLuck(st); err == nil {
				st = ns
				slog.Info("fortune teller consulted", "luck", st.Condition.Luck)
			}
		}

		st = restock(eng, cat, st, cfg.SpendFraction)
		st = listEverything(eng, st, cat, cfg.Markup)

		// Open the doors.
		if wait := (engine.OpeningHour-st.Clock.Hour)*60 - st.Clock.Minute; wait > 0 {
			st = eng.AdvanceTime(st, wait)
		}

		st = serveUntilClose(eng, st)
		st = eng.SleepUntilMorning(st)
	}

	report(cat, st)

	// ── Archive ───────────────────────────────────────────────────────
	if cfg.DatabasePath != "" {
		if err := archive(cfg.DatabasePath, st, cfg.Days); err != nil {
			slog.Error("failed to archive ledger", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("simulation complete", "days", cfg.Days, "final_gold", st.Gold)
}

// restock spends up to spendFraction of current gold at the
// wholesaler, one unit at a time, cheapest items first so a bad luck
// day still fills some shelves.
func restock(eng *engine.Engine, cat *catalog.Catalog, st engine.State, spendFraction float64) engine.State {
	items := cat.Items()
	sort.Slice(items, func(i, j int) bool { return items[i].Price < items[j].Price })

	reserve := st.Gold - int(float64(st.Gold)*spendFraction)
	for {
		bought := false
		for _, item := range items {
			if st.Gold <= reserve {
				break
			}
			ns, err := eng.Purchase(st, item.ID, 1)
			if err != nil {
				if errors.Is(err, engine.ErrInsufficientFunds) {
					continue
				}
				slog.Warn("purchase failed", "item", item.ID, "error", err)
				continue
			}
			st = ns
			bought = true
		}
		if !bought || st.Gold <= reserve {
			break
		}
	}
	slog.Info("restocked", "holdings", len(st.Stock), "gold", st.Gold)
	return st
}

// listEverything moves all stock onto the display at catalog price
// times markup.
func listEverything(eng *engine.Engine, st engine.State, cat *catalog.Catalog, markup float64) engine.State {
	for _, h := range st.Stock {
		item, ok := cat.Item(h.ItemID)
		if !ok {
			continue
		}
		price := int(float64(item.Price) * markup)
		ns, err := eng.ListForSale(st, h.ItemID, h.Quantity, price)
		if err != nil {
			slog.Warn("listing failed", "item", h.ItemID, "error", err)
			continue
		}
		st = ns
	}
	return st
}

// serveUntilClose runs the shop floor until the engine closes the day
// (sold out or past closing time). Each customer is sold to when the
// listed price fits their budget, haggled down otherwise, and refused
// only when the wanted item is not on display.
func serveUntilClose(eng *engine.Engine, st engine.State) engine.State {
	for {
		ns, err := eng.NextCustomer(st)
		if err != nil {
			slog.Warn("shop floor stalled", "error", err)
			return eng.CloseForDay(st)
		}
		st = ns
		if st.Customer == nil {
			// Day closed inside NextCustomer.
			return st
		}

		c := st.Customer
		slog.Debug("customer arrives",
			"name", c.Name, "wants", c.WantItemID, "says", c.Dialogue)

		if c.ListedPrice == 0 {
			st, _ = eng.Refuse(st)
			continue
		}

		ns, err = eng.Sell(st)
		switch {
		case err == nil:
			st = ns
		case errors.Is(err, engine.ErrBudgetExceeded):
			for st.Customer != nil {
				st, err = eng.Discount(st, 0)
				if err != nil {
					slog.Warn("negotiation failed", "error", err)
					st, _ = eng.Refuse(st)
					break
				}
			}
		default:
			slog.Warn("sale failed", "error", err)
			st, _ = eng.Refuse(st)
		}
	}
}

// report prints the per-item and per-day ledger rollups.
func report(cat *catalog.Catalog, st engine.State) {
	nameOf := func(id string) string {
		if item, ok := cat.Item(id); ok {
			return item.Name
		}
		return id
	}

	byItem := ledger.AggregateByItem(st.Transactions, nameOf)
	fmt.Println()
	fmt.Println("── Sales by item ──────────────────────────────────")
	for _, a := range byItem {
		fmt.Printf("%-18s sold %3d for %7sg  spent %7sg  profit %8.1f (%.1f%%)\n",
			a.ItemName, a.SalesCount,
			humanize.Comma(int64(a.TotalRevenue)),
			humanize.Comma(int64(a.TotalSpend)),
			a.Profit, a.MarginPct)
	}

	fmt.Println()
	fmt.Println("── Best margins ───────────────────────────────────")
	for i, a := range ledger.RankByMargin(byItem) {
		if i >= 3 {
			break
		}
		fmt.Printf("%d. %s (%.1f%%)\n", i+1, a.ItemName, a.MarginPct)
	}

	fmt.Println()
	fmt.Println("── Daily totals ───────────────────────────────────")
	for _, d := range ledger.AggregateByDay(st.Transactions, st.Clock.Day) {
		weekday := calendar.DateFor(d.Day).Weekday
		fmt.Printf("day %3d (%s)  revenue %7sg  spend %7sg  profit %8.1f  tx %d\n",
			d.Day, weekday,
			humanize.Comma(int64(d.TotalRevenue)),
			humanize.Comma(int64(d.TotalSpend)),
			d.Profit, d.TransactionCount)
	}
	fmt.Println()
}

// archive writes the full ledger and daily rollups to SQLite.
func archive(path string, st engine.State, days int) error {
	db, err := persistence.Open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.ArchiveLedger(st.Transactions); err != nil {
		return err
	}
	return db.SaveDailyAnalysis(ledger.AggregateByDay(st.Transactions, days))
}
