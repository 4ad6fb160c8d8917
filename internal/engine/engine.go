package engine

import (
	"github.com/talgya/merchant-world/internal/calendar"
	"github.com/talgya/merchant-world/internal/catalog"
	"github.com/talgya/merchant-world/internal/entropy"
	"github.com/talgya/merchant-world/internal/fortune"
)

// Gameplay constants.
const (
	StartingGold    = 1000
	MorningHour     = 6  // Waking time after sleep.
	OpeningHour     = 9  // Shop may open for customers.
	ClosingHour     = 18 // Shop and market close.
	CustomerMinutes = 30 // Simulated cost of one customer interaction.

	WholesaleRate   = 0.9 // Wholesale discount off the list price.
	BuybackRate     = 0.5 // Wholesaler buyback fraction of list price.
	CounterRate     = 0.9 // Default discount step per haggle round.
	RevealLuckFee   = 50
	WholesalerLabel = "Wholesaler"
)

// Catalog is the injected item and customer-template lookup. The
// engine never defines content itself.
type Catalog interface {
	Item(id string) (catalog.Item, bool)
	Items() []catalog.Item
	Templates() []catalog.CustomerTemplate
}

// Engine executes commands against State values. It holds only the
// injected seams (catalog, random source); all game data lives in the
// State that flows through each command.
type Engine struct {
	catalog Catalog
	rng     entropy.Source
}

// New creates an engine with an injected catalog and random source.
func New(cat Catalog, src entropy.Source) *Engine {
	return &Engine{catalog: cat, rng: src}
}

// NewGame returns the starting state: day 1, 6:00, the given gold, and
// the first day's weather and luck already rolled.
func (e *Engine) NewGame(gold int) State {
	if gold <= 0 {
		gold = StartingGold
	}
	s := State{
		Gold:  gold,
		Clock: Clock{Day: 1, Hour: MorningHour},
	}
	s.Condition = e.rollCondition()
	return s
}

func (e *Engine) rollCondition() DailyCondition {
	return DailyCondition{
		Weather: fortune.RollWeather(e.rng),
		Luck:    fortune.RollLuck(e.rng),
	}
}

// restDay reports whether the market and shop are shuttered (Sundays).
func restDay(s State) bool {
	return s.Date().Weekday == calendar.Sunday
}
