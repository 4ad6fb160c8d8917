package engine

import (
	"log/slog"
)

// advance moves the clock on an already-cloned state, normalizing
// minutes into hours and hours into days. Every midnight crossing
// re-rolls the day's weather and luck exactly once and hides luck
// again.
func (e *Engine) advance(ns *State, minutes int) {
	ns.Clock.Minute += minutes
	for ns.Clock.Minute >= 60 {
		ns.Clock.Minute -= 60
		ns.Clock.Hour++
	}
	for ns.Clock.Hour >= 24 {
		ns.Clock.Hour -= 24
		ns.Clock.Day++
		e.rollDay(ns)
	}
}

func (e *Engine) rollDay(ns *State) {
	ns.Condition = e.rollCondition()

	d := ns.Date()
	slog.Info("day rolled",
		"day", ns.Clock.Day,
		"date", d,
		"weekday", d.Weekday,
		"season", d.Season,
		"weather", ns.Condition.Weather,
	)
}

// AdvanceTime moves the clock forward by the given simulated minutes.
func (e *Engine) AdvanceTime(s State, minutes int) State {
	if minutes <= 0 {
		return s
	}
	ns := s.clone()
	e.advance(&ns, minutes)
	return ns
}

// SleepUntilMorning advances to 6:00 of the next day.
func (e *Engine) SleepUntilMorning(s State) State {
	ns := s.clone()
	minutes := (24-ns.Clock.Hour)*60 - ns.Clock.Minute + MorningHour*60
	e.advance(&ns, minutes)
	return ns
}

// RevealLuck pays the fortune teller to uncover the day's luck tier.
// Costs a fixed fee and half an hour.
func (e *Engine) RevealLuck(s State) (State, error) {
	if s.Gold < RevealLuckFee {
		return s, ErrInsufficientFunds
	}
	ns := s.clone()
	ns.Gold -= RevealLuckFee
	ns.Condition.LuckRevealed = true
	e.advance(&ns, CustomerMinutes)
	return ns, nil
}
