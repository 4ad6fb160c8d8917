// Package fortune provides the daily weather and luck draws and the
// price multipliers derived from luck. Each roll is a single uniform
// draw over [0, 100) mapped through a fixed cumulative-probability
// table.
package fortune

import (
	"github.com/talgya/merchant-world/internal/entropy"
)

// Weather is the visible daily condition.
type Weather int

const (
	Sunny Weather = iota
	Rain
	Snow
	Storm
	Aurora
)

// String returns a human-readable weather name.
func (w Weather) String() string {
	switch w {
	case Sunny:
		return "Sunny"
	case Rain:
		return "Rain"
	case Snow:
		return "Snow"
	case Storm:
		return "Storm"
	case Aurora:
		return "Aurora"
	default:
		return "Unknown"
	}
}

// Luck is the hidden daily modifier, ordered best to worst.
type Luck int

const (
	Divine Luck = iota
	Miracle
	Blessing
	Fortune
	Normal
	BadOmen
	Curse
	Doom
	Apocalypse
)

// String returns a human-readable luck tier name.
func (l Luck) String() string {
	switch l {
	case Divine:
		return "Divine"
	case Miracle:
		return "Miracle"
	case Blessing:
		return "Blessing"
	case Fortune:
		return "Fortune"
	case Normal:
		return "Normal"
	case BadOmen:
		return "BadOmen"
	case Curse:
		return "Curse"
	case Doom:
		return "Doom"
	case Apocalypse:
		return "Apocalypse"
	default:
		return "Unknown"
	}
}

// Probability bands in percent. Each table must sum to exactly 100;
// the luck table is symmetric around Normal, the most probable tier.
var weatherBands = []struct {
	weather Weather
	pct     int
}{
	{Sunny, 40},
	{Rain, 25},
	{Snow, 15},
	{Storm, 15},
	{Aurora, 5},
}

var luckBands = []struct {
	luck Luck
	pct  int
}{
	{Divine, 2},
	{Miracle, 5},
	{Blessing, 10},
	{Fortune, 15},
	{Normal, 36},
	{BadOmen, 15},
	{Curse, 10},
	{Doom, 5},
	{Apocalypse, 2},
}

// RollWeather draws the day's weather.
func RollWeather(src entropy.Source) Weather {
	draw := src.Float() * 100
	cum := 0.0
	for _, band := range weatherBands {
		cum += float64(band.pct)
		if draw < cum {
			return band.weather
		}
	}
	return weatherBands[len(weatherBands)-1].weather
}

// RollLuck draws the day's luck tier.
func RollLuck(src entropy.Source) Luck {
	draw := src.Float() * 100
	cum := 0.0
	for _, band := range luckBands {
		cum += float64(band.pct)
		if draw < cum {
			return band.luck
		}
	}
	return luckBands[len(luckBands)-1].luck
}

// PurchaseCostMultiplier scales wholesale prices when the merchant buys
// stock. Lower favors the player; it rises monotonically as luck
// worsens.
func PurchaseCostMultiplier(l Luck) float64 {
	switch l {
	case Divine:
		return 0.33
	case Miracle:
		return 0.50
	case Blessing:
		return 0.70
	case Fortune:
		return 0.85
	case Normal:
		return 1.0
	case BadOmen:
		return 1.1
	case Curse:
		return 1.3
	case Doom:
		return 1.6
	case Apocalypse:
		return 2.5
	default:
		return 1.0
	}
}

// CustomerBudgetMultiplier scales customer spending power. Higher
// favors the player; it falls monotonically as luck worsens.
func CustomerBudgetMultiplier(l Luck) float64 {
	switch l {
	case Divine:
		return 3.00
	case Miracle:
		return 2.00
	case Blessing:
		return 1.50
	case Fortune:
		return 1.10
	case Normal:
		return 1.00
	case BadOmen:
		return 0.90
	case Curse:
		return 0.75
	case Doom:
		return 0.50
	case Apocalypse:
		return 0.20
	default:
		return 1.0
	}
}
