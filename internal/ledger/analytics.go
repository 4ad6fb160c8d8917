package ledger

import "sort"

// ItemAnalysis is the per-item rollup of the ledger.
type ItemAnalysis struct {
	ItemID               string
	ItemName             string
	SalesCount           int // Units sold.
	TotalRevenue         int
	PurchaseCount        int // Units bought.
	TotalSpend           int
	AverageSellPrice     int // floor(TotalRevenue / SalesCount), 0 with no sales.
	AveragePurchasePrice int
	Profit               float64 // Revenue minus cost basis of units sold.
	MarginPct            float64 // Profit / TotalRevenue * 100, 0 with no revenue.
}

// DailyAnalysis is the per-day rollup of the ledger.
type DailyAnalysis struct {
	Day              int
	TotalRevenue     int
	TotalSpend       int
	Profit           float64 // Per-sale (price - cost basis) * quantity.
	TransactionCount int
}

// AggregateByItem rolls the ledger up per item, ordered by total
// revenue descending. nameOf resolves item IDs to display names and
// may be nil.
func AggregateByItem(records []Record, nameOf func(itemID string) string) []ItemAnalysis {
	byItem := make(map[string]*ItemAnalysis)
	order := make([]string, 0)

	for _, r := range records {
		a, ok := byItem[r.ItemID]
		if !ok {
			a = &ItemAnalysis{ItemID: r.ItemID}
			if nameOf != nil {
				a.ItemName = nameOf(r.ItemID)
			}
			byItem[r.ItemID] = a
			order = append(order, r.ItemID)
		}

		switch r.Kind {
		case KindSell:
			a.SalesCount += r.Quantity
			a.TotalRevenue += r.TotalPrice
			if r.CostBasis != nil {
				a.Profit += float64(r.TotalPrice) - *r.CostBasis*float64(r.Quantity)
			} else {
				// No recorded cost: contributes full revenue as profit.
				a.Profit += float64(r.TotalPrice)
			}
		case KindBuy:
			a.PurchaseCount += r.Quantity
			a.TotalSpend += r.TotalPrice
		}
	}

	out := make([]ItemAnalysis, 0, len(byItem))
	for _, id := range order {
		a := byItem[id]
		if a.SalesCount > 0 {
			a.AverageSellPrice = a.TotalRevenue / a.SalesCount
		}
		if a.PurchaseCount > 0 {
			a.AveragePurchasePrice = a.TotalSpend / a.PurchaseCount
		}
		if a.TotalRevenue > 0 {
			a.MarginPct = a.Profit / float64(a.TotalRevenue) * 100
		}
		out = append(out, *a)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TotalRevenue != out[j].TotalRevenue {
			return out[i].TotalRevenue > out[j].TotalRevenue
		}
		return out[i].ItemID < out[j].ItemID
	})
	return out
}

// RankByMargin returns a copy of the analyses ordered by margin
// descending, for ranked report views.
func RankByMargin(analyses []ItemAnalysis) []ItemAnalysis {
	out := make([]ItemAnalysis, len(analyses))
	copy(out, analyses)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].MarginPct != out[j].MarginPct {
			return out[i].MarginPct > out[j].MarginPct
		}
		return out[i].ItemID < out[j].ItemID
	})
	return out
}

// AggregateByDay buckets the ledger per day from the earliest
// transaction through currentDay inclusive. Days with no activity
// appear zeroed. Ordered by day ascending.
func AggregateByDay(records []Record, currentDay int) []DailyAnalysis {
	byDay := make(map[int]*DailyAnalysis)

	minDay := currentDay
	for _, r := range records {
		if r.At.Day < minDay {
			minDay = r.At.Day
		}
	}
	for d := minDay; d <= currentDay; d++ {
		byDay[d] = &DailyAnalysis{Day: d}
	}

	for _, r := range records {
		a, ok := byDay[r.At.Day]
		if !ok {
			// Record after currentDay; still bucketed.
			a = &DailyAnalysis{Day: r.At.Day}
			byDay[r.At.Day] = a
		}
		a.TransactionCount++

		switch r.Kind {
		case KindSell:
			a.TotalRevenue += r.TotalPrice
			// Missing cost basis counts as zero cost, same as the
			// per-item rollup.
			basis := 0.0
			if r.CostBasis != nil {
				basis = *r.CostBasis
			}
			a.Profit += (float64(r.UnitPrice) - basis) * float64(r.Quantity)
		case KindBuy:
			a.TotalSpend += r.TotalPrice
		}
	}

	out := make([]DailyAnalysis, 0, len(byDay))
	for _, a := range byDay {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}
