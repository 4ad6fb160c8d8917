package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(day int) Timestamp {
	return Timestamp{Day: day, Hour: 10, Minute: 0}
}

func TestAggregateByItem(t *testing.T) {
	records := []Record{
		NewBuy(ts(1), "herb", 10, 9, "Wholesaler"),
		NewSell(ts(1), "herb", 1, 12, 9, "Town Girl"),
		NewSell(ts(2), "herb", 1, 14, 9, "Old Man"),
		NewBuy(ts(1), "iron_sword", 1, 450, "Wholesaler"),
		NewSell(ts(2), "iron_sword", 1, 600, 450, "Traveling Warrior"),
	}

	names := map[string]string{"herb": "Herb", "iron_sword": "Iron Sword"}
	out := AggregateByItem(records, func(id string) string { return names[id] })
	require.Len(t, out, 2)

	// Ordered by revenue descending: sword 600, herb 26.
	sword := out[0]
	assert.Equal(t, "iron_sword", sword.ItemID)
	assert.Equal(t, "Iron Sword", sword.ItemName)
	assert.Equal(t, 1, sword.SalesCount)
	assert.Equal(t, 600, sword.TotalRevenue)
	assert.Equal(t, 600, sword.AverageSellPrice)
	assert.Equal(t, 450, sword.TotalSpend)
	assert.InDelta(t, 150, sword.Profit, 1e-9)
	assert.InDelta(t, 25, sword.MarginPct, 1e-9)

	herb := out[1]
	assert.Equal(t, 2, herb.SalesCount)
	assert.Equal(t, 26, herb.TotalRevenue)
	assert.Equal(t, 13, herb.AverageSellPrice)
	assert.Equal(t, 10, herb.PurchaseCount)
	assert.Equal(t, 90, herb.TotalSpend)
	assert.Equal(t, 9, herb.AveragePurchasePrice)
	assert.InDelta(t, 26-18, herb.Profit, 1e-9)
}

func TestAggregateByItemMissingCostBasis(t *testing.T) {
	// A legacy record without cost basis contributes zero to the cost
	// term, never an error.
	legacy := Record{
		ID: "legacy", At: ts(1), Kind: KindSell,
		ItemID: "herb", Quantity: 2, UnitPrice: 15, TotalPrice: 30,
	}
	out := AggregateByItem([]Record{legacy}, nil)
	require.Len(t, out, 1)
	assert.InDelta(t, 30, out[0].Profit, 1e-9)
	assert.InDelta(t, 100, out[0].MarginPct, 1e-9)
	assert.Empty(t, out[0].ItemName)
}

func TestAggregateByItemNoSales(t *testing.T) {
	out := AggregateByItem([]Record{NewBuy(ts(1), "herb", 3, 9, "Wholesaler")}, nil)
	require.Len(t, out, 1)
	assert.Equal(t, 0, out[0].AverageSellPrice)
	assert.Zero(t, out[0].MarginPct)
	assert.Zero(t, out[0].Profit)
}

func TestRankByMargin(t *testing.T) {
	records := []Record{
		NewSell(ts(1), "herb", 1, 20, 18, "A"),        // margin 10%
		NewSell(ts(1), "iron_sword", 1, 600, 300, "B"), // margin 50%
	}
	byRevenue := AggregateByItem(records, nil)
	require.Equal(t, "iron_sword", byRevenue[0].ItemID)

	byMargin := RankByMargin(byRevenue)
	assert.Equal(t, "iron_sword", byMargin[0].ItemID)
	assert.Equal(t, "herb", byMargin[1].ItemID)

	// Input slice untouched.
	assert.Equal(t, "iron_sword", byRevenue[0].ItemID)
}

func TestAggregateByDayZeroFillsQuietDays(t *testing.T) {
	records := []Record{
		NewBuy(ts(2), "herb", 5, 9, "Wholesaler"),
		NewSell(ts(2), "herb", 1, 14, 9, "Town Girl"),
		NewSell(ts(5), "herb", 1, 14, 9, "Old Man"),
	}
	out := AggregateByDay(records, 6)
	require.Len(t, out, 5) // Days 2 through 6.

	assert.Equal(t, 2, out[0].Day)
	assert.Equal(t, 3, out[0].TransactionCount)
	assert.Equal(t, 14, out[0].TotalRevenue)
	assert.Equal(t, 45, out[0].TotalSpend)
	assert.InDelta(t, 5, out[0].Profit, 1e-9)

	// Days 3 and 4 quiet but present.
	assert.Equal(t, 3, out[1].Day)
	assert.Zero(t, out[1].TransactionCount)
	assert.Equal(t, 4, out[2].Day)
	assert.Zero(t, out[2].TotalRevenue)

	assert.Equal(t, 5, out[3].Day)
	assert.InDelta(t, 5, out[3].Profit, 1e-9)

	assert.Equal(t, 6, out[4].Day)
	assert.Zero(t, out[4].TransactionCount)
}

func TestAggregateByDayEmptyLedger(t *testing.T) {
	out := AggregateByDay(nil, 3)
	require.Len(t, out, 1)
	assert.Equal(t, 3, out[0].Day)
	assert.Zero(t, out[0].TransactionCount)
}

func TestRecordsCarryUniqueIDs(t *testing.T) {
	a := NewBuy(ts(1), "herb", 1, 9, "Wholesaler")
	b := NewBuy(ts(1), "herb", 1, 9, "Wholesaler")
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)

	s := NewSell(ts(1), "herb", 2, 14, 9.5, "Mage")
	require.NotNil(t, s.CostBasis)
	assert.InDelta(t, 9.5, *s.CostBasis, 1e-9)
	assert.Equal(t, 28, s.TotalPrice)
}
