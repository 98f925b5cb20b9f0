package memory

import (
	"context"
	"testing"
	"time"

	"github.com/jekabolt/grbpwr-stats/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Load("testdata/shop.json")
	require.NoError(t, err)
	return s
}

func year2024(shopID string, statuses ...entity.OrderStatusName) entity.OrderFilter {
	return entity.OrderFilter{
		ShopID: shopID,
		Period: entity.TimeRange{
			From: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2024, 12, 31, 23, 59, 59, int(999*time.Millisecond), time.UTC),
		},
		Statuses: statuses,
	}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

func TestLoad(t *testing.T) {
	s := loadTestStore(t)
	assert.Len(t, s.orders, 7)
	assert.Len(t, s.shops, 2)

	// sorted by creation time
	assert.Equal(t, "o5", s.orders[0].ID)
	for i := 1; i < len(s.orders); i++ {
		assert.False(t, s.orders[i].CreatedAt.Before(s.orders[i-1].CreatedAt))
	}

	_, err := Load("testdata/missing.json")
	assert.Error(t, err)
}

func TestNewGeneratesOrderIDs(t *testing.T) {
	s := New(&Fixture{Orders: []entity.Order{{ShopID: "s1"}}})
	require.Len(t, s.orders, 1)
	assert.NotEmpty(t, s.orders[0].ID)
}

func TestOrderTotals(t *testing.T) {
	ctx := context.Background()
	st := loadTestStore(t).Statistics()

	tot, err := st.OrderTotals(ctx, year2024("s1"))
	require.NoError(t, err)
	assert.Equal(t, 5, tot.Count)
	assertDecimal(t, "370", tot.Amount)

	tot, err = st.OrderTotals(ctx, year2024("nope"))
	require.NoError(t, err)
	assert.Equal(t, 0, tot.Count)
	assert.True(t, tot.Amount.IsZero())
}

func TestOrderTotalsWindowIsInclusive(t *testing.T) {
	ctx := context.Background()
	st := loadTestStore(t).Statistics()

	at := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	tot, err := st.OrderTotals(ctx, entity.OrderFilter{
		ShopID: "s1",
		Period: entity.TimeRange{From: at, To: at},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, tot.Count)
	assertDecimal(t, "80", tot.Amount)
}

func TestOrderCountByStatus(t *testing.T) {
	st := loadTestStore(t).Statistics()

	rows, err := st.OrderCountByStatus(context.Background(), year2024("s1"))
	require.NoError(t, err)
	assert.Equal(t, []entity.StatusCount{
		{Status: entity.OrderStatusDelivered, Count: 2},
		{Status: entity.OrderStatusConfirmed, Count: 1},
		{Status: entity.OrderStatusPending, Count: 1},
		{Status: entity.OrderStatusShipped, Count: 1},
	}, rows)
}

func TestTopBuyers(t *testing.T) {
	ctx := context.Background()
	st := loadTestStore(t).Statistics()
	f := year2024("s1", entity.CompletedOrderStatuses...)

	byCount, err := st.TopBuyers(ctx, f, entity.BuyerRankOrderCount, 5)
	require.NoError(t, err)
	require.Len(t, byCount, 3)
	assert.Equal(t, "b1", byCount[0].BuyerID)
	assert.Equal(t, 2, byCount[0].OrderCount)
	assertDecimal(t, "80", byCount[0].Amount)
	require.NotNil(t, byCount[0].Buyer)
	assert.Equal(t, "Ann", byCount[0].Buyer.FirstName)
	assert.Equal(t, "b2", byCount[1].BuyerID)
	assert.Equal(t, "b9", byCount[2].BuyerID)
	assert.Nil(t, byCount[2].Buyer)

	byAmount, err := st.TopBuyers(ctx, f, entity.BuyerRankAmount, 2)
	require.NoError(t, err)
	require.Len(t, byAmount, 2)
	assert.Equal(t, "b9", byAmount[0].BuyerID)
	assertDecimal(t, "200", byAmount[0].Amount)
	// b1 and b2 tie on 80, lower id wins
	assert.Equal(t, "b1", byAmount[1].BuyerID)
}

func TestProductTotals(t *testing.T) {
	st := loadTestStore(t).Statistics()

	rows, err := st.ProductTotals(context.Background(), year2024("s1"))
	require.NoError(t, err)
	require.Len(t, rows, 4)

	byID := map[string]entity.ProductTotals{}
	for _, r := range rows {
		byID[r.ProductID] = r
	}
	// first line item name wins over the later rename
	assert.Equal(t, "Runner", byID["p1"].ProductName)
	assert.Equal(t, 2, byID["p1"].Count)
	assertDecimal(t, "60", byID["p1"].Amount)
	assert.Equal(t, 2, byID["p3"].Count)
	assertDecimal(t, "220", byID["p3"].Amount)
	assert.Equal(t, "Cap", byID["p2"].ProductName)
	assert.Equal(t, 1, byID["p4"].Count)
}

func TestCategoryTotals(t *testing.T) {
	st := loadTestStore(t).Statistics()

	rows, err := st.CategoryTotals(context.Background(), year2024("s1"))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	var uncategorized []entity.CategoryTotals
	byID := map[string]entity.CategoryTotals{}
	for _, r := range rows {
		if r.CategoryID == nil {
			uncategorized = append(uncategorized, r)
			continue
		}
		byID[*r.CategoryID] = r
	}
	require.Len(t, uncategorized, 1)
	assert.Equal(t, entity.UncategorizedName, uncategorized[0].CategoryName)
	assert.Equal(t, 3, uncategorized[0].Count)
	assertDecimal(t, "230", uncategorized[0].Amount)

	assert.Equal(t, "Shoes", byID["c1"].CategoryName)
	assertDecimal(t, "60", byID["c1"].Amount)
	assert.Equal(t, "Hats", byID["c2"].CategoryName)
	assert.Equal(t, 1, byID["c2"].Count)
}

func TestDistinctBuyers(t *testing.T) {
	ctx := context.Background()
	st := loadTestStore(t).Statistics()

	n, err := st.DistinctBuyers(ctx, year2024("s1"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	f := year2024("s1")
	f.Period.From = f.Period.From.AddDate(-1, 0, 0)
	f.Period.To = f.Period.To.AddDate(-1, 0, 0)
	n, err = st.DistinctBuyers(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestShops(t *testing.T) {
	ctx := context.Background()
	shops := loadTestStore(t).Shops()

	sh, err := shops.GetShopByOwner(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "s1", sh.ID)

	_, err = shops.GetShopByOwner(ctx, "nobody")
	assert.ErrorIs(t, err, entity.ErrShopNotFound)

	r, err := shops.GetShopRating(ctx, "s1")
	require.NoError(t, err)
	assertDecimal(t, "4.5", r.Avg)
	assert.Equal(t, 12, r.Count)

	_, err = shops.GetShopRating(ctx, "nope")
	assert.ErrorIs(t, err, entity.ErrShopNotFound)
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := loadTestStore(t)

	_, err := s.Statistics().OrderTotals(ctx, year2024("s1"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, s.Ping(ctx), context.Canceled)
}
