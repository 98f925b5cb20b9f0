package store

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/jekabolt/grbpwr-stats/internal/entity"
	"github.com/jekabolt/grbpwr-stats/internal/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixturePath = "memory/testdata/shop.json"

// newTestDB connects to MYSQL_TEST_DSN (parseTime=true required), migrates
// and empties every table. Tests are skipped when the variable is unset.
func newTestDB(t *testing.T) *MYSQLStore {
	t.Helper()
	dsn := os.Getenv("MYSQL_TEST_DSN")
	if dsn == "" {
		t.Skip("MYSQL_TEST_DSN is not set")
	}
	ctx := context.Background()
	db, err := New(ctx, Config{
		DSN:         dsn,
		Automigrate: true,
	})
	require.NoError(t, err)
	t.Cleanup(db.Close)

	for _, q := range []string{
		"SET FOREIGN_KEY_CHECKS = 0",
		"DELETE FROM order_item",
		"DELETE FROM customer_order",
		"DELETE FROM product",
		"DELETE FROM category",
		"DELETE FROM customer",
		"DELETE FROM shop",
		"SET FOREIGN_KEY_CHECKS = 1",
	} {
		_, err = db.db.ExecContext(ctx, q)
		require.NoError(t, err)
	}
	return db
}

func readFixture(t *testing.T) *memory.Fixture {
	t.Helper()
	b, err := os.ReadFile(fixturePath)
	require.NoError(t, err)
	var f memory.Fixture
	require.NoError(t, json.Unmarshal(b, &f))
	return &f
}

func seed(t *testing.T, db *MYSQLStore, f *memory.Fixture) {
	t.Helper()
	ctx := context.Background()
	exec := func(query string, params map[string]any) {
		q, args, err := bindNamed(query, params)
		require.NoError(t, err)
		_, err = db.db.ExecContext(ctx, q, args...)
		require.NoError(t, err)
	}

	for _, sh := range f.Shops {
		exec(`INSERT INTO shop (id, owner_id, name, rating_avg, rating_count)
			VALUES (:id, :ownerId, :name, :ratingAvg, :ratingCount)`, map[string]any{
			"id":          sh.ID,
			"ownerId":     sh.OwnerID,
			"name":        sh.Name,
			"ratingAvg":   sh.RatingAvg,
			"ratingCount": sh.RatingCount,
		})
	}
	for _, b := range f.Buyers {
		exec(`INSERT INTO customer (id, first_name, last_name, email)
			VALUES (:id, :firstName, :lastName, :email)`, map[string]any{
			"id":        b.ID,
			"firstName": b.FirstName,
			"lastName":  b.LastName,
			"email":     b.Email,
		})
	}
	for _, c := range f.Categories {
		exec(`INSERT INTO category (id, name) VALUES (:id, :name)`, map[string]any{
			"id":   c.ID,
			"name": c.Name,
		})
	}
	for _, p := range f.Products {
		exec(`INSERT INTO product (id, shop_id, category_id, name)
			VALUES (:id, :shopId, :categoryId, :name)`, map[string]any{
			"id":         p.ID,
			"shopId":     p.ShopID,
			"categoryId": p.CategoryID,
			"name":       p.Name,
		})
	}
	for _, o := range f.Orders {
		exec(`INSERT INTO customer_order (id, shop_id, buyer_id, status, total, created_at)
			VALUES (:id, :shopId, :buyerId, :status, :total, :createdAt)`, map[string]any{
			"id":        o.ID,
			"shopId":    o.ShopID,
			"buyerId":   o.BuyerID,
			"status":    string(o.Status),
			"total":     o.Total,
			"createdAt": o.CreatedAt,
		})
		for _, it := range o.Items {
			exec(`INSERT INTO order_item (order_id, position, product_id, name, total_price)
				VALUES (:orderId, :position, :productId, :name, :totalPrice)`, map[string]any{
				"orderId":    o.ID,
				"position":   it.Position,
				"productId":  it.ProductID,
				"name":       it.Name,
				"totalPrice": it.TotalPrice,
			})
		}
	}
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

// TestStatisticsMatchesMemory checks every aggregation of the MySQL store
// against the in-memory store over the same fixture.
func TestStatisticsMatchesMemory(t *testing.T) {
	db := newTestDB(t)
	f := readFixture(t)
	seed(t, db, f)

	ctx := context.Background()
	got := db.Statistics()
	want := memory.New(f).Statistics()

	for _, shopID := range []string{"s1", "s2", "missing"} {
		filter := year2024(shopID)
		completed := year2024(shopID, entity.CompletedOrderStatuses...)

		wt, err := want.OrderTotals(ctx, filter)
		require.NoError(t, err)
		gt, err := got.OrderTotals(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, wt.Count, gt.Count, shopID)
		assert.True(t, wt.Amount.Equal(gt.Amount), shopID)

		ws, err := want.OrderCountByStatus(ctx, filter)
		require.NoError(t, err)
		gs, err := got.OrderCountByStatus(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, ws, gs, shopID)

		for _, rank := range []entity.BuyerRank{entity.BuyerRankOrderCount, entity.BuyerRankAmount} {
			wb, err := want.TopBuyers(ctx, completed, rank, 2)
			require.NoError(t, err)
			gb, err := got.TopBuyers(ctx, completed, rank, 2)
			require.NoError(t, err)
			require.Len(t, gb, len(wb), "%s by %s", shopID, rank)
			for i := range wb {
				assert.Equal(t, wb[i].BuyerID, gb[i].BuyerID)
				assert.Equal(t, wb[i].OrderCount, gb[i].OrderCount)
				assert.True(t, wb[i].Amount.Equal(gb[i].Amount))
				assert.Equal(t, wb[i].Buyer, gb[i].Buyer)
			}
		}

		wp, err := want.ProductTotals(ctx, filter)
		require.NoError(t, err)
		gp, err := got.ProductTotals(ctx, filter)
		require.NoError(t, err)
		require.Len(t, gp, len(wp), shopID)
		products := map[string]entity.ProductTotals{}
		for _, p := range gp {
			products[p.ProductID] = p
		}
		for _, w := range wp {
			g := products[w.ProductID]
			assert.Equal(t, w.ProductName, g.ProductName, w.ProductID)
			assert.Equal(t, w.Count, g.Count, w.ProductID)
			assert.True(t, w.Amount.Equal(g.Amount), w.ProductID)
		}

		wc, err := want.CategoryTotals(ctx, filter)
		require.NoError(t, err)
		gc, err := got.CategoryTotals(ctx, filter)
		require.NoError(t, err)
		require.Len(t, gc, len(wc), shopID)
		key := func(c entity.CategoryTotals) string {
			if c.CategoryID == nil {
				return ""
			}
			return *c.CategoryID
		}
		categories := map[string]entity.CategoryTotals{}
		for _, c := range gc {
			categories[key(c)] = c
		}
		for _, w := range wc {
			g := categories[key(w)]
			assert.Equal(t, w.CategoryName, g.CategoryName)
			assert.Equal(t, w.Count, g.Count)
			assert.True(t, w.Amount.Equal(g.Amount))
		}

		wd, err := want.DistinctBuyers(ctx, filter)
		require.NoError(t, err)
		gd, err := got.DistinctBuyers(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, wd, gd, shopID)
	}
}

func TestShops(t *testing.T) {
	db := newTestDB(t)
	seed(t, db, readFixture(t))
	ctx := context.Background()

	sh, err := db.Shops().GetShopByOwner(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "s1", sh.ID)
	assert.Equal(t, "North Wind", sh.Name)

	_, err = db.Shops().GetShopByOwner(ctx, "nobody")
	assert.ErrorIs(t, err, entity.ErrShopNotFound)

	r, err := db.Shops().GetShopRating(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "4.5", r.Avg.String())
	assert.Equal(t, 12, r.Count)

	_, err = db.Shops().GetShopRating(ctx, "missing")
	assert.ErrorIs(t, err, entity.ErrShopNotFound)

	assert.NoError(t, db.Ping(ctx))
}

func TestOrderFilterSQL(t *testing.T) {
	where, params := orderFilterSQL(year2024("s1"))
	assert.NotContains(t, where, ":statuses")
	assert.Equal(t, "s1", params["shopId"])

	where, params = orderFilterSQL(year2024("s1", entity.CompletedOrderStatuses...))
	assert.Contains(t, where, "co.status IN (:statuses)")
	assert.Equal(t, []string{"confirmed", "shipped", "delivered"}, params["statuses"])

	q, args, err := bindNamed("SELECT 1 FROM customer_order co WHERE "+where, params)
	require.NoError(t, err)
	assert.Contains(t, q, "IN (?, ?, ?)")
	assert.Len(t, args, 6)
}

func TestRankColumn(t *testing.T) {
	col, err := rankColumn(entity.BuyerRankOrderCount)
	require.NoError(t, err)
	assert.Equal(t, "order_count", col)

	col, err = rankColumn(entity.BuyerRankAmount)
	require.NoError(t, err)
	assert.Equal(t, "amount", col)

	_, err = rankColumn(entity.BuyerRank(42))
	assert.Error(t, err)
}
