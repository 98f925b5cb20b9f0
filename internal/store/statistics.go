package store

import (
	"context"
	"fmt"

	"github.com/jekabolt/grbpwr-stats/internal/dependency"
	"github.com/jekabolt/grbpwr-stats/internal/entity"
	"github.com/shopspring/decimal"
)

type statisticsStore struct {
	*MYSQLStore
}

// Statistics returns an object implementing dependency.Statistics interface
func (ms *MYSQLStore) Statistics() dependency.Statistics {
	return &statisticsStore{MYSQLStore: ms}
}

// orderFilterSQL renders the WHERE conditions of f against customer_order co.
func orderFilterSQL(f entity.OrderFilter) (string, map[string]any) {
	where := `co.shop_id = :shopId AND co.created_at >= :from AND co.created_at <= :to`
	params := map[string]any{
		"shopId": f.ShopID,
		"from":   f.Period.From,
		"to":     f.Period.To,
	}
	if len(f.Statuses) > 0 {
		statuses := make([]string, 0, len(f.Statuses))
		for _, st := range f.Statuses {
			statuses = append(statuses, string(st))
		}
		where += ` AND co.status IN (:statuses)`
		params["statuses"] = statuses
	}
	return where, params
}

func (ss *statisticsStore) OrderTotals(ctx context.Context, f entity.OrderFilter) (entity.OrderTotals, error) {
	ctx, cancel := ss.withTimeout(ctx)
	defer cancel()

	where, params := orderFilterSQL(f)
	query := fmt.Sprintf(`
		SELECT COUNT(*) AS cnt, COALESCE(SUM(co.total), 0) AS amount
		FROM customer_order co
		WHERE %s
	`, where)
	t, err := QueryNamedOne[entity.OrderTotals](ctx, ss.DB(), query, params)
	if err != nil {
		return entity.OrderTotals{}, fmt.Errorf("order totals: %w", err)
	}
	return t, nil
}

func (ss *statisticsStore) OrderCountByStatus(ctx context.Context, f entity.OrderFilter) ([]entity.StatusCount, error) {
	ctx, cancel := ss.withTimeout(ctx)
	defer cancel()

	where, params := orderFilterSQL(f)
	query := fmt.Sprintf(`
		SELECT co.status, COUNT(*) AS cnt
		FROM customer_order co
		WHERE %s
		GROUP BY co.status
		ORDER BY cnt DESC, co.status ASC
	`, where)
	rows, err := QueryListNamed[entity.StatusCount](ctx, ss.DB(), query, params)
	if err != nil {
		return nil, fmt.Errorf("orders by status: %w", err)
	}
	return rows, nil
}

func rankColumn(rank entity.BuyerRank) (string, error) {
	switch rank {
	case entity.BuyerRankOrderCount:
		return "order_count", nil
	case entity.BuyerRankAmount:
		return "amount", nil
	default:
		return "", fmt.Errorf("unknown buyer rank %d", rank)
	}
}

func (ss *statisticsStore) TopBuyers(ctx context.Context, f entity.OrderFilter, rank entity.BuyerRank, limit int) ([]entity.BuyerTotals, error) {
	col, err := rankColumn(rank)
	if err != nil {
		return nil, err
	}
	ctx, cancel := ss.withTimeout(ctx)
	defer cancel()

	where, params := orderFilterSQL(f)
	params["limit"] = limit
	query := fmt.Sprintf(`
		SELECT t.buyer_id, t.order_count, t.amount,
			c.id AS customer_id, c.first_name, c.last_name, c.email
		FROM (
			SELECT co.buyer_id, COUNT(*) AS order_count, COALESCE(SUM(co.total), 0) AS amount
			FROM customer_order co
			WHERE %[1]s
			GROUP BY co.buyer_id
			ORDER BY %[2]s DESC, co.buyer_id ASC
			LIMIT :limit
		) t
		LEFT JOIN customer c ON c.id = t.buyer_id
		ORDER BY t.%[2]s DESC, t.buyer_id ASC
	`, where, col)

	rows, err := QueryListNamed[struct {
		BuyerID    string          `db:"buyer_id"`
		OrderCount int             `db:"order_count"`
		Amount     decimal.Decimal `db:"amount"`
		CustomerID *string         `db:"customer_id"`
		FirstName  *string         `db:"first_name"`
		LastName   *string         `db:"last_name"`
		Email      *string         `db:"email"`
	}](ctx, ss.DB(), query, params)
	if err != nil {
		return nil, fmt.Errorf("top buyers by %s: %w", rank, err)
	}

	res := make([]entity.BuyerTotals, len(rows))
	for i, r := range rows {
		res[i] = entity.BuyerTotals{
			BuyerID:    r.BuyerID,
			OrderCount: r.OrderCount,
			Amount:     r.Amount,
		}
		if r.CustomerID != nil {
			res[i].Buyer = &entity.Buyer{
				ID:        *r.CustomerID,
				FirstName: deref(r.FirstName),
				LastName:  deref(r.LastName),
				Email:     deref(r.Email),
			}
		}
	}
	return res, nil
}

// ProductTotals names each product after the line item snapshot seen first,
// ordering by order creation, order id and item position.
func (ss *statisticsStore) ProductTotals(ctx context.Context, f entity.OrderFilter) ([]entity.ProductTotals, error) {
	ctx, cancel := ss.withTimeout(ctx)
	defer cancel()

	where, params := orderFilterSQL(f)
	query := fmt.Sprintf(`
		WITH items AS (
			SELECT oi.product_id, oi.name, oi.total_price,
				ROW_NUMBER() OVER (
					PARTITION BY oi.product_id
					ORDER BY co.created_at ASC, co.id ASC, oi.position ASC
				) AS rn
			FROM order_item oi
			JOIN customer_order co ON co.id = oi.order_id
			WHERE %s
		)
		SELECT product_id,
			MAX(CASE WHEN rn = 1 THEN name END) AS product_name,
			COUNT(*) AS cnt,
			COALESCE(SUM(total_price), 0) AS amount
		FROM items
		GROUP BY product_id
		ORDER BY amount DESC, product_id ASC
	`, where)
	rows, err := QueryListNamed[entity.ProductTotals](ctx, ss.DB(), query, params)
	if err != nil {
		return nil, fmt.Errorf("product totals: %w", err)
	}
	return rows, nil
}

// CategoryTotals left joins product and category so line items of missing
// products, uncategorized products and dangling category ids fall into the
// single NULL group.
func (ss *statisticsStore) CategoryTotals(ctx context.Context, f entity.OrderFilter) ([]entity.CategoryTotals, error) {
	ctx, cancel := ss.withTimeout(ctx)
	defer cancel()

	where, params := orderFilterSQL(f)
	params["uncategorized"] = entity.UncategorizedName
	query := fmt.Sprintf(`
		SELECT c.id AS category_id,
			COALESCE(MAX(c.name), :uncategorized) AS category_name,
			COUNT(*) AS cnt,
			COALESCE(SUM(oi.total_price), 0) AS amount
		FROM order_item oi
		JOIN customer_order co ON co.id = oi.order_id
		LEFT JOIN product p ON p.id = oi.product_id
		LEFT JOIN category c ON c.id = p.category_id
		WHERE %s
		GROUP BY c.id
		ORDER BY amount DESC, category_id ASC
	`, where)
	rows, err := QueryListNamed[entity.CategoryTotals](ctx, ss.DB(), query, params)
	if err != nil {
		return nil, fmt.Errorf("category totals: %w", err)
	}
	return rows, nil
}

func (ss *statisticsStore) DistinctBuyers(ctx context.Context, f entity.OrderFilter) (int, error) {
	ctx, cancel := ss.withTimeout(ctx)
	defer cancel()

	where, params := orderFilterSQL(f)
	query := fmt.Sprintf(`
		SELECT COUNT(DISTINCT co.buyer_id)
		FROM customer_order co
		WHERE %s
	`, where)
	n, err := QueryCountNamed(ctx, ss.DB(), query, params)
	if err != nil {
		return 0, fmt.Errorf("distinct buyers: %w", err)
	}
	return n, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
