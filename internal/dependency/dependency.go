package dependency

import (
	"context"
	"database/sql"

	"github.com/jekabolt/grbpwr-stats/internal/entity"
	"github.com/jmoiron/sqlx"
)

//go:generate mockery --with-expecter --case underscore --all --output=./mocks
type (
	// Statistics is the read-only aggregation surface over the order ledger.
	// Every method applies the filter before grouping.
	Statistics interface {
		// OrderTotals returns the number of matching orders and the sum of their totals.
		OrderTotals(ctx context.Context, f entity.OrderFilter) (entity.OrderTotals, error)
		// OrderCountByStatus groups matching orders by status.
		OrderCountByStatus(ctx context.Context, f entity.OrderFilter) ([]entity.StatusCount, error)
		// TopBuyers groups matching orders by buyer, ranks them by rank descending
		// with buyer id ascending on ties, keeps the first limit rows and joins
		// the buyer profile.
		TopBuyers(ctx context.Context, f entity.OrderFilter, rank entity.BuyerRank, limit int) ([]entity.BuyerTotals, error)
		// ProductTotals expands matching orders into line items grouped by product.
		ProductTotals(ctx context.Context, f entity.OrderFilter) ([]entity.ProductTotals, error)
		// CategoryTotals expands matching orders into line items grouped by the
		// category of the product. Unresolvable categories share one bucket.
		CategoryTotals(ctx context.Context, f entity.OrderFilter) ([]entity.CategoryTotals, error)
		// DistinctBuyers counts buyers with at least one matching order.
		DistinctBuyers(ctx context.Context, f entity.OrderFilter) (int, error)
	}

	Shops interface {
		// GetShopByOwner returns the shop linked to the user or entity.ErrShopNotFound.
		GetShopByOwner(ctx context.Context, ownerID string) (*entity.Shop, error)
		// GetShopRating returns the current rating of the shop or entity.ErrShopNotFound.
		GetShopRating(ctx context.Context, shopID string) (entity.ShopRating, error)
	}

	Repository interface {
		Statistics() Statistics
		Shops() Shops
		Ping(ctx context.Context) error
		Close()
	}

	// StatisticsService computes the shop reports.
	StatisticsService interface {
		OrderSummary(ctx context.Context, shopID, startDate, endDate string) (*entity.OrderSummary, error)
		TopClients(ctx context.Context, shopID, startDate, endDate string) (*entity.TopClients, error)
		ProductStats(ctx context.Context, shopID, year string) ([]entity.ProductMetric, error)
		CategoryStats(ctx context.Context, shopID, year string) ([]entity.CategoryMetric, error)
		GlobalStats(ctx context.Context, shopID, year string) (*entity.GlobalMetrics, error)
	}

	// DB represents database interface.
	DB interface {
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}
)
