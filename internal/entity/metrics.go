package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimeRange is an inclusive instant range [From, To].
type TimeRange struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t lies within the range, both ends included.
func (tr TimeRange) Contains(t time.Time) bool {
	return !t.Before(tr.From) && !t.After(tr.To)
}

// BuyerRank selects the measure buyers are ranked by.
type BuyerRank int

const (
	BuyerRankOrderCount BuyerRank = iota + 1
	BuyerRankAmount
)

func (r BuyerRank) String() string {
	switch r {
	case BuyerRankOrderCount:
		return "order_count"
	case BuyerRankAmount:
		return "amount"
	default:
		return "unknown"
	}
}

// OrderTotals is the number of orders and the sum of their totals.
type OrderTotals struct {
	Count  int             `db:"cnt"`
	Amount decimal.Decimal `db:"amount"`
}

type StatusCount struct {
	Status OrderStatusName `db:"status"`
	Count  int             `db:"cnt"`
}

// BuyerTotals aggregates orders of one buyer. Buyer is nil when the
// buyer record could not be joined.
type BuyerTotals struct {
	BuyerID    string
	OrderCount int
	Amount     decimal.Decimal
	Buyer      *Buyer
}

// ProductTotals aggregates line items of one product. Count is the number
// of line occurrences, not the number of distinct orders.
type ProductTotals struct {
	ProductID   string          `db:"product_id"`
	ProductName string          `db:"product_name"`
	Count       int             `db:"cnt"`
	Amount      decimal.Decimal `db:"amount"`
}

// CategoryTotals aggregates line items by product category. CategoryID is
// nil for the uncategorized bucket.
type CategoryTotals struct {
	CategoryID   *string         `db:"category_id"`
	CategoryName string          `db:"category_name"`
	Count        int             `db:"cnt"`
	Amount       decimal.Decimal `db:"amount"`
}

// OrderSummary is the order volume report of a shop over a date range.
type OrderSummary struct {
	TotalOrders     int
	TotalAmount     decimal.Decimal
	PendingOrders   int
	ConfirmedOrders int
}

// TopClient is one row of the top clients ranking.
type TopClient struct {
	BuyerID    string
	OrderCount int
	Amount     decimal.Decimal
	FirstName  string
	LastName   string
	Email      string
}

type TopClients struct {
	ByCount  []TopClient
	ByAmount []TopClient
}

type ProductMetric struct {
	ProductID   string
	ProductName string
	Count       int
	Value       decimal.Decimal
}

type CategoryMetric struct {
	CategoryID   *string
	CategoryName string
	Count        int
	Value        decimal.Decimal
}

// GlobalMetrics compares a year against the one before it.
type GlobalMetrics struct {
	Period        TimeRange
	ComparePeriod TimeRange

	TotalOrders    int
	OrdersDiff     decimal.Decimal
	TotalAmount    decimal.Decimal
	AmountDiff     decimal.Decimal
	AvgRating      decimal.Decimal
	CountRating    int
	TotalCustomers int
	CustomersDiff  decimal.Decimal
}
