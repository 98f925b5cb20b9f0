package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatusName is the lifecycle state stored on customer_order.status.
type OrderStatusName string

const (
	OrderStatusPending   OrderStatusName = "pending"
	OrderStatusConfirmed OrderStatusName = "confirmed"
	OrderStatusShipped   OrderStatusName = "shipped"
	OrderStatusDelivered OrderStatusName = "delivered"
	OrderStatusCancelled OrderStatusName = "cancelled"
	OrderStatusRefunded  OrderStatusName = "refunded"
)

// CompletedOrderStatuses are the statuses that represent confirmed revenue.
var CompletedOrderStatuses = []OrderStatusName{
	OrderStatusConfirmed,
	OrderStatusShipped,
	OrderStatusDelivered,
}

// Order represents the customer_order table
type Order struct {
	ID        string          `db:"id" json:"id"`
	ShopID    string          `db:"shop_id" json:"shopId"`
	BuyerID   string          `db:"buyer_id" json:"buyerId"`
	CreatedAt time.Time       `db:"created_at" json:"createdAt"`
	Status    OrderStatusName `db:"status" json:"status"`
	Total     decimal.Decimal `db:"total" json:"total"`
	Items     []OrderItem     `db:"-" json:"items"`
}

// OrderItem represents the order_item table. Name is a snapshot taken when
// the order was placed and is never refreshed from product.
type OrderItem struct {
	OrderID    string          `db:"order_id" json:"-"`
	Position   int             `db:"position" json:"position"`
	ProductID  string          `db:"product_id" json:"productId"`
	Name       string          `db:"name" json:"name"`
	TotalPrice decimal.Decimal `db:"total_price" json:"totalPrice"`
}

// OrderFilter narrows the order ledger for a single aggregation.
// Statuses is optional, an empty list matches every status.
type OrderFilter struct {
	ShopID   string
	Period   TimeRange
	Statuses []OrderStatusName
}

// MatchStatus reports whether st passes the status filter.
func (f OrderFilter) MatchStatus(st OrderStatusName) bool {
	if len(f.Statuses) == 0 {
		return true
	}
	for _, s := range f.Statuses {
		if s == st {
			return true
		}
	}
	return false
}

// Match reports whether o falls into the filter.
func (f OrderFilter) Match(o *Order) bool {
	return o.ShopID == f.ShopID && f.Period.Contains(o.CreatedAt) && f.MatchStatus(o.Status)
}
