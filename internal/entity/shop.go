package entity

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrShopNotFound is returned when no shop is linked to the requested owner or id.
var ErrShopNotFound = errors.New("shop not found")

// Shop represents the shop table
type Shop struct {
	ID          string          `db:"id" json:"id"`
	OwnerID     string          `db:"owner_id" json:"ownerId"`
	Name        string          `db:"name" json:"name"`
	RatingAvg   decimal.Decimal `db:"rating_avg" json:"ratingAvg"`
	RatingCount int             `db:"rating_count" json:"ratingCount"`
}

// ShopRating is the running rating of a shop. It is not scoped to any period.
type ShopRating struct {
	Avg   decimal.Decimal `db:"rating_avg"`
	Count int             `db:"rating_count"`
}
