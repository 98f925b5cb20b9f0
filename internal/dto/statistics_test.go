package dto

import (
	"encoding/json"
	"testing"

	"github.com/jekabolt/grbpwr-stats/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertEntityOrderSummary(t *testing.T) {
	b, err := json.Marshal(ConvertEntityOrderSummary(&entity.OrderSummary{
		TotalOrders:     3,
		TotalAmount:     decimal.RequireFromString("60.00"),
		PendingOrders:   1,
		ConfirmedOrders: 2,
	}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"totalOrders":3,"totalAmount":60,"pendingOrders":1,"confirmedOrders":2}`, string(b))

	b, err = json.Marshal(ConvertEntityOrderSummary(&entity.OrderSummary{}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"totalOrders":0,"totalAmount":0,"pendingOrders":0,"confirmedOrders":0}`, string(b))
}

func TestConvertEntityTopClients(t *testing.T) {
	b, err := json.Marshal(ConvertEntityTopClients(&entity.TopClients{
		ByAmount: []entity.TopClient{{
			BuyerID: "b1", OrderCount: 2, Amount: decimal.RequireFromString("80.50"),
			FirstName: "Ann", LastName: "Lee", Email: "ann@example.com",
		}},
	}))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"topByCount": [],
		"topByAmount": [{
			"buyerId": "b1", "orderCount": 2, "totalAmount": 80.5,
			"firstname": "Ann", "lastname": "Lee", "email": "ann@example.com"
		}]
	}`, string(b))
}

func TestConvertEntityCategoryMetrics(t *testing.T) {
	id := "c1"
	b, err := json.Marshal(ConvertEntityCategoryMetrics([]entity.CategoryMetric{
		{CategoryID: &id, CategoryName: "Shoes", Count: 2, Value: decimal.NewFromInt(60)},
		{CategoryName: entity.UncategorizedName, Count: 1, Value: decimal.RequireFromString("9.99")},
	}))
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"categoryId":"c1","categoryName":"Shoes","orderCount":2,"totalAmount":60},
		{"categoryId":null,"categoryName":"uncategorized","orderCount":1,"totalAmount":9.99}
	]`, string(b))

	b, err = json.Marshal(ConvertEntityProductMetrics(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))
}

func TestConvertEntityGlobalMetrics(t *testing.T) {
	b, err := json.Marshal(ConvertEntityGlobalMetrics(&entity.GlobalMetrics{
		TotalOrders:    5,
		OrdersDiff:     decimal.NewFromInt(100),
		TotalAmount:    decimal.RequireFromString("150.00"),
		AmountDiff:     decimal.RequireFromString("-66.67"),
		AvgRating:      decimal.RequireFromString("4.50"),
		CountRating:    12,
		TotalCustomers: 1,
		CustomersDiff:  decimal.Zero,
	}))
	require.NoError(t, err)
	assert.Contains(t, string(b), `"ordersDiff":100.00`)
	assert.Contains(t, string(b), `"amountDiff":-66.67`)
	assert.Contains(t, string(b), `"customersDiff":0.00`)
	assert.JSONEq(t, `{
		"totalOrders": 5, "ordersDiff": 100, "totalAmount": 150,
		"amountDiff": -66.67, "avgRating": 4.5, "countRating": 12,
		"totalCustomers": 1, "customersDiff": 0
	}`, string(b))
}
