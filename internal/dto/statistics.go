package dto

import (
	"encoding/json"

	"github.com/jekabolt/grbpwr-stats/internal/entity"
	"github.com/shopspring/decimal"
)

type OrderSummary struct {
	TotalOrders     int         `json:"totalOrders"`
	TotalAmount     json.Number `json:"totalAmount"`
	PendingOrders   int         `json:"pendingOrders"`
	ConfirmedOrders int         `json:"confirmedOrders"`
}

type TopClient struct {
	BuyerID     string      `json:"buyerId"`
	OrderCount  int         `json:"orderCount"`
	TotalAmount json.Number `json:"totalAmount"`
	FirstName   string      `json:"firstname"`
	LastName    string      `json:"lastname"`
	Email       string      `json:"email"`
}

type TopClients struct {
	TopByCount  []TopClient `json:"topByCount"`
	TopByAmount []TopClient `json:"topByAmount"`
}

type ProductStat struct {
	ProductID   string      `json:"productId"`
	ProductName string      `json:"productName"`
	OrderCount  int         `json:"orderCount"`
	TotalAmount json.Number `json:"totalAmount"`
}

// CategoryStat is one category row, CategoryID is null for the uncategorized bucket.
type CategoryStat struct {
	CategoryID   *string     `json:"categoryId"`
	CategoryName string      `json:"categoryName"`
	OrderCount   int         `json:"orderCount"`
	TotalAmount  json.Number `json:"totalAmount"`
}

type GlobalStats struct {
	TotalOrders    int         `json:"totalOrders"`
	OrdersDiff     json.Number `json:"ordersDiff"`
	TotalAmount    json.Number `json:"totalAmount"`
	AmountDiff     json.Number `json:"amountDiff"`
	AvgRating      json.Number `json:"avgRating"`
	CountRating    int         `json:"countRating"`
	TotalCustomers int         `json:"totalCustomers"`
	CustomersDiff  json.Number `json:"customersDiff"`
}

// amount renders money as a plain JSON number.
func amount(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// percent renders a percentage with exactly 2 decimals.
func percent(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}

func ConvertEntityOrderSummary(m *entity.OrderSummary) *OrderSummary {
	if m == nil {
		return nil
	}
	return &OrderSummary{
		TotalOrders:     m.TotalOrders,
		TotalAmount:     amount(m.TotalAmount),
		PendingOrders:   m.PendingOrders,
		ConfirmedOrders: m.ConfirmedOrders,
	}
}

func ConvertEntityTopClients(tc *entity.TopClients) *TopClients {
	if tc == nil {
		return nil
	}
	return &TopClients{
		TopByCount:  topClients(tc.ByCount),
		TopByAmount: topClients(tc.ByAmount),
	}
}

func topClients(rows []entity.TopClient) []TopClient {
	res := make([]TopClient, 0, len(rows))
	for _, r := range rows {
		res = append(res, TopClient{
			BuyerID:     r.BuyerID,
			OrderCount:  r.OrderCount,
			TotalAmount: amount(r.Amount),
			FirstName:   r.FirstName,
			LastName:    r.LastName,
			Email:       r.Email,
		})
	}
	return res
}

func ConvertEntityProductMetrics(rows []entity.ProductMetric) []ProductStat {
	res := make([]ProductStat, 0, len(rows))
	for _, r := range rows {
		res = append(res, ProductStat{
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			OrderCount:  r.Count,
			TotalAmount: amount(r.Value),
		})
	}
	return res
}

func ConvertEntityCategoryMetrics(rows []entity.CategoryMetric) []CategoryStat {
	res := make([]CategoryStat, 0, len(rows))
	for _, r := range rows {
		res = append(res, CategoryStat{
			CategoryID:   r.CategoryID,
			CategoryName: r.CategoryName,
			OrderCount:   r.Count,
			TotalAmount:  amount(r.Value),
		})
	}
	return res
}

func ConvertEntityGlobalMetrics(m *entity.GlobalMetrics) *GlobalStats {
	if m == nil {
		return nil
	}
	return &GlobalStats{
		TotalOrders:    m.TotalOrders,
		OrdersDiff:     percent(m.OrdersDiff),
		TotalAmount:    amount(m.TotalAmount),
		AmountDiff:     percent(m.AmountDiff),
		AvgRating:      amount(m.AvgRating),
		CountRating:    m.CountRating,
		TotalCustomers: m.TotalCustomers,
		CustomersDiff:  percent(m.CustomersDiff),
	}
}
