package statistics

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/jekabolt/grbpwr-stats/internal/dependency"
	"github.com/jekabolt/grbpwr-stats/internal/entity"
	gerr "github.com/jekabolt/grbpwr-stats/internal/errors"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// TopClientsLimit is the length of each top clients ranking.
const TopClientsLimit = 5

// Config is the configuration of the statistics service.
type Config struct {
	// KeepUnknownBuyers keeps top clients whose buyer record is gone,
	// with empty profile fields, instead of dropping them.
	KeepUnknownBuyers bool `mapstructure:"keep_unknown_buyers"`
}

// Service computes shop reports over the order ledger. It holds no mutable
// state and is safe for concurrent use.
type Service struct {
	stats dependency.Statistics
	shops dependency.Shops
	c     Config
}

var _ dependency.StatisticsService = (*Service)(nil)

// New creates a new statistics service.
func New(c *Config, rep dependency.Repository) *Service {
	s := &Service{
		stats: rep.Statistics(),
		shops: rep.Shops(),
	}
	if c != nil {
		s.c = *c
	}
	return s
}

// OrderSummary counts orders, their total amount and the pending and
// confirmed ones within the date range.
func (s *Service) OrderSummary(ctx context.Context, shopID, startDate, endDate string) (*entity.OrderSummary, error) {
	if shopID == "" {
		return nil, gerr.ErrNoShop
	}
	period, err := RangeWindow(startDate, endDate)
	if err != nil {
		return nil, err
	}
	f := entity.OrderFilter{ShopID: shopID, Period: period}

	var (
		totals   entity.OrderTotals
		byStatus []entity.StatusCount
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totals, err = s.stats.OrderTotals(gctx, f)
		if err != nil {
			return fmt.Errorf("order totals: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		byStatus, err = s.stats.OrderCountByStatus(gctx, f)
		if err != nil {
			return fmt.Errorf("orders by status: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	m := &entity.OrderSummary{
		TotalOrders: totals.Count,
		TotalAmount: totals.Amount,
	}
	for _, sc := range byStatus {
		switch sc.Status {
		case entity.OrderStatusPending:
			m.PendingOrders += sc.Count
		case entity.OrderStatusConfirmed:
			m.ConfirmedOrders += sc.Count
		}
	}
	return m, nil
}

// TopClients ranks buyers of confirmed, shipped and delivered orders by
// order count and by amount.
func (s *Service) TopClients(ctx context.Context, shopID, startDate, endDate string) (*entity.TopClients, error) {
	if shopID == "" {
		return nil, gerr.ErrNoShop
	}
	period, err := RangeWindow(startDate, endDate)
	if err != nil {
		return nil, err
	}
	f := entity.OrderFilter{
		ShopID:   shopID,
		Period:   period,
		Statuses: entity.CompletedOrderStatuses,
	}

	var byCount, byAmount []entity.BuyerTotals
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		byCount, err = s.stats.TopBuyers(gctx, f, entity.BuyerRankOrderCount, TopClientsLimit)
		if err != nil {
			return fmt.Errorf("top buyers by count: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		byAmount, err = s.stats.TopBuyers(gctx, f, entity.BuyerRankAmount, TopClientsLimit)
		if err != nil {
			return fmt.Errorf("top buyers by amount: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &entity.TopClients{
		ByCount:  s.topClients(byCount, entity.BuyerRankOrderCount),
		ByAmount: s.topClients(byAmount, entity.BuyerRankAmount),
	}, nil
}

func (s *Service) topClients(rows []entity.BuyerTotals, rank entity.BuyerRank) []entity.TopClient {
	rows = append([]entity.BuyerTotals(nil), rows...)
	sortBuyerTotals(rows, rank)
	if len(rows) > TopClientsLimit {
		rows = rows[:TopClientsLimit]
	}

	res := make([]entity.TopClient, 0, len(rows))
	for _, r := range rows {
		tc := entity.TopClient{
			BuyerID:    r.BuyerID,
			OrderCount: r.OrderCount,
			Amount:     r.Amount,
		}
		switch {
		case r.Buyer != nil:
			tc.FirstName = r.Buyer.FirstName
			tc.LastName = r.Buyer.LastName
			tc.Email = r.Buyer.Email
		case !s.c.KeepUnknownBuyers:
			continue
		}
		res = append(res, tc)
	}
	return res
}

// sortBuyerTotals orders by the ranked measure descending, then by buyer id ascending.
func sortBuyerTotals(rows []entity.BuyerTotals, rank entity.BuyerRank) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if rank == entity.BuyerRankAmount {
			if c := a.Amount.Cmp(b.Amount); c != 0 {
				return c > 0
			}
		} else if a.OrderCount != b.OrderCount {
			return a.OrderCount > b.OrderCount
		}
		return a.BuyerID < b.BuyerID
	})
}

// ProductStats breaks down the line items of the year by product.
func (s *Service) ProductStats(ctx context.Context, shopID, year string) ([]entity.ProductMetric, error) {
	if shopID == "" {
		return nil, gerr.ErrNoShop
	}
	period, err := YearWindow(year)
	if err != nil {
		return nil, err
	}

	rows, err := s.stats.ProductTotals(ctx, entity.OrderFilter{ShopID: shopID, Period: period})
	if err != nil {
		return nil, fmt.Errorf("product totals: %w", err)
	}

	res := make([]entity.ProductMetric, 0, len(rows))
	for _, r := range rows {
		res = append(res, entity.ProductMetric{
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			Count:       r.Count,
			Value:       r.Amount,
		})
	}
	sort.SliceStable(res, func(i, j int) bool {
		if c := res[i].Value.Cmp(res[j].Value); c != 0 {
			return c > 0
		}
		return res[i].ProductID < res[j].ProductID
	})
	return res, nil
}

// CategoryStats breaks down the line items of the year by product category.
func (s *Service) CategoryStats(ctx context.Context, shopID, year string) ([]entity.CategoryMetric, error) {
	if shopID == "" {
		return nil, gerr.ErrNoShop
	}
	period, err := YearWindow(year)
	if err != nil {
		return nil, err
	}

	rows, err := s.stats.CategoryTotals(ctx, entity.OrderFilter{ShopID: shopID, Period: period})
	if err != nil {
		return nil, fmt.Errorf("category totals: %w", err)
	}

	res := make([]entity.CategoryMetric, 0, len(rows))
	uncategorized := -1
	for _, r := range rows {
		if r.CategoryID == nil {
			if uncategorized >= 0 {
				res[uncategorized].Count += r.Count
				res[uncategorized].Value = res[uncategorized].Value.Add(r.Amount)
				continue
			}
			uncategorized = len(res)
			res = append(res, entity.CategoryMetric{
				CategoryName: entity.UncategorizedName,
				Count:        r.Count,
				Value:        r.Amount,
			})
			continue
		}
		res = append(res, entity.CategoryMetric{
			CategoryID:   r.CategoryID,
			CategoryName: r.CategoryName,
			Count:        r.Count,
			Value:        r.Amount,
		})
	}
	sort.SliceStable(res, func(i, j int) bool {
		a, b := res[i], res[j]
		if c := a.Value.Cmp(b.Value); c != 0 {
			return c > 0
		}
		switch {
		case a.CategoryID == nil:
			return false
		case b.CategoryID == nil:
			return true
		}
		return *a.CategoryID < *b.CategoryID
	})
	return res, nil
}

// GlobalStats compares order count, amount and distinct customers of the
// year against the previous year, alongside the current shop rating.
func (s *Service) GlobalStats(ctx context.Context, shopID, year string) (*entity.GlobalMetrics, error) {
	if shopID == "" {
		return nil, gerr.ErrNoShop
	}
	period, err := YearWindow(year)
	if err != nil {
		return nil, err
	}
	comparePeriod := PreviousYear(period)
	cur := entity.OrderFilter{ShopID: shopID, Period: period}
	prev := entity.OrderFilter{ShopID: shopID, Period: comparePeriod}

	var (
		totals, prevTotals       entity.OrderTotals
		customers, prevCustomers int
		rating                   entity.ShopRating
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totals, err = s.stats.OrderTotals(gctx, cur)
		if err != nil {
			return fmt.Errorf("order totals: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		prevTotals, err = s.stats.OrderTotals(gctx, prev)
		if err != nil {
			return fmt.Errorf("previous year order totals: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		customers, err = s.stats.DistinctBuyers(gctx, cur)
		if err != nil {
			return fmt.Errorf("distinct buyers: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		prevCustomers, err = s.stats.DistinctBuyers(gctx, prev)
		if err != nil {
			return fmt.Errorf("previous year distinct buyers: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		rating, err = s.shops.GetShopRating(gctx, shopID)
		if errors.Is(err, entity.ErrShopNotFound) {
			rating = entity.ShopRating{Avg: decimal.Zero}
			return nil
		}
		if err != nil {
			return fmt.Errorf("shop rating: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &entity.GlobalMetrics{
		Period:         period,
		ComparePeriod:  comparePeriod,
		TotalOrders:    totals.Count,
		OrdersDiff:     percentDiffInt(totals.Count, prevTotals.Count),
		TotalAmount:    totals.Amount,
		AmountDiff:     PercentDiff(totals.Amount, prevTotals.Amount),
		AvgRating:      rating.Avg,
		CountRating:    rating.Count,
		TotalCustomers: customers,
		CustomersDiff:  percentDiffInt(customers, prevCustomers),
	}, nil
}
