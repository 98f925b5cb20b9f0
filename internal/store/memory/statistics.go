package memory

import (
	"context"
	"sort"

	"github.com/jekabolt/grbpwr-stats/internal/dependency"
	"github.com/jekabolt/grbpwr-stats/internal/entity"
	"github.com/shopspring/decimal"
)

type statisticsStore struct {
	*Store
}

var _ dependency.Statistics = (*statisticsStore)(nil)

func (ss *statisticsStore) OrderTotals(ctx context.Context, f entity.OrderFilter) (entity.OrderTotals, error) {
	if err := ctx.Err(); err != nil {
		return entity.OrderTotals{}, err
	}
	t := entity.OrderTotals{Amount: decimal.Zero}
	for _, o := range ss.matching(f) {
		t.Count++
		t.Amount = t.Amount.Add(o.Total)
	}
	return t, nil
}

func (ss *statisticsStore) OrderCountByStatus(ctx context.Context, f entity.OrderFilter) ([]entity.StatusCount, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	idx := map[entity.OrderStatusName]int{}
	var res []entity.StatusCount
	for _, o := range ss.matching(f) {
		i, ok := idx[o.Status]
		if !ok {
			i = len(res)
			idx[o.Status] = i
			res = append(res, entity.StatusCount{Status: o.Status})
		}
		res[i].Count++
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Count != res[j].Count {
			return res[i].Count > res[j].Count
		}
		return res[i].Status < res[j].Status
	})
	return res, nil
}

func (ss *statisticsStore) TopBuyers(ctx context.Context, f entity.OrderFilter, rank entity.BuyerRank, limit int) ([]entity.BuyerTotals, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	idx := map[string]int{}
	var res []entity.BuyerTotals
	for _, o := range ss.matching(f) {
		i, ok := idx[o.BuyerID]
		if !ok {
			i = len(res)
			idx[o.BuyerID] = i
			res = append(res, entity.BuyerTotals{BuyerID: o.BuyerID, Amount: decimal.Zero})
		}
		res[i].OrderCount++
		res[i].Amount = res[i].Amount.Add(o.Total)
	}
	sort.SliceStable(res, func(i, j int) bool {
		a, b := res[i], res[j]
		if rank == entity.BuyerRankAmount {
			if c := a.Amount.Cmp(b.Amount); c != 0 {
				return c > 0
			}
		} else if a.OrderCount != b.OrderCount {
			return a.OrderCount > b.OrderCount
		}
		return a.BuyerID < b.BuyerID
	})
	if limit > 0 && len(res) > limit {
		res = res[:limit]
	}
	for i := range res {
		if b, ok := ss.buyers[res[i].BuyerID]; ok {
			res[i].Buyer = &b
		}
	}
	return res, nil
}

func (ss *statisticsStore) ProductTotals(ctx context.Context, f entity.OrderFilter) ([]entity.ProductTotals, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	idx := map[string]int{}
	var res []entity.ProductTotals
	for _, o := range ss.matching(f) {
		for _, it := range o.Items {
			i, ok := idx[it.ProductID]
			if !ok {
				i = len(res)
				idx[it.ProductID] = i
				res = append(res, entity.ProductTotals{
					ProductID:   it.ProductID,
					ProductName: it.Name,
					Amount:      decimal.Zero,
				})
			}
			res[i].Count++
			res[i].Amount = res[i].Amount.Add(it.TotalPrice)
		}
	}
	return res, nil
}

func (ss *statisticsStore) CategoryTotals(ctx context.Context, f entity.OrderFilter) ([]entity.CategoryTotals, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	const uncategorizedKey = ""
	idx := map[string]int{}
	var res []entity.CategoryTotals
	for _, o := range ss.matching(f) {
		for _, it := range o.Items {
			key, row := uncategorizedKey, entity.CategoryTotals{CategoryName: entity.UncategorizedName}
			if c, ok := ss.categoryOf(it.ProductID); ok {
				id := c.ID
				key, row = c.ID, entity.CategoryTotals{CategoryID: &id, CategoryName: c.Name}
			}
			i, ok := idx[key]
			if !ok {
				i = len(res)
				idx[key] = i
				row.Amount = decimal.Zero
				res = append(res, row)
			}
			res[i].Count++
			res[i].Amount = res[i].Amount.Add(it.TotalPrice)
		}
	}
	return res, nil
}

// categoryOf resolves product -> category. A missing product, a null
// category or a dangling category id all resolve to nothing.
func (ss *statisticsStore) categoryOf(productID string) (entity.Category, bool) {
	p, ok := ss.products[productID]
	if !ok || p.CategoryID == nil {
		return entity.Category{}, false
	}
	c, ok := ss.categories[*p.CategoryID]
	return c, ok
}

func (ss *statisticsStore) DistinctBuyers(ctx context.Context, f entity.OrderFilter) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	seen := map[string]struct{}{}
	for _, o := range ss.matching(f) {
		seen[o.BuyerID] = struct{}{}
	}
	return len(seen), nil
}
