// Package memory is an in-memory Repository over a fixed order ledger,
// loaded from a JSON fixture. Data is immutable once loaded.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/google/uuid"
	"github.com/jekabolt/grbpwr-stats/internal/dependency"
	"github.com/jekabolt/grbpwr-stats/internal/entity"
)

// Fixture is the on-disk layout of the memory store.
type Fixture struct {
	Shops      []entity.Shop     `json:"shops"`
	Buyers     []entity.Buyer    `json:"buyers"`
	Categories []entity.Category `json:"categories"`
	Products   []entity.Product  `json:"products"`
	Orders     []entity.Order    `json:"orders"`
}

// Store implements dependency.Repository in memory.
type Store struct {
	shops      map[string]entity.Shop
	buyers     map[string]entity.Buyer
	categories map[string]entity.Category
	products   map[string]entity.Product
	// orders are kept sorted by creation time then id, so iteration order
	// is the order in which line items are first encountered.
	orders []entity.Order
}

var _ dependency.Repository = (*Store)(nil)

// New builds a store from f. Orders without an id get a generated one.
func New(f *Fixture) *Store {
	s := &Store{
		shops:      make(map[string]entity.Shop, len(f.Shops)),
		buyers:     make(map[string]entity.Buyer, len(f.Buyers)),
		categories: make(map[string]entity.Category, len(f.Categories)),
		products:   make(map[string]entity.Product, len(f.Products)),
		orders:     make([]entity.Order, 0, len(f.Orders)),
	}
	for _, sh := range f.Shops {
		s.shops[sh.ID] = sh
	}
	for _, b := range f.Buyers {
		s.buyers[b.ID] = b
	}
	for _, c := range f.Categories {
		s.categories[c.ID] = c
	}
	for _, p := range f.Products {
		s.products[p.ID] = p
	}
	for _, o := range f.Orders {
		if o.ID == "" {
			o.ID = uuid.NewString()
		}
		items := append([]entity.OrderItem(nil), o.Items...)
		sort.SliceStable(items, func(i, j int) bool { return items[i].Position < items[j].Position })
		o.Items = items
		s.orders = append(s.orders, o)
	}
	sort.SliceStable(s.orders, func(i, j int) bool {
		a, b := s.orders[i], s.orders[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
	return s
}

// Load reads a JSON fixture from path.
func Load(path string) (*Store, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	var f Fixture
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("decode fixture %s: %w", path, err)
	}
	return New(&f), nil
}

func (s *Store) Statistics() dependency.Statistics {
	return &statisticsStore{Store: s}
}

func (s *Store) Shops() dependency.Shops {
	return &shopStore{Store: s}
}

// Ping always succeeds unless ctx is done.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Store) Close() {}

// matching returns the orders passing f, in ledger order.
func (s *Store) matching(f entity.OrderFilter) []*entity.Order {
	var res []*entity.Order
	for i := range s.orders {
		if f.Match(&s.orders[i]) {
			res = append(res, &s.orders[i])
		}
	}
	return res
}
