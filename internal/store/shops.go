package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jekabolt/grbpwr-stats/internal/dependency"
	"github.com/jekabolt/grbpwr-stats/internal/entity"
)

type shopStore struct {
	*MYSQLStore
}

// Shops returns an object implementing dependency.Shops interface
func (ms *MYSQLStore) Shops() dependency.Shops {
	return &shopStore{MYSQLStore: ms}
}

func (ss *shopStore) GetShopByOwner(ctx context.Context, ownerID string) (*entity.Shop, error) {
	ctx, cancel := ss.withTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, owner_id, name, rating_avg, rating_count
		FROM shop
		WHERE owner_id = :ownerId
		ORDER BY id ASC
		LIMIT 1
	`
	sh, err := QueryNamedOne[entity.Shop](ctx, ss.DB(), query, map[string]any{
		"ownerId": ownerID,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrShopNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get shop by owner %s: %w", ownerID, err)
	}
	return &sh, nil
}

func (ss *shopStore) GetShopRating(ctx context.Context, shopID string) (entity.ShopRating, error) {
	ctx, cancel := ss.withTimeout(ctx)
	defer cancel()

	query := `SELECT rating_avg, rating_count FROM shop WHERE id = :shopId`
	r, err := QueryNamedOne[entity.ShopRating](ctx, ss.DB(), query, map[string]any{
		"shopId": shopID,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return entity.ShopRating{}, entity.ErrShopNotFound
	}
	if err != nil {
		return entity.ShopRating{}, fmt.Errorf("get shop rating %s: %w", shopID, err)
	}
	return r, nil
}
