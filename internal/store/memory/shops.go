package memory

import (
	"context"
	"sort"

	"github.com/jekabolt/grbpwr-stats/internal/entity"
)

type shopStore struct {
	*Store
}

func (ss *shopStore) GetShopByOwner(ctx context.Context, ownerID string) (*entity.Shop, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	// lowest id wins when an owner has several shops, as in the mysql store
	var found []entity.Shop
	for _, sh := range ss.shops {
		if sh.OwnerID == ownerID {
			found = append(found, sh)
		}
	}
	if len(found) == 0 {
		return nil, entity.ErrShopNotFound
	}
	sort.Slice(found, func(i, j int) bool { return found[i].ID < found[j].ID })
	return &found[0], nil
}

func (ss *shopStore) GetShopRating(ctx context.Context, shopID string) (entity.ShopRating, error) {
	if err := ctx.Err(); err != nil {
		return entity.ShopRating{}, err
	}
	sh, ok := ss.shops[shopID]
	if !ok {
		return entity.ShopRating{}, entity.ErrShopNotFound
	}
	return entity.ShopRating{Avg: sh.RatingAvg, Count: sh.RatingCount}, nil
}
