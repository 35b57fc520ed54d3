package queries

import (
	"context"

	"localshop-api/internal/infra"
	"localshop-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type ProductViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
	FindByShop(ctx context.Context, shopID uuid.UUID) ([]*ProductView, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*ProductView, error)
}

type ProductQueries interface {
	ListByShop(ctx context.Context, shopID uuid.UUID) ([]*ProductView, error)
	ListMine(ctx context.Context, ownerID uuid.UUID) ([]*ProductView, error)
}

type productQueriesImpl struct {
	products ProductViewRepo
	shops    ShopViewRepo
}

func NewProductQueries(products ProductViewRepo, shops ShopViewRepo) ProductQueries {
	return &productQueriesImpl{products: products, shops: shops}
}

// ListByShop is the customer-facing catalog. An empty catalog is a valid
// empty list, never NotFound.
func (q *productQueriesImpl) ListByShop(ctx context.Context, shopID uuid.UUID) ([]*ProductView, error) {
	views, err := q.products.FindByShop(ctx, shopID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *productQueriesImpl) ListMine(ctx context.Context, ownerID uuid.UUID) ([]*ProductView, error) {
	shopView, err := q.shops.FindByOwner(ctx, ownerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrShopNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	views, err := q.products.FindByShop(ctx, shopView.ID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
