package queries

import (
	"context"

	"localshop-api/internal/infra"
	"localshop-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type ShopQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ShopView, error)
	GetMine(ctx context.Context, ownerID uuid.UUID) (*ShopView, error)
	List(ctx context.Context, filter ShopFilter) ([]*ShopView, error)
}

type shopQueriesImpl struct {
	shops ShopViewRepo
}

func NewShopQueries(shops ShopViewRepo) ShopQueries {
	return &shopQueriesImpl{shops: shops}
}

func (q *shopQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ShopView, error) {
	view, err := q.shops.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrShopNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *shopQueriesImpl) GetMine(ctx context.Context, ownerID uuid.UUID) (*ShopView, error) {
	view, err := q.shops.FindByOwner(ctx, ownerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrShopNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *shopQueriesImpl) List(ctx context.Context, filter ShopFilter) ([]*ShopView, error) {
	views, err := q.shops.List(ctx, filter)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
