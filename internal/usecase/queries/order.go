package queries

import (
	"context"
	"time"

	"localshop-api/internal/infra"
	"localshop-api/internal/pkg/clock"
	"localshop-api/internal/pkg/config"
	"localshop-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type OrderViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*OrderView, error)
	FindActiveByShop(ctx context.Context, shopID uuid.UUID, graceCutoff time.Time) ([]*OrderView, error)
	FindHistoryByShop(ctx context.Context, shopID uuid.UUID, graceCutoff time.Time) ([]*OrderView, error)
	FindByShopSince(ctx context.Context, shopID uuid.UUID, since time.Time) ([]*OrderView, error)
}

type ShopViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ShopView, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*ShopView, error)
	List(ctx context.Context, filter ShopFilter) ([]*ShopView, error)
}

type OrderQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	ListMyOrders(ctx context.Context, customerID uuid.UUID) ([]*OrderView, error)
	ListShopActiveOrders(ctx context.Context, ownerID uuid.UUID) ([]*OrderView, error)
	ListShopHistory(ctx context.Context, ownerID uuid.UUID) ([]*OrderView, error)
}

type orderQueriesImpl struct {
	orders OrderViewRepo
	shops  ShopViewRepo
	clock  clock.Clock
	cfg    config.OrdersConfig
}

func NewOrderQueries(orders OrderViewRepo, shops ShopViewRepo, clock clock.Clock, cfg config.OrdersConfig) OrderQueries {
	return &orderQueriesImpl{orders: orders, shops: shops, clock: clock, cfg: cfg}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*OrderView, error) {
	view, err := q.orders.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrOrderNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *orderQueriesImpl) ListMyOrders(ctx context.Context, customerID uuid.UUID) ([]*OrderView, error) {
	views, err := q.orders.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

// ListShopActiveOrders returns the shopkeeper's live queue: orders that are
// not terminal, plus terminal ones still inside the grace window.
func (q *orderQueriesImpl) ListShopActiveOrders(ctx context.Context, ownerID uuid.UUID) ([]*OrderView, error) {
	shopView, err := q.resolveShop(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	graceCutoff := q.clock.Now().Add(-q.cfg.GracePeriod)
	views, err := q.orders.FindActiveByShop(ctx, shopView.ID, graceCutoff)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

// ListShopHistory returns the complement of the live queue: terminal orders
// whose grace window has elapsed.
func (q *orderQueriesImpl) ListShopHistory(ctx context.Context, ownerID uuid.UUID) ([]*OrderView, error) {
	shopView, err := q.resolveShop(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	graceCutoff := q.clock.Now().Add(-q.cfg.GracePeriod)
	views, err := q.orders.FindHistoryByShop(ctx, shopView.ID, graceCutoff)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *orderQueriesImpl) resolveShop(ctx context.Context, ownerID uuid.UUID) (*ShopView, error) {
	shopView, err := q.shops.FindByOwner(ctx, ownerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrShopNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return shopView, nil
}
