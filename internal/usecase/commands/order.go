package commands

import (
	"context"
	"errors"
	"log/slog"

	"localshop-api/internal/domain/order"
	"localshop-api/internal/domain/user"
	"localshop-api/internal/infra"
	"localshop-api/internal/pkg/config"
	"localshop-api/internal/pkg/errs"
	"localshop-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PlaceOrderItem struct {
	Name      string
	Qty       int
	UnitPrice string
	ProductID uuid.UUID
}

type PlaceOrderParams struct {
	ShopID          uuid.UUID
	OrderType       string
	Items           []PlaceOrderItem
	ItemsPrice      decimal.Decimal
	TaxPrice        decimal.Decimal
	DeliveryPrice   decimal.Decimal
	TotalPrice      decimal.Decimal
	AppointmentDate string
	AppointmentTime string
}

type OrderCommands interface {
	PlaceOrder(ctx context.Context, customerID uuid.UUID, params PlaceOrderParams) (*queries.OrderView, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, newStatus string, actorID uuid.UUID, role user.Role) (*queries.OrderView, error)
	CancelOrder(ctx context.Context, orderID uuid.UUID, actorID uuid.UUID, role user.Role) (*queries.OrderView, error)
}

type orderCommandsImpl struct {
	orderRepo  OrderRepository
	orderViews queries.OrderViewRepo
	shopViews  queries.ShopViewRepo
	catalog    queries.ProductViewRepo
	policy     order.TransitionPolicy
	db         *pgxpool.Pool
}

func NewOrderCommands(
	orderRepo OrderRepository,
	orderViews queries.OrderViewRepo,
	shopViews queries.ShopViewRepo,
	catalog queries.ProductViewRepo,
	cfg config.OrdersConfig,
	db *pgxpool.Pool,
) OrderCommands {
	return &orderCommandsImpl{
		orderRepo:  orderRepo,
		orderViews: orderViews,
		shopViews:  shopViews,
		catalog:    catalog,
		policy:     order.TransitionPolicy{Strict: cfg.StrictTransitions},
		db:         db,
	}
}

// PlaceOrder validates cart contents and persists a new Pending order.
// When every referenced catalog entry has a plain numeric price, itemsPrice
// and totalPrice are recomputed server-side from the catalog; client-sent
// totals then only serve as a display hint. Lines priced by weight
// ("80/kg") cannot be recomputed, so the client totals are kept for those
// carts.
func (c *orderCommandsImpl) PlaceOrder(ctx context.Context, customerID uuid.UUID, params PlaceOrderParams) (*queries.OrderView, error) {
	if len(params.Items) == 0 {
		return nil, errs.ErrEmptyOrderItems
	}

	orderType, err := order.NewType(params.OrderType)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if _, err := c.shopViews.FindByID(ctx, params.ShopID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrShopNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	items := make([]order.Item, 0, len(params.Items))
	for _, it := range params.Items {
		item, err := order.NewItem(it.Name, it.Qty, it.UnitPrice, it.ProductID)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		items = append(items, item)
	}

	pricing, err := order.NewPricing(params.ItemsPrice, params.TaxPrice, params.DeliveryPrice, params.TotalPrice)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrNegativePricing)
	}
	pricing = c.repriceFromCatalog(ctx, items, pricing)

	appointment := order.NewAppointment(params.AppointmentDate, params.AppointmentTime)

	entity, err := order.NewOrder(params.ShopID, customerID, orderType, items, pricing, appointment)
	if err != nil {
		if errors.Is(err, order.ErrNoItems) {
			return nil, errs.ErrEmptyOrderItems
		}
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := c.persistOrder(ctx, entity); err != nil {
		return nil, err
	}

	view, err := c.orderViews.FindByID(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

// UpdateStatus runs the order status state machine for the given actor.
// The write is conditional on the version read here; losing the race to a
// concurrent transition surfaces as ErrOrderConflict, not a lost update.
func (c *orderCommandsImpl) UpdateStatus(ctx context.Context, orderID uuid.UUID, newStatus string, actorID uuid.UUID, role user.Role) (*queries.OrderView, error) {
	next, err := order.ParseStatus(newStatus)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidOrderStatus)
	}

	entity, err := c.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrOrderNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := c.policy.Authorize(entity, next, actorID, role); err != nil {
		return nil, errs.Mark(err, errs.ErrForbiddenOrder)
	}

	if err := c.orderRepo.UpdateStatus(ctx, orderID, next, entity.Version()); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, errs.ErrOrderConflict)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view, err := c.orderViews.FindByID(ctx, orderID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

// CancelOrder is the customer-facing cancellation: policy allows it only
// for the order's owner while the order is still Pending. Shopkeepers
// cancel through UpdateStatus.
func (c *orderCommandsImpl) CancelOrder(ctx context.Context, orderID uuid.UUID, actorID uuid.UUID, role user.Role) (*queries.OrderView, error) {
	return c.UpdateStatus(ctx, orderID, order.StatusCancelled.String(), actorID, role)
}

func (c *orderCommandsImpl) persistOrder(ctx context.Context, entity *order.Order) error {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, context.Canceled) {
			slog.Debug("rollback after commit or failure", "error", rollbackErr)
		}
	}()

	if err := c.orderRepo.Create(ctx, tx, entity); err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return errs.Mark(err, errs.ErrShopNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

// repriceFromCatalog recomputes itemsPrice/totalPrice from catalog prices
// keyed by product id. Falls back to the client-supplied pricing when any
// referenced product is missing or priced non-numerically.
func (c *orderCommandsImpl) repriceFromCatalog(ctx context.Context, items []order.Item, clientPricing order.Pricing) order.Pricing {
	ids := make([]uuid.UUID, len(items))
	for i, it := range items {
		ids[i] = it.ProductID()
	}

	products, err := c.catalog.FindByIDs(ctx, ids)
	if err != nil {
		slog.Warn("catalog lookup failed, keeping client pricing", "error", err.Error())
		return clientPricing
	}

	priceByID := make(map[uuid.UUID]decimal.Decimal, len(products))
	for _, p := range products {
		d, err := decimal.NewFromString(p.Price)
		if err != nil {
			return clientPricing
		}
		priceByID[p.ID] = d
	}

	lineTotals := make([]decimal.Decimal, 0, len(items))
	for _, it := range items {
		unit, ok := priceByID[it.ProductID()]
		if !ok {
			return clientPricing
		}
		lineTotals = append(lineTotals, unit.Mul(decimal.NewFromInt(int64(it.Qty()))))
	}

	return clientPricing.Recomputed(lineTotals)
}
