package writerepo

import (
	"context"

	"localshop-api/internal/domain/order"
	"localshop-api/internal/infra"
	"localshop-api/internal/infra/db"
	"localshop-api/internal/infra/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(db db.DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create persists a new order and its line items. Runs on the given DBTX so
// placement can wrap it in a transaction.
func (r *OrderRepository) Create(ctx context.Context, tx db.DBTX, o *order.Order) error {
	var appointmentDate, appointmentTime pgtype.Text
	if !o.Appointment().IsZero() {
		appointmentDate = pgconv.StringToPgtype(o.Appointment().Date())
		appointmentTime = pgconv.StringToPgtype(o.Appointment().Time())
	}

	_, err := tx.Exec(ctx,
		`INSERT INTO orders (
			id, shop_id, customer_id, order_type, status,
			items_price, tax_price, delivery_price, total_price,
			appointment_date, appointment_time, version, created_at, updated_at
		 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now(), now())`,
		o.ID(), o.ShopID(), o.CustomerID(), o.OrderType().String(), o.Status().String(),
		o.Pricing().ItemsPrice(), o.Pricing().TaxPrice(),
		o.Pricing().DeliveryPrice(), o.Pricing().TotalPrice(),
		appointmentDate, appointmentTime, o.Version(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create order", err, classifyPgErr(err))
	}

	for _, item := range o.Items() {
		_, err := tx.Exec(ctx,
			`INSERT INTO order_items (order_id, name, qty, unit_price, product_id)
			 VALUES ($1, $2, $3, $4, $5)`,
			o.ID(), item.Name(), item.Qty(), item.UnitPrice(), item.ProductID(),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to create order item", err, classifyPgErr(err))
		}
	}
	return nil
}

// FindByID reconstructs the domain order, line items included, for the
// status state machine.
func (r *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	var (
		shopID, customerID               uuid.UUID
		orderType, status                string
		itemsPrice, taxPrice             string
		deliveryPrice, totalPrice        string
		appointmentDate, appointmentTime pgtype.Text
		version                          int32
		createdAt, updatedAt             pgtype.Timestamptz
	)

	err := r.db.QueryRow(ctx,
		`SELECT shop_id, customer_id, order_type, status,
		        items_price::text, tax_price::text, delivery_price::text, total_price::text,
		        appointment_date, appointment_time, version, created_at, updated_at
		 FROM orders WHERE id = $1`, id).Scan(
		&shopID, &customerID, &orderType, &status,
		&itemsPrice, &taxPrice, &deliveryPrice, &totalPrice,
		&appointmentDate, &appointmentTime, &version, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order", err)
	}

	items, err := r.loadItems(ctx, id)
	if err != nil {
		return nil, err
	}

	pricing, err := parsePricing(itemsPrice, taxPrice, deliveryPrice, totalPrice)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to parse order pricing", err)
	}

	return order.ReconstructOrder(
		id, shopID, customerID,
		order.Type(orderType),
		items,
		pricing,
		order.Status(status),
		order.NewAppointment(appointmentDate.String, appointmentTime.String),
		version,
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

// UpdateStatus applies a status transition under an optimistic version
// check. A vanished row at the expected version means a concurrent writer
// won the race; the caller has already established the order exists.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, next order.Status, expectedVersion int32) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE orders
		 SET status = $2, version = version + 1, updated_at = now()
		 WHERE id = $1 AND version = $3`,
		id, next.String(), expectedVersion,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order version changed", nil, infra.KindConflict)
	}
	return nil
}

func (r *OrderRepository) loadItems(ctx context.Context, orderID uuid.UUID) ([]order.Item, error) {
	rows, err := r.db.Query(ctx,
		`SELECT name, qty, unit_price, product_id
		 FROM order_items WHERE order_id = $1 ORDER BY id`, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load order items", err)
	}
	defer rows.Close()

	var items []order.Item
	for rows.Next() {
		var (
			name      string
			qty       int
			unitPrice string
			productID uuid.UUID
		)
		if err := rows.Scan(&name, &qty, &unitPrice, &productID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order item", err)
		}
		items = append(items, order.ReconstructItem(name, qty, unitPrice, productID))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order items", err)
	}
	return items, nil
}

func parsePricing(itemsPrice, taxPrice, deliveryPrice, totalPrice string) (order.Pricing, error) {
	items, err := decimal.NewFromString(itemsPrice)
	if err != nil {
		return order.Pricing{}, err
	}
	tax, err := decimal.NewFromString(taxPrice)
	if err != nil {
		return order.Pricing{}, err
	}
	delivery, err := decimal.NewFromString(deliveryPrice)
	if err != nil {
		return order.Pricing{}, err
	}
	total, err := decimal.NewFromString(totalPrice)
	if err != nil {
		return order.Pricing{}, err
	}
	return order.NewPricing(items, tax, delivery, total)
}
