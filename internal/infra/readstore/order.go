package readstore

import (
	"context"
	"time"

	"localshop-api/internal/infra"
	"localshop-api/internal/infra/db"
	"localshop-api/internal/infra/pgconv"
	"localshop-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const orderViewColumns = `
	o.id, o.shop_id, s.shop_name, s.category,
	o.customer_id, u.name, u.email, u.phone,
	o.order_type, o.status,
	o.items_price::text, o.tax_price::text, o.delivery_price::text, o.total_price::text,
	o.appointment_date, o.appointment_time,
	o.version, o.created_at, o.updated_at`

const orderViewFrom = `
	FROM orders o
	JOIN shops s ON s.id = o.shop_id
	JOIN users u ON u.id = o.customer_id`

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(db db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: db}
}

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	row := r.db.QueryRow(ctx, `SELECT`+orderViewColumns+orderViewFrom+` WHERE o.id = $1`, id)

	view, err := scanOrderView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by ID", err)
	}

	if err := r.attachItems(ctx, []*queries.OrderView{view}); err != nil {
		return nil, err
	}
	return view, nil
}

// FindByCustomer returns all of a customer's orders, newest first.
func (r *OrderReadStore) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*queries.OrderView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT`+orderViewColumns+orderViewFrom+`
		 WHERE o.customer_id = $1
		 ORDER BY o.created_at DESC`, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find customer orders", err)
	}
	return r.collect(ctx, rows)
}

// FindActiveByShop returns the live queue: orders that are not terminal, or
// terminal but updated strictly after graceCutoff. An order settled exactly
// one grace period ago has left the queue, matching Order.IsActiveAt.
// Newest first by created_at.
func (r *OrderReadStore) FindActiveByShop(ctx context.Context, shopID uuid.UUID, graceCutoff time.Time) ([]*queries.OrderView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT`+orderViewColumns+orderViewFrom+`
		 WHERE o.shop_id = $1
		   AND (o.status NOT IN ('Completed', 'Cancelled')
		        OR o.updated_at > $2)
		 ORDER BY o.created_at DESC`, shopID, graceCutoff)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find active shop orders", err)
	}
	return r.collect(ctx, rows)
}

// FindHistoryByShop returns the exact complement of the live queue:
// terminal orders whose grace window has elapsed.
func (r *OrderReadStore) FindHistoryByShop(ctx context.Context, shopID uuid.UUID, graceCutoff time.Time) ([]*queries.OrderView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT`+orderViewColumns+orderViewFrom+`
		 WHERE o.shop_id = $1
		   AND o.status IN ('Completed', 'Cancelled')
		   AND o.updated_at <= $2
		 ORDER BY o.created_at DESC`, shopID, graceCutoff)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find shop order history", err)
	}
	return r.collect(ctx, rows)
}

// FindByShopSince returns the shop's orders created at or after the given
// instant, newest first. The dashboard derives all of its statistics from
// this one result set.
func (r *OrderReadStore) FindByShopSince(ctx context.Context, shopID uuid.UUID, since time.Time) ([]*queries.OrderView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT`+orderViewColumns+orderViewFrom+`
		 WHERE o.shop_id = $1
		   AND o.created_at >= $2
		 ORDER BY o.created_at DESC`, shopID, since)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find shop cycle orders", err)
	}
	return r.collect(ctx, rows)
}

func (r *OrderReadStore) collect(ctx context.Context, rows pgx.Rows) ([]*queries.OrderView, error) {
	defer rows.Close()

	var result []*queries.OrderView
	for rows.Next() {
		view, err := scanOrderView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan order row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order rows", err)
	}

	if err := r.attachItems(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *OrderReadStore) attachItems(ctx context.Context, views []*queries.OrderView) error {
	if len(views) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(views))
	byID := make(map[uuid.UUID]*queries.OrderView, len(views))
	for i, v := range views {
		ids[i] = v.ID
		byID[v.ID] = v
	}

	rows, err := r.db.Query(ctx,
		`SELECT order_id, name, qty, unit_price, product_id
		 FROM order_items
		 WHERE order_id = ANY($1)
		 ORDER BY id`, ids)
	if err != nil {
		return infra.WrapRepoErr("failed to load order items", err)
	}
	defer rows.Close()

	for rows.Next() {
		var orderID uuid.UUID
		var item queries.OrderItemView
		if err := rows.Scan(&orderID, &item.Name, &item.Qty, &item.UnitPrice, &item.ProductID); err != nil {
			return infra.WrapRepoErr("failed to scan order item row", err)
		}
		if view, ok := byID[orderID]; ok {
			view.Items = append(view.Items, item)
		}
	}
	return rows.Err()
}

func scanOrderView(row pgx.Row) (*queries.OrderView, error) {
	var (
		view                                               queries.OrderView
		itemsPrice, taxPrice, deliveryPrice, totalPrice    string
		appointmentDate, appointmentTime                   pgtype.Text
		createdAt, updatedAt                               pgtype.Timestamptz
	)

	err := row.Scan(
		&view.ID, &view.ShopID, &view.ShopName, &view.ShopCategory,
		&view.CustomerID, &view.CustomerName, &view.CustomerEmail, &view.CustomerPhone,
		&view.OrderType, &view.Status,
		&itemsPrice, &taxPrice, &deliveryPrice, &totalPrice,
		&appointmentDate, &appointmentTime,
		&view.Version, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if view.ItemsPrice, err = decimal.NewFromString(itemsPrice); err != nil {
		return nil, err
	}
	if view.TaxPrice, err = decimal.NewFromString(taxPrice); err != nil {
		return nil, err
	}
	if view.DeliveryPrice, err = decimal.NewFromString(deliveryPrice); err != nil {
		return nil, err
	}
	if view.TotalPrice, err = decimal.NewFromString(totalPrice); err != nil {
		return nil, err
	}

	view.AppointmentDate = pgconv.StringPtrFromPgtype(appointmentDate)
	view.AppointmentTime = pgconv.StringPtrFromPgtype(appointmentTime)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
