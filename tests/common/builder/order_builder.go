//go:build unit || e2e

package builder

import (
	"time"

	domorder "localshop-api/internal/domain/order"
	reqdto "localshop-api/internal/handler/dto/request"
	"localshop-api/internal/usecase/commands"
	"localshop-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderItemSpec struct {
	Name      string
	Qty       int
	UnitPrice string
	ProductID uuid.UUID
}

type OrderBuilder struct {
	ShopID          uuid.UUID
	ShopName        string
	ShopCategory    string
	CustomerID      uuid.UUID
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	OrderType       string
	Status          string
	Items           []OrderItemSpec
	ItemsPrice      decimal.Decimal
	TaxPrice        decimal.Decimal
	DeliveryPrice   decimal.Decimal
	TotalPrice      decimal.Decimal
	AppointmentDate string
	AppointmentTime string
	Version         int32
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewOrderBuilder() *OrderBuilder {
	now := time.Now()
	return &OrderBuilder{
		ShopID:        uuid.New(),
		ShopName:      "Sharma General Store",
		ShopCategory:  "Grocery",
		CustomerID:    uuid.New(),
		CustomerName:  "Test Customer",
		CustomerEmail: "customer@example.com",
		CustomerPhone: "9876543210",
		OrderType:     "Retail",
		Status:        "Pending",
		Items: []OrderItemSpec{
			{Name: "Basmati Rice", Qty: 2, UnitPrice: "120", ProductID: uuid.New()},
		},
		ItemsPrice:    decimal.NewFromInt(240),
		TaxPrice:      decimal.NewFromInt(12),
		DeliveryPrice: decimal.NewFromInt(30),
		TotalPrice:    decimal.NewFromInt(282),
		Version:       1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) BuildDomain() (*domorder.Order, error) {
	items := make([]domorder.Item, 0, len(b.Items))
	for _, spec := range b.Items {
		item, err := domorder.NewItem(spec.Name, spec.Qty, spec.UnitPrice, spec.ProductID)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	pricing, err := domorder.NewPricing(b.ItemsPrice, b.TaxPrice, b.DeliveryPrice, b.TotalPrice)
	if err != nil {
		return nil, err
	}

	return domorder.NewOrder(
		b.ShopID, b.CustomerID,
		domorder.Type(b.OrderType),
		items,
		pricing,
		domorder.NewAppointment(b.AppointmentDate, b.AppointmentTime),
	)
}

// BuildReconstructed bypasses NewOrder validation to produce an order in any
// status with any timestamps, the way the write repository loads one.
func (b *OrderBuilder) BuildReconstructed() *domorder.Order {
	items := make([]domorder.Item, 0, len(b.Items))
	for _, spec := range b.Items {
		items = append(items, domorder.ReconstructItem(spec.Name, spec.Qty, spec.UnitPrice, spec.ProductID))
	}

	pricing, _ := domorder.NewPricing(b.ItemsPrice, b.TaxPrice, b.DeliveryPrice, b.TotalPrice)

	return domorder.ReconstructOrder(
		uuid.New(), b.ShopID, b.CustomerID,
		domorder.Type(b.OrderType),
		items,
		pricing,
		domorder.Status(b.Status),
		domorder.NewAppointment(b.AppointmentDate, b.AppointmentTime),
		b.Version,
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *OrderBuilder) BuildView() *queries.OrderView {
	items := make([]queries.OrderItemView, len(b.Items))
	for i, spec := range b.Items {
		items[i] = queries.OrderItemView{
			Name:      spec.Name,
			Qty:       spec.Qty,
			UnitPrice: spec.UnitPrice,
			ProductID: spec.ProductID,
		}
	}

	view := &queries.OrderView{
		ID:            uuid.New(),
		ShopID:        b.ShopID,
		ShopName:      b.ShopName,
		ShopCategory:  b.ShopCategory,
		CustomerID:    b.CustomerID,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		OrderType:     b.OrderType,
		Status:        b.Status,
		Items:         items,
		ItemsPrice:    b.ItemsPrice,
		TaxPrice:      b.TaxPrice,
		DeliveryPrice: b.DeliveryPrice,
		TotalPrice:    b.TotalPrice,
		Version:       b.Version,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
	if b.AppointmentDate != "" {
		d := b.AppointmentDate
		view.AppointmentDate = &d
	}
	if b.AppointmentTime != "" {
		t := b.AppointmentTime
		view.AppointmentTime = &t
	}
	return view
}

func (b *OrderBuilder) BuildPlaceRequestDTO() reqdto.PlaceOrderRequest {
	items := make([]reqdto.OrderItemRequest, len(b.Items))
	for i, spec := range b.Items {
		items[i] = reqdto.OrderItemRequest{
			Name:      spec.Name,
			Qty:       spec.Qty,
			UnitPrice: spec.UnitPrice,
			ProductID: spec.ProductID,
		}
	}
	return reqdto.PlaceOrderRequest{
		ShopID:          b.ShopID,
		OrderType:       b.OrderType,
		Items:           items,
		ItemsPrice:      b.ItemsPrice,
		TaxPrice:        b.TaxPrice,
		DeliveryPrice:   b.DeliveryPrice,
		TotalPrice:      b.TotalPrice,
		AppointmentDate: b.AppointmentDate,
		AppointmentTime: b.AppointmentTime,
	}
}

func (b *OrderBuilder) BuildPlaceParams() commands.PlaceOrderParams {
	items := make([]commands.PlaceOrderItem, len(b.Items))
	for i, spec := range b.Items {
		items[i] = commands.PlaceOrderItem{
			Name:      spec.Name,
			Qty:       spec.Qty,
			UnitPrice: spec.UnitPrice,
			ProductID: spec.ProductID,
		}
	}
	return commands.PlaceOrderParams{
		ShopID:          b.ShopID,
		OrderType:       b.OrderType,
		Items:           items,
		ItemsPrice:      b.ItemsPrice,
		TaxPrice:        b.TaxPrice,
		DeliveryPrice:   b.DeliveryPrice,
		TotalPrice:      b.TotalPrice,
		AppointmentDate: b.AppointmentDate,
		AppointmentTime: b.AppointmentTime,
	}
}

// Fluent builder methods
func (b *OrderBuilder) WithShopID(id uuid.UUID) *OrderBuilder {
	b.ShopID = id
	return b
}

func (b *OrderBuilder) WithCustomerID(id uuid.UUID) *OrderBuilder {
	b.CustomerID = id
	return b
}

func (b *OrderBuilder) WithStatus(status string) *OrderBuilder {
	b.Status = status
	return b
}

func (b *OrderBuilder) WithOrderType(orderType string) *OrderBuilder {
	b.OrderType = orderType
	return b
}

func (b *OrderBuilder) WithItems(items ...OrderItemSpec) *OrderBuilder {
	b.Items = items
	return b
}

func (b *OrderBuilder) WithTotalPrice(total decimal.Decimal) *OrderBuilder {
	b.TotalPrice = total
	return b
}

func (b *OrderBuilder) WithVersion(v int32) *OrderBuilder {
	b.Version = v
	return b
}

func (b *OrderBuilder) WithCreatedAt(t time.Time) *OrderBuilder {
	b.CreatedAt = t
	return b
}

func (b *OrderBuilder) WithUpdatedAt(t time.Time) *OrderBuilder {
	b.UpdatedAt = t
	return b
}

func (b *OrderBuilder) AsService(date, timeOfDay string) *OrderBuilder {
	b.OrderType = "Service"
	b.AppointmentDate = date
	b.AppointmentTime = timeOfDay
	return b
}

func (b *OrderBuilder) AsCompleted() *OrderBuilder {
	b.Status = "Completed"
	return b
}

func (b *OrderBuilder) AsCancelled() *OrderBuilder {
	b.Status = "Cancelled"
	return b
}
