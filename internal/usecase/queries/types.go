package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)

type OrderItemView struct {
	Name      string    `json:"name"`
	Qty       int       `json:"qty"`
	UnitPrice string    `json:"unit_price"`
	ProductID uuid.UUID `json:"product_id"`
}

type OrderView struct {
	ID              uuid.UUID       `json:"id"`
	ShopID          uuid.UUID       `json:"shop_id"`
	ShopName        string          `json:"shop_name"`
	ShopCategory    string          `json:"shop_category"`
	CustomerID      uuid.UUID       `json:"customer_id"`
	CustomerName    string          `json:"customer_name"`
	CustomerEmail   string          `json:"customer_email"`
	CustomerPhone   string          `json:"customer_phone"`
	OrderType       string          `json:"order_type"`
	Status          string          `json:"status"`
	Items           []OrderItemView `json:"items"`
	ItemsPrice      decimal.Decimal `json:"items_price"`
	TaxPrice        decimal.Decimal `json:"tax_price"`
	DeliveryPrice   decimal.Decimal `json:"delivery_price"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	AppointmentDate *string         `json:"appointment_date,omitempty"`
	AppointmentTime *string         `json:"appointment_time,omitempty"`
	Version         int32           `json:"version"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type DashboardStats struct {
	TotalOrders        int             `json:"total_orders"`
	TotalRevenue       decimal.Decimal `json:"total_revenue"`
	PendingOrdersCount int             `json:"pending_orders_count"`
	NewCustomersCount  int             `json:"new_customers_count"`
	RecentOrders       []*OrderView    `json:"recent_orders"`
}

type ShopView struct {
	ID                    uuid.UUID `json:"id"`
	OwnerID               uuid.UUID `json:"owner_id"`
	OwnerName             string    `json:"owner_name"`
	OwnerEmail            string    `json:"owner_email"`
	OwnerPhone            string    `json:"owner_phone"`
	Name                  string    `json:"name"`
	Category              string    `json:"category"`
	City                  string    `json:"city"`
	Address               string    `json:"address"`
	OpeningTime           string    `json:"opening_time"`
	ClosingTime           string    `json:"closing_time"`
	OffersDelivery        bool      `json:"offers_delivery"`
	Rating                float64   `json:"rating"`
	SubscriptionExpiresAt time.Time `json:"subscription_expires_at"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

type ProductView struct {
	ID          uuid.UUID `json:"id"`
	ShopID      uuid.UUID `json:"shop_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	Image       string    `json:"image"`
	Duration    string    `json:"duration,omitempty"`
	InStock     bool      `json:"in_stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ShopFilter struct {
	City     string
	Category string
	Search   string
}
