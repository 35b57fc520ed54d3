package response

import (
	"time"

	"localshop-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderItemResponse struct {
	Name      string    `json:"name"`
	Qty       int       `json:"qty"`
	UnitPrice string    `json:"unitPrice"`
	ProductID uuid.UUID `json:"productId"`
}

type OrderResponse struct {
	ID              uuid.UUID           `json:"id"`
	ShopID          uuid.UUID           `json:"shopId"`
	ShopName        string              `json:"shopName"`
	ShopCategory    string              `json:"shopCategory"`
	CustomerID      uuid.UUID           `json:"customerId"`
	CustomerName    string              `json:"customerName"`
	CustomerEmail   string              `json:"customerEmail"`
	CustomerPhone   string              `json:"customerPhone"`
	OrderType       string              `json:"orderType"`
	Status          string              `json:"status"`
	Items           []OrderItemResponse `json:"items"`
	ItemsPrice      decimal.Decimal     `json:"itemsPrice"`
	TaxPrice        decimal.Decimal     `json:"taxPrice"`
	DeliveryPrice   decimal.Decimal     `json:"deliveryPrice"`
	TotalPrice      decimal.Decimal     `json:"totalPrice"`
	AppointmentDate *string             `json:"appointmentDate,omitempty"`
	AppointmentTime *string             `json:"appointmentTime,omitempty"`
	Version         int32               `json:"version"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

func FromOrderView(rm *queries.OrderView) *OrderResponse {
	items := make([]OrderItemResponse, len(rm.Items))
	for i, it := range rm.Items {
		items[i] = OrderItemResponse{
			Name:      it.Name,
			Qty:       it.Qty,
			UnitPrice: it.UnitPrice,
			ProductID: it.ProductID,
		}
	}
	return &OrderResponse{
		ID:              rm.ID,
		ShopID:          rm.ShopID,
		ShopName:        rm.ShopName,
		ShopCategory:    rm.ShopCategory,
		CustomerID:      rm.CustomerID,
		CustomerName:    rm.CustomerName,
		CustomerEmail:   rm.CustomerEmail,
		CustomerPhone:   rm.CustomerPhone,
		OrderType:       rm.OrderType,
		Status:          rm.Status,
		Items:           items,
		ItemsPrice:      rm.ItemsPrice,
		TaxPrice:        rm.TaxPrice,
		DeliveryPrice:   rm.DeliveryPrice,
		TotalPrice:      rm.TotalPrice,
		AppointmentDate: rm.AppointmentDate,
		AppointmentTime: rm.AppointmentTime,
		Version:         rm.Version,
		CreatedAt:       rm.CreatedAt,
		UpdatedAt:       rm.UpdatedAt,
	}
}

func FromOrderViews(rms []*queries.OrderView) []*OrderResponse {
	out := make([]*OrderResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromOrderView(rm)
	}
	return out
}
