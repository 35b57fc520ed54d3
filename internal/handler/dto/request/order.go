package request

import (
	"localshop-api/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderItemRequest struct {
	Name      string    `json:"name" binding:"required"`
	Qty       int       `json:"qty" binding:"required,gt=0"`
	UnitPrice string    `json:"unit_price" binding:"required"`
	ProductID uuid.UUID `json:"product_id" binding:"required"`
}

type PlaceOrderRequest struct {
	ShopID          uuid.UUID          `json:"shop_id" binding:"required"`
	OrderType       string             `json:"order_type" binding:"required"`
	Items           []OrderItemRequest `json:"items" binding:"required"`
	ItemsPrice      decimal.Decimal    `json:"items_price"`
	TaxPrice        decimal.Decimal    `json:"tax_price"`
	DeliveryPrice   decimal.Decimal    `json:"delivery_price"`
	TotalPrice      decimal.Decimal    `json:"total_price"`
	AppointmentDate string             `json:"appointment_date"`
	AppointmentTime string             `json:"appointment_time"`
}

func (r PlaceOrderRequest) ToParams() commands.PlaceOrderParams {
	items := make([]commands.PlaceOrderItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = commands.PlaceOrderItem{
			Name:      it.Name,
			Qty:       it.Qty,
			UnitPrice: it.UnitPrice,
			ProductID: it.ProductID,
		}
	}
	return commands.PlaceOrderParams{
		ShopID:          r.ShopID,
		OrderType:       r.OrderType,
		Items:           items,
		ItemsPrice:      r.ItemsPrice,
		TaxPrice:        r.TaxPrice,
		DeliveryPrice:   r.DeliveryPrice,
		TotalPrice:      r.TotalPrice,
		AppointmentDate: r.AppointmentDate,
		AppointmentTime: r.AppointmentTime,
	}
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
