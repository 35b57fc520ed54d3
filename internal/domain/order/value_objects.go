package order

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyItemName    = errors.New("item name must not be empty")
	ErrNonPositiveQty   = errors.New("item quantity must be positive")
	ErrEmptyItemPrice   = errors.New("item price must not be empty")
	ErrNegativePricing  = errors.New("pricing must not be negative")
)

// Item is one order line. UnitPrice stays decimal-as-text so that shops can
// sell by weight ("80/kg") or per session ("500/sitting") without the core
// mangling the display value.
type Item struct {
	name      string
	qty       int
	unitPrice string
	productID uuid.UUID
}

func NewItem(name string, qty int, unitPrice string, productID uuid.UUID) (Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Item{}, ErrEmptyItemName
	}
	if qty <= 0 {
		return Item{}, ErrNonPositiveQty
	}
	unitPrice = strings.TrimSpace(unitPrice)
	if unitPrice == "" {
		return Item{}, ErrEmptyItemPrice
	}
	return Item{
		name:      name,
		qty:       qty,
		unitPrice: unitPrice,
		productID: productID,
	}, nil
}

func ReconstructItem(name string, qty int, unitPrice string, productID uuid.UUID) Item {
	return Item{name: name, qty: qty, unitPrice: unitPrice, productID: productID}
}

func (i Item) Name() string         { return i.name }
func (i Item) Qty() int             { return i.qty }
func (i Item) UnitPrice() string    { return i.unitPrice }
func (i Item) ProductID() uuid.UUID { return i.productID }

// NumericUnitPrice parses the unit price as a plain decimal. Prices like
// "80/kg" do not parse; those lines cannot participate in server-side total
// recomputation.
func (i Item) NumericUnitPrice() (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(i.unitPrice)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// LineTotal is NumericUnitPrice * qty, when the price is numeric.
func (i Item) LineTotal() (decimal.Decimal, bool) {
	unit, ok := i.NumericUnitPrice()
	if !ok {
		return decimal.Zero, false
	}
	return unit.Mul(decimal.NewFromInt(int64(i.qty))), true
}

// Pricing carries the monetary breakdown of an order. Absent fields default
// to zero; negative values are rejected outright.
type Pricing struct {
	itemsPrice    decimal.Decimal
	taxPrice      decimal.Decimal
	deliveryPrice decimal.Decimal
	totalPrice    decimal.Decimal
}

func NewPricing(itemsPrice, taxPrice, deliveryPrice, totalPrice decimal.Decimal) (Pricing, error) {
	for _, d := range []decimal.Decimal{itemsPrice, taxPrice, deliveryPrice, totalPrice} {
		if d.IsNegative() {
			return Pricing{}, ErrNegativePricing
		}
	}
	return Pricing{
		itemsPrice:    itemsPrice,
		taxPrice:      taxPrice,
		deliveryPrice: deliveryPrice,
		totalPrice:    totalPrice,
	}, nil
}

func (p Pricing) ItemsPrice() decimal.Decimal    { return p.itemsPrice }
func (p Pricing) TaxPrice() decimal.Decimal      { return p.taxPrice }
func (p Pricing) DeliveryPrice() decimal.Decimal { return p.deliveryPrice }
func (p Pricing) TotalPrice() decimal.Decimal    { return p.totalPrice }

// Recomputed returns a copy whose itemsPrice and totalPrice are derived from
// the given line totals, keeping tax and delivery as supplied. Used when
// every line has a numeric price, so client-sent totals are only a display
// hint.
func (p Pricing) Recomputed(lineTotals []decimal.Decimal) Pricing {
	items := decimal.Zero
	for _, lt := range lineTotals {
		items = items.Add(lt)
	}
	return Pricing{
		itemsPrice:    items,
		taxPrice:      p.taxPrice,
		deliveryPrice: p.deliveryPrice,
		totalPrice:    items.Add(p.taxPrice).Add(p.deliveryPrice),
	}
}

// Appointment is the optional scheduling hint on service orders. Free-form
// strings; time-slot conflict resolution is out of scope.
type Appointment struct {
	date string
	time string
}

func NewAppointment(date, time string) Appointment {
	return Appointment{date: strings.TrimSpace(date), time: strings.TrimSpace(time)}
}

func (a Appointment) Date() string  { return a.date }
func (a Appointment) Time() string  { return a.time }
func (a Appointment) IsZero() bool  { return a.date == "" && a.time == "" }
