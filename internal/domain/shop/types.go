package shop

import "errors"

var ErrInvalidCategory = errors.New("invalid shop category")

type Category string

const (
	CategoryGrocery    Category = "Grocery"
	CategorySalon      Category = "Salon"
	CategoryRestaurant Category = "Restaurant"
	CategoryPharmacy   Category = "Pharmacy"
	CategoryBakery     Category = "Bakery"
	CategoryClothing   Category = "Clothing"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryGrocery, CategorySalon, CategoryRestaurant,
		CategoryPharmacy, CategoryBakery, CategoryClothing:
		return true
	default:
		return false
	}
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}
