package models

import (
	"errors"
	"strings"
)

var ErrUnknownCategory = errors.New("unknown store category")

// StoreCategory is one of a fixed set of store labels.
type StoreCategory string

const (
	CategoryElectronics StoreCategory = "Electronics"
	CategoryGroceries   StoreCategory = "Groceries"
	CategoryWholesale   StoreCategory = "Wholesale"
	CategorySuperMart   StoreCategory = "SuperMart"
	CategoryPhones      StoreCategory = "Phones"
	CategoryClothing    StoreCategory = "Clothing"
	CategoryShoes       StoreCategory = "Shoes"
	CategoryBags        StoreCategory = "Bags"
)

// StoreCategories lists the accepted categories in display order.
var StoreCategories = []StoreCategory{
	CategoryElectronics,
	CategoryGroceries,
	CategoryWholesale,
	CategorySuperMart,
	CategoryPhones,
	CategoryClothing,
	CategoryShoes,
	CategoryBags,
}

// ParseStoreCategory matches s case-insensitively against StoreCategories.
func ParseStoreCategory(s string) (StoreCategory, error) {
	s = strings.TrimSpace(s)
	for _, c := range StoreCategories {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", ErrUnknownCategory
}

// Valid reports whether c is one of StoreCategories.
func (c StoreCategory) Valid() bool {
	for _, x := range StoreCategories {
		if x == c {
			return true
		}
	}
	return false
}
