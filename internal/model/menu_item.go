package model

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices serialize as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Category is the closed set of menu sections. Membership is checked once
// at the boundary (validation and the matching CHECK constraint); code past
// that point can rely on the value being one of the constants below.
type Category string

const (
	CategoryAppetizer Category = "appetizer"
	CategoryMain      Category = "main"
	CategoryDessert   Category = "dessert"
	CategoryBeverage  Category = "beverage"
)

// Categories lists the valid category values in declaration order.
func Categories() []Category {
	return []Category{CategoryAppetizer, CategoryMain, CategoryDessert, CategoryBeverage}
}

// Valid reports whether c is a member of the category set.
func (c Category) Valid() bool {
	switch c {
	case CategoryAppetizer, CategoryMain, CategoryDessert, CategoryBeverage:
		return true
	}
	return false
}

// MenuItem is a single row of the menu_items table.
//
// Description and DietaryTag are pointers so an unset value serializes as
// JSON null and round-trips as SQL NULL.
type MenuItem struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    Category        `json:"category"`
	DietaryTag  *string         `json:"dietaryTag"`
	Availability bool           `json:"availability"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// MenuItemPatch carries the fields of a partial update. A nil field means
// "leave the stored value alone"; it is never conflated with an explicit
// zero value sent by the client.
type MenuItemPatch struct {
	Name         *string          `json:"name"`
	Description  *string          `json:"description"`
	Price        *decimal.Decimal `json:"price"`
	Category     *Category        `json:"category"`
	DietaryTag   *string          `json:"dietaryTag"`
	Availability *bool            `json:"availability"`
}

// Apply merges the supplied fields of the patch onto item. Optional text
// fields are cleared by sending an explicit empty string.
func (p MenuItemPatch) Apply(item *MenuItem) {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Description != nil {
		if *p.Description == "" {
			item.Description = nil
		} else {
			item.Description = p.Description
		}
	}
	if p.Price != nil {
		item.Price = *p.Price
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.DietaryTag != nil {
		if *p.DietaryTag == "" {
			item.DietaryTag = nil
		} else {
			item.DietaryTag = p.DietaryTag
		}
	}
	if p.Availability != nil {
		item.Availability = *p.Availability
	}
}

// MenuItemFilter narrows a listing query. Empty strings mean "no filter",
// never "equals empty string". Both predicates combine with AND.
type MenuItemFilter struct {
	Category   string
	DietaryTag string
}
