package model

import (
	"fmt"

	"github.com/quickbite/api/internal/validation"
	"github.com/shopspring/decimal"
)

// Field bounds enforced here, independent of (but mirrored by) the column
// constraints in the database.
const (
	MaxNameLength        = 255
	MaxDescriptionLength = 1000
	MaxDietaryTagLength  = 50
)

// MaxPrice is the inclusive upper bound for a menu-item price.
var MaxPrice = decimal.New(9999999, -2) // 99999.99

// ValidateName checks presence and length of the name field.
func ValidateName(name string) validation.CustomValidationErrors {
	if name == "" {
		return validation.CustomValidationErrors{{Field: "name", Message: "is required"}}
	}
	if len(name) > MaxNameLength {
		return validation.CustomValidationErrors{{
			Field:   "name",
			Message: fmt.Sprintf("must not exceed %d characters", MaxNameLength),
		}}
	}
	return nil
}

// ValidateDescription checks the optional description length. A nil
// description is always valid.
func ValidateDescription(description *string) validation.CustomValidationErrors {
	if description != nil && len(*description) > MaxDescriptionLength {
		return validation.CustomValidationErrors{{
			Field:   "description",
			Message: fmt.Sprintf("must not exceed %d characters", MaxDescriptionLength),
		}}
	}
	return nil
}

// ValidatePrice checks the price range and precision: strictly positive,
// at most MaxPrice, no more than two fractional digits.
func ValidatePrice(price decimal.Decimal) validation.CustomValidationErrors {
	var verrs validation.CustomValidationErrors
	if !price.IsPositive() {
		verrs = append(verrs, validation.CustomValidationError{
			Field: "price", Message: "must be greater than 0",
		})
	} else if price.GreaterThan(MaxPrice) {
		verrs = append(verrs, validation.CustomValidationError{
			Field: "price", Message: "must not exceed " + MaxPrice.String(),
		})
	}
	if price.Exponent() < -2 {
		verrs = append(verrs, validation.CustomValidationError{
			Field: "price", Message: "must have at most 2 decimal places",
		})
	}
	return verrs
}

// ValidateCategory checks membership in the closed category set.
func ValidateCategory(category Category) validation.CustomValidationErrors {
	if !category.Valid() {
		return validation.CustomValidationErrors{{
			Field:   "category",
			Message: "must be one of: appetizer, main, dessert, beverage",
		}}
	}
	return nil
}

// ValidateDietaryTag checks the optional dietary-tag length.
func ValidateDietaryTag(tag *string) validation.CustomValidationErrors {
	if tag != nil && len(*tag) > MaxDietaryTagLength {
		return validation.CustomValidationErrors{{
			Field:   "dietaryTag",
			Message: fmt.Sprintf("must not exceed %d characters", MaxDietaryTagLength),
		}}
	}
	return nil
}

// Validate applies every full-record invariant and reports all violations
// together, in field order: name, description, price, category, dietaryTag.
// It returns nil when the record is valid.
func (m *MenuItem) Validate() validation.CustomValidationErrors {
	var verrs validation.CustomValidationErrors
	verrs = append(verrs, ValidateName(m.Name)...)
	verrs = append(verrs, ValidateDescription(m.Description)...)
	verrs = append(verrs, ValidatePrice(m.Price)...)
	verrs = append(verrs, ValidateCategory(m.Category)...)
	verrs = append(verrs, ValidateDietaryTag(m.DietaryTag)...)
	if len(verrs) == 0 {
		return nil
	}
	return verrs
}
