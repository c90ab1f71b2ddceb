package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/quickbite/api/internal/model"
	"github.com/quickbite/api/internal/server"
	"github.com/quickbite/api/internal/service"
	"github.com/quickbite/api/internal/validation"
)

// Response envelopes shared by the menu-item endpoints.

type listResponse struct {
	Success bool             `json:"success"`
	Count   int              `json:"count"`
	Data    []model.MenuItem `json:"data"`
}

type itemResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    *model.MenuItem `json:"data"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ListMenuItemsRequest carries the optional listing filters. Empty values
// mean "no filter".
type ListMenuItemsRequest struct {
	Category   string `query:"category"`
	DietaryTag string `query:"dietaryTag"`
}

func (r *ListMenuItemsRequest) Validate() error { return nil }

// GetMenuItemRequest carries the raw path id. Any string is accepted
// here; an id the store could never have assigned resolves to 404 in the
// service layer.
type GetMenuItemRequest struct {
	ID string `param:"id"`
}

func (r *GetMenuItemRequest) Validate() error { return nil }

// CreateMenuItemRequest is the candidate field set for a new menu item.
// Pointer fields distinguish "omitted" from an explicit zero value.
type CreateMenuItemRequest struct {
	Name         *string          `json:"name"`
	Description  *string          `json:"description"`
	Price        *decimal.Decimal `json:"price"`
	Category     *string          `json:"category"`
	DietaryTag   *string          `json:"dietaryTag"`
	Availability *bool            `json:"availability"`
}

// Validate collects every violated constraint in field order: name,
// description, price, category, dietaryTag. Nothing short-circuits; a
// request missing its price still reports a too-long name alongside.
func (r *CreateMenuItemRequest) Validate() error {
	var verrs validation.CustomValidationErrors

	if r.Name == nil {
		verrs = append(verrs, validation.CustomValidationError{Field: "name", Message: "is required"})
	} else {
		verrs = append(verrs, model.ValidateName(*r.Name)...)
	}

	verrs = append(verrs, model.ValidateDescription(r.Description)...)

	if r.Price == nil {
		verrs = append(verrs, validation.CustomValidationError{Field: "price", Message: "is required"})
	} else {
		verrs = append(verrs, model.ValidatePrice(*r.Price)...)
	}

	if r.Category == nil {
		verrs = append(verrs, validation.CustomValidationError{Field: "category", Message: "is required"})
	} else {
		verrs = append(verrs, model.ValidateCategory(model.Category(*r.Category))...)
	}

	verrs = append(verrs, model.ValidateDietaryTag(r.DietaryTag)...)

	if len(verrs) == 0 {
		return nil
	}
	return verrs
}

// ToModel builds the candidate record, applying defaults: unset optional
// text fields stay null, availability defaults to true.
func (r *CreateMenuItemRequest) ToModel() *model.MenuItem {
	item := &model.MenuItem{
		Availability: true,
	}
	if r.Name != nil {
		item.Name = *r.Name
	}
	if r.Description != nil && *r.Description != "" {
		item.Description = r.Description
	}
	if r.Price != nil {
		item.Price = *r.Price
	}
	if r.Category != nil {
		item.Category = model.Category(*r.Category)
	}
	if r.DietaryTag != nil && *r.DietaryTag != "" {
		item.DietaryTag = r.DietaryTag
	}
	if r.Availability != nil {
		item.Availability = *r.Availability
	}
	return item
}

// UpdateMenuItemRequest is a partial patch: nil fields keep their stored
// values. The merged record is validated in the service, so a partial
// update can never leave an invalid row behind.
type UpdateMenuItemRequest struct {
	ID           string           `param:"id"`
	Name         *string          `json:"name"`
	Description  *string          `json:"description"`
	Price        *decimal.Decimal `json:"price"`
	Category     *string          `json:"category"`
	DietaryTag   *string          `json:"dietaryTag"`
	Availability *bool            `json:"availability"`
}

func (r *UpdateMenuItemRequest) Validate() error { return nil }

// Patch converts the request into the model-level patch structure.
func (r *UpdateMenuItemRequest) Patch() model.MenuItemPatch {
	patch := model.MenuItemPatch{
		Name:         r.Name,
		Description:  r.Description,
		Price:        r.Price,
		DietaryTag:   r.DietaryTag,
		Availability: r.Availability,
	}
	if r.Category != nil {
		category := model.Category(*r.Category)
		patch.Category = &category
	}
	return patch
}

// SearchMenuItemsRequest carries the free-text search term. Blank terms
// are rejected in the service with "Search term is required".
type SearchMenuItemsRequest struct {
	Q string `query:"q"`
}

func (r *SearchMenuItemsRequest) Validate() error { return nil }

// MenuItemHandler exposes the menu-item CRUD and search endpoints.
type MenuItemHandler struct {
	Handler
	service *service.MenuItemService
}

func NewMenuItemHandler(s *server.Server, services *service.Services) *MenuItemHandler {
	return &MenuItemHandler{
		Handler: NewHandler(s),
		service: services.MenuItems,
	}
}

// List handles GET /menu-items.
func (h *MenuItemHandler) List(c echo.Context, req *ListMenuItemsRequest) (*listResponse, error) {
	filter := model.MenuItemFilter{
		Category:   req.Category,
		DietaryTag: req.DietaryTag,
	}

	items, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return nil, err
	}

	return &listResponse{Success: true, Count: len(items), Data: items}, nil
}

// Get handles GET /menu-items/:id.
func (h *MenuItemHandler) Get(c echo.Context, req *GetMenuItemRequest) (*itemResponse, error) {
	item, err := h.service.Get(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}

	return &itemResponse{Success: true, Data: item}, nil
}

// Create handles POST /menu-items.
func (h *MenuItemHandler) Create(c echo.Context, req *CreateMenuItemRequest) (*itemResponse, error) {
	created, err := h.service.Create(c.Request().Context(), req.ToModel())
	if err != nil {
		return nil, err
	}

	return &itemResponse{
		Success: true,
		Message: "Menu item created successfully",
		Data:    created,
	}, nil
}

// Update handles PUT /menu-items/:id.
func (h *MenuItemHandler) Update(c echo.Context, req *UpdateMenuItemRequest) (*itemResponse, error) {
	updated, err := h.service.Update(c.Request().Context(), req.ID, req.Patch())
	if err != nil {
		return nil, err
	}

	return &itemResponse{
		Success: true,
		Message: "Menu item updated successfully",
		Data:    updated,
	}, nil
}

// Delete handles DELETE /menu-items/:id.
func (h *MenuItemHandler) Delete(c echo.Context, req *GetMenuItemRequest) (*messageResponse, error) {
	if err := h.service.Delete(c.Request().Context(), req.ID); err != nil {
		return nil, err
	}

	return &messageResponse{
		Success: true,
		Message: "Menu item deleted successfully",
	}, nil
}

// Search handles GET /menu-items/search.
func (h *MenuItemHandler) Search(c echo.Context, req *SearchMenuItemsRequest) (*listResponse, error) {
	items, err := h.service.Search(c.Request().Context(), req.Q)
	if err != nil {
		return nil, err
	}

	return &listResponse{Success: true, Count: len(items), Data: items}, nil
}
