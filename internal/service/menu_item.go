package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/quickbite/api/internal/errs"
	"github.com/quickbite/api/internal/model"
	"github.com/quickbite/api/internal/sqlerr"
	"github.com/quickbite/api/internal/validation"
)

// MenuItemStore is the persistence contract the service consumes. It is
// implemented by repository.MenuItemRepository; tests substitute an
// in-memory fake.
type MenuItemStore interface {
	Create(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error)
	FindByID(ctx context.Context, id int64) (*model.MenuItem, error)
	FindAll(ctx context.Context, filter model.MenuItemFilter) ([]model.MenuItem, error)
	Search(ctx context.Context, term string) ([]model.MenuItem, error)
	Update(ctx context.Context, id int64, item *model.MenuItem) (*model.MenuItem, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// ErrMenuItemNotFound is the uniform 404 for every path that fails to
// resolve an id to an existing record.
func ErrMenuItemNotFound() *errs.HTTPError {
	return errs.NewNotFoundError("Menu item not found")
}

// MenuItemService implements the menu-item operations over a store.
type MenuItemService struct {
	store MenuItemStore
}

func NewMenuItemService(store MenuItemStore) *MenuItemService {
	return &MenuItemService{store: store}
}

// parseID resolves a raw path id. Non-numeric or non-positive values are
// reported as "not found", never as a request error: ids are opaque to
// clients and an id the store could never have assigned simply does not
// resolve.
func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// List returns items matching the filter, ordered by category then name.
// Empty filter values mean "no filter", not "equals empty string".
func (s *MenuItemService) List(ctx context.Context, filter model.MenuItemFilter) ([]model.MenuItem, error) {
	items, err := s.store.FindAll(ctx, filter)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return items, nil
}

// Get fetches a single item by its raw path id.
func (s *MenuItemService) Get(ctx context.Context, rawID string) (*model.MenuItem, error) {
	id, ok := parseID(rawID)
	if !ok {
		return nil, ErrMenuItemNotFound()
	}

	item, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMenuItemNotFound()
		}
		return nil, sqlerr.HandleError(err)
	}
	return item, nil
}

// Create validates the candidate record and persists it. All violated
// constraints are reported together; a duplicate name maps to a 400
// through the sqlerr layer.
func (s *MenuItemService) Create(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error) {
	if verrs := item.Validate(); verrs != nil {
		return nil, validation.Extract(verrs)
	}

	created, err := s.store.Create(ctx, item)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return created, nil
}

// Update applies a partial patch: only supplied fields overwrite the
// stored record, and the merged record must satisfy every full-record
// invariant before the write is issued. Fails closed with a 404 when the
// id never resolved or the row vanished between read and write.
func (s *MenuItemService) Update(ctx context.Context, rawID string, patch model.MenuItemPatch) (*model.MenuItem, error) {
	id, ok := parseID(rawID)
	if !ok {
		return nil, ErrMenuItemNotFound()
	}

	existing, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMenuItemNotFound()
		}
		return nil, sqlerr.HandleError(err)
	}

	merged := *existing
	patch.Apply(&merged)
	if verrs := merged.Validate(); verrs != nil {
		return nil, validation.Extract(verrs)
	}

	updated, err := s.store.Update(ctx, id, &merged)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMenuItemNotFound()
		}
		return nil, sqlerr.HandleError(err)
	}
	return updated, nil
}

// Delete removes the item at the raw path id. The store treats deleting an
// absent row as a no-op; the HTTP surface reports it as 404.
func (s *MenuItemService) Delete(ctx context.Context, rawID string) error {
	id, ok := parseID(rawID)
	if !ok {
		return ErrMenuItemNotFound()
	}

	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return sqlerr.HandleError(err)
	}
	if !deleted {
		return ErrMenuItemNotFound()
	}
	return nil
}

// Search matches the term as a case-insensitive substring of name. A term
// that is empty after trimming is a request-level error, distinct from a
// listing with no filter.
func (s *MenuItemService) Search(ctx context.Context, term string) ([]model.MenuItem, error) {
	trimmed := strings.TrimSpace(term)
	if trimmed == "" {
		return nil, errs.NewBadRequestError("Search term is required", nil)
	}

	items, err := s.store.Search(ctx, trimmed)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return items, nil
}
