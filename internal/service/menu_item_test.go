package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/quickbite/api/internal/errs"
	"github.com/quickbite/api/internal/model"
)

// fakeStore is an in-memory MenuItemStore. It mirrors the repository
// contract: pgx.ErrNoRows for absent single-row lookups, a bool for
// delete, and non-nil empty slices for listings.
type fakeStore struct {
	items  map[int64]model.MenuItem
	nextID int64

	// lastSearchTerm records what the service actually passed down.
	lastSearchTerm string
	lastFilter     model.MenuItemFilter

	// err, when set, is returned by every operation.
	err error
}

func newFakeStore() *fakeStore {
	return &fakeStore{items: map[int64]model.MenuItem{}, nextID: 1}
}

func (f *fakeStore) Create(_ context.Context, item *model.MenuItem) (*model.MenuItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	stored := *item
	stored.ID = f.nextID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.nextID++
	f.items[stored.ID] = stored
	return &stored, nil
}

func (f *fakeStore) FindByID(_ context.Context, id int64) (*model.MenuItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	item, ok := f.items[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &item, nil
}

func (f *fakeStore) FindAll(_ context.Context, filter model.MenuItemFilter) ([]model.MenuItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastFilter = filter
	items := []model.MenuItem{}
	for _, item := range f.items {
		if filter.Category != "" && string(item.Category) != filter.Category {
			continue
		}
		if filter.DietaryTag != "" && (item.DietaryTag == nil || *item.DietaryTag != filter.DietaryTag) {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (f *fakeStore) Search(_ context.Context, term string) ([]model.MenuItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastSearchTerm = term
	items := []model.MenuItem{}
	for _, item := range f.items {
		if strings.Contains(strings.ToLower(item.Name), strings.ToLower(term)) {
			items = append(items, item)
		}
	}
	return items, nil
}

func (f *fakeStore) Update(_ context.Context, id int64, item *model.MenuItem) (*model.MenuItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.items[id]; !ok {
		return nil, pgx.ErrNoRows
	}
	stored := *item
	stored.ID = id
	stored.UpdatedAt = time.Now()
	f.items[id] = stored
	return &stored, nil
}

func (f *fakeStore) Delete(_ context.Context, id int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if _, ok := f.items[id]; !ok {
		return false, nil
	}
	delete(f.items, id)
	return true, nil
}

func strPtr(s string) *string { return &s }

func testItem(name string, category model.Category) *model.MenuItem {
	return &model.MenuItem{
		Name:         name,
		Price:        decimal.RequireFromString("12.99"),
		Category:     category,
		DietaryTag:   strPtr("vegetarian"),
		Availability: true,
	}
}

func mustHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *errs.HTTPError, got %T: %v", err, err)
	}
	return httpErr
}

func TestParseID(t *testing.T) {
	tests := []struct {
		raw    string
		wantID int64
		wantOK bool
	}{
		{"1", 1, true},
		{"42", 42, true},
		{"0", 0, false},
		{"-1", 0, false},
		{"abc", 0, false},
		{"1.5", 0, false},
		{"", 0, false},
		{"999999999999999999999", 0, false},
	}

	for _, tt := range tests {
		id, ok := parseID(tt.raw)
		if ok != tt.wantOK || id != tt.wantID {
			t.Errorf("parseID(%q) = (%d, %v), want (%d, %v)", tt.raw, id, ok, tt.wantID, tt.wantOK)
		}
	}
}

func TestMenuItemServiceCreate(t *testing.T) {
	store := newFakeStore()
	svc := NewMenuItemService(store)
	ctx := context.Background()

	t.Run("valid item is persisted", func(t *testing.T) {
		created, err := svc.Create(ctx, testItem("Margherita Pizza", model.CategoryMain))
		if err != nil {
			t.Fatalf("Create() error: %v", err)
		}
		if created.ID == 0 {
			t.Error("created item has no id")
		}
		if created.Name != "Margherita Pizza" {
			t.Errorf("name = %q", created.Name)
		}
	})

	t.Run("invalid item never reaches the store", func(t *testing.T) {
		before := len(store.items)

		item := testItem("", model.Category("snack"))
		item.Price = decimal.Zero
		_, err := svc.Create(ctx, item)

		httpErr := mustHTTPError(t, err)
		if httpErr.Status != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", httpErr.Status)
		}
		if !strings.HasPrefix(httpErr.Message, "Validation error: ") {
			t.Errorf("message = %q, want Validation error prefix", httpErr.Message)
		}
		// All three violations in one message.
		for _, want := range []string{"name is required", "price must be greater than 0", "category must be one of"} {
			if !strings.Contains(httpErr.Message, want) {
				t.Errorf("message = %q, want substring %q", httpErr.Message, want)
			}
		}
		if len(store.items) != before {
			t.Error("invalid item reached the store")
		}
	})
}

func TestMenuItemServiceGet(t *testing.T) {
	store := newFakeStore()
	svc := NewMenuItemService(store)
	ctx := context.Background()

	created, err := svc.Create(ctx, testItem("Lemonade", model.CategoryBeverage))
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	t.Run("existing id", func(t *testing.T) {
		got, err := svc.Get(ctx, "1")
		if err != nil {
			t.Fatalf("Get() error: %v", err)
		}
		if got.ID != created.ID || got.Name != "Lemonade" {
			t.Errorf("got %+v", got)
		}
	})

	// Absent, non-numeric, and non-positive ids all resolve the same way.
	for _, raw := range []string{"9999", "abc", "-1", "0"} {
		t.Run("unresolvable id "+raw, func(t *testing.T) {
			_, err := svc.Get(ctx, raw)
			httpErr := mustHTTPError(t, err)
			if httpErr.Status != http.StatusNotFound {
				t.Errorf("status = %d, want 404", httpErr.Status)
			}
			if httpErr.Message != "Menu item not found" {
				t.Errorf("message = %q", httpErr.Message)
			}
		})
	}
}

func TestMenuItemServiceList(t *testing.T) {
	store := newFakeStore()
	svc := NewMenuItemService(store)
	ctx := context.Background()

	if _, err := svc.Create(ctx, testItem("Margherita Pizza", model.CategoryMain)); err != nil {
		t.Fatal(err)
	}
	steak := testItem("Steak", model.CategoryMain)
	steak.DietaryTag = nil
	if _, err := svc.Create(ctx, steak); err != nil {
		t.Fatal(err)
	}

	t.Run("empty filter passes through untouched", func(t *testing.T) {
		items, err := svc.List(ctx, model.MenuItemFilter{})
		if err != nil {
			t.Fatalf("List() error: %v", err)
		}
		if len(items) != 2 {
			t.Errorf("len = %d, want 2", len(items))
		}
		if store.lastFilter != (model.MenuItemFilter{}) {
			t.Errorf("filter forwarded as %+v, want zero value", store.lastFilter)
		}
	})

	t.Run("filters narrow the result", func(t *testing.T) {
		items, err := svc.List(ctx, model.MenuItemFilter{Category: "main", DietaryTag: "vegetarian"})
		if err != nil {
			t.Fatalf("List() error: %v", err)
		}
		if len(items) != 1 || items[0].Name != "Margherita Pizza" {
			t.Errorf("items = %+v", items)
		}
	})

	t.Run("no matches is an empty slice", func(t *testing.T) {
		items, err := svc.List(ctx, model.MenuItemFilter{Category: "dessert"})
		if err != nil {
			t.Fatalf("List() error: %v", err)
		}
		if items == nil || len(items) != 0 {
			t.Errorf("items = %v, want empty slice", items)
		}
	})
}

func TestMenuItemServiceUpdate(t *testing.T) {
	ctx := context.Background()

	newStoreWithItem := func(t *testing.T) (*fakeStore, *MenuItemService) {
		t.Helper()
		store := newFakeStore()
		svc := NewMenuItemService(store)
		if _, err := svc.Create(ctx, testItem("Margherita Pizza", model.CategoryMain)); err != nil {
			t.Fatal(err)
		}
		return store, svc
	}

	t.Run("partial patch keeps omitted fields", func(t *testing.T) {
		_, svc := newStoreWithItem(t)

		price := decimal.RequireFromString("14.50")
		updated, err := svc.Update(ctx, "1", model.MenuItemPatch{Price: &price})
		if err != nil {
			t.Fatalf("Update() error: %v", err)
		}

		if !updated.Price.Equal(price) {
			t.Errorf("price = %s, want %s", updated.Price, price)
		}
		if updated.Name != "Margherita Pizza" {
			t.Errorf("name changed to %q", updated.Name)
		}
		if updated.DietaryTag == nil || *updated.DietaryTag != "vegetarian" {
			t.Errorf("dietaryTag = %v", updated.DietaryTag)
		}
	})

	t.Run("merged record is validated", func(t *testing.T) {
		store, svc := newStoreWithItem(t)

		bad := decimal.Zero
		_, err := svc.Update(ctx, "1", model.MenuItemPatch{Price: &bad})
		httpErr := mustHTTPError(t, err)
		if httpErr.Status != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", httpErr.Status)
		}
		if !strings.Contains(httpErr.Message, "price must be greater than 0") {
			t.Errorf("message = %q", httpErr.Message)
		}
		// The stored row is untouched.
		if !store.items[1].Price.Equal(decimal.RequireFromString("12.99")) {
			t.Errorf("stored price mutated to %s", store.items[1].Price)
		}
	})

	t.Run("unresolvable ids are not found", func(t *testing.T) {
		_, svc := newStoreWithItem(t)

		name := "Quattro Stagioni"
		for _, raw := range []string{"9999", "abc", "0"} {
			_, err := svc.Update(ctx, raw, model.MenuItemPatch{Name: &name})
			httpErr := mustHTTPError(t, err)
			if httpErr.Status != http.StatusNotFound {
				t.Errorf("Update(%q) status = %d, want 404", raw, httpErr.Status)
			}
		}
	})
}

func TestMenuItemServiceDelete(t *testing.T) {
	store := newFakeStore()
	svc := NewMenuItemService(store)
	ctx := context.Background()

	if _, err := svc.Create(ctx, testItem("Margherita Pizza", model.CategoryMain)); err != nil {
		t.Fatal(err)
	}

	if err := svc.Delete(ctx, "1"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if len(store.items) != 0 {
		t.Error("item still in store after delete")
	}

	// Deleting again, or with an id the store never assigned, is 404.
	for _, raw := range []string{"1", "abc", "-7"} {
		err := svc.Delete(ctx, raw)
		httpErr := mustHTTPError(t, err)
		if httpErr.Status != http.StatusNotFound {
			t.Errorf("Delete(%q) status = %d, want 404", raw, httpErr.Status)
		}
	}
}

func TestMenuItemServiceSearch(t *testing.T) {
	store := newFakeStore()
	svc := NewMenuItemService(store)
	ctx := context.Background()

	if _, err := svc.Create(ctx, testItem("Margherita Pizza", model.CategoryMain)); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Create(ctx, testItem("Pepperoni Pizza", model.CategoryMain)); err != nil {
		t.Fatal(err)
	}

	t.Run("matches case-insensitively", func(t *testing.T) {
		items, err := svc.Search(ctx, "PIZZA")
		if err != nil {
			t.Fatalf("Search() error: %v", err)
		}
		if len(items) != 2 {
			t.Errorf("len = %d, want 2", len(items))
		}
	})

	t.Run("term is trimmed before the store sees it", func(t *testing.T) {
		if _, err := svc.Search(ctx, "  margherita  "); err != nil {
			t.Fatalf("Search() error: %v", err)
		}
		if store.lastSearchTerm != "margherita" {
			t.Errorf("store received %q, want %q", store.lastSearchTerm, "margherita")
		}
	})

	t.Run("blank terms are rejected", func(t *testing.T) {
		for _, term := range []string{"", "   ", "\t\n"} {
			_, err := svc.Search(ctx, term)
			httpErr := mustHTTPError(t, err)
			if httpErr.Status != http.StatusBadRequest {
				t.Errorf("Search(%q) status = %d, want 400", term, httpErr.Status)
			}
			if httpErr.Message != "Search term is required" {
				t.Errorf("Search(%q) message = %q", term, httpErr.Message)
			}
		}
	})

	t.Run("quoting characters are data, not syntax", func(t *testing.T) {
		items, err := svc.Search(ctx, "' OR '1'='1")
		if err != nil {
			t.Fatalf("Search() error: %v", err)
		}
		if len(items) != 0 {
			t.Errorf("hostile term matched %d items", len(items))
		}
	})
}

func TestMenuItemServiceStoreFailure(t *testing.T) {
	store := newFakeStore()
	store.err = errors.New("connection refused")
	svc := NewMenuItemService(store)
	ctx := context.Background()

	_, err := svc.List(ctx, model.MenuItemFilter{})
	httpErr := mustHTTPError(t, err)
	if httpErr.Status != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", httpErr.Status)
	}
}
