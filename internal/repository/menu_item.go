package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quickbite/api/internal/model"
)

// menuItemColumns is the column list every query selects, in scan order.
const menuItemColumns = "id, name, description, price, category, dietary_tag, availability, created_at, updated_at"

// MenuItemRepository persists menu items in PostgreSQL.
type MenuItemRepository struct {
	pool *pgxpool.Pool
}

func NewMenuItemRepository(pool *pgxpool.Pool) *MenuItemRepository {
	return &MenuItemRepository{pool: pool}
}

func scanMenuItem(row pgx.Row) (*model.MenuItem, error) {
	var item model.MenuItem
	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.Price,
		&item.Category,
		&item.DietaryTag,
		&item.Availability,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func collectMenuItems(rows pgx.Rows) ([]model.MenuItem, error) {
	defer rows.Close()

	// Empty result is an empty slice, not nil: listings serialize as [].
	items := []model.MenuItem{}
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// Create inserts a new row and returns it with the store-assigned id and
// timestamps. A duplicate name surfaces as a pgconn unique violation.
func (r *MenuItemRepository) Create(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error) {
	query := `
		INSERT INTO menu_items (name, description, price, category, dietary_tag, availability)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + menuItemColumns

	row := r.pool.QueryRow(ctx, query,
		item.Name, item.Description, item.Price, item.Category, item.DietaryTag, item.Availability)
	return scanMenuItem(row)
}

// FindByID fetches a single row. Returns pgx.ErrNoRows when id is absent.
func (r *MenuItemRepository) FindByID(ctx context.Context, id int64) (*model.MenuItem, error) {
	query := "SELECT " + menuItemColumns + " FROM menu_items WHERE id = $1"
	return scanMenuItem(r.pool.QueryRow(ctx, query, id))
}

// buildListQuery assembles the filtered listing query. Only provided
// filter fields contribute predicates; they combine with AND. Ordering is
// category ascending, then name ascending to break ties deterministically.
func buildListQuery(filter model.MenuItemFilter) (string, []any) {
	query := "SELECT " + menuItemColumns + " FROM menu_items"

	var conditions []string
	var args []any
	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.DietaryTag != "" {
		args = append(args, filter.DietaryTag)
		conditions = append(conditions, fmt.Sprintf("dietary_tag = $%d", len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY category ASC, name ASC"
	return query, args
}

// FindAll lists rows matching the filter. No matches yields an empty
// slice, never an error.
func (r *MenuItemRepository) FindAll(ctx context.Context, filter model.MenuItemFilter) ([]model.MenuItem, error) {
	query, args := buildListQuery(filter)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectMenuItems(rows)
}

// Search matches the term as a case-insensitive substring of name. The
// term is always bound as a parameter, so quoting characters in it are
// compared as data.
func (r *MenuItemRepository) Search(ctx context.Context, term string) ([]model.MenuItem, error) {
	query := "SELECT " + menuItemColumns + ` FROM menu_items
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY name ASC`

	rows, err := r.pool.Query(ctx, query, term)
	if err != nil {
		return nil, err
	}
	return collectMenuItems(rows)
}

// Update overwrites the full record at id with the merged item and
// refreshes updated_at. Returns pgx.ErrNoRows when id is absent.
func (r *MenuItemRepository) Update(ctx context.Context, id int64, item *model.MenuItem) (*model.MenuItem, error) {
	query := `
		UPDATE menu_items
		SET name = $1, description = $2, price = $3, category = $4,
			dietary_tag = $5, availability = $6, updated_at = now()
		WHERE id = $7
		RETURNING ` + menuItemColumns

	row := r.pool.QueryRow(ctx, query,
		item.Name, item.Description, item.Price, item.Category, item.DietaryTag, item.Availability, id)
	return scanMenuItem(row)
}

// Delete removes the row at id. It reports whether a row existed; deleting
// an absent id is false, not an error.
func (r *MenuItemRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, "DELETE FROM menu_items WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
