package repositories

import (
	"context"
	"fmt"
	"log"

	"thai-kitchen/models"
)

const menuColumns = `id, category_id, name_en, name_th, description, price, image_url, is_available, category_en, category_slug`

const menuFallbackQuery = `
	SELECT mi.id, mi.category_id, mi.name_en, mi.name_th, mi.description, mi.price, mi.image_url, mi.is_available,
	       c.name_en AS category_en, c.slug AS category_slug
	FROM menu_items mi
	LEFT JOIN categories c ON mi.category_id = c.id
	WHERE mi.is_available = TRUE`

type MenuRepository struct {
	db Store
}

func NewMenuRepository(db Store) *MenuRepository {
	return &MenuRepository{db: db}
}

// ListAvailable reads the menu_with_categories view; if the view is missing
// or broken it falls back to joining the base tables directly.
func (r *MenuRepository) ListAvailable(ctx context.Context) ([]models.MenuItem, error) {
	rows, err := r.db.Query(ctx, `SELECT `+menuColumns+` FROM menu_with_categories`)
	if err != nil {
		log.Printf("menu view unavailable, falling back to base tables: %v", err)
		rows, err = r.db.Query(ctx, menuFallbackQuery)
		if err != nil {
			return nil, fmt.Errorf("query menu: %w", err)
		}
	}
	defer rows.Close()

	items := []models.MenuItem{}
	for rows.Next() {
		var item models.MenuItem
		err := rows.Scan(
			&item.ID, &item.CategoryID, &item.NameEN, &item.NameTH, &item.Description,
			&item.Price, &item.ImageURL, &item.IsAvailable, &item.CategoryEN, &item.CategorySlug,
		)
		if err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read menu rows: %w", err)
	}

	return items, nil
}
