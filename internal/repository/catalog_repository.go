package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/pr-poehali-dev/furniture-service-portal/internal/models"
)

// CatalogRepository отвечает за справочник категорий услуг.
type CatalogRepository struct {
	db *sqlx.DB
}

func NewCatalogRepository(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// ListCategories возвращает все категории в порядке идентификаторов.
func (r *CatalogRepository) ListCategories(ctx context.Context) ([]models.ServiceCategory, error) {
	categories := []models.ServiceCategory{}
	err := r.db.SelectContext(ctx, &categories, `
		SELECT id, name, icon, description
		FROM service_categories
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("catalog repository: list categories %w", err)
	}
	return categories, nil
}

// FindCategoryIDByName возвращает id категории по точному имени.
// Неизвестное имя не ошибка: возвращается (nil, nil).
func (r *CatalogRepository) FindCategoryIDByName(ctx context.Context, name string) (*int64, error) {
	var id int64
	err := r.db.GetContext(ctx, &id, `SELECT id FROM service_categories WHERE name = $1`, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("catalog repository: find category by name %w", err)
	}
	return &id, nil
}
