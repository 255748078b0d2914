package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/pr-poehali-dev/furniture-service-portal/internal/models"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/repository/common"
)

// masterSearchLimit ограничивает размер выдачи каталога.
const masterSearchLimit = 50

// MasterSearchParams — независимые необязательные фильтры каталога мастеров.
type MasterSearchParams struct {
	City         string
	Category     string
	MinRating    *float64
	VerifiedOnly bool
	Search       string
}

// MasterRepository отвечает за каталог мастеров.
type MasterRepository struct {
	db *sqlx.DB
}

// NewMasterRepository создаёт экземпляр репозитория.
func NewMasterRepository(db *sqlx.DB) *MasterRepository {
	return &MasterRepository{db: db}
}

// buildMasterSearchQuery собирает параметризованный запрос каталога.
// Отсутствующий фильтр не добавляет условий; портфолио и категории
// агрегируются в JSON массивы ([] при отсутствии связанных строк).
func buildMasterSearchQuery(params MasterSearchParams) (string, []interface{}) {
	where := common.NewWhereBuilder()

	if params.City != "" {
		where.Add("m.city ILIKE ?", "%"+params.City+"%")
	}
	if params.Category != "" {
		where.Add(`EXISTS (
			SELECT 1 FROM master_categories mc2
			JOIN service_categories sc2 ON mc2.category_id = sc2.id
			WHERE mc2.master_id = m.id AND sc2.name = ?
		)`, params.Category)
	}
	if params.MinRating != nil {
		where.Add("m.rating >= ?", *params.MinRating)
	}
	if params.VerifiedOnly {
		where.Add("m.verified = TRUE")
	}
	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		where.Add("(u.full_name ILIKE ? OR m.specialty ILIKE ? OR m.description ILIKE ?)",
			pattern, pattern, pattern)
	}

	query := fmt.Sprintf(`
		SELECT
			m.id, m.user_id, m.specialty, m.description, m.experience_years,
			m.city, m.rating, m.reviews_count, m.completed_projects, m.verified,
			u.full_name, u.avatar_url, u.phone,
			COALESCE(
				json_agg(
					DISTINCT jsonb_build_object('url', p.image_url, 'title', p.title)
				) FILTER (WHERE p.id IS NOT NULL),
				'[]'
			) AS portfolio,
			COALESCE(
				json_agg(
					DISTINCT sc.name
				) FILTER (WHERE sc.id IS NOT NULL),
				'[]'
			) AS categories
		FROM masters m
		JOIN users u ON m.user_id = u.id
		LEFT JOIN portfolio_items p ON m.id = p.master_id
		LEFT JOIN master_categories mc ON m.id = mc.master_id
		LEFT JOIN service_categories sc ON mc.category_id = sc.id
		WHERE %s
		GROUP BY m.id, u.full_name, u.avatar_url, u.phone
		ORDER BY m.rating DESC, m.reviews_count DESC
		LIMIT $%d
	`, where.Clause(), where.NextPlaceholder())

	return query, append(where.Args(), masterSearchLimit)
}

// Search возвращает мастеров, удовлетворяющих всем заданным фильтрам,
// отсортированных по рейтингу и количеству отзывов.
func (r *MasterRepository) Search(ctx context.Context, params MasterSearchParams) ([]models.MasterListItem, error) {
	query, args := buildMasterSearchQuery(params)

	masters := []models.MasterListItem{}
	if err := r.db.SelectContext(ctx, &masters, query, args...); err != nil {
		return nil, fmt.Errorf("master repository: search %w", err)
	}

	return masters, nil
}
