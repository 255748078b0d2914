package models

import (
	"github.com/jmoiron/sqlx/types"
)

// ServiceCategory описывает категорию услуг (статический справочник).
type ServiceCategory struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Icon        *string `db:"icon" json:"icon,omitempty"`
	Description *string `db:"description" json:"description,omitempty"`
}

// MasterListItem — строка выдачи каталога мастеров: профиль мастера,
// данные пользователя и агрегированные в JSON портфолио и категории.
type MasterListItem struct {
	ID                int64   `db:"id" json:"id"`
	UserID            int64   `db:"user_id" json:"user_id"`
	Specialty         string  `db:"specialty" json:"specialty"`
	Description       *string `db:"description" json:"description,omitempty"`
	ExperienceYears   *int    `db:"experience_years" json:"experience_years,omitempty"`
	City              string  `db:"city" json:"city"`
	Rating            float64 `db:"rating" json:"rating"`
	ReviewsCount      int     `db:"reviews_count" json:"reviews_count"`
	CompletedProjects int     `db:"completed_projects" json:"completed_projects"`
	Verified          bool    `db:"verified" json:"verified"`
	FullName          string  `db:"full_name" json:"full_name"`
	AvatarURL         *string `db:"avatar_url" json:"avatar_url,omitempty"`
	Phone             *string `db:"phone" json:"phone,omitempty"`

	// Portfolio и Categories собираются в базе через json_agg,
	// при отсутствии связанных строк содержат пустой массив.
	Portfolio  types.JSONText `db:"portfolio" json:"portfolio"`
	Categories types.JSONText `db:"categories" json:"categories"`
}
