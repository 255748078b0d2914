package models

import (
	"time"
)

// User описывает аккаунт пользователя платформы (заказчик или мастер).
type User struct {
	ID           int64     `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Phone        *string   `db:"phone" json:"phone,omitempty"`
	UserType     string    `db:"user_type" json:"user_type"`
	AvatarURL    *string   `db:"avatar_url" json:"avatar_url,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`

	// MasterID заполняется только при регистрации мастера.
	MasterID *int64 `db:"-" json:"master_id,omitempty"`
}

// Master описывает профиль мастера, связанный с пользователем один к одному.
type Master struct {
	ID                int64   `db:"id" json:"id"`
	UserID            int64   `db:"user_id" json:"user_id"`
	Specialty         string  `db:"specialty" json:"specialty"`
	City              string  `db:"city" json:"city"`
	Rating            float64 `db:"rating" json:"rating"`
	ReviewsCount      int     `db:"reviews_count" json:"reviews_count"`
	CompletedProjects int     `db:"completed_projects" json:"completed_projects"`
	Verified          bool    `db:"verified" json:"verified"`
	Description       *string `db:"description" json:"description,omitempty"`
	ExperienceYears   *int    `db:"experience_years" json:"experience_years,omitempty"`
}

// UserProfile представляет пользователя вместе с полями мастера
// (LEFT JOIN masters); для заказчиков поля мастера равны nil.
type UserProfile struct {
	ID        int64     `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	FullName  string    `db:"full_name" json:"full_name"`
	UserType  string    `db:"user_type" json:"user_type"`
	Phone     *string   `db:"phone" json:"phone,omitempty"`
	AvatarURL *string   `db:"avatar_url" json:"avatar_url,omitempty"`

	MasterID          *int64   `db:"master_id" json:"master_id,omitempty"`
	Specialty         *string  `db:"specialty" json:"specialty,omitempty"`
	City              *string  `db:"city" json:"city,omitempty"`
	Rating            *float64 `db:"rating" json:"rating,omitempty"`
	Verified          *bool    `db:"verified" json:"verified,omitempty"`
	Description       *string  `db:"description" json:"description,omitempty"`
	ExperienceYears   *int     `db:"experience_years" json:"experience_years,omitempty"`
	CompletedProjects *int     `db:"completed_projects" json:"completed_projects,omitempty"`
	ReviewsCount      *int     `db:"reviews_count" json:"reviews_count,omitempty"`
}
