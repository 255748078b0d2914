package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/pr-poehali-dev/furniture-service-portal/internal/models"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/repository/common"
)

// ErrUserNotFound возвращается, когда запись пользователя не найдена.
var ErrUserNotFound = errors.New("user not found")

// ErrEmailTaken возвращается при попытке зарегистрировать занятый email.
var ErrEmailTaken = errors.New("email already registered")

// UserRepository отвечает за работу с таблицами users и masters.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository создаёт экземпляр репозитория.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create создаёт пользователя и, для мастеров, связанный профиль мастера.
// Обе вставки выполняются в одной транзакции: при конфликте email ни одной
// строки не остаётся.
func (r *UserRepository) Create(ctx context.Context, user *models.User, master *models.Master) error {
	err := common.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		userQuery := `
			INSERT INTO users (email, password_hash, full_name, phone, user_type)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at
		`
		if err := tx.QueryRowxContext(
			ctx, userQuery,
			user.Email, user.PasswordHash, user.FullName, user.Phone, user.UserType,
		).Scan(&user.ID, &user.CreatedAt); err != nil {
			return err
		}

		if master == nil {
			return nil
		}

		master.UserID = user.ID
		masterQuery := `
			INSERT INTO masters (user_id, specialty, city)
			VALUES ($1, $2, $3)
			RETURNING id
		`
		if err := tx.QueryRowxContext(
			ctx, masterQuery,
			master.UserID, master.Specialty, master.City,
		).Scan(&master.ID); err != nil {
			return err
		}

		user.MasterID = &master.ID
		return nil
	})
	if err != nil {
		if common.IsUniqueViolation(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("user repository: create %w", err)
	}

	return nil
}

// GetByEmail возвращает пользователя по email вместе с хэшем пароля.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	query := `
		SELECT id, email, password_hash, full_name, phone, user_type, avatar_url, created_at
		FROM users
		WHERE email = $1
	`
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("user repository: get by email %w", err)
	}

	return &user, nil
}

// GetProfileByID возвращает пользователя с полями мастера (LEFT JOIN masters).
func (r *UserRepository) GetProfileByID(ctx context.Context, id int64) (*models.UserProfile, error) {
	var profile models.UserProfile
	query := `
		SELECT u.id, u.email, u.full_name, u.user_type, u.phone, u.avatar_url,
		       m.id AS master_id, m.specialty, m.city, m.rating, m.verified,
		       m.description, m.experience_years, m.completed_projects, m.reviews_count
		FROM users u
		LEFT JOIN masters m ON u.id = m.user_id
		WHERE u.id = $1
	`
	if err := r.db.GetContext(ctx, &profile, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("user repository: get profile by id %w", err)
	}

	return &profile, nil
}

// GetProfileByEmail возвращает пользователя с полями мастера по email.
func (r *UserRepository) GetProfileByEmail(ctx context.Context, email string) (*models.UserProfile, error) {
	var profile models.UserProfile
	query := `
		SELECT u.id, u.email, u.full_name, u.user_type, u.phone, u.avatar_url,
		       m.id AS master_id, m.specialty, m.city, m.rating, m.verified,
		       m.description, m.experience_years, m.completed_projects, m.reviews_count
		FROM users u
		LEFT JOIN masters m ON u.id = m.user_id
		WHERE u.email = $1
	`
	if err := r.db.GetContext(ctx, &profile, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("user repository: get profile by email %w", err)
	}

	return &profile, nil
}
