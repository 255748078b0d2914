package service

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/pr-poehali-dev/furniture-service-portal/internal/models"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/pkg/apperror"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/repository"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/validation"
)

// Дефолты профиля мастера при регистрации — контракт исходной системы.
const (
	DefaultUserType        = "customer"
	DefaultMasterCity      = "Москва"
	DefaultMasterSpecialty = "Мебель на заказ"
)

// AuthRepository описывает зависимости AuthService от слоя хранилища.
type AuthRepository interface {
	Create(ctx context.Context, user *models.User, master *models.Master) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetProfileByID(ctx context.Context, id int64) (*models.UserProfile, error)
	GetProfileByEmail(ctx context.Context, email string) (*models.UserProfile, error)
}

// AuthService инкапсулирует бизнес-логику регистрации и аутентификации.
type AuthService struct {
	repo AuthRepository
}

// RegisterInput содержит данные пользователя при регистрации.
type RegisterInput struct {
	Email     string
	Password  string
	FullName  string
	Phone     *string
	UserType  string
	City      string
	Specialty string
}

// LoginInput содержит данные для входа.
type LoginInput struct {
	Email    string
	Password string
}

// RegisterResult возвращает созданного пользователя и токен сессии.
type RegisterResult struct {
	User  *models.User
	Token string
}

// LoginResult возвращает профиль пользователя и токен сессии.
type LoginResult struct {
	Profile *models.UserProfile
	Token   string
}

// NewAuthService создаёт сервис аутентификации.
func NewAuthService(repo AuthRepository) *AuthService {
	return &AuthService{repo: repo}
}

// Register создаёт пользователя и, для мастеров, профиль мастера с дефолтами.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*RegisterResult, error) {
	if in.Email == "" || in.Password == "" || in.FullName == "" {
		return nil, apperror.New(apperror.ErrCodeValidation, "email, password и full_name обязательны")
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeValidation, err.Error())
	}
	if err := validation.ValidateLength("full_name", in.FullName, 1, validation.MaxFullNameLength); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeValidation, err.Error())
	}

	userType := in.UserType
	if userType == "" {
		userType = DefaultUserType
	}

	// bcrypt вместо несолёного SHA-256 исходной системы — осознанное
	// исправление, см. DESIGN.md.
	passHash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "не удалось захешировать пароль")
	}

	user := &models.User{
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: string(passHash),
		FullName:     in.FullName,
		Phone:        in.Phone,
		UserType:     userType,
	}

	var master *models.Master
	if userType == "master" {
		city := in.City
		if city == "" {
			city = DefaultMasterCity
		}
		specialty := in.Specialty
		if specialty == "" {
			specialty = DefaultMasterSpecialty
		}
		master = &models.Master{Specialty: specialty, City: city}
	}

	if err := s.repo.Create(ctx, user, master); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, apperror.ErrEmailTaken
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "не удалось создать пользователя")
	}

	token, err := GenerateToken()
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "не удалось выпустить токен")
	}

	return &RegisterResult{User: user, Token: token}, nil
}

// Login проверяет учётные данные и возвращает профиль с токеном.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	if in.Email == "" || in.Password == "" {
		return nil, apperror.New(apperror.ErrCodeValidation, "email и password обязательны")
	}

	user, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperror.ErrInvalidCredentials
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "не удалось выполнить вход")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	profile, err := s.repo.GetProfileByEmail(ctx, user.Email)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "не удалось загрузить профиль")
	}

	token, err := GenerateToken()
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "не удалось выпустить токен")
	}

	return &LoginResult{Profile: profile, Token: token}, nil
}

// GetProfile возвращает профиль пользователя по идентификатору.
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*models.UserProfile, error) {
	profile, err := s.repo.GetProfileByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperror.ErrUserNotFound
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "не удалось загрузить профиль")
	}
	return profile, nil
}
