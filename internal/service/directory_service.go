package service

import (
	"context"
	"strconv"

	"github.com/pr-poehali-dev/furniture-service-portal/internal/models"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/pkg/apperror"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/repository"
)

// DirectoryRepository описывает зависимости DirectoryService от каталога мастеров.
type DirectoryRepository interface {
	Search(ctx context.Context, params repository.MasterSearchParams) ([]models.MasterListItem, error)
}

// CategoryLister описывает доступ к справочнику категорий.
type CategoryLister interface {
	ListCategories(ctx context.Context) ([]models.ServiceCategory, error)
}

// DirectoryService отвечает за каталог мастеров и справочник категорий.
type DirectoryService struct {
	masters    DirectoryRepository
	categories CategoryLister
}

// MasterFilterInput — сырые строковые фильтры из query-параметров.
// Пустая строка означает отсутствие фильтра.
type MasterFilterInput struct {
	City      string
	Category  string
	MinRating string
	Verified  string
	Search    string
}

// NewDirectoryService создаёт сервис каталога.
func NewDirectoryService(masters DirectoryRepository, categories CategoryLister) *DirectoryService {
	return &DirectoryService{masters: masters, categories: categories}
}

// ListMasters разбирает фильтры и возвращает подходящих мастеров.
// Нечисловой min_rating — ошибка валидации, а не молча пропущенный фильтр.
func (s *DirectoryService) ListMasters(ctx context.Context, in MasterFilterInput) ([]models.MasterListItem, error) {
	params := repository.MasterSearchParams{
		City:     in.City,
		Category: in.Category,
		Search:   in.Search,
		// Любое значение кроме литерала "true" не ограничивает выборку.
		VerifiedOnly: in.Verified == "true",
	}

	if in.MinRating != "" {
		minRating, err := strconv.ParseFloat(in.MinRating, 64)
		if err != nil {
			return nil, apperror.New(apperror.ErrCodeValidation, "min_rating должен быть числом")
		}
		params.MinRating = &minRating
	}

	masters, err := s.masters.Search(ctx, params)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "не удалось получить список мастеров")
	}

	return masters, nil
}

// ListCategories возвращает справочник категорий услуг.
func (s *DirectoryService) ListCategories(ctx context.Context) ([]models.ServiceCategory, error) {
	categories, err := s.categories.ListCategories(ctx)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "не удалось получить категории")
	}
	return categories, nil
}
