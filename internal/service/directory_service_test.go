package service

import (
	"context"
	"testing"

	"github.com/pr-poehali-dev/furniture-service-portal/internal/models"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/pkg/apperror"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/repository"
)

// mockDirectoryRepository запоминает переданные параметры поиска.
type mockDirectoryRepository struct {
	lastParams repository.MasterSearchParams
	masters    []models.MasterListItem
}

func (m *mockDirectoryRepository) Search(ctx context.Context, params repository.MasterSearchParams) ([]models.MasterListItem, error) {
	m.lastParams = params
	return m.masters, nil
}

type mockCategoryLister struct {
	categories []models.ServiceCategory
}

func (m *mockCategoryLister) ListCategories(ctx context.Context) ([]models.ServiceCategory, error) {
	return m.categories, nil
}

func TestDirectoryService_ListMastersPassesFilters(t *testing.T) {
	repo := &mockDirectoryRepository{}
	service := NewDirectoryService(repo, &mockCategoryLister{})

	_, err := service.ListMasters(context.Background(), MasterFilterInput{
		City:      "Москва",
		Category:  "Кухни",
		MinRating: "4.5",
		Verified:  "true",
		Search:    "шкаф",
	})
	if err != nil {
		t.Fatalf("list вернул ошибку: %v", err)
	}

	p := repo.lastParams
	if p.City != "Москва" || p.Category != "Кухни" || p.Search != "шкаф" {
		t.Fatalf("строковые фильтры должны передаваться как есть: %+v", p)
	}
	if !p.VerifiedOnly {
		t.Fatalf("verified=true должен включать фильтр")
	}
	if p.MinRating == nil || *p.MinRating != 4.5 {
		t.Fatalf("min_rating должен быть разобран в число: %+v", p.MinRating)
	}
}

func TestDirectoryService_VerifiedLiteralOnly(t *testing.T) {
	repo := &mockDirectoryRepository{}
	service := NewDirectoryService(repo, &mockCategoryLister{})

	// Любое значение кроме литерала "true" не ограничивает выборку.
	for _, value := range []string{"", "false", "1", "TRUE", "yes"} {
		if _, err := service.ListMasters(context.Background(), MasterFilterInput{Verified: value}); err != nil {
			t.Fatalf("list вернул ошибку для verified=%q: %v", value, err)
		}
		if repo.lastParams.VerifiedOnly {
			t.Fatalf("verified=%q не должен включать фильтр", value)
		}
	}
}

func TestDirectoryService_InvalidMinRating(t *testing.T) {
	service := NewDirectoryService(&mockDirectoryRepository{}, &mockCategoryLister{})

	_, err := service.ListMasters(context.Background(), MasterFilterInput{MinRating: "abc"})
	if !apperror.IsValidation(err) {
		t.Fatalf("нечисловой min_rating должен давать ошибку валидации, получили %v", err)
	}
}

func TestDirectoryService_ListCategories(t *testing.T) {
	lister := &mockCategoryLister{categories: []models.ServiceCategory{
		{ID: 1, Name: "Мебель на заказ"},
		{ID: 2, Name: "Кухни"},
	}}
	service := NewDirectoryService(&mockDirectoryRepository{}, lister)

	categories, err := service.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("categories вернул ошибку: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("ожидалось 2 категории, получили %d", len(categories))
	}
}
