package service

import (
	"context"
	"testing"
	"time"

	"github.com/pr-poehali-dev/furniture-service-portal/internal/models"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/pkg/apperror"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/repository"
)

// mockOrderRepository запоминает созданные заявки и параметры выборки.
type mockOrderRepository struct {
	created    []*models.Order
	lastParams repository.OrderListParams
	orders     []models.OrderListItem
	nextID     int64
}

func (m *mockOrderRepository) Create(ctx context.Context, order *models.Order) error {
	m.nextID++
	order.ID = m.nextID
	order.Status = models.OrderStatusOpen
	order.CreatedAt = time.Now()
	m.created = append(m.created, order)
	return nil
}

func (m *mockOrderRepository) List(ctx context.Context, params repository.OrderListParams) ([]models.OrderListItem, error) {
	m.lastParams = params
	return m.orders, nil
}

// mockCategoryFinder знает фиксированный набор категорий.
type mockCategoryFinder struct {
	byName map[string]int64
}

func (m *mockCategoryFinder) FindCategoryIDByName(ctx context.Context, name string) (*int64, error) {
	if id, ok := m.byName[name]; ok {
		return &id, nil
	}
	return nil, nil
}

func newOrderService() (*OrderService, *mockOrderRepository) {
	repo := &mockOrderRepository{}
	finder := &mockCategoryFinder{byName: map[string]int64{"Кухни": 2}}
	return NewOrderService(repo, finder), repo
}

func TestOrderService_Create(t *testing.T) {
	service, repo := newOrderService()
	budgetMin := 10000.0
	budgetMax := 50000.0

	order, err := service.Create(context.Background(), CreateOrderInput{
		CustomerID:  1,
		Title:       "Кухонный гарнитур",
		Description: "Кухня 3 метра, угловая, с фасадами МДФ",
		Category:    "Кухни",
		City:        "Москва",
		BudgetMin:   &budgetMin,
		BudgetMax:   &budgetMax,
	})
	if err != nil {
		t.Fatalf("create вернул ошибку: %v", err)
	}

	if order.ID == 0 {
		t.Fatalf("ID заявки должен быть установлен")
	}
	if order.Status != models.OrderStatusOpen {
		t.Fatalf("новая заявка должна быть открытой, получили %q", order.Status)
	}
	if order.CategoryID == nil || *order.CategoryID != 2 {
		t.Fatalf("категория должна разрешаться по имени: %+v", order.CategoryID)
	}
	if len(repo.created) != 1 {
		t.Fatalf("заявка не сохранена")
	}
}

func TestOrderService_CreateUnknownCategory(t *testing.T) {
	service, _ := newOrderService()

	order, err := service.Create(context.Background(), CreateOrderInput{
		CustomerID:  1,
		Title:       "Реставрация комода",
		Description: "Старый комод, нужна замена фурнитуры и полировка",
		Category:    "Несуществующая категория",
		City:        "Тула",
	})
	// Неизвестная категория не ошибка: заявка создаётся без категории.
	if err != nil {
		t.Fatalf("create вернул ошибку: %v", err)
	}
	if order.CategoryID != nil {
		t.Fatalf("для неизвестной категории category_id должен быть nil")
	}
}

func TestOrderService_CreateMissingFields(t *testing.T) {
	service, _ := newOrderService()

	_, err := service.Create(context.Background(), CreateOrderInput{
		CustomerID: 1,
		Title:      "Шкаф",
	})
	if !apperror.IsValidation(err) {
		t.Fatalf("ожидалась ошибка валидации, получили %v", err)
	}
}

func TestOrderService_CreateShortDescription(t *testing.T) {
	service, _ := newOrderService()

	_, err := service.Create(context.Background(), CreateOrderInput{
		CustomerID:  1,
		Title:       "Шкаф",
		Description: "короткое",
		City:        "Москва",
	})
	if !apperror.IsValidation(err) {
		t.Fatalf("слишком короткое описание должно давать ошибку валидации, получили %v", err)
	}
}

func TestOrderService_CreateInvalidBudget(t *testing.T) {
	service, _ := newOrderService()
	budgetMin := 50000.0
	budgetMax := 10000.0

	_, err := service.Create(context.Background(), CreateOrderInput{
		CustomerID:  1,
		Title:       "Шкаф-купе",
		Description: "Шкаф в прихожую, двери с зеркалом",
		City:        "Москва",
		BudgetMin:   &budgetMin,
		BudgetMax:   &budgetMax,
	})
	if !apperror.IsValidation(err) {
		t.Fatalf("min > max должен давать ошибку валидации, получили %v", err)
	}
}

func TestOrderService_ListPassesFilters(t *testing.T) {
	service, repo := newOrderService()

	_, err := service.List(context.Background(), OrderFilterInput{
		CustomerID: "7",
		MasterID:   "3",
		Status:     "open",
	})
	if err != nil {
		t.Fatalf("list вернул ошибку: %v", err)
	}

	p := repo.lastParams
	if p.CustomerID == nil || *p.CustomerID != 7 {
		t.Fatalf("customer_id должен быть разобран: %+v", p.CustomerID)
	}
	if p.MasterID == nil || *p.MasterID != 3 {
		t.Fatalf("master_id должен быть разобран: %+v", p.MasterID)
	}
	if p.Status != "open" {
		t.Fatalf("status должен передаваться как есть: %q", p.Status)
	}
}

func TestOrderService_ListInvalidIDs(t *testing.T) {
	service, _ := newOrderService()

	if _, err := service.List(context.Background(), OrderFilterInput{CustomerID: "abc"}); !apperror.IsValidation(err) {
		t.Fatalf("нечисловой customer_id должен давать ошибку валидации, получили %v", err)
	}
	if _, err := service.List(context.Background(), OrderFilterInput{MasterID: "3.5"}); !apperror.IsValidation(err) {
		t.Fatalf("нечисловой master_id должен давать ошибку валидации, получили %v", err)
	}
}
