package service

import (
	"context"
	"strconv"

	"github.com/pr-poehali-dev/furniture-service-portal/internal/models"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/pkg/apperror"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/repository"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/validation"
)

// OrderWriter описывает зависимости OrderService от хранилища заявок.
type OrderWriter interface {
	Create(ctx context.Context, order *models.Order) error
	List(ctx context.Context, params repository.OrderListParams) ([]models.OrderListItem, error)
}

// CategoryFinder разрешает имя категории в идентификатор.
type CategoryFinder interface {
	FindCategoryIDByName(ctx context.Context, name string) (*int64, error)
}

// OrderService инкапсулирует создание и выборку заявок.
type OrderService struct {
	orders     OrderWriter
	categories CategoryFinder
}

// CreateOrderInput содержит данные новой заявки.
type CreateOrderInput struct {
	CustomerID  int64
	Title       string
	Description string
	Category    string
	City        string
	BudgetMin   *float64
	BudgetMax   *float64
}

// OrderFilterInput — сырые строковые фильтры из query-параметров.
type OrderFilterInput struct {
	CustomerID string
	MasterID   string
	Status     string
}

// NewOrderService создаёт сервис заявок.
func NewOrderService(orders OrderWriter, categories CategoryFinder) *OrderService {
	return &OrderService{orders: orders, categories: categories}
}

// Create валидирует данные и создаёт заявку. Неизвестное имя категории
// не ошибка: заявка создаётся без категории.
func (s *OrderService) Create(ctx context.Context, in CreateOrderInput) (*models.Order, error) {
	if in.CustomerID == 0 || in.Title == "" || in.Description == "" || in.City == "" {
		return nil, apperror.New(apperror.ErrCodeValidation, "customer_id, title, description и city обязательны")
	}
	if err := validation.ValidateOrderTitle(in.Title); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeValidation, err.Error())
	}
	if err := validation.ValidateOrderDescription(in.Description); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeValidation, err.Error())
	}
	if err := validation.ValidateLength("city", in.City, 1, validation.MaxCityLength); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeValidation, err.Error())
	}
	if err := validation.ValidateBudget(in.BudgetMin, in.BudgetMax); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeValidation, err.Error())
	}

	order := &models.Order{
		CustomerID:  in.CustomerID,
		Title:       in.Title,
		Description: in.Description,
		City:        in.City,
		BudgetMin:   in.BudgetMin,
		BudgetMax:   in.BudgetMax,
	}

	if in.Category != "" {
		categoryID, err := s.categories.FindCategoryIDByName(ctx, in.Category)
		if err != nil {
			return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "не удалось разрешить категорию")
		}
		order.CategoryID = categoryID
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "не удалось создать заявку")
	}

	return order, nil
}

// List разбирает фильтры и возвращает заявки. Нечисловые customer_id и
// master_id — ошибки валидации.
func (s *OrderService) List(ctx context.Context, in OrderFilterInput) ([]models.OrderListItem, error) {
	params := repository.OrderListParams{Status: in.Status}

	if in.CustomerID != "" {
		customerID, err := strconv.ParseInt(in.CustomerID, 10, 64)
		if err != nil {
			return nil, apperror.New(apperror.ErrCodeValidation, "customer_id должен быть числом")
		}
		params.CustomerID = &customerID
	}

	if in.MasterID != "" {
		masterID, err := strconv.ParseInt(in.MasterID, 10, 64)
		if err != nil {
			return nil, apperror.New(apperror.ErrCodeValidation, "master_id должен быть числом")
		}
		params.MasterID = &masterID
	}

	orders, err := s.orders.List(ctx, params)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "не удалось получить список заявок")
	}

	return orders, nil
}
