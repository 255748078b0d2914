package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/pr-poehali-dev/furniture-service-portal/internal/models"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/repository/common"
)

// orderListLimit ограничивает размер выдачи списка заявок.
const orderListLimit = 50

// OrderListParams — независимые необязательные фильтры списка заявок.
type OrderListParams struct {
	CustomerID *int64
	MasterID   *int64
	Status     string
}

// OrderRepository отвечает за таблицу orders.
type OrderRepository struct {
	db *sqlx.DB
}

// NewOrderRepository создаёт экземпляр репозитория.
func NewOrderRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create вставляет новую заявку и заполняет сгенерированные поля.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	query := `
		INSERT INTO orders (customer_id, title, description, category_id, city, budget_min, budget_max)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, status, created_at
	`
	if err := r.db.QueryRowxContext(
		ctx, query,
		order.CustomerID, order.Title, order.Description, order.CategoryID,
		order.City, order.BudgetMin, order.BudgetMax,
	).Scan(&order.ID, &order.Status, &order.CreatedAt); err != nil {
		return fmt.Errorf("order repository: create %w", err)
	}

	return nil
}

// buildOrderListQuery собирает параметризованный запрос списка заявок.
func buildOrderListQuery(params OrderListParams) (string, []interface{}) {
	where := common.NewWhereBuilder()

	if params.CustomerID != nil {
		where.Add("o.customer_id = ?", *params.CustomerID)
	}
	if params.MasterID != nil {
		where.Add("o.master_id = ?", *params.MasterID)
	}
	if params.Status != "" {
		where.Add("o.status = ?", params.Status)
	}

	query := fmt.Sprintf(`
		SELECT
			o.id, o.title, o.description, o.city, o.status,
			o.budget_min, o.budget_max, o.created_at,
			u.full_name AS customer_name, u.phone AS customer_phone,
			sc.name AS category_name
		FROM orders o
		JOIN users u ON o.customer_id = u.id
		LEFT JOIN service_categories sc ON o.category_id = sc.id
		WHERE %s
		ORDER BY o.created_at DESC
		LIMIT $%d
	`, where.Clause(), where.NextPlaceholder())

	return query, append(where.Args(), orderListLimit)
}

// List возвращает заявки, удовлетворяющие всем заданным фильтрам, новые первыми.
func (r *OrderRepository) List(ctx context.Context, params OrderListParams) ([]models.OrderListItem, error) {
	query, args := buildOrderListQuery(params)

	orders := []models.OrderListItem{}
	if err := r.db.SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("order repository: list %w", err)
	}

	return orders, nil
}
