package models

import (
	"time"
)

// Статусы заявки.
const (
	OrderStatusOpen       = "open"
	OrderStatusInProgress = "in_progress"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// Order описывает заявку заказчика на работу.
type Order struct {
	ID          int64     `db:"id" json:"id"`
	CustomerID  int64     `db:"customer_id" json:"customer_id"`
	MasterID    *int64    `db:"master_id" json:"master_id,omitempty"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	CategoryID  *int64    `db:"category_id" json:"category_id,omitempty"`
	City        string    `db:"city" json:"city"`
	BudgetMin   *float64  `db:"budget_min" json:"budget_min,omitempty"`
	BudgetMax   *float64  `db:"budget_max" json:"budget_max,omitempty"`
	Status      string    `db:"status" json:"status"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// OrderListItem — строка выдачи списка заявок: заявка вместе с именем и
// телефоном заказчика и названием категории.
type OrderListItem struct {
	ID            int64     `db:"id" json:"id"`
	Title         string    `db:"title" json:"title"`
	Description   string    `db:"description" json:"description"`
	City          string    `db:"city" json:"city"`
	Status        string    `db:"status" json:"status"`
	BudgetMin     *float64  `db:"budget_min" json:"budget_min,omitempty"`
	BudgetMax     *float64  `db:"budget_max" json:"budget_max,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	CustomerName  string    `db:"customer_name" json:"customer_name"`
	CustomerPhone *string   `db:"customer_phone" json:"customer_phone,omitempty"`
	CategoryName  *string   `db:"category_name" json:"category_name,omitempty"`
}
