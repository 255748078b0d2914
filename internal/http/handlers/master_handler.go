package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pr-poehali-dev/furniture-service-portal/internal/pkg/apperror"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/service"
)

// MasterHandler обслуживает каталог мастеров, справочник категорий и заявки.
type MasterHandler struct {
	directory *service.DirectoryService
	orders    *service.OrderService
}

// NewMasterHandler создаёт хэндлер.
func NewMasterHandler(directory *service.DirectoryService, orders *service.OrderService) *MasterHandler {
	return &MasterHandler{directory: directory, orders: orders}
}

// Dispatch разбирает (method, action) и вызывает операцию.
func (h *MasterHandler) Dispatch(c *gin.Context) {
	action := c.Query("action")

	switch {
	case c.Request.Method == http.MethodGet && action == "list":
		h.listMasters(c)
	case c.Request.Method == http.MethodGet && action == "categories":
		h.listCategories(c)
	case c.Request.Method == http.MethodPost && action == "create_order":
		h.createOrder(c)
	case c.Request.Method == http.MethodGet && action == "orders":
		h.listOrders(c)
	default:
		respondUnknownAction(c, "неизвестная операция: используйте ?action=list, ?action=categories, ?action=create_order или ?action=orders")
	}
}

// listMasters обрабатывает GET ?action=list с необязательными фильтрами.
func (h *MasterHandler) listMasters(c *gin.Context) {
	masters, err := h.directory.ListMasters(c.Request.Context(), service.MasterFilterInput{
		City:      c.Query("city"),
		Category:  c.Query("category"),
		MinRating: c.Query("min_rating"),
		Verified:  c.Query("verified"),
		Search:    c.Query("search"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"masters": masters,
		"count":   len(masters),
	})
}

// listCategories обрабатывает GET ?action=categories.
func (h *MasterHandler) listCategories(c *gin.Context) {
	categories, err := h.directory.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// createOrder обрабатывает POST ?action=create_order.
func (h *MasterHandler) createOrder(c *gin.Context) {
	if !requireAuthHeader(c) {
		return
	}

	var req struct {
		CustomerID  int64    `json:"customer_id"`
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Category    string   `json:"category"`
		City        string   `json:"city"`
		BudgetMin   *float64 `json:"budget_min"`
		BudgetMax   *float64 `json:"budget_max"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperror.Wrap(err, apperror.ErrCodeValidation, "некорректное тело запроса"))
		return
	}

	order, err := h.orders.Create(c.Request.Context(), service.CreateOrderInput{
		CustomerID:  req.CustomerID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		City:        req.City,
		BudgetMin:   req.BudgetMin,
		BudgetMax:   req.BudgetMax,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"order": order})
}

// listOrders обрабатывает GET ?action=orders с необязательными фильтрами.
func (h *MasterHandler) listOrders(c *gin.Context) {
	orders, err := h.orders.List(c.Request.Context(), service.OrderFilterInput{
		CustomerID: c.Query("customer_id"),
		MasterID:   c.Query("master_id"),
		Status:     c.Query("status"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"count":  len(orders),
	})
}
