package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx/types"
	"github.com/stretchr/testify/assert"

	"github.com/pr-poehali-dev/furniture-service-portal/internal/models"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/repository"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/service"
)

// memoryCatalog — in-memory каталог мастеров, категорий и заявок для тестов.
type memoryCatalog struct {
	masters    []models.MasterListItem
	categories []models.ServiceCategory
	orders     []models.OrderListItem
	created    []*models.Order
}

func (m *memoryCatalog) Search(ctx context.Context, params repository.MasterSearchParams) ([]models.MasterListItem, error) {
	return m.masters, nil
}

func (m *memoryCatalog) ListCategories(ctx context.Context) ([]models.ServiceCategory, error) {
	return m.categories, nil
}

func (m *memoryCatalog) FindCategoryIDByName(ctx context.Context, name string) (*int64, error) {
	for _, c := range m.categories {
		if c.Name == name {
			id := c.ID
			return &id, nil
		}
	}
	return nil, nil
}

func (m *memoryCatalog) Create(ctx context.Context, order *models.Order) error {
	order.ID = int64(len(m.created) + 1)
	order.Status = models.OrderStatusOpen
	order.CreatedAt = time.Now()
	m.created = append(m.created, order)
	return nil
}

func (m *memoryCatalog) List(ctx context.Context, params repository.OrderListParams) ([]models.OrderListItem, error) {
	return m.orders, nil
}

func setupMasterRouter(catalog *memoryCatalog) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewMasterHandler(
		service.NewDirectoryService(catalog, catalog),
		service.NewOrderService(catalog, catalog),
	)
	r.GET("/api/masters", h.Dispatch)
	r.POST("/api/masters", h.Dispatch)
	return r
}

func TestMasterHandler_List(t *testing.T) {
	catalog := &memoryCatalog{masters: []models.MasterListItem{
		{ID: 1, FullName: "Сергей", Specialty: "Кухни", City: "Москва",
			Portfolio: types.JSONText("[]"), Categories: types.JSONText("[]")},
	}}
	r := setupMasterRouter(catalog)

	req, _ := http.NewRequest(http.MethodGet, "/api/masters?action=list&city=Москва", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Masters []models.MasterListItem `json:"masters"`
		Count   int                     `json:"count"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	assert.Len(t, resp.Masters, 1)
}

func TestMasterHandler_ListEmpty(t *testing.T) {
	r := setupMasterRouter(&memoryCatalog{masters: []models.MasterListItem{}})

	req, _ := http.NewRequest(http.MethodGet, "/api/masters?action=list", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	// Пустая выдача — массив, а не null.
	assert.Contains(t, w.Body.String(), `"masters":[]`)
	assert.Contains(t, w.Body.String(), `"count":0`)
}

func TestMasterHandler_ListInvalidMinRating(t *testing.T) {
	r := setupMasterRouter(&memoryCatalog{})

	req, _ := http.NewRequest(http.MethodGet, "/api/masters?action=list&min_rating=abc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "min_rating")
}

func TestMasterHandler_Categories(t *testing.T) {
	catalog := &memoryCatalog{categories: []models.ServiceCategory{
		{ID: 1, Name: "Мебель на заказ"},
		{ID: 2, Name: "Кухни"},
	}}
	r := setupMasterRouter(catalog)

	req, _ := http.NewRequest(http.MethodGet, "/api/masters?action=categories", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Мебель на заказ")
}

func TestMasterHandler_CreateOrderRequiresAuthHeader(t *testing.T) {
	r := setupMasterRouter(&memoryCatalog{})

	w := postJSON(r, "/api/masters?action=create_order", gin.H{
		"customer_id": 1,
		"title":       "Шкаф-купе",
		"description": "Шкаф в прихожую, двери с зеркалом",
		"city":        "Москва",
	}, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMasterHandler_CreateOrder(t *testing.T) {
	catalog := &memoryCatalog{categories: []models.ServiceCategory{{ID: 2, Name: "Кухни"}}}
	r := setupMasterRouter(catalog)

	w := postJSON(r, "/api/masters?action=create_order", gin.H{
		"customer_id": 1,
		"title":       "Кухонный гарнитур",
		"description": "Кухня 3 метра, угловая, с фасадами МДФ",
		"category":    "Кухни",
		"city":        "Москва",
		"budget_min":  10000,
		"budget_max":  50000,
	}, map[string]string{authHeader: "any-token"})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Order models.Order `json:"order"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotZero(t, resp.Order.ID)
	assert.Equal(t, models.OrderStatusOpen, resp.Order.Status)
	assert.NotNil(t, resp.Order.CategoryID)
}

func TestMasterHandler_CreateOrderMissingFields(t *testing.T) {
	r := setupMasterRouter(&memoryCatalog{})

	w := postJSON(r, "/api/masters?action=create_order", gin.H{
		"customer_id": 1,
	}, map[string]string{authHeader: "any-token"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMasterHandler_Orders(t *testing.T) {
	catalog := &memoryCatalog{orders: []models.OrderListItem{
		{ID: 1, Title: "Комод", Status: models.OrderStatusOpen, CustomerName: "Иван"},
	}}
	r := setupMasterRouter(catalog)

	req, _ := http.NewRequest(http.MethodGet, "/api/masters?action=orders&status=open", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":1`)
}

func TestMasterHandler_OrdersInvalidCustomerID(t *testing.T) {
	r := setupMasterRouter(&memoryCatalog{})

	req, _ := http.NewRequest(http.MethodGet, "/api/masters?action=orders&customer_id=abc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "customer_id")
}

func TestMasterHandler_UnknownAction(t *testing.T) {
	r := setupMasterRouter(&memoryCatalog{})

	req, _ := http.NewRequest(http.MethodGet, "/api/masters", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "action=list")
}
