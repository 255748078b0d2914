package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pr-poehali-dev/furniture-service-portal/internal/pkg/apperror"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/service"
)

// AuthHandler обслуживает операции регистрации, входа и профиля.
// Операция выбирается по методу и query-параметру action — контракт
// исходного API сохранён.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler создаёт хэндлер.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Dispatch разбирает (method, action) и вызывает операцию.
func (h *AuthHandler) Dispatch(c *gin.Context) {
	action := c.Query("action")

	switch {
	case c.Request.Method == http.MethodPost && action == "register":
		h.register(c)
	case c.Request.Method == http.MethodPost && action == "login":
		h.login(c)
	case c.Request.Method == http.MethodGet && action == "profile":
		h.profile(c)
	default:
		respondUnknownAction(c, "неизвестная операция: используйте ?action=register, ?action=login или ?action=profile")
	}
}

// register обрабатывает POST ?action=register.
func (h *AuthHandler) register(c *gin.Context) {
	var req struct {
		Email     string  `json:"email"`
		Password  string  `json:"password"`
		FullName  string  `json:"full_name"`
		Phone     *string `json:"phone"`
		UserType  string  `json:"user_type"`
		City      string  `json:"city"`
		Specialty string  `json:"specialty"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperror.Wrap(err, apperror.ErrCodeValidation, "некорректное тело запроса"))
		return
	}

	result, err := h.auth.Register(c.Request.Context(), service.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FullName:  req.FullName,
		Phone:     req.Phone,
		UserType:  req.UserType,
		City:      req.City,
		Specialty: req.Specialty,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":  result.User,
		"token": result.Token,
	})
}

// login обрабатывает POST ?action=login.
func (h *AuthHandler) login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperror.Wrap(err, apperror.ErrCodeValidation, "некорректное тело запроса"))
		return
	}

	result, err := h.auth.Login(c.Request.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  result.Profile,
		"token": result.Token,
	})
}

// profile обрабатывает GET ?action=profile. Заголовок авторизации
// проверяется на наличие до обращения к базе.
func (h *AuthHandler) profile(c *gin.Context) {
	if !requireAuthHeader(c) {
		return
	}

	rawID := c.Query("user_id")
	if rawID == "" {
		respondError(c, apperror.New(apperror.ErrCodeValidation, "user_id обязателен"))
		return
	}

	userID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		respondError(c, apperror.New(apperror.ErrCodeValidation, "user_id должен быть числом"))
		return
	}

	profile, err := h.auth.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": profile})
}
