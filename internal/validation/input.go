package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Константы валидации
const (
	MaxFullNameLength         = 100
	MinOrderTitleLength       = 3
	MaxOrderTitleLength       = 200
	MinOrderDescriptionLength = 10
	MaxOrderDescriptionLength = 5000
	MaxCityLength             = 100
	MinBudget                 = 0.0
	MaxBudget                 = 100000000.0 // 100 миллионов
)

var emailRegex = regexp.MustCompile(`^[a-z0-9._+-]+@[a-z0-9.-]+\.[a-z]{2,}$`)

// ValidateLength проверяет длину строки.
func ValidateLength(fieldName, value string, min, max int) error {
	length := utf8.RuneCountInString(value)
	if min > 0 && length < min {
		return fmt.Errorf("%s должен быть не менее %d символов", fieldName, min)
	}
	if max > 0 && length > max {
		return fmt.Errorf("%s должен быть не более %d символов", fieldName, max)
	}
	return nil
}

// ValidateEmail проверяет формат email.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email обязателен")
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("некорректный формат email")
	}

	return nil
}

// ValidateNonEmpty проверяет, что строка не пустая.
func ValidateNonEmpty(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s не может быть пустым", fieldName)
	}
	return nil
}

// ValidateOrderTitle проверяет заголовок заявки.
func ValidateOrderTitle(title string) error {
	if err := ValidateNonEmpty("заголовок заявки", title); err != nil {
		return err
	}
	return ValidateLength("заголовок заявки", strings.TrimSpace(title), MinOrderTitleLength, MaxOrderTitleLength)
}

// ValidateOrderDescription проверяет описание заявки.
func ValidateOrderDescription(description string) error {
	if err := ValidateNonEmpty("описание заявки", description); err != nil {
		return err
	}
	return ValidateLength("описание заявки", strings.TrimSpace(description), MinOrderDescriptionLength, MaxOrderDescriptionLength)
}

// ValidateBudget проверяет бюджет заявки.
func ValidateBudget(budgetMin, budgetMax *float64) error {
	if budgetMin != nil {
		if *budgetMin < MinBudget {
			return fmt.Errorf("минимальный бюджет не может быть отрицательным")
		}
		if *budgetMin > MaxBudget {
			return fmt.Errorf("минимальный бюджет не может превышать %.0f", MaxBudget)
		}
	}

	if budgetMax != nil {
		if *budgetMax < MinBudget {
			return fmt.Errorf("максимальный бюджет не может быть отрицательным")
		}
		if *budgetMax > MaxBudget {
			return fmt.Errorf("максимальный бюджет не может превышать %.0f", MaxBudget)
		}
	}

	if budgetMin != nil && budgetMax != nil {
		if *budgetMin > *budgetMax {
			return fmt.Errorf("минимальный бюджет не может быть больше максимального")
		}
	}

	return nil
}
