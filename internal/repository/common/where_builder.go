package common

import (
	"fmt"
	"strings"
)

// WhereBuilder собирает WHERE-условие из независимых фильтров.
// Каждый фильтр добавляется парой (условие, аргументы); условия соединяются
// через AND в порядке добавления, плейсхолдеры нумеруются автоматически.
// Значения никогда не попадают в текст запроса, только в список аргументов.
type WhereBuilder struct {
	clauses []string
	args    []interface{}
}

// NewWhereBuilder создаёт пустой builder.
func NewWhereBuilder() *WhereBuilder {
	return &WhereBuilder{}
}

// Add добавляет условие. Вместо каждого вхождения "?" подставляется
// очередной позиционный плейсхолдер $N.
func (b *WhereBuilder) Add(clause string, args ...interface{}) *WhereBuilder {
	if strings.Count(clause, "?") != len(args) {
		panic(fmt.Sprintf("where builder: в условии %q %d плейсхолдеров, а аргументов %d",
			clause, strings.Count(clause, "?"), len(args)))
	}

	for _, arg := range args {
		clause = strings.Replace(clause, "?", fmt.Sprintf("$%d", len(b.args)+1), 1)
		b.args = append(b.args, arg)
	}

	b.clauses = append(b.clauses, clause)
	return b
}

// Clause возвращает готовое условие без ключевого слова WHERE.
// Без фильтров возвращает всегда истинный предикат, чтобы базовый запрос
// отдавал полную (ограниченную LIMIT) выборку.
func (b *WhereBuilder) Clause() string {
	if len(b.clauses) == 0 {
		return "TRUE"
	}
	return strings.Join(b.clauses, " AND ")
}

// Args возвращает аргументы в порядке нумерации плейсхолдеров.
func (b *WhereBuilder) Args() []interface{} {
	return b.args
}

// NextPlaceholder возвращает номер следующего свободного плейсхолдера —
// для LIMIT/OFFSET, добавляемых после условия.
func (b *WhereBuilder) NextPlaceholder() int {
	return len(b.args) + 1
}
