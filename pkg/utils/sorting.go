package utils

import (
	"sort"
	"strings"

	apperrors "bathhouse-orders/pkg/errors"
	"bathhouse-orders/pkg/types"
)

// DefaultSortingFields доступны для каждой сущности.
var DefaultSortingFields = map[string]struct{}{
	"id":         {},
	"created_at": {},
	"updated_at": {},
}

// SortingFields собирает множество допустимых полей сортировки сущности
// поверх DefaultSortingFields.
func SortingFields(extra ...string) map[string]struct{} {
	fields := make(map[string]struct{}, len(DefaultSortingFields)+len(extra))
	for f := range DefaultSortingFields {
		fields[f] = struct{}{}
	}
	for _, f := range extra {
		fields[f] = struct{}{}
	}
	return fields
}

// ParseSorting разбирает список вида "+created_at,-status".
// Префикс "+" (или его отсутствие) — по возрастанию, "-" — по убыванию.
// Неизвестные и повторяющиеся поля отклоняются целиком: возвращается
// IncorrectSortingError со списком нарушивших полей и доступным набором.
func ParseSorting(raw string, allowed map[string]struct{}) ([]types.SortField, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var (
		result []types.SortField
		bad    []string
		seen   = make(map[string]struct{})
	)

	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		desc := false
		switch token[0] {
		case '-':
			desc = true
			token = token[1:]
		case '+':
			token = token[1:]
		}

		if _, ok := allowed[token]; !ok {
			bad = append(bad, token)
			continue
		}
		if _, dup := seen[token]; dup {
			bad = append(bad, token)
			continue
		}

		seen[token] = struct{}{}
		result = append(result, types.SortField{Field: token, Desc: desc})
	}

	if len(bad) > 0 {
		available := make([]string, 0, len(allowed))
		for f := range allowed {
			available = append(available, f)
		}
		sort.Strings(available)
		return nil, apperrors.NewIncorrectSortingError(bad, available)
	}

	return result, nil
}
