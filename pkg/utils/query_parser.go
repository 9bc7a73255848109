package utils

import (
	"net/url"
	"strconv"
	"strings"

	apperrors "bathhouse-orders/pkg/errors"
	"bathhouse-orders/pkg/types"
)

// ParseFilterFromQuery разбирает параметры запроса вида
// ?filter[status]=NEW,READY&sort=-created_at&limit=10&offset=0.
// Значения фильтра через запятую трактуются как вхождение в список.
// Поля сортировки проверяются по allowedSorting.
func ParseFilterFromQuery(query url.Values, allowedSorting map[string]struct{}) (types.Filter, error) {
	filter := types.Filter{
		Filters: make(map[string][]string),
		Limit:   10,
		Offset:  0,
		Page:    1,
	}

	for key, values := range query {
		if strings.HasPrefix(key, "filter[") && strings.HasSuffix(key, "]") && len(values) > 0 {
			filterKey := key[7 : len(key)-1]
			filter.Filters[filterKey] = strings.Split(values[0], ",")
		}
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		if l, err := strconv.ParseUint(limitStr, 10, 64); err == nil && l > 0 {
			filter.Limit = l
		}
	}
	if offsetStr := query.Get("offset"); offsetStr != "" {
		if o, err := strconv.ParseUint(offsetStr, 10, 64); err == nil {
			filter.Offset = o
			if filter.Limit > 0 {
				filter.Page = (o / filter.Limit) + 1
			}
		}
	}
	// page имеет приоритет только если offset не задан
	if pageStr := query.Get("page"); pageStr != "" && filter.Offset == 0 {
		if p, err := strconv.ParseUint(pageStr, 10, 64); err == nil && p > 0 {
			filter.Page = p
			filter.Offset = (p - 1) * filter.Limit
		}
	}

	sortFields, err := ParseSorting(query.Get("sort"), allowedSorting)
	if err != nil {
		return types.Filter{}, err
	}
	filter.Sort = sortFields

	return filter, nil
}

// RestrictFilters оставляет только разрешённые ключи фильтра; посторонний
// ключ — ошибка запроса, а не молчаливое игнорирование.
func RestrictFilters(filter types.Filter, allowed map[string]struct{}) (types.Filter, error) {
	for key := range filter.Filters {
		if _, ok := allowed[key]; !ok {
			return types.Filter{}, apperrors.NewInvalidInputError("недопустимое поле фильтра: %s", key)
		}
	}
	return filter, nil
}
