package types

// Filter — разобранные параметры списочного запроса: фильтры равенства
// и вхождения в список, сортировка и пагинация.
type Filter struct {
	Filters map[string][]string `json:"filter,omitempty"`
	Sort    []SortField         `json:"sort,omitempty"`
	Limit   uint64              `json:"limit"`
	Offset  uint64              `json:"offset"`
	Page    uint64              `json:"page"`
}

// SortField — одно поле сортировки; Desc=true соответствует префиксу "-".
type SortField struct {
	Field string `json:"field"`
	Desc  bool   `json:"desc"`
}

type Pagination struct {
	TotalCount uint64 `json:"total_count"`
	Page       uint64 `json:"page"`
	Limit      uint64 `json:"limit"`
}
