package utils

import (
	"net/url"
	"testing"

	apperrors "bathhouse-orders/pkg/errors"
	"bathhouse-orders/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilterFromQuery(t *testing.T) {
	query := url.Values{}
	query.Set("filter[status]", "NEW,READY")
	query.Set("filter[user_customer]", "Иванов")
	query.Set("sort", "-created_at")
	query.Set("limit", "25")
	query.Set("offset", "50")

	filter, err := ParseFilterFromQuery(query, DefaultSortingFields)
	require.NoError(t, err)

	assert.Equal(t, []string{"NEW", "READY"}, filter.Filters["status"])
	assert.Equal(t, []string{"Иванов"}, filter.Filters["user_customer"])
	assert.Equal(t, []types.SortField{{Field: "created_at", Desc: true}}, filter.Sort)
	assert.Equal(t, uint64(25), filter.Limit)
	assert.Equal(t, uint64(50), filter.Offset)
	assert.Equal(t, uint64(3), filter.Page)
}

func TestParseFilterFromQueryDefaults(t *testing.T) {
	filter, err := ParseFilterFromQuery(url.Values{}, DefaultSortingFields)
	require.NoError(t, err)
	assert.Empty(t, filter.Filters)
	assert.Empty(t, filter.Sort)
	assert.Equal(t, uint64(10), filter.Limit)
	assert.Zero(t, filter.Offset)
	assert.Equal(t, uint64(1), filter.Page)
}

func TestParseFilterFromQueryPage(t *testing.T) {
	query := url.Values{}
	query.Set("page", "3")
	query.Set("limit", "20")

	filter, err := ParseFilterFromQuery(query, DefaultSortingFields)
	require.NoError(t, err)
	assert.Equal(t, uint64(40), filter.Offset)
	assert.Equal(t, uint64(3), filter.Page)
}

func TestParseFilterFromQueryBadSorting(t *testing.T) {
	query := url.Values{}
	query.Set("sort", "bogus")

	_, err := ParseFilterFromQuery(query, DefaultSortingFields)
	var sortErr *apperrors.IncorrectSortingError
	assert.ErrorAs(t, err, &sortErr)
}

func TestRestrictFilters(t *testing.T) {
	allowed := map[string]struct{}{"status": {}, "id": {}}

	filter := types.Filter{Filters: map[string][]string{"status": {"NEW"}}}
	_, err := RestrictFilters(filter, allowed)
	assert.NoError(t, err)

	filter = types.Filter{Filters: map[string][]string{"password_hash": {"x"}}}
	_, err = RestrictFilters(filter, allowed)
	var inputErr *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &inputErr)
}
