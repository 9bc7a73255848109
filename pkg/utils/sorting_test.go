package utils

import (
	"testing"

	apperrors "bathhouse-orders/pkg/errors"
	"bathhouse-orders/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderFields = SortingFields("status", "order_type_id")

func TestParseSortingPrefixes(t *testing.T) {
	fields, err := ParseSorting("+created_at,-status,id", orderFields)
	require.NoError(t, err)
	assert.Equal(t, []types.SortField{
		{Field: "created_at", Desc: false},
		{Field: "status", Desc: true},
		{Field: "id", Desc: false},
	}, fields)
}

func TestParseSortingEmpty(t *testing.T) {
	fields, err := ParseSorting("", orderFields)
	require.NoError(t, err)
	assert.Nil(t, fields)

	fields, err = ParseSorting("  ", orderFields)
	require.NoError(t, err)
	assert.Nil(t, fields)
}

func TestParseSortingCollectsAllBadFields(t *testing.T) {
	_, err := ParseSorting("-status,bogus,+another", orderFields)
	var sortErr *apperrors.IncorrectSortingError
	require.ErrorAs(t, err, &sortErr)
	assert.Equal(t, []string{"bogus", "another"}, sortErr.Fields)
	assert.Contains(t, sortErr.Available, "status")
	assert.Contains(t, sortErr.Available, "created_at")
}

func TestParseSortingRejectsDuplicates(t *testing.T) {
	_, err := ParseSorting("status,-status", orderFields)
	var sortErr *apperrors.IncorrectSortingError
	require.ErrorAs(t, err, &sortErr)
	assert.Equal(t, []string{"status"}, sortErr.Fields)
}

func TestSortingFieldsIncludeDefaults(t *testing.T) {
	fields := SortingFields("name")
	for _, f := range []string{"id", "created_at", "updated_at", "name"} {
		_, ok := fields[f]
		assert.True(t, ok, f)
	}
}
