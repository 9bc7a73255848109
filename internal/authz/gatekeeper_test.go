package authz

import (
	"testing"

	"bathhouse-orders/internal/entities"
	apperrors "bathhouse-orders/pkg/errors"

	"github.com/stretchr/testify/assert"
)

func TestRequireAnyRole(t *testing.T) {
	assert.NoError(t, RequireAnyRole(
		[]string{RoleStaff, RoleCustomerManager},
		[]string{RoleCustomerManager, RoleAdmin},
	))
	assert.ErrorIs(t, RequireAnyRole(
		[]string{RoleStaff},
		[]string{RoleCustomerManager, RoleAdmin},
	), apperrors.ErrForbidden)
	assert.ErrorIs(t, RequireAnyRole(nil, []string{RoleAdmin}), apperrors.ErrForbidden)
	// Пустой список требований не пропускает никого.
	assert.ErrorIs(t, RequireAnyRole([]string{RoleAdmin}, nil), apperrors.ErrForbidden)
}

func TestRequireAllRoles(t *testing.T) {
	assert.NoError(t, RequireAllRoles(
		[]string{RoleStaff, RoleAxeman, RoleOrderManager},
		[]string{RoleStaff, RoleAxeman},
	))
	assert.ErrorIs(t, RequireAllRoles(
		[]string{RoleStaff},
		[]string{RoleStaff, RoleAdmin},
	), apperrors.ErrForbidden)
	// Пустой список требований выполняется тривиально.
	assert.NoError(t, RequireAllRoles(nil, nil))
}

func TestOrderStatusRequisitesCoverAllStatuses(t *testing.T) {
	for _, status := range entities.OrderStatusValues() {
		roles, ok := OrderStatusRequisites[status]
		assert.True(t, ok, status)
		assert.NotEmpty(t, roles, status)
	}
}

func TestRemovedReservedForSystemAndAdmin(t *testing.T) {
	roles := OrderStatusRequisites[entities.StatusRemoved]
	assert.ElementsMatch(t, []string{RoleSystem, RoleAdmin}, roles)
}

func TestRolesForOrderTypeFallback(t *testing.T) {
	assert.ElementsMatch(t,
		[]string{RoleCustomerManager, RoleAdmin},
		RolesForOrderType(entities.TypeBathOrder))
	assert.ElementsMatch(t,
		[]string{RoleStaff, RoleAdmin},
		RolesForOrderType("UNKNOWN_TYPE"))
}
