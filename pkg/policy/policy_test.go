package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdminAllowedEverything(t *testing.T) {
	for _, resource := range []string{
		ResourceUsers, ResourceBuildings, ResourceUnits,
		ResourceTenancies, ResourceMaintenance,
	} {
		for _, action := range []string{
			ActionList, ActionRead, ActionCreate, ActionUpdate,
			ActionDelete, ActionActivate, ActionEnd, ActionCancel,
		} {
			assert.True(t, Allowed(RoleAdmin, resource, action),
				"admin should be allowed %s on %s", action, resource)
		}
	}
}

func TestOwnerGrants(t *testing.T) {
	assert.True(t, Allowed(RoleOwner, ResourceBuildings, ActionList))
	assert.True(t, Allowed(RoleOwner, ResourceUnits, ActionRead))
	assert.True(t, Allowed(RoleOwner, ResourceTenancies, ActionList))
	assert.True(t, Allowed(RoleOwner, ResourceMaintenance, ActionUpdate))

	assert.False(t, Allowed(RoleOwner, ResourceBuildings, ActionCreate))
	assert.False(t, Allowed(RoleOwner, ResourceUnits, ActionDelete))
	assert.False(t, Allowed(RoleOwner, ResourceTenancies, ActionEnd))
	assert.False(t, Allowed(RoleOwner, ResourceUsers, ActionList))
}

func TestTenantGrants(t *testing.T) {
	assert.True(t, Allowed(RoleTenant, ResourceTenancies, ActionList))
	assert.True(t, Allowed(RoleTenant, ResourceMaintenance, ActionCreate))
	assert.True(t, Allowed(RoleTenant, ResourceMaintenance, ActionCancel))

	assert.False(t, Allowed(RoleTenant, ResourceMaintenance, ActionUpdate))
	assert.False(t, Allowed(RoleTenant, ResourceMaintenance, ActionDelete))
	assert.False(t, Allowed(RoleTenant, ResourceBuildings, ActionList))
	assert.False(t, Allowed(RoleTenant, ResourceUsers, ActionRead))
}

func TestUnknownRoleDeniedEverything(t *testing.T) {
	assert.False(t, Allowed("CONTRACTOR", ResourceUnits, ActionRead))
	assert.False(t, Allowed("", ResourceUnits, ActionList))
}

func TestAllowedActionsCopies(t *testing.T) {
	a := AllowedActions(RoleTenant, ResourceMaintenance)
	assert.ElementsMatch(t, []string{ActionList, ActionRead, ActionCreate, ActionCancel}, a)

	// Mutating the returned slice must not affect the table.
	a[0] = "tampered"
	b := AllowedActions(RoleTenant, ResourceMaintenance)
	assert.ElementsMatch(t, []string{ActionList, ActionRead, ActionCreate, ActionCancel}, b)
}
