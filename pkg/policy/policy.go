// Package policy is the single authority on which role may perform which
// operation on which resource. The server's policy middleware and the client
// SDK's navigation/action gating both read the same table; the server side is
// authoritative, the client side advisory.
package policy

// Roles
const (
	RoleAdmin  = "ADMIN"
	RoleOwner  = "OWNER"
	RoleTenant = "TENANT"
)

// Resources
const (
	ResourceUsers       = "users"
	ResourceBuildings   = "buildings"
	ResourceUnits       = "units"
	ResourceTenancies   = "tenancies"
	ResourceMaintenance = "maintenance"
)

// Actions
const (
	ActionList   = "list"
	ActionRead   = "read"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"

	// Resource-specific operations.
	ActionActivate = "activate" // users: activate/deactivate
	ActionEnd      = "end"      // tenancies: end early
	ActionCancel   = "cancel"   // maintenance: tenant cancel while PENDING
)

type key struct {
	role     string
	resource string
}

// Owner and tenant grants are additionally own-scoped: the services filter
// collections to the caller's buildings/tenancies. The table only answers
// whether the operation is reachable at all.
var table = map[key][]string{
	{RoleOwner, ResourceBuildings}: {ActionList, ActionRead},
	{RoleOwner, ResourceUnits}:     {ActionList, ActionRead},
	{RoleOwner, ResourceTenancies}: {ActionList, ActionRead},
	{RoleOwner, ResourceMaintenance}: {
		ActionList, ActionRead, ActionUpdate,
	},

	{RoleTenant, ResourceTenancies}: {ActionList, ActionRead},
	{RoleTenant, ResourceMaintenance}: {
		ActionList, ActionRead, ActionCreate, ActionCancel,
	},
}

// Allowed reports whether role may perform action on resource.
// ADMIN is allowed everything.
func Allowed(role, resource, action string) bool {
	if role == RoleAdmin {
		return true
	}
	for _, a := range table[key{role, resource}] {
		if a == action {
			return true
		}
	}
	return false
}

// AllowedActions returns the actions role may perform on resource.
func AllowedActions(role, resource string) []string {
	if role == RoleAdmin {
		return []string{
			ActionList, ActionRead, ActionCreate, ActionUpdate, ActionDelete,
			ActionActivate, ActionEnd, ActionCancel,
		}
	}
	actions := table[key{role, resource}]
	out := make([]string, len(actions))
	copy(out, actions)
	return out
}
