package auth

import "github.com/Fakedev-cmd/botforge-services.it/internal/domain"

// Permission is a named capability checked against a role's allowed set.
type Permission string

const (
	// PermissionAll is a sentinel granting every permission.
	PermissionAll Permission = "all"

	PermissionManageUsers    Permission = "manage_users"
	PermissionManageOrders   Permission = "manage_orders"
	PermissionManageTickets  Permission = "manage_tickets"
	PermissionPublishUpdates Permission = "publish_updates"
	PermissionViewAdmin      Permission = "view_admin"
	PermissionViewAnalytics  Permission = "view_analytics"
	PermissionCreateReviews  Permission = "create_reviews"
	PermissionCreateTickets  Permission = "create_tickets"
	PermissionViewOrders     Permission = "view_orders"
)

var rolePermissions = map[domain.Role][]Permission{
	domain.RoleOwner: {PermissionAll},
	domain.RoleManager: {
		PermissionManageUsers,
		PermissionManageOrders,
		PermissionManageTickets,
		PermissionPublishUpdates,
		PermissionViewAdmin,
	},
	domain.RoleDeveloper: {
		PermissionManageTickets,
		PermissionViewAnalytics,
	},
	domain.RoleCustomer: {
		PermissionCreateReviews,
		PermissionCreateTickets,
		PermissionViewOrders,
	},
	domain.RoleUser: {
		PermissionCreateTickets,
	},
}

// HasPermission reports whether the role's set contains the permission or the
// all sentinel. Unknown roles and absent permissions yield false.
func HasPermission(role domain.Role, perm Permission) bool {
	for _, granted := range rolePermissions[role] {
		if granted == PermissionAll || granted == perm {
			return true
		}
	}
	return false
}

// IsAdmin gates the admin console. Derived from view_admin rather than a
// second hard-coded role list.
func IsAdmin(role domain.Role) bool {
	return HasPermission(role, PermissionViewAdmin)
}
