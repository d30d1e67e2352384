package auth

import "github.com/spec-kit/ops-console/internal/domain"

// Decision is the outcome of an authorization check.
type Decision int

const (
	// Granted allows the action.
	Granted Decision = iota
	// DeniedNoSession means no authenticated session; callers redirect to login.
	DeniedNoSession
	// DeniedInsufficientRole means the session's role is not in the allowed set.
	DeniedInsufficientRole
)

// String returns the string representation of Decision.
func (d Decision) String() string {
	switch d {
	case Granted:
		return "granted"
	case DeniedNoSession:
		return "denied_no_session"
	case DeniedInsufficientRole:
		return "denied_insufficient_role"
	}
	return "unknown"
}

// Authorize decides access for a session against an allowed-role set. An
// empty allowed set means any authenticated role. Pure; it is re-evaluated on
// every request rather than cached, so a role change after re-login takes
// effect on the next check.
func Authorize(session *domain.Session, allowed ...domain.Role) Decision {
	if session == nil {
		return DeniedNoSession
	}
	if len(allowed) == 0 {
		return Granted
	}
	for _, role := range allowed {
		if session.Role == role {
			return Granted
		}
	}
	return DeniedInsufficientRole
}

// View identifies a console view for route gating.
type View string

const (
	ViewDashboard      View = "dashboard"
	ViewMerchants      View = "merchants"
	ViewOrders         View = "orders"
	ViewTickets        View = "tickets"
	ViewReconciliation View = "reconciliation"
	ViewAdminPanel     View = "admin"
)

// viewRoles is the fixed route table: which roles may enter each view.
var viewRoles = map[View][]domain.Role{
	ViewDashboard:      {domain.RoleAgent, domain.RoleManager, domain.RoleAdmin},
	ViewMerchants:      {domain.RoleAgent, domain.RoleManager, domain.RoleAdmin},
	ViewOrders:         {domain.RoleAgent, domain.RoleManager, domain.RoleAdmin},
	ViewTickets:        {domain.RoleAgent, domain.RoleManager, domain.RoleAdmin},
	ViewReconciliation: {domain.RoleManager, domain.RoleAdmin},
	ViewAdminPanel:     {domain.RoleAdmin},
}

// AllowedRoles returns the roles permitted to enter the view.
func AllowedRoles(view View) []domain.Role {
	roles := viewRoles[view]
	out := make([]domain.Role, len(roles))
	copy(out, roles)
	return out
}
