package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/ops-console/internal/domain"
)

func TestAuthorize(t *testing.T) {
	agent := &domain.Session{ID: "s1", Identity: "agent1", Role: domain.RoleAgent}
	manager := &domain.Session{ID: "s2", Identity: "mgr1", Role: domain.RoleManager}
	admin := &domain.Session{ID: "s3", Identity: "root", Role: domain.RoleAdmin}

	tests := []struct {
		name    string
		session *domain.Session
		allowed []domain.Role
		want    Decision
	}{
		{name: "nil session denied", session: nil, allowed: []domain.Role{domain.RoleAdmin}, want: DeniedNoSession},
		{name: "nil session denied even unrestricted", session: nil, allowed: nil, want: DeniedNoSession},
		{name: "empty allowed set grants any role", session: agent, allowed: nil, want: Granted},
		{name: "role in set", session: manager, allowed: []domain.Role{domain.RoleManager, domain.RoleAdmin}, want: Granted},
		{name: "role not in set", session: agent, allowed: []domain.Role{domain.RoleManager, domain.RoleAdmin}, want: DeniedInsufficientRole},
		{name: "admin only", session: admin, allowed: []domain.Role{domain.RoleAdmin}, want: Granted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Authorize(tt.session, tt.allowed...))
		})
	}
}

func TestViewRoleTable(t *testing.T) {
	tests := []struct {
		view View
		role domain.Role
		want Decision
	}{
		{view: ViewDashboard, role: domain.RoleAgent, want: Granted},
		{view: ViewMerchants, role: domain.RoleAgent, want: Granted},
		{view: ViewOrders, role: domain.RoleManager, want: Granted},
		{view: ViewTickets, role: domain.RoleAdmin, want: Granted},
		{view: ViewReconciliation, role: domain.RoleAgent, want: DeniedInsufficientRole},
		{view: ViewReconciliation, role: domain.RoleManager, want: Granted},
		{view: ViewAdminPanel, role: domain.RoleAgent, want: DeniedInsufficientRole},
		{view: ViewAdminPanel, role: domain.RoleManager, want: DeniedInsufficientRole},
		{view: ViewAdminPanel, role: domain.RoleAdmin, want: Granted},
	}

	for _, tt := range tests {
		t.Run(string(tt.view)+"/"+string(tt.role), func(t *testing.T) {
			sess := &domain.Session{ID: "s", Identity: "u", Role: tt.role}
			assert.Equal(t, tt.want, Authorize(sess, AllowedRoles(tt.view)...))
		})
	}
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "granted", Granted.String())
	assert.Equal(t, "denied_no_session", DeniedNoSession.String())
	assert.Equal(t, "denied_insufficient_role", DeniedInsufficientRole.String())
}
