package domain

// Role enumerates console operator roles. Roles are capability sets, not a
// privilege hierarchy: each view carries its own allowed-role list.
type Role string

const (
	RoleAgent   Role = "agent"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

// IsValid checks whether the role is a known Role.
func (r Role) IsValid() bool {
	switch r {
	case RoleAgent, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// String returns the string representation of Role.
func (r Role) String() string {
	return string(r)
}

// Session is the authenticated identity carried through every workflow
// operation that needs role information. Created on login, replaced on
// re-login, deleted on logout; never shared through hidden globals.
type Session struct {
	ID          string `json:"id"`
	Identity    string `json:"identity"`
	Role        Role   `json:"role"`
	DisplayName string `json:"display_name"`
}
