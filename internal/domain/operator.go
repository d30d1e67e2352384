package domain

import "time"

// Operator is a console user account. Secrets are bcrypt hashes; no plaintext
// credential is ever stored or compared.
type Operator struct {
	ID           string
	Username     string
	DisplayName  string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
