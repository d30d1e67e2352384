package dto

import (
	"time"

	"github.com/spec-kit/ops-console/internal/domain"
)

// ChangeRoleRequest assigns a new role to an operator.
type ChangeRoleRequest struct {
	Role domain.Role `json:"role"`
}

// OperatorResponse is the admin panel view of an operator account.
type OperatorResponse struct {
	ID          string      `json:"id"`
	Username    string      `json:"username"`
	DisplayName string      `json:"display_name"`
	Role        domain.Role `json:"role"`
	CreatedAt   time.Time   `json:"created_at"`
}

// NewOperatorResponse maps an operator, omitting the credential hash.
func NewOperatorResponse(op domain.Operator) OperatorResponse {
	return OperatorResponse{
		ID:          op.ID,
		Username:    op.Username,
		DisplayName: op.DisplayName,
		Role:        op.Role,
		CreatedAt:   op.CreatedAt,
	}
}

// NewOperatorListResponse maps an operator list.
func NewOperatorListResponse(ops []domain.Operator) []OperatorResponse {
	out := make([]OperatorResponse, 0, len(ops))
	for _, op := range ops {
		out = append(out, NewOperatorResponse(op))
	}
	return out
}
