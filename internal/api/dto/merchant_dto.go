package dto

import (
	"time"

	"github.com/spec-kit/ops-console/internal/domain"
)

// MerchantCreateRequest is the onboarding wizard's submitted form.
type MerchantCreateRequest struct {
	BusinessName string `json:"business_name"`
	BusinessType string `json:"business_type"`
	Address      string `json:"address"`
	TaxID        string `json:"tax_id"`
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	IDProof      string `json:"id_proof"`
	License      string `json:"license"`
}

// MerchantReviewRequest names the explicit transition target.
type MerchantReviewRequest struct {
	Status domain.MerchantStatus `json:"status"`
}

// MerchantResponse is the API view of a merchant.
type MerchantResponse struct {
	ID           string                   `json:"id"`
	BusinessName string                   `json:"business_name"`
	BusinessType string                   `json:"business_type"`
	Address      string                   `json:"address"`
	TaxID        string                   `json:"tax_id"`
	Contact      domain.MerchantContact   `json:"contact"`
	Documents    domain.MerchantDocuments `json:"documents"`
	Status       domain.MerchantStatus    `json:"status"`
	CreatedAt    time.Time                `json:"created_at"`
}

// NewMerchantResponse maps a merchant.
func NewMerchantResponse(m domain.Merchant) MerchantResponse {
	return MerchantResponse{
		ID:           m.ID,
		BusinessName: m.BusinessName,
		BusinessType: m.BusinessType,
		Address:      m.Address,
		TaxID:        m.TaxID,
		Contact:      m.Contact,
		Documents:    m.Documents,
		Status:       m.Status,
		CreatedAt:    m.CreatedAt,
	}
}

// NewMerchantListResponse maps a merchant list.
func NewMerchantListResponse(merchants []domain.Merchant) []MerchantResponse {
	out := make([]MerchantResponse, 0, len(merchants))
	for _, m := range merchants {
		out = append(out, NewMerchantResponse(m))
	}
	return out
}
