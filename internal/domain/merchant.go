package domain

import "time"

// MerchantStatus enumerates onboarding lifecycle states for merchants.
type MerchantStatus string

const (
	MerchantStatusPending  MerchantStatus = "pending"
	MerchantStatusActive   MerchantStatus = "active"
	MerchantStatusRejected MerchantStatus = "rejected"
)

// merchantTransitions is the single source of truth for merchant status
// changes. Active and rejected are terminal.
var merchantTransitions = map[MerchantStatus][]MerchantStatus{
	MerchantStatusPending:  {MerchantStatusActive, MerchantStatusRejected},
	MerchantStatusActive:   {},
	MerchantStatusRejected: {},
}

// IsValid checks whether the status is a known MerchantStatus.
func (s MerchantStatus) IsValid() bool {
	_, ok := merchantTransitions[s]
	return ok
}

// String returns the string representation of MerchantStatus.
func (s MerchantStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status.
func (s MerchantStatus) CanTransitionTo(target MerchantStatus) bool {
	for _, candidate := range merchantTransitions[s] {
		if candidate == target {
			return true
		}
	}
	return false
}

// Terminal reports whether the status has no outgoing transitions.
func (s MerchantStatus) Terminal() bool {
	return s.IsValid() && len(merchantTransitions[s]) == 0
}

// MerchantContact is the named contact person for a merchant.
type MerchantContact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// MerchantDocuments holds opaque uploaded-file name references. They are
// never parsed; presence is advisory only.
type MerchantDocuments struct {
	IDProof string `json:"id_proof"`
	License string `json:"license"`
}

// Merchant is the aggregate produced by the onboarding wizard.
type Merchant struct {
	ID           string
	BusinessName string
	BusinessType string
	Address      string
	TaxID        string
	Contact      MerchantContact
	Documents    MerchantDocuments
	Status       MerchantStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
