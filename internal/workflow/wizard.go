package workflow

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spec-kit/ops-console/internal/domain"
)

// ErrValidation is returned when the current wizard step's required fields
// are missing. It blocks forward navigation only; entered data is kept.
var ErrValidation = errors.New("validation failed")

// WizardStep is a 1-indexed onboarding step.
type WizardStep int

const (
	StepBusinessInfo WizardStep = iota + 1
	StepContactDetails
	StepDocumentation
	StepReview
)

// String returns a display name for the step.
func (s WizardStep) String() string {
	switch s {
	case StepBusinessInfo:
		return "Business Info"
	case StepContactDetails:
		return "Contact Details"
	case StepDocumentation:
		return "Documentation"
	case StepReview:
		return "Review & Submit"
	}
	return fmt.Sprintf("step %d", int(s))
}

// MerchantForm accumulates entered values across wizard steps. Back
// navigation never discards them.
type MerchantForm struct {
	BusinessName string
	BusinessType string
	Address      string
	TaxID        string
	ContactName  string
	ContactEmail string
	ContactPhone string
	IDProof      string
	License      string
}

// stepSpec pairs the merge and validation behavior of one step, keeping
// forward, back and validate orthogonal.
type stepSpec struct {
	merge    func(dst *MerchantForm, src MerchantForm)
	validate func(form MerchantForm) error
}

var wizardSteps = map[WizardStep]stepSpec{
	StepBusinessInfo: {
		merge: func(dst *MerchantForm, src MerchantForm) {
			dst.BusinessName = src.BusinessName
			dst.BusinessType = src.BusinessType
			dst.Address = src.Address
			dst.TaxID = src.TaxID
		},
		validate: func(form MerchantForm) error {
			return requireFields(map[string]string{
				"businessName": form.BusinessName,
				"businessType": form.BusinessType,
			})
		},
	},
	StepContactDetails: {
		merge: func(dst *MerchantForm, src MerchantForm) {
			dst.ContactName = src.ContactName
			dst.ContactEmail = src.ContactEmail
			dst.ContactPhone = src.ContactPhone
		},
		validate: func(form MerchantForm) error {
			return requireFields(map[string]string{
				"contactName":  form.ContactName,
				"contactEmail": form.ContactEmail,
			})
		},
	},
	StepDocumentation: {
		// Documents are optional name references; presence is advisory.
		merge: func(dst *MerchantForm, src MerchantForm) {
			dst.IDProof = src.IDProof
			dst.License = src.License
		},
		validate: func(MerchantForm) error { return nil },
	},
}

func requireFields(fields map[string]string) error {
	missing := make([]string, 0, len(fields))
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: missing %s", ErrValidation, strings.Join(missing, ", "))
}

// MerchantWizard drives the four-step onboarding form as an explicit state
// machine over [BusinessInfo, ContactDetails, Documentation, Review].
type MerchantWizard struct {
	step WizardStep
	form MerchantForm
	now  func() time.Time
}

// NewMerchantWizard starts at step 1 with an empty form.
func NewMerchantWizard() *MerchantWizard {
	return &MerchantWizard{step: StepBusinessInfo, now: time.Now}
}

// Step returns the current step. It never leaves [1, 4].
func (w *MerchantWizard) Step() WizardStep {
	return w.step
}

// Form returns a copy of the accumulated form data.
func (w *MerchantWizard) Form() MerchantForm {
	return w.form
}

// Advance merges the current step's fields from input, validates them, and
// moves one step forward. On validation failure the step is unchanged and the
// merged data is kept. Review is terminal; its only action is Submit.
func (w *MerchantWizard) Advance(input MerchantForm) (WizardStep, error) {
	spec, ok := wizardSteps[w.step]
	if !ok {
		return w.step, fmt.Errorf("%w: step %d has no forward action", ErrValidation, w.step)
	}
	spec.merge(&w.form, input)
	if err := spec.validate(w.form); err != nil {
		return w.step, err
	}
	w.step++
	return w.step, nil
}

// Retreat moves one step back without validating. No-op at step 1.
func (w *MerchantWizard) Retreat() WizardStep {
	if w.step > StepBusinessInfo {
		w.step--
	}
	return w.step
}

// Submit finalizes the wizard from the review step, producing the merchant
// create payload with status pending and the current date, then resets the
// controller to step 1 with an empty form.
func (w *MerchantWizard) Submit() (domain.Merchant, error) {
	if w.step != StepReview {
		return domain.Merchant{}, fmt.Errorf("%w: submit is only available at step %d", ErrValidation, StepReview)
	}
	merchant := domain.Merchant{
		BusinessName: strings.TrimSpace(w.form.BusinessName),
		BusinessType: strings.TrimSpace(w.form.BusinessType),
		Address:      strings.TrimSpace(w.form.Address),
		TaxID:        strings.TrimSpace(w.form.TaxID),
		Contact: domain.MerchantContact{
			Name:  strings.TrimSpace(w.form.ContactName),
			Email: strings.TrimSpace(w.form.ContactEmail),
			Phone: strings.TrimSpace(w.form.ContactPhone),
		},
		Documents: domain.MerchantDocuments{
			IDProof: w.form.IDProof,
			License: w.form.License,
		},
		Status:    domain.MerchantStatusPending,
		CreatedAt: w.now(),
	}
	w.step = StepBusinessInfo
	w.form = MerchantForm{}
	return merchant, nil
}
