package workflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/ops-console/internal/domain"
)

func completeForm() MerchantForm {
	return MerchantForm{
		BusinessName: "Acme Retail",
		BusinessType: "Retail",
		Address:      "1 Main St",
		TaxID:        "TX-1001",
		ContactName:  "Alice Johnson",
		ContactEmail: "alice@acme.test",
		ContactPhone: "555-0100",
		IDProof:      "id.pdf",
		License:      "license.pdf",
	}
}

func TestWizardStartsAtBusinessInfo(t *testing.T) {
	w := NewMerchantWizard()
	assert.Equal(t, StepBusinessInfo, w.Step())
	assert.Equal(t, MerchantForm{}, w.Form())
}

func TestWizardAdvanceValidation(t *testing.T) {
	tests := []struct {
		name  string
		input MerchantForm
	}{
		{name: "missing business type", input: MerchantForm{BusinessName: "Acme Retail"}},
		{name: "missing business name", input: MerchantForm{BusinessType: "Retail"}},
		{name: "whitespace only", input: MerchantForm{BusinessName: "  ", BusinessType: "Retail"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewMerchantWizard()
			step, err := w.Advance(tt.input)
			require.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, StepBusinessInfo, step, "step must not move on validation failure")
			assert.Equal(t, StepBusinessInfo, w.Step())
		})
	}
}

func TestWizardValidationKeepsEnteredData(t *testing.T) {
	w := NewMerchantWizard()
	_, err := w.Advance(MerchantForm{BusinessName: "Acme Retail"})
	require.ErrorIs(t, err, ErrValidation)

	// the partial entry survives; supplying the missing field completes the step
	assert.Equal(t, "Acme Retail", w.Form().BusinessName)
	step, err := w.Advance(MerchantForm{BusinessName: "Acme Retail", BusinessType: "Retail"})
	require.NoError(t, err)
	assert.Equal(t, StepContactDetails, step)
}

func TestWizardContactStepRequiresNameAndEmail(t *testing.T) {
	w := NewMerchantWizard()
	_, err := w.Advance(completeForm())
	require.NoError(t, err)

	_, err = w.Advance(MerchantForm{ContactName: "Alice Johnson"})
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, StepContactDetails, w.Step())
}

func TestWizardDocumentsAreOptional(t *testing.T) {
	w := NewMerchantWizard()
	form := completeForm()
	form.IDProof = ""
	form.License = ""

	for w.Step() != StepReview {
		_, err := w.Advance(form)
		require.NoError(t, err)
	}
	assert.Equal(t, StepReview, w.Step())
}

func TestWizardRetreat(t *testing.T) {
	w := NewMerchantWizard()
	_, err := w.Advance(completeForm())
	require.NoError(t, err)
	_, err = w.Advance(completeForm())
	require.NoError(t, err)
	assert.Equal(t, StepDocumentation, w.Step())

	assert.Equal(t, StepContactDetails, w.Retreat())
	assert.Equal(t, StepBusinessInfo, w.Retreat())
	// no-op at the first step
	assert.Equal(t, StepBusinessInfo, w.Retreat())

	// back navigation never discards entered data
	assert.Equal(t, "Acme Retail", w.Form().BusinessName)
	assert.Equal(t, "alice@acme.test", w.Form().ContactEmail)
}

func TestWizardSubmitOnlyAtReview(t *testing.T) {
	w := NewMerchantWizard()
	_, err := w.Submit()
	require.ErrorIs(t, err, ErrValidation)

	_, err = w.Advance(completeForm())
	require.NoError(t, err)
	_, err = w.Submit()
	require.ErrorIs(t, err, ErrValidation)
}

func TestWizardSubmit(t *testing.T) {
	fixed := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	w := NewMerchantWizard()
	w.now = func() time.Time { return fixed }

	form := completeForm()
	for w.Step() != StepReview {
		_, err := w.Advance(form)
		require.NoError(t, err)
	}

	merchant, err := w.Submit()
	require.NoError(t, err)
	assert.Equal(t, domain.MerchantStatusPending, merchant.Status)
	assert.Equal(t, fixed, merchant.CreatedAt)
	assert.Equal(t, "Acme Retail", merchant.BusinessName)
	assert.Equal(t, "Alice Johnson", merchant.Contact.Name)
	assert.Equal(t, "id.pdf", merchant.Documents.IDProof)

	// the controller resets for the next onboarding
	assert.Equal(t, StepBusinessInfo, w.Step())
	assert.Equal(t, MerchantForm{}, w.Form())
}

func TestWizardStepString(t *testing.T) {
	assert.Equal(t, "Business Info", StepBusinessInfo.String())
	assert.Equal(t, "Review & Submit", StepReview.String())
}
