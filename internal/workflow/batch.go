package workflow

import "github.com/spec-kit/ops-console/internal/domain"

// Selection is the ordered set of reconciliation record ids marked for a
// batch operation. Ids are unique; application order is selection order.
type Selection struct {
	ids     []string
	members map[string]struct{}
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{members: make(map[string]struct{})}
}

// Toggle flips membership for the record's id. Records already reconciled are
// never selectable; toggling them is a no-op. Returns the resulting
// membership state.
func (s *Selection) Toggle(record domain.ReconciliationRecord) bool {
	if record.Reconciled {
		_, in := s.members[record.ID]
		return in
	}
	if _, in := s.members[record.ID]; in {
		delete(s.members, record.ID)
		for i, id := range s.ids {
			if id == record.ID {
				s.ids = append(s.ids[:i], s.ids[i+1:]...)
				break
			}
		}
		return false
	}
	s.members[record.ID] = struct{}{}
	s.ids = append(s.ids, record.ID)
	return true
}

// Has reports membership.
func (s *Selection) Has(id string) bool {
	_, in := s.members[id]
	return in
}

// IDs returns the selected ids in selection order.
func (s *Selection) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Count returns the number of selected ids.
func (s *Selection) Count() int {
	return len(s.ids)
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.ids = nil
	s.members = make(map[string]struct{})
}

// BatchResult reports the outcome of a sequential batch apply. There is no
// atomicity: updates applied before a failure stay applied, and the caller
// must re-fetch the authoritative list afterwards.
type BatchResult struct {
	// Succeeded counts records actually transitioned and persisted.
	Succeeded int
	// Skipped counts ids whose record was already reconciled by the time the
	// batch ran; they are no-ops, not errors.
	Skipped int
	// Remaining holds ids not attempted because an earlier update failed.
	Remaining []string
	// Err is the first failure, nil on full success.
	Err error
}

// Partial reports whether the batch stopped before attempting every id.
func (r BatchResult) Partial() bool {
	return r.Err != nil
}
