package domain

// ChecklistItem is one packing-list entry. Text is unique within a generated
// checklist (deduplication is applied at generation time); manually added
// items are not re-checked against that invariant.
type ChecklistItem struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Category string `json:"category"`
	Checked  bool   `json:"checked"`
	Reason   string `json:"reason,omitempty"`
}
