package reportparser

import "fjacquet/receivables-xlsx/internal/models"

// ContextTracker holds the party established by the most recent header line.
// Only Set changes it: page breaks, noise and unrecognized lines leave it alone.
type ContextTracker struct {
	current models.PartyContext
	active  bool
}

// Set replaces the active party unconditionally.
func (t *ContextTracker) Set(p models.PartyContext) {
	t.current = p
	t.active = true
}

// Current returns the active party and whether one has been set.
func (t *ContextTracker) Current() (models.PartyContext, bool) {
	return t.current, t.active
}
