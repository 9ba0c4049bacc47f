package dataset

import (
	"strings"
	"time"

	"github.com/charadex/charadex/internal/api"
)

// Criteria is the conjunction of filters currently active. Species is an
// exact, case-sensitive match; empty means all. Nil date bounds are open.
type Criteria struct {
	Keyword string
	Species string
	From    *time.Time
	To      *time.Time
}

// Dataset owns the canonical character set and its derived filtered view.
// The canonical set is replaced only by a new successful fetch; the view is
// recomputed wholesale, never patched.
type Dataset struct {
	characters []api.Character
	criteria   Criteria
	view       []api.Character
}

func New() *Dataset {
	return &Dataset{}
}

// SetCharacters replaces the canonical set and recomputes the view.
func (d *Dataset) SetCharacters(chars []api.Character) {
	d.characters = chars
	d.Recompute()
}

// SetCriteria replaces the active criteria and recomputes the view.
func (d *Dataset) SetCriteria(c Criteria) {
	d.criteria = c
	d.Recompute()
}

func (d *Dataset) Criteria() Criteria { return d.criteria }

// View returns the current filtered view in canonical order.
func (d *Dataset) View() []api.Character { return d.view }

// Len is the size of the canonical set, regardless of filtering.
func (d *Dataset) Len() int { return len(d.characters) }

// Species returns the selectable species options for the canonical set.
func (d *Dataset) Species() []string { return api.Species(d.characters) }

func (d *Dataset) Recompute() {
	view := make([]api.Character, 0, len(d.characters))
	for _, ch := range d.characters {
		if Match(ch, d.criteria) {
			view = append(view, ch)
		}
	}
	d.view = view
}

// Match reports whether c satisfies every predicate of cr.
func Match(c api.Character, cr Criteria) bool {
	if kw := strings.ToLower(strings.TrimSpace(cr.Keyword)); kw != "" {
		if !strings.Contains(strings.ToLower(c.Name), kw) {
			return false
		}
	}
	if cr.Species != "" && c.Species != cr.Species {
		return false
	}
	if cr.From != nil && c.Created.Before(*cr.From) {
		return false
	}
	if cr.To != nil && c.Created.After(*cr.To) {
		return false
	}
	return true
}
