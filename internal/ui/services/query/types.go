package query

import "mlguide/internal/domain"

// State is the query string and the view derived from it
type State struct {
	Query   string
	Visible []domain.ModelRecord
}

// Empty reports whether no model is visible
func (s State) Empty() bool {
	return len(s.Visible) == 0
}
