package query

import (
	"mlguide/internal/domain"
	"mlguide/internal/eventbus"
	"mlguide/internal/ui/logic"
)

// Service owns the search query and the visible subset derived from it.
// It is not safe for concurrent use; the UI calls it from its update loop.
type Service struct {
	state  State
	filter *logic.SearchFilter
	bus    eventbus.EventBus
}

// NewService creates a query service over models with an empty query.
// bus may be nil.
func NewService(models []domain.ModelRecord, bus eventbus.EventBus) *Service {
	s := &Service{
		filter: logic.NewSearchFilter(models),
		bus:    bus,
	}
	s.state.Visible = s.filter.Apply("")
	return s
}

// SetQuery replaces the query and recomputes the visible models
func (s *Service) SetQuery(q string) []domain.ModelRecord {
	s.state.Query = q
	s.state.Visible = s.filter.Apply(q)

	if s.bus != nil {
		s.bus.Publish(eventbus.QueryChangedEvent{
			Query:      q,
			MatchCount: len(s.state.Visible),
			Total:      s.filter.Total(),
		})
	}
	return s.state.Visible
}

// Clear resets the query to empty
func (s *Service) Clear() []domain.ModelRecord {
	return s.SetQuery("")
}

// Query returns the current query
func (s *Service) Query() string {
	return s.state.Query
}

// Visible returns the models matching the current query, in catalog order
func (s *Service) Visible() []domain.ModelRecord {
	return s.state.Visible
}

// State returns a snapshot of the query state
func (s *Service) State() State {
	return s.state
}

// Total returns the number of models in the catalog
func (s *Service) Total() int {
	return s.filter.Total()
}
