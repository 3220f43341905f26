package input

import "mlguide/internal/ui/services/query"

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Service *query.Service
}

// Query returns the current search query
func (c ModelContext) Query() string {
	return c.Service.Query()
}
