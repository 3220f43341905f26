package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventQueryChanged       EventType = "QueryChanged"
	EventQuickFilterPressed EventType = "QuickFilterPressed"
	EventPagerOpened        EventType = "PagerOpened"
	EventError              EventType = "Error"
	EventConfigLoaded       EventType = "ConfigLoaded"
	EventConfigSaved        EventType = "ConfigSaved"
	EventAppReady           EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// QueryChangedEvent is emitted every time the search query is replaced
type QueryChangedEvent struct {
	Query      string
	MatchCount int
	Total      int
}

func (e QueryChangedEvent) Type() EventType { return EventQueryChanged }

// QuickFilterPressedEvent is emitted when the Quick Filter button is activated.
// Nothing reacts to it beyond logging.
type QuickFilterPressedEvent struct {
	Query string
}

func (e QuickFilterPressedEvent) Type() EventType { return EventQuickFilterPressed }

// PagerOpenedEvent is emitted when content is handed to the pager
type PagerOpenedEvent struct {
	Content string // "help" or "view"
}

func (e PagerOpenedEvent) Type() EventType { return EventPagerOpened }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// AppReadyEvent is emitted when the app is fully initialized and ready
type AppReadyEvent struct {
	Models int
	Tips   int
}

func (e AppReadyEvent) Type() EventType { return EventAppReady }
