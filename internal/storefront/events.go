package storefront

import "github.com/google/uuid"

// EventType identifies which part of the storefront state changed.
type EventType string

const (
	EventCatalogLoaded EventType = "catalog_loaded"
	EventFilterChanged EventType = "filter_changed"
	EventSearchResults EventType = "search_results"
	EventCartUpdated   EventType = "cart_updated"
	EventNotification  EventType = "notification"
)

// Event is published to subscribers after every state transition. The
// presentation adapter re-renders from the store; the event only says what
// changed.
type Event struct {
	Type         EventType
	Notification *Notification
}

// NotificationLevel classifies a user-visible notification.
type NotificationLevel string

const (
	LevelSuccess NotificationLevel = "success"
	LevelError   NotificationLevel = "error"
	LevelWarning NotificationLevel = "warning"
	LevelInfo    NotificationLevel = "info"
)

// Notification is a dismissible user-visible message. Failures in catalog,
// search and cart operations degrade to one of these instead of an error.
type Notification struct {
	ID      string
	Level   NotificationLevel
	Message string
}

func newNotification(level NotificationLevel, message string) Notification {
	return Notification{
		ID:      uuid.NewString(),
		Level:   level,
		Message: message,
	}
}

// Listener receives store events. Listeners run synchronously on the
// mutating call.
type Listener func(Event)
