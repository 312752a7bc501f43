package model

// Event belongs to at most one EventCategory. The category is populated one
// level deep by the repository join and omitted from JSON when not loaded.
type Event struct {
	ID          int64          `json:"id"`
	EventName   string         `json:"eventName" validate:"required"`
	Description string         `json:"description"`
	EventDate   Date           `json:"eventDate"`
	Capacity    int            `json:"capacity" validate:"gte=0"`
	Ubication   string         `json:"ubication" validate:"required"`
	Latitude    float64        `json:"latitude"`
	Longitude   float64        `json:"longitude"`
	Category    *EventCategory `json:"category,omitempty"`
}

// EventRegistration is the creation payload for events. It carries the
// category by id rather than as a nested object.
type EventRegistration struct {
	EventName  string  `json:"eventName" validate:"required"`
	EventDate  Date    `json:"eventDate"`
	Capacity   int     `json:"capacity" validate:"min=1"`
	Ubication  string  `json:"ubication" validate:"required"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	CategoryID int64   `json:"categoryId"`
}

// EventOut is the creation response shape, carrying the resolved
// category's id instead of the nested object.
type EventOut struct {
	ID         int64   `json:"id"`
	EventName  string  `json:"eventName"`
	EventDate  Date    `json:"eventDate"`
	Capacity   int     `json:"capacity"`
	Ubication  string  `json:"ubication"`
	CategoryID int64   `json:"categoryId"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

var eventFields = map[string]func(*Event, any){
	"eventName":   func(e *Event, v any) { setString(&e.EventName, v) },
	"description": func(e *Event, v any) { setString(&e.Description, v) },
	"eventDate":   func(e *Event, v any) { setDate(&e.EventDate, v) },
	"capacity":    func(e *Event, v any) { setInt(&e.Capacity, v) },
	"ubication":   func(e *Event, v any) { setString(&e.Ubication, v) },
	"latitude":    func(e *Event, v any) { setFloat(&e.Latitude, v) },
	"longitude":   func(e *Event, v any) { setFloat(&e.Longitude, v) },
}

// ApplyUpdates overwrites the fields named by updates. Unknown keys and the
// category relation are silently ignored.
func (e *Event) ApplyUpdates(updates map[string]any) {
	for key, value := range updates {
		if set, ok := eventFields[key]; ok {
			set(e, value)
		}
	}
}
