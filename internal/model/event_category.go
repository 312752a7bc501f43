package model

// EventCategory groups events. NumberEvents is an ordinary counter field,
// not derived from the events table. Active defaults to true.
type EventCategory struct {
	ID           int64  `json:"id"`
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description" validate:"required"`
	CreationDate Date   `json:"creationDate" validate:"required"`
	NumberEvents int    `json:"numberEvents"`
	Active       bool   `json:"active"`
}

var eventCategoryFields = map[string]func(*EventCategory, any){
	"name":         func(c *EventCategory, v any) { setString(&c.Name, v) },
	"description":  func(c *EventCategory, v any) { setString(&c.Description, v) },
	"creationDate": func(c *EventCategory, v any) { setDate(&c.CreationDate, v) },
	"numberEvents": func(c *EventCategory, v any) { setInt(&c.NumberEvents, v) },
	"active":       func(c *EventCategory, v any) { setBool(&c.Active, v) },
}

// ApplyUpdates overwrites the fields named by updates. Unknown keys are
// silently ignored.
func (c *EventCategory) ApplyUpdates(updates map[string]any) {
	for key, value := range updates {
		if set, ok := eventCategoryFields[key]; ok {
			set(c, value)
		}
	}
}
