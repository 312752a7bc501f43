package model

// Reservation books a ticket quantity against an event. The event is
// required and populated one level deep by the repository join.
type Reservation struct {
	ID              int64  `json:"id"`
	Name            string `json:"name" validate:"required"`
	CustomerName    string `json:"customerName" validate:"required"`
	Email           string `json:"email"`
	ReservationDate Date   `json:"reservationDate" validate:"required"`
	Quantity        int    `json:"quantity" validate:"required"`
	Event           *Event `json:"event,omitempty" validate:"required"`
}

var reservationFields = map[string]func(*Reservation, any){
	"name":            func(r *Reservation, v any) { setString(&r.Name, v) },
	"customerName":    func(r *Reservation, v any) { setString(&r.CustomerName, v) },
	"email":           func(r *Reservation, v any) { setString(&r.Email, v) },
	"reservationDate": func(r *Reservation, v any) { setDate(&r.ReservationDate, v) },
	"quantity":        func(r *Reservation, v any) { setInt(&r.Quantity, v) },
}

// ApplyUpdates overwrites the fields named by updates. Unknown keys and the
// event relation are silently ignored.
func (r *Reservation) ApplyUpdates(updates map[string]any) {
	for key, value := range updates {
		if set, ok := reservationFields[key]; ok {
			set(r, value)
		}
	}
}
