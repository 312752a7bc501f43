package model

// Payment records an amount against a reservation. Status is free text,
// e.g. "PAID", "PENDING" or "CANCELLED"; no transitions are enforced.
type Payment struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	CustomerName string       `json:"customerName" validate:"required"`
	PaymentDate  Date         `json:"paymentDate"`
	Amount       float64      `json:"amount" validate:"required"`
	Status       string       `json:"status"`
	Reservation  *Reservation `json:"reservation,omitempty" validate:"required"`
}

var paymentFields = map[string]func(*Payment, any){
	"name":         func(p *Payment, v any) { setString(&p.Name, v) },
	"customerName": func(p *Payment, v any) { setString(&p.CustomerName, v) },
	"paymentDate":  func(p *Payment, v any) { setDate(&p.PaymentDate, v) },
	"amount":       func(p *Payment, v any) { setFloat(&p.Amount, v) },
	"status":       func(p *Payment, v any) { setString(&p.Status, v) },
}

// ApplyUpdates overwrites the fields named by updates. Unknown keys and the
// reservation relation are silently ignored.
func (p *Payment) ApplyUpdates(updates map[string]any) {
	for key, value := range updates {
		if set, ok := paymentFields[key]; ok {
			set(p, value)
		}
	}
}
