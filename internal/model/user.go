package model

// User represents an account that can reserve tickets. Name and email are
// unique across all users. Active defaults to true.
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required"`
	Password     string `json:"password" validate:"required,min=8,max=30"`
	CreationDate Date   `json:"creationDate"`
	Active       bool   `json:"active"`
}

// userFields maps patchable field names to setters.
var userFields = map[string]func(*User, any){
	"name":         func(u *User, v any) { setString(&u.Name, v) },
	"email":        func(u *User, v any) { setString(&u.Email, v) },
	"password":     func(u *User, v any) { setString(&u.Password, v) },
	"creationDate": func(u *User, v any) { setDate(&u.CreationDate, v) },
	"active":       func(u *User, v any) { setBool(&u.Active, v) },
}

// ApplyUpdates overwrites the fields named by updates. Unknown keys are
// silently ignored.
func (u *User) ApplyUpdates(updates map[string]any) {
	for key, value := range updates {
		if set, ok := userFields[key]; ok {
			set(u, value)
		}
	}
}
