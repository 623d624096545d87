package domain

import (
	"fmt"
	"strings"
)

// VolunteerMessage is the full set of fields collected by the registration
// form. It is a one-shot input payload; nothing in this service persists it.
type VolunteerMessage struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone_number"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`
	County       string `json:"county"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
	Body         string `json:"body"`
}

// Validate checks the fields the form marks as required before the message
// is handed to the remote backend.
func (m VolunteerMessage) Validate() error {
	var missing []string
	if strings.TrimSpace(m.FirstName) == "" {
		missing = append(missing, "first_name")
	}
	if strings.TrimSpace(m.LastName) == "" {
		missing = append(missing, "last_name")
	}
	if strings.TrimSpace(m.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(m.Body) == "" {
		missing = append(missing, "body")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}
