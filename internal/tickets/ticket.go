// Package tickets is the booking model attached to a user record. The user
// store never interprets tickets; it only stores them and forwards listing
// requests here.
package tickets

import (
	"encoding/json"
	"fmt"
	"io"
)

// Ticket is a single booking. Train is kept as raw JSON so whatever the
// booking side stored survives a load/save cycle unchanged.
type Ticket struct {
	TicketID     string          `json:"ticketId"`
	UserID       string          `json:"userId"`
	Source       string          `json:"source"`
	Destination  string          `json:"destination"`
	DateOfTravel string          `json:"dateOfTravel"`
	Train        json.RawMessage `json:"train,omitempty"`
}

// Info returns a one-line, human-readable description of the ticket.
func (t Ticket) Info() string {
	return fmt.Sprintf("Ticket ID: %s belongs to User %s from %s to %s on %s",
		t.TicketID, t.UserID, t.Source, t.Destination, t.DateOfTravel)
}

// Print writes one Info line per ticket to w, in order.
func Print(w io.Writer, list []Ticket) error {
	if len(list) == 0 {
		_, err := fmt.Fprintln(w, "No bookings found.")
		return err
	}
	for _, t := range list {
		if _, err := fmt.Fprintln(w, t.Info()); err != nil {
			return err
		}
	}
	return nil
}
