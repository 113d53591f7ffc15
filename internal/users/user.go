// Package users holds the registered-user collection: the record type, the
// flat-file storage it is persisted to, and Store, which loads the collection,
// authenticates a candidate against it and appends new registrations.
package users

import (
	"io"
	"slices"

	"github.com/dmitrijs2005/ticketbooking/internal/tickets"
)

// User is one stored account. HashedPassword is an opaque digest produced by
// a cryptox.Hasher; the plaintext password is never stored.
type User struct {
	UserID         string           `json:"userId,omitempty"`
	Name           string           `json:"name"`
	HashedPassword string           `json:"hashedPassword"`
	TicketsBooked  []tickets.Ticket `json:"ticketsBooked"`
}

// ListBookings writes the user's tickets to w.
func (u User) ListBookings(w io.Writer) error {
	return tickets.Print(w, u.TicketsBooked)
}

// Candidate is the identity presented for the current session.
type Candidate struct {
	Name     string
	Password string
}

func cloneUser(u User) User {
	u.TicketsBooked = slices.Clone(u.TicketsBooked)
	return u
}

func cloneUsers(list []User) []User {
	out := make([]User, len(list))
	for i, u := range list {
		out[i] = cloneUser(u)
	}
	return out
}
