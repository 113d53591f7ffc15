package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/dmitrijs2005/ticketbooking/internal/common"
	"github.com/dmitrijs2005/ticketbooking/internal/tickets"
	"github.com/dmitrijs2005/ticketbooking/internal/users"
	"github.com/google/uuid"
)

var errPasswordMismatch = errors.New("passwords do not match")

func (a *App) SignUp(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "-Enter user name", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if name == "" {
		log.Printf("Sign up unsuccessful: empty name")
		return common.ErrInvalidUser
	}

	password, err := GetPassword(a.reader, "-Enter password", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	confirm, err := GetPassword(a.reader, "-Confirm password", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if !bytes.Equal(password, confirm) {
		log.Printf("Sign up unsuccessful: %v", errPasswordMismatch)
		return errPasswordMismatch
	}

	hashed, err := a.hasher.Hash(string(password))
	if err != nil {
		log.Printf("Sign up unsuccessful: %v", err)
		return err
	}

	u := users.User{
		UserID:         uuid.NewString(),
		Name:           name,
		HashedPassword: hashed,
		TicketsBooked:  []tickets.Ticket{},
	}
	if err := a.store.Register(ctx, u); err != nil {
		// The store has already logged the write failure with its cause.
		if errors.Is(err, common.ErrIO) {
			log.Printf("Sign up unsuccessful: users file could not be written")
		} else {
			log.Printf("Sign up unsuccessful: %v", err)
		}
		return err
	}

	log.Printf("Sign up successful")
	return nil
}

func (a *App) Login(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "-Enter user name", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	password, err := GetPassword(a.reader, "-Enter password", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	// A failed attempt leaves the current session as it was.
	if !a.store.SwitchCandidate(ctx, users.Candidate{Name: name, Password: string(password)}) {
		log.Printf("Login unsuccessful")
		return common.ErrUnauthorized
	}

	a.userName = name
	log.Printf("Login successful")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.store.ClearCandidate()
	a.userName = ""
	log.Printf("Logged out")
	return nil
}

func (a *App) Bookings(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.println("Please login first")
		return common.ErrUnauthorized
	}
	if err := a.store.FetchBooking(ctx, a.out); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	return nil
}

func (a *App) Reload(ctx context.Context) error {
	list, err := a.store.LoadUsers(ctx)
	if err != nil {
		log.Printf("Reload unsuccessful: %v", err)
		return err
	}
	a.println(fmt.Sprintf("Loaded %d users", len(list)))
	return nil
}

func (a *App) Users(ctx context.Context) error {
	a.println(fmt.Sprintf("%d users registered", a.store.Len()))
	return nil
}
