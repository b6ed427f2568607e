package portal

import (
	"fmt"
	"sync"
	"time"

	apperrors "github.com/jrsteele09/go-customer-portal/internal/errors"
)

type Ticket struct {
	ID          string
	Subject     string
	Description string
	Priority    string
	Status      string
	Username    string
	CreatedAt   time.Time
}

// NewTicket carries the fields of a ticket creation request
type NewTicket struct {
	Subject     string
	Description string
	Priority    string
}

// Validate checks that every required field is present
func (n NewTicket) Validate() error {
	if n.Subject == "" {
		return apperrors.Wrapf(apperrors.ErrMissingField, "subject")
	}
	if n.Description == "" {
		return apperrors.Wrapf(apperrors.ErrMissingField, "description")
	}
	if n.Priority == "" {
		return apperrors.Wrapf(apperrors.ErrMissingField, "priority")
	}
	return nil
}

type TicketRepo interface {
	ListByUser(username string) ([]Ticket, error)
	Create(username string, ticket NewTicket) (Ticket, error)
}

// InMemoryTicketRepo is a thread-safe in-memory ticket store seeded with
// sample tickets
type InMemoryTicketRepo struct {
	mu      sync.RWMutex
	tickets []Ticket
	nextID  int
}

func NewInMemoryTicketRepo() *InMemoryTicketRepo {
	return &InMemoryTicketRepo{
		tickets: []Ticket{
			{ID: "TKT-001", Subject: "Login Issue", Status: "Resolved", CreatedAt: time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC)},
			{ID: "TKT-002", Subject: "Billing Question", Status: "Open", CreatedAt: time.Date(2024, 11, 20, 0, 0, 0, 0, time.UTC)},
		},
		nextID: 3,
	}
}

func (r *InMemoryTicketRepo) ListByUser(string) ([]Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Ticket, len(r.tickets))
	copy(out, r.tickets)
	return out, nil
}

// Create validates and stores a new ticket, assigning the next TKT- ID
func (r *InMemoryTicketRepo) Create(username string, newTicket NewTicket) (Ticket, error) {
	if err := newTicket.Validate(); err != nil {
		return Ticket{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ticket := Ticket{
		ID:          fmt.Sprintf("TKT-%03d", r.nextID),
		Subject:     newTicket.Subject,
		Description: newTicket.Description,
		Priority:    newTicket.Priority,
		Status:      "Open",
		Username:    username,
		CreatedAt:   time.Now(),
	}
	r.nextID++
	r.tickets = append(r.tickets, ticket)

	return ticket, nil
}
