package portal_test

import (
	"testing"

	apperrors "github.com/jrsteele09/go-customer-portal/internal/errors"
	"github.com/jrsteele09/go-customer-portal/internal/portal"
	"github.com/stretchr/testify/require"
)

func TestSeededTickets(t *testing.T) {
	repo := portal.NewInMemoryTicketRepo()

	tickets, err := repo.ListByUser("alice@example.com")
	require.NoError(t, err)
	require.Len(t, tickets, 2)
	require.Equal(t, "TKT-001", tickets[0].ID)
	require.Equal(t, "TKT-002", tickets[1].ID)
}

func TestCreateTicket(t *testing.T) {
	repo := portal.NewInMemoryTicketRepo()

	ticket, err := repo.Create("alice@example.com", portal.NewTicket{
		Subject:     "Printer on fire",
		Description: "It is on fire",
		Priority:    "High",
	})
	require.NoError(t, err)
	require.Equal(t, "TKT-003", ticket.ID)
	require.Equal(t, "Open", ticket.Status)
	require.Equal(t, "alice@example.com", ticket.Username)
	require.False(t, ticket.CreatedAt.IsZero())

	tickets, err := repo.ListByUser("alice@example.com")
	require.NoError(t, err)
	require.Len(t, tickets, 3)
}

func TestCreateTicketValidation(t *testing.T) {
	repo := portal.NewInMemoryTicketRepo()

	cases := []struct {
		name   string
		ticket portal.NewTicket
	}{
		{"missing subject", portal.NewTicket{Description: "d", Priority: "Low"}},
		{"missing description", portal.NewTicket{Subject: "s", Priority: "Low"}},
		{"missing priority", portal.NewTicket{Subject: "s", Description: "d"}},
		{"all missing", portal.NewTicket{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := repo.Create("alice@example.com", tc.ticket)
			require.ErrorIs(t, err, apperrors.ErrMissingField)

			// No side effect on validation failure
			tickets, listErr := repo.ListByUser("alice@example.com")
			require.NoError(t, listErr)
			require.Len(t, tickets, 2)
		})
	}
}

func TestSeededInvoices(t *testing.T) {
	repo := portal.NewInMemoryInvoiceRepo()

	invoices, err := repo.ListByUser("alice@example.com")
	require.NoError(t, err)
	require.Len(t, invoices, 4)
	require.Equal(t, "INV-001", invoices[0].ID)
	require.Equal(t, 250.00, invoices[0].Amount)
	require.Equal(t, "Paid", invoices[0].Status)
}
