// Package portal holds the customer-facing business collaborators behind
// repository interfaces, so the in-memory seed data can be replaced with a
// real backing store without touching the handlers.
package portal

import "sync"

type Invoice struct {
	ID     string
	Date   string
	Amount float64
	Status string
}

type InvoiceRepo interface {
	ListByUser(username string) ([]Invoice, error)
}

// InMemoryInvoiceRepo serves the same seeded invoice list to every
// authenticated user
type InMemoryInvoiceRepo struct {
	mu       sync.RWMutex
	invoices []Invoice
}

func NewInMemoryInvoiceRepo() *InMemoryInvoiceRepo {
	return &InMemoryInvoiceRepo{
		invoices: []Invoice{
			{ID: "INV-001", Date: "2024-11-01", Amount: 250.00, Status: "Paid"},
			{ID: "INV-002", Date: "2024-10-01", Amount: 250.00, Status: "Paid"},
			{ID: "INV-003", Date: "2024-09-01", Amount: 250.00, Status: "Paid"},
			{ID: "INV-004", Date: "2024-08-01", Amount: 250.00, Status: "Paid"},
		},
	}
}

func (r *InMemoryInvoiceRepo) ListByUser(string) ([]Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Invoice, len(r.invoices))
	copy(out, r.invoices)
	return out, nil
}
