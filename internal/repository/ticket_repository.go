package repository

import (
	"context"
	"sync"

	"github.com/tiered-support/support-desk/internal/domain"
)

// TicketRepository encapsulates ticket storage.
type TicketRepository interface {
	Create(ctx context.Context, ticket domain.Ticket) error
	List(ctx context.Context) ([]domain.Ticket, error)
	Count(ctx context.Context) int
}

// memoryTicketRepository keeps tickets for the lifetime of the process.
// Appends are serialized by mu; records are never updated or removed.
type memoryTicketRepository struct {
	mu      sync.RWMutex
	tickets []domain.Ticket
}

// NewMemoryTicketRepository instantiates an empty in-process repository.
func NewMemoryTicketRepository() TicketRepository {
	return &memoryTicketRepository{}
}

func (r *memoryTicketRepository) Create(_ context.Context, ticket domain.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tickets = append(r.tickets, ticket)
	return nil
}

// List returns a copy of all tickets in insertion order.
func (r *memoryTicketRepository) List(_ context.Context) ([]domain.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Ticket, len(r.tickets))
	copy(out, r.tickets)
	return out, nil
}

func (r *memoryTicketRepository) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tickets)
}
