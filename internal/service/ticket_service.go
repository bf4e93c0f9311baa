package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tiered-support/support-desk/internal/domain"
	"github.com/tiered-support/support-desk/internal/observability"
	"github.com/tiered-support/support-desk/internal/repository"
	apperrors "github.com/tiered-support/support-desk/pkg/util"
)

// Response messages returned to the ticket form.
const (
	MsgMissingFields = "Missing required fields."
	MsgEmailFailed   = "Unable to notify support by email."
)

// TicketNotifier relays a stored ticket. It returns false, nil when relay is
// switched off.
type TicketNotifier interface {
	NotifyTicket(ctx context.Context, ticket domain.Ticket) (bool, error)
}

// TicketService coordinates ticket intake.
type TicketService struct {
	tickets  repository.TicketRepository
	notifier TicketNotifier
	logger   *zap.Logger
	metrics  *observability.Metrics
	now      func() time.Time
	newID    func() string
}

// TicketDependencies bundles collaborators for the ticket service.
// Clock and NewID default to time.Now and UUIDv4.
type TicketDependencies struct {
	TicketRepo repository.TicketRepository
	Notifier   TicketNotifier
	Logger     *zap.Logger
	Metrics    *observability.Metrics
	Clock      func() time.Time
	NewID      func() string
}

// TicketSubmission is the raw form input.
type TicketSubmission struct {
	Tier    string
	Email   string
	Subject string
	Details string
}

// SubmitResult describes an accepted ticket.
type SubmitResult struct {
	Ticket  domain.Ticket
	Emailed bool
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	s := &TicketService{
		tickets:  deps.TicketRepo,
		notifier: deps.Notifier,
		logger:   deps.Logger,
		metrics:  deps.Metrics,
		now:      deps.Clock,
		newID:    deps.NewID,
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = func() string { return uuid.NewString() }
	}
	return s
}

// Submit validates, stores and relays a ticket.
//
// Once validation passes the ticket is stored before relay is attempted. A
// relay failure therefore returns both a non-nil result and a bad gateway
// error; the stored ticket is kept.
func (s *TicketService) Submit(ctx context.Context, in TicketSubmission) (*SubmitResult, error) {
	email := strings.TrimSpace(in.Email)
	subject := strings.TrimSpace(in.Subject)
	details := strings.TrimSpace(in.Details)
	if email == "" || subject == "" || details == "" {
		return nil, apperrors.NewValidationError(MsgMissingFields, nil)
	}

	tierKey := strings.TrimSpace(in.Tier)
	if tierKey == "" {
		tierKey = string(domain.TierStandard)
	}
	tier, ok := domain.LookupTier(tierKey)
	if !ok {
		return nil, apperrors.NewUnknownTier(tierKey)
	}

	ticket := domain.Ticket{
		ID:        s.newID(),
		Tier:      tier.Key,
		Email:     email,
		Subject:   subject,
		Details:   details,
		CreatedAt: s.now().UTC(),
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	s.metrics.RecordTicket(string(ticket.Tier))
	s.logger.Info("new support ticket",
		zap.String("ticket_id", ticket.ID),
		zap.String("tier", string(ticket.Tier)),
		zap.String("email", ticket.Email),
		zap.String("subject", ticket.Subject),
		zap.Time("created_at", ticket.CreatedAt))

	result := &SubmitResult{Ticket: ticket}
	if s.notifier == nil {
		return result, nil
	}

	emailed, err := s.notifier.NotifyTicket(ctx, ticket)
	if err != nil {
		return result, apperrors.NewBadGateway(MsgEmailFailed, err)
	}
	result.Emailed = emailed
	return result, nil
}
