package service

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/tiered-support/support-desk/internal/config"
	"github.com/tiered-support/support-desk/internal/domain"
	"github.com/tiered-support/support-desk/internal/mail"
	"github.com/tiered-support/support-desk/internal/observability"
)

const tracerName = "github.com/tiered-support/support-desk/service"

// NotificationService relays stored tickets to the support inbox.
type NotificationService struct {
	sender  mail.Sender
	cfg     config.MailConfig
	logger  *zap.Logger
	metrics *observability.Metrics
}

// NewNotificationService creates the service. A nil sender disables relay,
// as does a config missing either the API key or the inbox address.
func NewNotificationService(sender mail.Sender, cfg config.MailConfig, logger *zap.Logger, metrics *observability.Metrics) *NotificationService {
	return &NotificationService{
		sender:  sender,
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
	}
}

// Enabled reports whether NotifyTicket will call the provider.
func (n *NotificationService) Enabled() bool {
	return n.sender != nil && n.cfg.Enabled()
}

// NotifyTicket emails the ticket to the support inbox. It reports false with
// a nil error when relay is disabled.
func (n *NotificationService) NotifyTicket(ctx context.Context, ticket domain.Ticket) (bool, error) {
	if !n.Enabled() {
		n.logger.Warn("missing RESEND_API_KEY or SUPPORT_INBOX_EMAIL; ticket stored locally but no email sent",
			zap.String("ticket_id", ticket.ID))
		n.metrics.RecordEmail(observability.EmailSkipped)
		return false, nil
	}

	html, err := mail.FormatHTML(ticket)
	if err != nil {
		n.metrics.RecordEmail(observability.EmailFailed)
		return false, err
	}

	ctx, cancel := context.WithTimeout(ctx, n.cfg.SendTimeout())
	defer cancel()

	ctx, span := otel.Tracer(tracerName).Start(ctx, "mail.send_ticket")
	defer span.End()
	span.SetAttributes(
		attribute.String("ticket.id", ticket.ID),
		attribute.String("ticket.tier", string(ticket.Tier)),
	)

	messageID, err := n.sender.Send(ctx, mail.Message{
		From:    n.cfg.From,
		To:      n.cfg.SupportInbox,
		Subject: mail.Subject(ticket),
		ReplyTo: ticket.Email,
		Text:    mail.FormatPlainText(ticket),
		HTML:    html,
		Tags:    map[string]string{"tier": string(ticket.Tier)},
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "send failed")
		n.metrics.RecordEmail(observability.EmailFailed)
		n.logger.Error("failed to send support ticket email", zap.String("ticket_id", ticket.ID), zap.Error(err))
		return false, err
	}

	n.metrics.RecordEmail(observability.EmailSent)
	n.logger.Info("support ticket emailed",
		zap.String("ticket_id", ticket.ID),
		zap.String("message_id", messageID))
	return true, nil
}
