package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tiered-support/support-desk/internal/config"
	"github.com/tiered-support/support-desk/internal/domain"
	"github.com/tiered-support/support-desk/internal/mail"
	"github.com/tiered-support/support-desk/internal/observability"
)

type fakeSender struct {
	err      error
	sent     []mail.Message
	deadline bool
}

func (f *fakeSender) Send(ctx context.Context, msg mail.Message) (string, error) {
	_, f.deadline = ctx.Deadline()
	f.sent = append(f.sent, msg)
	if f.err != nil {
		return "", f.err
	}
	return "msg_1", nil
}

func enabledMailConfig() config.MailConfig {
	return config.MailConfig{
		APIKey:             "re_test",
		SupportInbox:       "support@example.com",
		From:               "Desk <desk@example.com>",
		SendTimeoutSeconds: 5,
	}
}

func testTicket() domain.Ticket {
	return domain.Ticket{
		ID:        "id-1",
		Tier:      domain.TierExpress,
		Email:     "customer@example.com",
		Subject:   "Outage",
		Details:   "Everything is down",
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestNotifyTicketSkipsWhenNotConfigured(t *testing.T) {
	cases := map[string]config.MailConfig{
		"no api key": {SupportInbox: "support@example.com"},
		"no inbox":   {APIKey: "re_test"},
		"neither":    {},
	}

	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			sender := &fakeSender{}
			svc := NewNotificationService(sender, cfg, zap.NewNop(), observability.NewMetrics())

			emailed, err := svc.NotifyTicket(context.Background(), testTicket())
			require.NoError(t, err)
			assert.False(t, emailed)
			assert.Empty(t, sender.sent)
		})
	}
}

func TestNotifyTicketNilSender(t *testing.T) {
	svc := NewNotificationService(nil, enabledMailConfig(), zap.NewNop(), nil)

	emailed, err := svc.NotifyTicket(context.Background(), testTicket())
	require.NoError(t, err)
	assert.False(t, emailed)
}

func TestNotifyTicketSends(t *testing.T) {
	sender := &fakeSender{}
	svc := NewNotificationService(sender, enabledMailConfig(), zap.NewNop(), observability.NewMetrics())

	emailed, err := svc.NotifyTicket(context.Background(), testTicket())
	require.NoError(t, err)
	assert.True(t, emailed)
	assert.True(t, sender.deadline, "relay call must carry a deadline")

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, "Desk <desk@example.com>", msg.From)
	assert.Equal(t, "support@example.com", msg.To)
	assert.Equal(t, "[EXPRESS] Outage", msg.Subject)
	assert.Equal(t, "customer@example.com", msg.ReplyTo)
	assert.Contains(t, msg.Text, "New express support ticket")
	assert.Contains(t, msg.HTML, "EXPRESS Support Ticket")
	assert.Equal(t, "express", msg.Tags["tier"])
}

func TestNotifyTicketProviderFailure(t *testing.T) {
	cause := errors.New("503 from provider")
	sender := &fakeSender{err: cause}
	svc := NewNotificationService(sender, enabledMailConfig(), zap.NewNop(), nil)

	emailed, err := svc.NotifyTicket(context.Background(), testTicket())
	assert.False(t, emailed)
	assert.ErrorIs(t, err, cause)
}
