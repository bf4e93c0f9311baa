package mail

import (
	"context"
	"errors"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// ErrSendFailed wraps every provider failure.
var ErrSendFailed = errors.New("mail: send failed")

// Message is a single outbound email.
type Message struct {
	From    string
	To      string
	Subject string
	ReplyTo string
	Text    string
	HTML    string
	Tags    map[string]string
}

// Sender delivers a message through a transactional email provider.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// ResendSender relays messages through the Resend API.
type ResendSender struct {
	client *resend.Client
}

// NewResendSender builds a sender authenticated with apiKey.
func NewResendSender(apiKey string) *ResendSender {
	return &ResendSender{client: resend.NewClient(apiKey)}
}

// NewResendSenderWithClient wraps an already configured client.
func NewResendSenderWithClient(client *resend.Client) *ResendSender {
	return &ResendSender{client: client}
}

// Send returns the provider message id.
func (s *ResendSender) Send(ctx context.Context, msg Message) (string, error) {
	req := &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		ReplyTo: msg.ReplyTo,
		Text:    msg.Text,
		Html:    msg.HTML,
	}
	for name, value := range msg.Tags {
		req.Tags = append(req.Tags, resend.Tag{Name: name, Value: value})
	}

	sent, err := s.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	return sent.Id, nil
}
