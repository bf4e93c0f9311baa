package mail

import (
	"bytes"
	"html/template"
	"strings"
	"time"

	"github.com/tiered-support/support-desk/internal/domain"
)

// Subject builds the relay subject line, e.g. "[PRIORITY] Can't log in".
func Subject(t domain.Ticket) string {
	return "[" + strings.ToUpper(string(t.Tier)) + "] " + t.Subject
}

// FormatPlainText renders the text/plain body for a ticket.
func FormatPlainText(t domain.Ticket) string {
	return strings.Join([]string{
		"New " + string(t.Tier) + " support ticket",
		"Created: " + t.CreatedAt.UTC().Format(time.RFC3339),
		"From: " + t.Email,
		"Tier: " + string(t.Tier),
		"",
		"Subject: " + t.Subject,
		"",
		t.Details,
	}, "\n")
}

var htmlBody = template.Must(template.New("ticket").Parse(`
<div style="font-family: 'Segoe UI', Arial, sans-serif; color: #0f172a; line-height: 1.6;">
  <p style="font-weight: 600; text-transform: uppercase; letter-spacing: 0.08em; color: #6366f1; margin-bottom: 12px;">
    {{.TierUpper}} Support Ticket
  </p>
  <p style="margin: 0 0 16px 0; font-size: 14px; color: #334155;">
    Created on <strong>{{.Created}}</strong>
  </p>
  <div style="background: #f8fafc; border: 1px solid #e2e8f0; border-radius: 16px; padding: 18px;">
    <p style="margin: 0 0 12px 0; font-size: 14px; color: #475569;">
      <strong>From:</strong> {{.Email}}<br/>
      <strong>Tier:</strong> {{.Tier}}
    </p>
    <h2 style="margin: 0 0 16px 0; font-size: 20px; color: #0f172a;">{{.Subject}}</h2>
    <p style="white-space: pre-wrap; font-size: 15px; color: #1f2937;">{{.Details}}</p>
  </div>
  <p style="margin-top: 20px; font-size: 13px; color: #475569;">
    Reply directly to this email to reach the customer.
  </p>
</div>
`))

// FormatHTML renders the text/html body for a ticket. User supplied fields
// are escaped.
func FormatHTML(t domain.Ticket) (string, error) {
	var buf bytes.Buffer
	err := htmlBody.Execute(&buf, struct {
		TierUpper string
		Tier      string
		Created   string
		Email     string
		Subject   string
		Details   string
	}{
		TierUpper: strings.ToUpper(string(t.Tier)),
		Tier:      string(t.Tier),
		Created:   t.CreatedAt.UTC().Format("Jan 2, 2006 15:04 MST"),
		Email:     t.Email,
		Subject:   t.Subject,
		Details:   t.Details,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
