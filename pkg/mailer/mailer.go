// Package mailer sends notification emails over plain SMTP. In development
// point it at an inbox service like Mailtrap; in production at the real
// relay.
package mailer

import (
	"fmt"
	"net/smtp"
	"strings"
)

// Mailer holds SMTP connection settings and the sender identity.
type Mailer struct {
	host   string
	port   string
	user   string
	pass   string
	sender string
}

// New creates a Mailer. All fields are required except port, which defaults
// to 587.
func New(host, port, user, pass, sender string) (*Mailer, error) {
	if host == "" || user == "" || pass == "" || sender == "" {
		return nil, fmt.Errorf("mailer: host, user, pass and sender are required")
	}
	if port == "" {
		port = "587"
	}
	return &Mailer{host: host, port: port, user: user, pass: pass, sender: sender}, nil
}

// Send delivers one email. The Content-Type is inferred from the body so
// simple HTML notifications render correctly.
func (m *Mailer) Send(recipient, subject, body string) error {
	if recipient == "" {
		return fmt.Errorf("recipient email address cannot be empty")
	}
	if subject == "" {
		return fmt.Errorf("email subject cannot be empty")
	}

	contentType := "text/plain; charset=UTF-8"
	lower := strings.ToLower(body)
	if strings.Contains(lower, "<html>") || strings.Contains(lower, "<p>") {
		contentType = "text/html; charset=UTF-8"
	}

	message := []byte(fmt.Sprintf("To: %s\r\n"+
		"From: %s\r\n"+
		"Subject: %s\r\n"+
		"Content-Type: %s\r\n"+
		"\r\n"+
		"%s\r\n", recipient, m.sender, subject, contentType, body))

	auth := smtp.PlainAuth("", m.user, m.pass, m.host)
	if err := smtp.SendMail(m.host+":"+m.port, auth, m.sender, []string{recipient}, message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
