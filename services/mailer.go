// services/mailer.go
package services

import (
	"time"

	"gopkg.in/mail.v2"
)

// Mailer delivers reminders over SMTP.
type Mailer struct {
	smtpHost string
	smtpPort int
	username string
	password string
	from     string
	timeout  time.Duration
}

func NewMailer(smtpHost string, smtpPort int, username, password, from string, timeout time.Duration) *Mailer {
	return &Mailer{
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		username: username,
		password: password,
		from:     from,
		timeout:  timeout,
	}
}

func (m *Mailer) Send(to, subject, body string) error {
	message := mail.NewMessage()

	message.SetHeader("From", m.from)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)

	message.SetBody("text/plain", body)

	dialer := mail.NewDialer(m.smtpHost, m.smtpPort, m.username, m.password)
	dialer.Timeout = m.timeout

	return dialer.DialAndSend(message)
}
