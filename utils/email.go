package utils

import (
	"fmt"
	"net/smtp"
	"os"
)

// Mailer is the outbound message capability. Services receive it injected
// so tests can swap in a recording fake.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer sends plain-text mail through SMTP
type SMTPMailer struct {
	from     string
	password string
	host     string
	port     string
}

// NewSMTPMailer creates a new instance using environment variables
func NewSMTPMailer() *SMTPMailer {
	return &SMTPMailer{
		from:     os.Getenv("SMTP_USER"),
		password: os.Getenv("SMTP_PASSWORD"),
		host:     os.Getenv("SMTP_HOST"),
		port:     os.Getenv("SMTP_PORT"),
	}
}

func (s *SMTPMailer) Send(to, subject, body string) error {
	if s.host == "" || s.port == "" || s.from == "" || s.password == "" {
		return fmt.Errorf("missing SMTP configuration")
	}

	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/plain; charset=\"utf-8\"\r\n"+
			"\r\n%s\r\n",
		s.from, to, subject, body,
	))

	auth := smtp.PlainAuth("", s.from, s.password, s.host)
	return smtp.SendMail(s.host+":"+s.port, auth, s.from, []string{to}, msg)
}
