package mailer

import (
	"fmt"

	"tolet/config"

	"gopkg.in/gomail.v2"
)

// Mailer sends transactional notifications. Delivery is best effort; callers
// must not fail an API request on a mail error.
type Mailer interface {
	SendListingCreated(toEmail, listingTitle string) error
}

// SMTPMailer implements Mailer over plain SMTP.
type SMTPMailer struct {
	host     string
	port     int
	from     string
	password string
}

// NewSMTPMailer builds a mailer from the application config.
func NewSMTPMailer() *SMTPMailer {
	return &SMTPMailer{
		host:     config.AppConfig.SMTPHost,
		port:     config.AppConfig.SMTPPort,
		from:     config.AppConfig.SMTPEmail,
		password: config.AppConfig.SMTPPassword,
	}
}

// SendListingCreated notifies an owner that their listing went live.
func (m *SMTPMailer) SendListingCreated(toEmail, listingTitle string) error {
	if m.from == "" {
		return fmt.Errorf("mailer: SMTP_EMAIL not configured")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", "New Listing Created")
	msg.SetBody("text/plain", "Your listing '"+listingTitle+"' has been created successfully.")

	d := gomail.NewDialer(m.host, m.port, m.from, m.password)
	return d.DialAndSend(msg)
}
