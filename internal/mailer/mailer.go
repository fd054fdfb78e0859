// Package mailer delivers contact-form email over SMTP. The handler depends
// on the Mailer interface so tests can capture messages instead of dialing.
package mailer

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

type ContactMessage struct {
	Name    string
	Email   string
	Subject string
	Message string
}

type Mailer interface {
	// SendContactMessage sends the owner notification and the sender
	// auto-reply as two separate messages.
	SendContactMessage(msg ContactMessage) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string // portfolio owner's inbox
}

type SMTPMailer struct {
	cfg SMTPConfig
}

func NewSMTP(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) SendContactMessage(msg ContactMessage) error {
	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)

	notification := gomail.NewMessage()
	notification.SetHeader("From", m.cfg.From)
	notification.SetHeader("To", m.cfg.To)
	notification.SetHeader("Reply-To", msg.Email)
	notification.SetHeader("Subject", "Portfolio Contact: "+msg.Subject)
	notification.SetBody("text/plain", fmt.Sprintf(
		"New contact form submission\n\nName: %s\nEmail: %s\nSubject: %s\n\n%s\n",
		msg.Name, msg.Email, msg.Subject, msg.Message,
	))

	autoReply := gomail.NewMessage()
	autoReply.SetHeader("From", m.cfg.From)
	autoReply.SetHeader("To", msg.Email)
	autoReply.SetHeader("Subject", "Thank you for contacting me!")
	autoReply.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\nThanks for reaching out through my portfolio. I received your "+
			"message about %q and will get back to you within 24-48 hours.\n\n"+
			"This is an automated response, please do not reply to it.\n\n© %d\n",
		msg.Name, msg.Subject, time.Now().Year(),
	))

	return d.DialAndSend(notification, autoReply)
}
