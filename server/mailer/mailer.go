package mailer

import (
	"crypto/tls"
	"errors"

	"github.com/Daskott/coastal-alert/shared"
	"gopkg.in/gomail.v2"
)

var ErrNoRecipient = errors.New("no recipient")

type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(config shared.SmtpConfig) *Mailer {
	var dialer *gomail.Dialer
	if config.Username == "" {
		dialer = &gomail.Dialer{Host: config.Host, Port: config.Port}
	} else {
		dialer = gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	}

	if config.NoVerify {
		dialer.TLSConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return &Mailer{dialer: dialer, from: config.Sender()}
}

// SendMail opens a connection, authenticates when the server supports it,
// sends a plain-text message to 'to' and quits.
func (m *Mailer) SendMail(to, subject, body string) error {
	if to == "" {
		return ErrNoRecipient
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	return m.dialer.DialAndSend(msg)
}
