package mailer

import (
	"gopkg.in/gomail.v2"

	"courier/config"
)

// Mailer sends plain-text mail over the SMTP relay from config. With
// Mail.Enabled false every send is a silent no-op, which is what dev and
// test environments want.
type Mailer struct {
	dialer  *gomail.Dialer
	from    string
	enabled bool
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		dialer:  gomail.NewDialer(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.Username, cfg.Mail.Password),
		from:    cfg.Mail.From,
		enabled: cfg.Mail.Enabled,
	}
}

func (m *Mailer) Send(to, subject, body string) error {
	if !m.enabled {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	return m.dialer.DialAndSend(msg)
}
