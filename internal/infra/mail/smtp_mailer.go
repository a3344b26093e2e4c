// Package mail provides the SMTP-backed implementation of the Mailer domain service.
package mail

import (
	"context"
	"net"
	"net/smtp"
	"strconv"

	"github.com/jordan-wright/email"
	"github.com/pkg/errors"

	"petstar/config"
	"petstar/internal/domain/service"
)

// smtpMailer sends transactional mail over plain-auth SMTP.
type smtpMailer struct {
	host     string
	addr     string
	from     string
	username string
	password string
}

// NewSMTPMailer is the constructor for smtpMailer.
func NewSMTPMailer(cfg *config.Config) (service.Mailer, error) {
	if cfg.Mail == nil || cfg.Mail.Host == "" {
		return nil, errors.New("mail host must be provided")
	}

	from := cfg.Mail.From
	if from == "" {
		from = cfg.Mail.Username
	}

	return &smtpMailer{
		host:     cfg.Mail.Host,
		addr:     net.JoinHostPort(cfg.Mail.Host, strconv.Itoa(cfg.Mail.Port)),
		from:     from,
		username: cfg.Mail.Username,
		password: cfg.Mail.Password,
	}, nil
}

// Send delivers a single HTML message to one recipient.
func (m *smtpMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "mail send aborted")
	}

	msg := email.NewEmail()
	msg.From = m.from
	msg.To = []string{to}
	msg.Subject = subject
	msg.HTML = []byte(htmlBody)

	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	if err := msg.Send(m.addr, auth); err != nil {
		return errors.Wrapf(err, "send mail to %s", to)
	}

	return nil
}
