package mailer

import (
	"context"
	"fmt"

	"nagaralert-be/logger"

	"gopkg.in/mail.v2"
)

// SMTP delivers HTML mail through an SMTP relay.
type SMTP struct {
	dialer *mail.Dialer
	from   string
	log    *logger.Logger
}

func NewSMTP(host string, port int, user, password, from string, log *logger.Logger) *SMTP {
	d := mail.NewDialer(host, port, user, password)
	d.StartTLSPolicy = mail.OpportunisticStartTLS
	return &SMTP{dialer: d, from: from, log: log}
}

// Send delivers one message. The dial honours ctx only up front: once the
// SMTP conversation starts it runs to completion.
func (s *SMTP) Send(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.dialer.Host == "" {
		s.log.WithContext(ctx).WithField("to", to).Warn("SMTP host not configured, mail dropped")
		return nil
	}

	m := mail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("sending mail to %s: %w", to, err)
	}
	return nil
}
