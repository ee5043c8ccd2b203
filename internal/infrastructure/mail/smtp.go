package mail

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/rs/zerolog"

	"github.com/smartcare-io/admin-api/internal/core/ports"
)

// Config captures the settings for the outgoing mail server.
type Config struct {
	Host     string
	Port     int
	From     string
	Username string
	Password string
	// SiteURL is the public base URL the invite link points at.
	SiteURL string
}

// SMTPMailer delivers invite mails over plain SMTP.
type SMTPMailer struct {
	cfg  Config
	auth smtp.Auth
}

func NewSMTPMailer(cfg Config) *SMTPMailer {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return &SMTPMailer{cfg: cfg, auth: auth}
}

// SendInvite sends the activation link for a freshly created account.
func (m *SMTPMailer) SendInvite(_ context.Context, job ports.InviteJob) error {
	link := fmt.Sprintf("%s/activate?token=%s", m.cfg.SiteURL, job.Token)
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: You have been invited to SmartCare\r\n\r\n"+
			"Hello %s,\r\n\r\n"+
			"An account has been created for you. Set your password here:\r\n%s\r\n",
		m.cfg.From, job.Email, job.FirstName, link,
	)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	if err := smtp.SendMail(addr, m.auth, m.cfg.From, []string{job.Email}, []byte(msg)); err != nil {
		return fmt.Errorf("send invite to %s: %w", job.Email, err)
	}
	return nil
}

// LogMailer is a development stand-in that logs instead of sending.
type LogMailer struct {
	log zerolog.Logger
}

func NewLogMailer(log zerolog.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) SendInvite(_ context.Context, job ports.InviteJob) error {
	m.log.Info().
		Str("email", job.Email).
		Str("token", job.Token).
		Msg("invite mail (log only, SMTP not configured)")
	return nil
}
