package smtp

import (
	"fmt"
	"net/smtp"

	"github.com/oncampus-api/internal/config"
)

// Mailer delivers transactional email. The auth service treats delivery as
// best-effort; see SendOTP.
type Mailer interface {
	SendEmail(to, subject, body string) error
}

// NewMailer builds a net/smtp-backed Mailer from config. When no SMTP
// username is configured (LocalStack / dev), mail is sent unauthenticated.
func NewMailer(cfg *config.Config) Mailer {
	return &smtpMailer{
		addr:     fmt.Sprintf("%s:%s", cfg.SMTPHost, cfg.SMTPPort),
		host:     cfg.SMTPHost,
		from:     cfg.SMTPFrom,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
	}
}

type smtpMailer struct {
	addr     string
	host     string
	from     string
	username string
	password string
}

func (m *smtpMailer) SendEmail(to, subject, body string) error {
	msg := fmt.Sprintf(
		"From: OnCampus <%s>\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		m.from, to, subject, body)

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}
	return smtp.SendMail(m.addr, auth, m.from, []string{to}, []byte(msg))
}
