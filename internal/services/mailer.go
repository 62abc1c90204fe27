package services

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/gfmartins/fintrack/internal/config"
)

// Mailer sends plain SMTP mail. When disabled, Send is a no-op so the reset
// flow still works in development without a mail server.
type Mailer struct {
	cfg *config.SMTPConfig
}

func NewMailer(cfg *config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

func (m *Mailer) Enabled() bool {
	return m.cfg.Enabled && m.cfg.Host != ""
}

func (m *Mailer) Send(task *MailTask) error {
	if !m.Enabled() {
		return nil
	}

	from := m.cfg.From
	if from == "" {
		from = m.cfg.Username
	}

	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %s\r\n", from))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", task.To))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", task.Subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(task.Body)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	return smtp.SendMail(addr, auth, from, []string{task.To}, []byte(msg.String()))
}

// ResetMail builds the password-reset message for a user.
func ResetMail(to, token string) *MailTask {
	body := fmt.Sprintf(
		"A password reset was requested for your account.\r\n\r\n"+
			"Reset token: %s\r\n\r\n"+
			"The token is valid for one hour and can be used once. If you did not "+
			"request a reset, you can ignore this message.\r\n",
		token,
	)

	return &MailTask{
		To:      to,
		Subject: "[fintrack] Password reset",
		Body:    body,
	}
}
