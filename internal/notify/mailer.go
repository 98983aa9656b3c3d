package notify

import (
	"fmt"
	"html"
	"strings"
	"time"

	apperrors "crowdaid-backend/internal/errors"
	"crowdaid-backend/internal/logger"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/gomail.v2"
)

// Mailer is the best-effort email delivery sink
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// MailerConfig holds SMTP settings
type MailerConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Username string
	Password string
	From     string
	SSL      bool
}

// NewMailer returns an SMTP mailer when email is enabled and a logging mailer otherwise
func NewMailer(config MailerConfig) Mailer {
	if !config.Enabled {
		return NewLogMailer()
	}
	return NewSMTPMailer(config)
}

// messageSender is satisfied by *gomail.Dialer
type messageSender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPMailer sends sanitized HTML email through an SMTP relay
type SMTPMailer struct {
	sender messageSender
	from   string
	domain string
	policy *bluemonday.Policy
	text   *bluemonday.Policy
}

// NewSMTPMailer creates an SMTPMailer from config
func NewSMTPMailer(config MailerConfig) *SMTPMailer {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	dialer.SSL = config.SSL
	return newSMTPMailer(dialer, config.From)
}

func newSMTPMailer(sender messageSender, from string) *SMTPMailer {
	domain := "localhost"
	if at := strings.LastIndex(from, "@"); at >= 0 && at < len(from)-1 {
		domain = from[at+1:]
	}
	return &SMTPMailer{
		sender: sender,
		from:   from,
		domain: domain,
		policy: bluemonday.UGCPolicy(),
		text:   bluemonday.StrictPolicy(),
	}
}

// Send delivers one message. Failures are returned as DependencyError.
func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	if to == "" {
		return apperrors.NewValidationError("to", "recipient address is required")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("Message-ID", fmt.Sprintf("<%s@%s>", uuid.New().String(), m.domain))
	msg.SetHeader("Date", time.Now().Format(time.RFC1123Z))
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", html.UnescapeString(m.text.Sanitize(htmlBody)))
	msg.AddAlternative("text/html", m.policy.Sanitize(htmlBody))

	if err := m.sender.DialAndSend(msg); err != nil {
		return apperrors.NewDependencyError("smtp", err)
	}
	return nil
}

// LogMailer logs messages instead of sending them
type LogMailer struct{}

// NewLogMailer creates a LogMailer
func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

// Send logs the message and never fails
func (m *LogMailer) Send(to, subject, htmlBody string) error {
	logger.New().WithFields(map[string]interface{}{
		"to":      to,
		"subject": subject,
		"bytes":   len(htmlBody),
	}).Info("Email delivery disabled, message not sent")
	return nil
}

// NotificationEmailBody renders a notification message as HTML, greeting the
// recipient by name when one is known
func NotificationEmailBody(recipient, message string) string {
	body := "<p>" + html.EscapeString(message) + "</p>"
	if recipient = strings.TrimSpace(recipient); recipient != "" {
		body = "<p>Hello " + html.EscapeString(recipient) + ",</p>" + body
	}
	return body
}
