package notifications

import (
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/jwchung/staffdesk/config"
)

// Channel delivers one rendered notification to one recipient over one
// transport. The context map carries reference metadata (notification
// type, reference id/type, app name, recipient user id).
type Channel interface {
	Send(recipient, title, message string, context map[string]string) error
}

// EmailChannel sends notification mail over SMTP.
type EmailChannel struct {
	host     string
	port     int
	username string
	password string
	from     string
	fromName string
}

func NewEmailChannel(cfg config.SMTPConfig) *EmailChannel {
	return &EmailChannel{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.Username,
		password: cfg.Password,
		from:     cfg.From,
		fromName: cfg.FromName,
	}
}

func (e *EmailChannel) Send(recipient, title, message string, context map[string]string) error {
	if e.username == "" || e.password == "" {
		return errors.New("smtp credentials are not configured")
	}

	appName := context["app_name"]
	if appName == "" {
		appName = "Staffdesk"
	}

	body := strings.Builder{}
	body.WriteString(message)
	body.WriteString("\n\n")
	if typ := context["type"]; typ != "" {
		body.WriteString(fmt.Sprintf("Type: %s\n", typ))
	}
	if refType := context["reference_type"]; refType != "" {
		body.WriteString(fmt.Sprintf("Reference: %s %s\n", refType, context["reference_id"]))
	}
	body.WriteString(fmt.Sprintf("Sent by %s\n", appName))

	headers := fmt.Sprintf("From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n",
		e.fromName, e.from, recipient, title)

	addr := fmt.Sprintf("%s:%d", e.host, e.port)
	auth := smtp.PlainAuth("", e.username, e.password, e.host)
	return smtp.SendMail(addr, auth, e.from, []string{recipient}, []byte(headers+body.String()))
}
