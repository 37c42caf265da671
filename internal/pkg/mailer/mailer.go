package mailer

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"gopkg.in/gomail.v2"

	"github.com/safeland/safetravel-api/internal/config"
)

// CodeSender delivers a password reset code to a user. The API core only
// guarantees the code is generated and stored; delivery is this
// collaborator's job.
type CodeSender interface {
	SendResetCode(ctx context.Context, email, code string) error
}

// Mailer sends reset codes over SMTP.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewFromConfig returns an SMTP mailer when SMTP_HOST is configured, and a
// logging stand-in otherwise.
func NewFromConfig(cfg *config.Config) CodeSender {
	if cfg.SMTPHost == "" {
		log.Println("SMTP not configured, reset codes will be logged")
		return LogSender{}
	}

	port, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil {
		log.Printf("Invalid SMTP_PORT %q, reset codes will be logged", cfg.SMTPPort)
		return LogSender{}
	}

	return &Mailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, port, cfg.SMTPUsername, cfg.SMTPPassword),
		from:   cfg.SMTPFrom,
	}
}

func (m *Mailer) SendResetCode(ctx context.Context, email, code string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Your password reset code")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Your password reset code is %s. It expires in 10 minutes.\n\nIf you did not request a reset, you can ignore this message.", code))

	return m.dialer.DialAndSend(msg)
}

// LogSender writes the code to the server log instead of sending it.
type LogSender struct{}

func (LogSender) SendResetCode(ctx context.Context, email, code string) error {
	log.Printf("password reset code for %s: %s", email, code)
	return nil
}
