package notify

import (
	"fmt"
	"net/smtp"

	"go.uber.org/zap"

	"github.com/donmoreno09/Online-Lost-And-Found-System/internal/config"
)

// Gateway delivers one rendered notification. Send reports success as a
// bool and never panics or returns an error: delivery is best-effort by
// contract and the caller proceeds regardless.
type Gateway interface {
	Send(template Template, recipient string, data map[string]string) bool
}

// SMTPGateway sends mail through a plain SMTP relay. All connection
// parameters come from the injected config.
type SMTPGateway struct {
	cfg    config.SMTPConfig
	logger *zap.Logger
}

func NewSMTPGateway(cfg config.SMTPConfig, logger *zap.Logger) *SMTPGateway {
	return &SMTPGateway{cfg: cfg, logger: logger}
}

func (g *SMTPGateway) Send(template Template, recipient string, data map[string]string) bool {
	subject, body, err := Render(template, data)
	if err != nil {
		g.logger.Error("failed to render notification",
			zap.String("template", string(template)), zap.Error(err))
		return false
	}

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s",
		g.cfg.From, recipient, subject, body))

	addr := fmt.Sprintf("%s:%d", g.cfg.Host, g.cfg.Port)
	var auth smtp.Auth
	if g.cfg.User != "" {
		auth = smtp.PlainAuth("", g.cfg.User, g.cfg.Password, g.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, g.cfg.From, []string{recipient}, msg); err != nil {
		g.logger.Error("failed to send notification",
			zap.String("template", string(template)),
			zap.String("recipient", recipient),
			zap.Error(err))
		return false
	}
	return true
}
