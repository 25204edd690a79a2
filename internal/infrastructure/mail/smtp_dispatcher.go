package mail

import (
	"github.com/jhoicas/Campus-auth-api/internal/application/recovery"
	"github.com/jhoicas/Campus-auth-api/pkg/config"
	gomail "gopkg.in/gomail.v2"
)

var _ recovery.MailDispatcher = (*SMTPDispatcher)(nil)

// SMTPDispatcher envía correos planos vía SMTP (gomail). Las credenciales se
// inyectan desde la configuración al arranque. Los errores del servidor se
// devuelven tal cual; el reintento es responsabilidad del usuario final
// (volver a pedir el OTP).
type SMTPDispatcher struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPDispatcher construye el adaptador SMTP.
func NewSMTPDispatcher(cfg config.SMTPConfig) *SMTPDispatcher {
	return &SMTPDispatcher{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.Sender(),
	}
}

// Send envía un correo de texto plano.
func (d *SMTPDispatcher) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", d.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	return d.dialer.DialAndSend(m)
}
