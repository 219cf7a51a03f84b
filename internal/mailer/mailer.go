package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/rs/zerolog/log"

	"github.com/mohammad-ishtiaque/Agro-clima-api/config"
	"github.com/mohammad-ishtiaque/Agro-clima-api/internal/auth/domain"
)

var otpTemplate = template.Must(template.New("otp").Parse(`<html>
<body style="font-family: Arial, sans-serif;">
	<h2>{{.Title}}</h2>
	<p>{{.Message}}</p>
	<p style="font-size: 28px; font-weight: bold; letter-spacing: 4px;">{{.OTPCode}}</p>
	<p>This code expires in 10 minutes. If you did not request it, you can ignore this email.</p>
</body>
</html>`))

type templateData struct {
	Title   string
	Message string
	OTPCode string
}

// Mailer renders and sends OTP emails over SMTP. In dev mode the code is
// logged instead of sent, so local setups need no mail credentials.
type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
	devMode  bool
}

func New(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     cfg.EmailFrom,
		devMode:  cfg.EmailDevMode,
	}
}

// Send delivers the OTP email for the given purpose.
func (m *Mailer) Send(email, code string, purpose domain.OTPPurpose) error {
	subject, data := m.content(code, purpose)

	if m.devMode {
		log.Info().
			Str("email", email).
			Str("otp", code).
			Str("purpose", string(purpose)).
			Msg("dev mode: skipping SMTP delivery")
		return nil
	}

	body, err := m.render(subject, email, data)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	auth := smtp.PlainAuth("", m.username, m.password, m.host)

	if err := smtp.SendMail(addr, auth, m.from, []string{email}, body); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", email, err)
	}

	return nil
}

func (m *Mailer) content(code string, purpose domain.OTPPurpose) (string, templateData) {
	if purpose == domain.OTPPurposeReset {
		return "AgroClima Password Reset Code", templateData{
			Title:   "Password Reset",
			Message: "Use the code below to reset your password:",
			OTPCode: code,
		}
	}
	return "AgroClima Email Verification Code", templateData{
		Title:   "Verify Your Email",
		Message: "Use the code below to verify your email address:",
		OTPCode: code,
	}
}

func (m *Mailer) render(subject, to string, data templateData) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "From: %s\r\n", m.from)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", subject)
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	buf.WriteString("\r\n")

	if err := otpTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render email body: %w", err)
	}

	return buf.Bytes(), nil
}
