package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"gemvault_backend/internal/config"
)

// SMTPProvider отправляет письма через SMTP (gomail)
type SMTPProvider struct {
	dialer      *gomail.Dialer
	fromEmail   string
	fromName    string
	frontendURL string
}

func NewSMTPProvider(cfg *config.Config) *SMTPProvider {
	return &SMTPProvider{
		dialer:      gomail.NewDialer(cfg.Email.SMTPHost, cfg.Email.SMTPPort, cfg.Email.SMTPUsername, cfg.Email.SMTPPassword),
		fromEmail:   cfg.Email.FromEmail,
		fromName:    cfg.Email.FromName,
		frontendURL: cfg.Email.FrontendURL,
	}
}

func (p *SMTPProvider) SendVerificationEmail(to, username, token string) error {
	link := fmt.Sprintf("%s/verify-email?token=%s", p.frontendURL, token)

	body := fmt.Sprintf(`
		<h2>Welcome to GemVault, %s!</h2>
		<p>Please confirm your email address to activate your account:</p>
		<p><a href="%s">Verify my email</a></p>
		<p>If you did not create an account, you can ignore this message.</p>
	`, username, link)

	return p.send(to, "Verify your GemVault account", body)
}

func (p *SMTPProvider) SendPasswordResetEmail(to, username, token string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s", p.frontendURL, token)

	body := fmt.Sprintf(`
		<h2>Password reset</h2>
		<p>Hi %s, we received a request to reset your password.</p>
		<p><a href="%s">Reset my password</a></p>
		<p>The link is valid for 1 hour. If you did not request a reset, ignore this message.</p>
	`, username, link)

	return p.send(to, "Reset your GemVault password", body)
}

func (p *SMTPProvider) send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.fromEmail, p.fromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}
