package email

import "gemvault_backend/internal/logger"

// NoopProvider используется в development и тестах:
// письма не отправляются, факт отправки логируется.
type NoopProvider struct{}

func NewNoopProvider() *NoopProvider {
	return &NoopProvider{}
}

func (p *NoopProvider) SendVerificationEmail(to, username, token string) error {
	logger.Info("Email sending disabled, skipping verification email", "to", to)
	return nil
}

func (p *NoopProvider) SendPasswordResetEmail(to, username, token string) error {
	logger.Info("Email sending disabled, skipping password reset email", "to", to)
	return nil
}
