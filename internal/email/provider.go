package email

import "gemvault_backend/internal/config"

// Provider отправляет транзакционные письма.
// Токены доставляются пользователю только этим каналом,
// HTTP-ответы их не содержат.
type Provider interface {
	SendVerificationEmail(to, username, token string) error
	SendPasswordResetEmail(to, username, token string) error
}

// NewProvider возвращает SMTP-провайдер, если email включен в конфиге,
// иначе заглушку, которая только логирует.
func NewProvider(cfg *config.Config) Provider {
	if cfg.Email.Enabled {
		return NewSMTPProvider(cfg)
	}
	return NewNoopProvider()
}
