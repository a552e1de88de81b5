package app

import (
	"repogenesis_backend/internal/email"
	"repogenesis_backend/internal/logger"
)

// MockEmailProvider пишет письма в лог вместо отправки.
// Используется, когда SMTP не сконфигурирован.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(e *email.Email) error {
	logger.Info("[MOCK EMAIL] send", "to", e.To, "subject", e.Subject)
	return nil
}

func (m *MockEmailProvider) SendWithTemplate(templateName string, data email.TemplateData, e *email.Email) error {
	logger.Info("[MOCK EMAIL] send with template", "template", templateName, "to", e.To, "data", data)
	return nil
}

func (m *MockEmailProvider) SendVerification(to string, verifyLink string) error {
	logger.Info("[MOCK EMAIL] verification", "to", to, "link", verifyLink)
	return nil
}

func (m *MockEmailProvider) SendPasswordReset(to string, resetLink string) error {
	logger.Info("[MOCK EMAIL] password reset", "to", to, "link", resetLink)
	return nil
}

func (m *MockEmailProvider) Validate() error {
	return nil
}

func (m *MockEmailProvider) Close() error {
	return nil
}
