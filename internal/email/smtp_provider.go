package email

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"
)

// SMTPProvider реализует Provider поверх gomail
type SMTPProvider struct {
	config   *SMTPConfig
	dialer   *gomail.Dialer
	renderer TemplateRenderer
}

// NewSMTPProvider создает новый SMTP провайдер
func NewSMTPProvider(config *SMTPConfig, renderer TemplateRenderer) *SMTPProvider {
	return &SMTPProvider{
		config:   config,
		dialer:   gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
		renderer: renderer,
	}
}

// Send отправляет email сообщение
func (p *SMTPProvider) Send(email *Email) error {
	if err := p.Validate(); err != nil {
		return err
	}

	msg := gomail.NewMessage()

	from := email.From
	if from == "" {
		from = msg.FormatAddress(p.config.FromEmail, p.config.FromName)
	}
	msg.SetHeader("From", from)
	msg.SetHeader("To", email.To...)
	msg.SetHeader("Subject", email.Subject)

	if email.HTMLBody != "" {
		msg.SetBody("text/html", email.HTMLBody)
		if email.Body != "" {
			msg.AddAlternative("text/plain", email.Body)
		}
	} else {
		msg.SetBody("text/plain", email.Body)
	}

	if err := p.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendWithTemplate отправляет email используя шаблон
func (p *SMTPProvider) SendWithTemplate(templateName string, data TemplateData, email *Email) error {
	if p.renderer == nil {
		return fmt.Errorf("template renderer is not configured")
	}

	htmlBody, err := p.renderer.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}

	email.HTMLBody = htmlBody
	return p.Send(email)
}

// SendVerification отправляет письмо подтверждения email
func (p *SMTPProvider) SendVerification(to string, verifyLink string) error {
	return p.SendWithTemplate(TemplateVerification, TemplateData{"Link": verifyLink}, &Email{
		To:      []string{to},
		Subject: "Verify your email",
	})
}

// SendPasswordReset отправляет письмо сброса пароля
func (p *SMTPProvider) SendPasswordReset(to string, resetLink string) error {
	return p.SendWithTemplate(TemplatePasswordReset, TemplateData{"Link": resetLink}, &Email{
		To:      []string{to},
		Subject: "Reset your password",
	})
}

// Validate проверяет конфигурацию SMTP
func (p *SMTPProvider) Validate() error {
	if p.config.Host == "" {
		return fmt.Errorf("SMTP host is required")
	}

	if p.config.Port <= 0 || p.config.Port > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", p.config.Port)
	}

	return nil
}

// Close закрывает соединение (gomail открывает его на каждую отправку)
func (p *SMTPProvider) Close() error {
	return nil
}
