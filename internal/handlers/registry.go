package handlers

import (
	"repogenesis_backend/internal/config"
	"repogenesis_backend/internal/services"
	"repogenesis_backend/internal/validator"
)

// AppHandlers собирает все хендлеры приложения
type AppHandlers struct {
	Auth         *AuthHandler
	EmployerAuth *AuthHandler
	Posting      *PostingHandler
}

// NewAppHandlers создает хендлеры поверх сервисов
func NewAppHandlers(container *services.ServiceContainer, v *validator.Validator, cfg *config.Config) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:         NewAuthHandler(base, container.Auth, cfg),
		EmployerAuth: NewEmployerAuthHandler(base, container.Auth, cfg),
		Posting:      NewPostingHandler(base, container.Posting),
	}
}
