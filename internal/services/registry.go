package services

import (
	"repogenesis_backend/internal/auth"
	"repogenesis_backend/internal/email"
	"repogenesis_backend/internal/repositories"
)

// ServiceContainer собирает все сервисы приложения
type ServiceContainer struct {
	Auth    AuthService
	Tokens  auth.TokenService
	Posting PostingService
}

// Repositories собирает все репозитории приложения
type Repositories struct {
	Principals    repositories.PrincipalRepository
	Verifications repositories.VerificationTokenRepository
	Resets        repositories.ResetTokenRepository
	Jobs          repositories.JobRepository
	Internships   repositories.InternshipRepository
	Applications  repositories.ApplicationRepository
}

// NewRepositories создает репозитории
func NewRepositories() *Repositories {
	return &Repositories{
		Principals:    repositories.NewPrincipalRepository(),
		Verifications: repositories.NewVerificationTokenRepository(),
		Resets:        repositories.NewResetTokenRepository(),
		Jobs:          repositories.NewJobRepository(),
		Internships:   repositories.NewInternshipRepository(),
		Applications:  repositories.NewApplicationRepository(),
	}
}

// NewServiceContainer связывает репозитории, токены и почту в сервисы
func NewServiceContainer(
	repos *Repositories,
	tokens auth.TokenService,
	mailer email.Provider,
	frontendBaseURL string,
) *ServiceContainer {
	emailTokens := NewEmailTokenService(repos.Principals, repos.Verifications, repos.Resets, mailer, frontendBaseURL)

	return &ServiceContainer{
		Auth:    NewAuthService(repos.Principals, tokens, emailTokens),
		Tokens:  tokens,
		Posting: NewPostingService(repos.Jobs, repos.Internships, repos.Applications),
	}
}
