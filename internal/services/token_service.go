package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"repogenesis_backend/internal/auth"
	"repogenesis_backend/internal/email"
	"repogenesis_backend/internal/logger"
	"repogenesis_backend/internal/models"
	"repogenesis_backend/internal/repositories"
	"repogenesis_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// Токены подтверждения и сброса живут 24 часа
const emailTokenTTL = 24 * time.Hour

// EmailTokenService управляет одноразовыми токенами, доставляемыми по почте
type EmailTokenService interface {
	// SendVerification выпускает токен подтверждения и шлет письмо
	SendVerification(db *gorm.DB, principal *models.Principal) error

	// ConsumeVerification подтверждает email по токену,
	// возвращает статусный код VERIFIED либо ALREADY_VERIFIED
	ConsumeVerification(db *gorm.DB, variant models.PrincipalVariant, token string) (string, error)

	// SendPasswordReset выпускает токен сброса и шлет письмо
	SendPasswordReset(db *gorm.DB, principal *models.Principal) error

	// ResetPassword задает новый пароль по действительному токену
	ResetPassword(db *gorm.DB, variant models.PrincipalVariant, token, password string) error

	// CheckResetToken возвращает VALID_TOKEN либо INVALID_TOKEN
	CheckResetToken(db *gorm.DB, token string) string
}

type emailTokenService struct {
	principalRepo    repositories.PrincipalRepository
	verificationRepo repositories.VerificationTokenRepository
	resetRepo        repositories.ResetTokenRepository
	mailer           email.Provider
	frontendBaseURL  string
	now              func() time.Time
}

// NewEmailTokenService создает новый экземпляр EmailTokenService
func NewEmailTokenService(
	principalRepo repositories.PrincipalRepository,
	verificationRepo repositories.VerificationTokenRepository,
	resetRepo repositories.ResetTokenRepository,
	mailer email.Provider,
	frontendBaseURL string,
) EmailTokenService {
	return &emailTokenService{
		principalRepo:    principalRepo,
		verificationRepo: verificationRepo,
		resetRepo:        resetRepo,
		mailer:           mailer,
		frontendBaseURL:  strings.TrimRight(frontendBaseURL, "/"),
		now:              time.Now,
	}
}

func (s *emailTokenService) SendVerification(db *gorm.DB, principal *models.Principal) error {
	token, err := auth.GenerateOpaqueToken()
	if err != nil {
		return apperrors.InternalError(err)
	}

	record := &models.EmailVerificationToken{
		PrincipalID: principal.ID,
		Token:       token,
		ExpireAt:    s.now().Add(emailTokenTTL),
	}
	// Повторный запрос заменяет старый токен новым
	if err := s.verificationRepo.Replace(db, record); err != nil {
		if errors.Is(err, repositories.ErrTokenCollision) {
			return apperrors.ErrRetryableConflict(err, "auth")
		}
		return apperrors.InternalError(err)
	}

	link := s.verifyLink(principal.Variant, token)
	if err := s.mailer.SendVerification(principal.Email, link); err != nil {
		// Токен остается в базе, письмо можно запросить повторно
		logger.WithError(err).Error("failed to send verification email", "email", principal.Email)
	}
	return nil
}

func (s *emailTokenService) ConsumeVerification(db *gorm.DB, variant models.PrincipalVariant, token string) (string, error) {
	record, err := s.verificationRepo.FindByToken(db, token)
	if err != nil {
		if errors.Is(err, repositories.ErrTokenNotFound) {
			return "", apperrors.ErrInvalidToken
		}
		return "", apperrors.InternalError(err)
	}

	principal, err := s.principalRepo.FindByID(db, record.PrincipalID)
	if err != nil {
		if errors.Is(err, repositories.ErrPrincipalNotFound) {
			return "", apperrors.ErrInvalidToken
		}
		return "", apperrors.InternalError(err)
	}
	if principal.Variant != variant {
		return "", apperrors.ErrInvalidToken
	}

	// Уже подтвержденный аккаунт отвечает идемпотентно даже по
	// просроченной ссылке
	if principal.IsVerified() {
		return apperrors.StatusAlreadyVerified, nil
	}

	if s.now().After(record.ExpireAt) {
		return "", apperrors.ErrTokenExpired
	}

	// Токен не удаляется после успеха: повторный переход по той же
	// ссылке идемпотентно отвечает ALREADY_VERIFIED
	if err := s.principalRepo.MarkVerified(db, principal.ID, s.now()); err != nil {
		if !errors.Is(err, repositories.ErrAlreadyVerified) {
			return "", apperrors.InternalError(err)
		}
		return apperrors.StatusAlreadyVerified, nil
	}
	return apperrors.StatusVerified, nil
}

func (s *emailTokenService) SendPasswordReset(db *gorm.DB, principal *models.Principal) error {
	token, err := auth.GenerateOpaqueToken()
	if err != nil {
		return apperrors.InternalError(err)
	}

	record := &models.PasswordResetToken{
		PrincipalID: principal.ID,
		Token:       token,
		ExpireAt:    s.now().Add(emailTokenTTL),
	}
	if err := s.resetRepo.Replace(db, record); err != nil {
		if errors.Is(err, repositories.ErrTokenCollision) {
			return apperrors.ErrRetryableConflict(err, "auth")
		}
		return apperrors.InternalError(err)
	}

	link := s.resetLink(principal.Variant, token)
	if err := s.mailer.SendPasswordReset(principal.Email, link); err != nil {
		logger.WithError(err).Error("failed to send password reset email", "email", principal.Email)
	}
	return nil
}

func (s *emailTokenService) ResetPassword(db *gorm.DB, variant models.PrincipalVariant, token, password string) error {
	record, err := s.resetRepo.FindValidByToken(db, token, s.now())
	if err != nil {
		if errors.Is(err, repositories.ErrTokenNotFound) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.InternalError(err)
	}

	principal, err := s.principalRepo.FindByID(db, record.PrincipalID)
	if err != nil {
		if errors.Is(err, repositories.ErrPrincipalNotFound) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.InternalError(err)
	}
	if principal.Variant != variant {
		return apperrors.ErrInvalidToken
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	// Токен гасится первым: повторное использование опаснее,
	// чем лишний запрос новой ссылки
	if err := s.resetRepo.MarkUsed(db, record.ID); err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.principalRepo.UpdatePassword(db, principal.ID, hash); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *emailTokenService) CheckResetToken(db *gorm.DB, token string) string {
	if _, err := s.resetRepo.FindValidByToken(db, token, s.now()); err != nil {
		return apperrors.StatusInvalidToken
	}
	return apperrors.StatusValidToken
}

func (s *emailTokenService) verifyLink(variant models.PrincipalVariant, token string) string {
	if variant == models.VariantEmployer {
		return fmt.Sprintf("%s/employer/verifymail/%s", s.frontendBaseURL, token)
	}
	return fmt.Sprintf("%s/verifymail/%s", s.frontendBaseURL, token)
}

func (s *emailTokenService) resetLink(variant models.PrincipalVariant, token string) string {
	if variant == models.VariantEmployer {
		return fmt.Sprintf("%s/employer/resetpassword/%s", s.frontendBaseURL, token)
	}
	return fmt.Sprintf("%s/resetpassword/%s", s.frontendBaseURL, token)
}
