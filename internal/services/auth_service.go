package services

import (
	"errors"

	"repogenesis_backend/internal/auth"
	"repogenesis_backend/internal/models"
	"repogenesis_backend/internal/repositories"
	"repogenesis_backend/internal/services/dto"
	"repogenesis_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// SigninResult результат входа: токены выдаются только верифицированным
type SigninResult struct {
	Verified  bool
	Principal *models.Principal
	Tokens    *auth.TokenPair
}

// AuthService регистрация, вход и управление учетной записью
// для обоих вариантов принципалов
type AuthService interface {
	// Signup регистрирует принципала и отправляет письмо подтверждения
	Signup(db *gorm.DB, variant models.PrincipalVariant, role models.Role, req *dto.SignupRequest) (*models.Principal, error)

	// Signin проверяет учетные данные и выдает пару токенов
	Signin(db *gorm.DB, variant models.PrincipalVariant, req *dto.SigninRequest) (*SigninResult, error)

	// VerifyEmail подтверждает email по токену из письма
	VerifyEmail(db *gorm.DB, variant models.PrincipalVariant, token string) (string, error)

	// ForgotPassword отправляет ссылку сброса, если email зарегистрирован
	ForgotPassword(db *gorm.DB, variant models.PrincipalVariant, email string) (bool, error)

	// CheckResetToken проверяет действительность токена сброса
	CheckResetToken(db *gorm.DB, token string) string

	// ResetPassword задает новый пароль по токену сброса
	ResetPassword(db *gorm.DB, variant models.PrincipalVariant, token string, req *dto.ResetPasswordRequest) error

	// Refresh выдает новую пару токенов по refresh токену
	Refresh(db *gorm.DB, variant models.PrincipalVariant, refreshToken string) (*auth.TokenPair, error)

	// GetProfile возвращает профиль принципала
	GetProfile(db *gorm.DB, principalID string) (*models.Principal, error)

	// UpdateProfile обновляет изменяемые поля профиля
	UpdateProfile(db *gorm.DB, principalID string, req *dto.UpdateProfileRequest) (*models.Principal, error)
}

type authService struct {
	principalRepo repositories.PrincipalRepository
	tokens        auth.TokenService
	emailTokens   EmailTokenService
}

// NewAuthService создает новый экземпляр AuthService
func NewAuthService(
	principalRepo repositories.PrincipalRepository,
	tokens auth.TokenService,
	emailTokens EmailTokenService,
) AuthService {
	return &authService{
		principalRepo: principalRepo,
		tokens:        tokens,
		emailTokens:   emailTokens,
	}
}

func (s *authService) Signup(db *gorm.DB, variant models.PrincipalVariant, role models.Role, req *dto.SignupRequest) (*models.Principal, error) {
	// Для организаций и работодателей название компании обязательно
	if requiresOrganization(role) && req.Organization == "" {
		return nil, apperrors.ValidationError(map[string]string{
			"organization": "Organization is required",
		})
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	principal := &models.Principal{
		Variant:      variant,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Organization: req.Organization,
	}

	if err := s.principalRepo.Create(db, principal); err != nil {
		if errors.Is(err, repositories.ErrPrincipalAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.emailTokens.SendVerification(db, principal); err != nil {
		return nil, err
	}
	return principal, nil
}

func (s *authService) Signin(db *gorm.DB, variant models.PrincipalVariant, req *dto.SigninRequest) (*SigninResult, error) {
	principal, err := s.principalRepo.FindByEmail(db, variant, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrPrincipalNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	// Работодатель входит в рамках своей организации
	if variant == models.VariantEmployer && principal.Organization != req.Organization {
		return nil, apperrors.ErrInvalidCredentials
	}

	// Неверифицированный аккаунт получает новое письмо подтверждения
	// до проверки пароля, доступ не выдается в любом случае
	if !principal.IsVerified() {
		if err := s.emailTokens.SendVerification(db, principal); err != nil {
			return nil, err
		}
		return &SigninResult{Verified: false, Principal: principal}, nil
	}

	if !auth.CheckPasswordHash(req.Password, principal.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	pair, err := s.tokens.IssueTokenPair(principal.ID, principal.Variant, principal.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &SigninResult{Verified: true, Principal: principal, Tokens: pair}, nil
}

func (s *authService) VerifyEmail(db *gorm.DB, variant models.PrincipalVariant, token string) (string, error) {
	return s.emailTokens.ConsumeVerification(db, variant, token)
}

func (s *authService) ForgotPassword(db *gorm.DB, variant models.PrincipalVariant, email string) (bool, error) {
	principal, err := s.principalRepo.FindByEmail(db, variant, email)
	if err != nil {
		if errors.Is(err, repositories.ErrPrincipalNotFound) {
			// Не раскрываем существование адреса ошибкой, ответ остается 200
			return false, nil
		}
		return false, apperrors.InternalError(err)
	}

	if err := s.emailTokens.SendPasswordReset(db, principal); err != nil {
		return false, err
	}
	return true, nil
}

func (s *authService) CheckResetToken(db *gorm.DB, token string) string {
	return s.emailTokens.CheckResetToken(db, token)
}

func (s *authService) ResetPassword(db *gorm.DB, variant models.PrincipalVariant, token string, req *dto.ResetPasswordRequest) error {
	if req.Password != req.ConfirmPassword {
		return apperrors.ErrPasswordMismatch
	}
	return s.emailTokens.ResetPassword(db, variant, token, req.Password)
}

func (s *authService) Refresh(db *gorm.DB, variant models.PrincipalVariant, refreshToken string) (*auth.TokenPair, error) {
	claims, err := s.tokens.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, apperrors.ErrRefreshTokenInvalid
	}
	if claims.Variant != variant {
		return nil, apperrors.ErrRefreshTokenInvalid
	}

	// Удаленный аккаунт не может продлевать сессию валидной подписью
	principal, err := s.principalRepo.FindByID(db, claims.PrincipalID)
	if err != nil {
		if errors.Is(err, repositories.ErrPrincipalNotFound) {
			return nil, apperrors.ErrRefreshTokenInvalid
		}
		return nil, apperrors.InternalError(err)
	}

	// Ротация: каждая успешная проверка выдает свежую пару
	pair, err := s.tokens.IssueTokenPair(principal.ID, principal.Variant, principal.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return pair, nil
}

func (s *authService) GetProfile(db *gorm.DB, principalID string) (*models.Principal, error) {
	principal, err := s.principalRepo.FindByID(db, principalID)
	if err != nil {
		if errors.Is(err, repositories.ErrPrincipalNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return principal, nil
}

func (s *authService) UpdateProfile(db *gorm.DB, principalID string, req *dto.UpdateProfileRequest) (*models.Principal, error) {
	principal, err := s.GetProfile(db, principalID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != "" {
		principal.FirstName = req.FirstName
	}
	if req.LastName != "" {
		principal.LastName = req.LastName
	}
	if req.Phone != "" {
		principal.Phone = req.Phone
	}
	if req.Organization != "" {
		principal.Organization = req.Organization
	}

	if err := s.principalRepo.UpdateProfile(db, principal); err != nil {
		if errors.Is(err, repositories.ErrPrincipalNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return principal, nil
}

func requiresOrganization(role models.Role) bool {
	return role == models.RoleOrganisation || role == models.RoleEmployer
}
