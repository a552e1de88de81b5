package handlers

import (
	"net/http"

	"repogenesis_backend/internal/config"
	"repogenesis_backend/internal/models"
	"repogenesis_backend/internal/services"
	"repogenesis_backend/internal/services/dto"
	"repogenesis_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// AuthHandler обслуживает оба варианта принципалов:
// экземпляр для пользователей и экземпляр для работодателей
// различаются вариантом и refresh-кукой
type AuthHandler struct {
	*BaseHandler
	auth           services.AuthService
	variant        models.PrincipalVariant
	cookieName     string
	cookieHTTPOnly bool
	cookieDomain   string
	cookieSecure   bool
	refreshMaxAge  int
}

// NewAuthHandler создает хендлер аутентификации для варианта user
func NewAuthHandler(base *BaseHandler, auth services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		BaseHandler:    base,
		auth:           auth,
		variant:        models.VariantUser,
		cookieName:     "refreshToken",
		cookieHTTPOnly: true,
		cookieDomain:   cfg.Cookie.Domain,
		cookieSecure:   cfg.Cookie.Secure,
		refreshMaxAge:  cfg.JWT.RefreshTTLHours * 3600,
	}
}

// NewEmployerAuthHandler создает хендлер аутентификации для варианта employer
func NewEmployerAuthHandler(base *BaseHandler, auth services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		auth:        auth,
		variant:     models.VariantEmployer,
		cookieName:  "employerRefreshToken",
		// TODO: включить HttpOnly после обновления фронтенда работодателей,
		// он пока читает эту куку из document.cookie
		cookieHTTPOnly: false,
		cookieDomain:   cfg.Cookie.Domain,
		cookieSecure:   cfg.Cookie.Secure,
		refreshMaxAge:  cfg.JWT.RefreshTTLHours * 3600,
	}
}

// Signup регистрирует принципала с заданной ролью
func (h *AuthHandler) Signup(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SignupRequest
		if !h.BindAndValidate_JSON(c, &req) {
			return
		}

		principal, err := h.auth.Signup(h.GetDB(c), h.variant, role, &req)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"message":    "Account created. Please verify your email.",
			"isVerified": principal.IsVerified(),
			"data":       principal,
		})
	}
}

// Signin проверяет учетные данные и выдает токены
func (h *AuthHandler) Signin(c *gin.Context) {
	var req dto.SigninRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	result, err := h.auth.Signin(h.GetDB(c), h.variant, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if !result.Verified {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"message": "Email not verified. A new verification email has been sent.",
		})
		return
	}

	h.setRefreshCookie(c, result.Tokens.RefreshToken)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Signed in successfully",
		"data": gin.H{
			"accessToken": result.Tokens.AccessToken,
			"user":        result.Principal,
		},
	})
}

// VerifyEmail подтверждает email по токену из письма
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	code, err := h.auth.VerifyEmail(h.GetDB(c), h.variant, c.Param("token"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	message := "Email verified successfully"
	if code == apperrors.StatusAlreadyVerified {
		message = "Email already verified"
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		"Code":    code,
	})
}

// ForgotPassword отправляет ссылку сброса пароля
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	sent, err := h.auth.ForgotPassword(h.GetDB(c), h.variant, req.Email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	message := "Password reset email sent"
	if !sent {
		message = "Email not registered"
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
	})
}

// CheckResetToken проверяет действительность токена сброса
func (h *AuthHandler) CheckResetToken(c *gin.Context) {
	code := h.auth.CheckResetToken(h.GetDB(c), c.Param("token"))
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"Code":    code,
	})
}

// ResetPassword задает новый пароль по токену сброса
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.auth.ResetPassword(h.GetDB(c), h.variant, c.Param("token"), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Password reset successful",
		"Code":    apperrors.StatusResetSuccessful,
	})
}

// Refresh выдает свежую пару токенов по refresh-куке
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(h.cookieName)
	if err != nil || refreshToken == "" {
		h.HandleServiceError(c, apperrors.ErrRefreshTokenMissing)
		return
	}

	pair, err := h.auth.Refresh(h.GetDB(c), h.variant, refreshToken)
	if err != nil {
		h.clearRefreshCookie(c)
		h.HandleServiceError(c, err)
		return
	}

	h.setRefreshCookie(c, pair.RefreshToken)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"accessToken": pair.AccessToken,
		},
	})
}

// GetProfile возвращает профиль текущего принципала
func (h *AuthHandler) GetProfile(c *gin.Context) {
	principalID, ok := h.GetAndAuthorizePrincipalID(c)
	if !ok {
		return
	}

	principal, err := h.auth.GetProfile(h.GetDB(c), principalID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    principal,
	})
}

// UpdateProfile обновляет профиль текущего принципала
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	principalID, ok := h.GetAndAuthorizePrincipalID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	principal, err := h.auth.UpdateProfile(h.GetDB(c), principalID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile updated",
		"data":    principal,
	})
}

func (h *AuthHandler) setRefreshCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(h.cookieName, token, h.refreshMaxAge, "/", h.cookieDomain, h.cookieSecure, h.cookieHTTPOnly)
}

func (h *AuthHandler) clearRefreshCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(h.cookieName, "", -1, "/", h.cookieDomain, h.cookieSecure, h.cookieHTTPOnly)
}
