package services

import (
	"strings"
	"testing"
	"time"

	"repogenesis_backend/internal/auth"
	"repogenesis_backend/internal/models"
	"repogenesis_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type emailTokenFixture struct {
	service    EmailTokenService
	impl       *emailTokenService
	principals *fakePrincipalRepo
	mailer     *fakeMailer
}

func newEmailTokenFixture(t *testing.T) *emailTokenFixture {
	t.Helper()

	principals := newFakePrincipalRepo()
	mailer := newFakeMailer()
	service := NewEmailTokenService(
		principals,
		newFakeVerificationTokenRepo(),
		newFakeResetTokenRepo(),
		mailer,
		"http://localhost:5173",
	)

	return &emailTokenFixture{
		service:    service,
		impl:       service.(*emailTokenService),
		principals: principals,
		mailer:     mailer,
	}
}

func (f *emailTokenFixture) createPrincipal(t *testing.T, variant models.PrincipalVariant) *models.Principal {
	t.Helper()

	principal := &models.Principal{
		Variant:      variant,
		Email:        "person@example.com",
		PasswordHash: "hash",
		Role:         models.RoleCandidate,
		FirstName:    "Dana",
		LastName:     "Akhmetova",
	}
	require.NoError(t, f.principals.Create(nil, principal))
	return principal
}

func tokenFromLink(link string) string {
	parts := strings.Split(link, "/")
	return parts[len(parts)-1]
}

func TestVerificationHappyPath(t *testing.T) {
	f := newEmailTokenFixture(t)
	principal := f.createPrincipal(t, models.VariantUser)

	require.NoError(t, f.service.SendVerification(nil, principal))
	link := f.mailer.verificationLinks[principal.Email]
	require.Contains(t, link, "http://localhost:5173/verifymail/")

	code, err := f.service.ConsumeVerification(nil, models.VariantUser, tokenFromLink(link))
	require.NoError(t, err)
	assert.Equal(t, apperrors.StatusVerified, code)

	stored, err := f.principals.FindByID(nil, principal.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsVerified())
}

func TestVerificationRepeatConsumeIsIdempotent(t *testing.T) {
	f := newEmailTokenFixture(t)
	principal := f.createPrincipal(t, models.VariantUser)

	require.NoError(t, f.service.SendVerification(nil, principal))
	token := tokenFromLink(f.mailer.verificationLinks[principal.Email])

	code, err := f.service.ConsumeVerification(nil, models.VariantUser, token)
	require.NoError(t, err)
	assert.Equal(t, apperrors.StatusVerified, code)

	stored, err := f.principals.FindByID(nil, principal.ID)
	require.NoError(t, err)
	firstVerifiedAt := stored.EmailVerifiedAt

	// Повторный переход по той же ссылке не меняет отметку времени
	code, err = f.service.ConsumeVerification(nil, models.VariantUser, token)
	require.NoError(t, err)
	assert.Equal(t, apperrors.StatusAlreadyVerified, code)

	stored, err = f.principals.FindByID(nil, principal.ID)
	require.NoError(t, err)
	assert.Equal(t, firstVerifiedAt, stored.EmailVerifiedAt)
}

func TestVerificationAlreadyVerified(t *testing.T) {
	f := newEmailTokenFixture(t)
	principal := f.createPrincipal(t, models.VariantUser)
	require.NoError(t, f.principals.MarkVerified(nil, principal.ID, time.Now()))

	require.NoError(t, f.service.SendVerification(nil, principal))
	token := tokenFromLink(f.mailer.verificationLinks[principal.Email])

	code, err := f.service.ConsumeVerification(nil, models.VariantUser, token)
	require.NoError(t, err)
	assert.Equal(t, apperrors.StatusAlreadyVerified, code)
}

func TestVerificationExpiredToken(t *testing.T) {
	f := newEmailTokenFixture(t)
	principal := f.createPrincipal(t, models.VariantUser)

	require.NoError(t, f.service.SendVerification(nil, principal))
	token := tokenFromLink(f.mailer.verificationLinks[principal.Email])

	// Сдвигаем часы сервиса за срок жизни токена
	f.impl.now = func() time.Time { return time.Now().Add(25 * time.Hour) }

	_, err := f.service.ConsumeVerification(nil, models.VariantUser, token)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestVerificationAlreadyVerifiedBeatsExpiry(t *testing.T) {
	f := newEmailTokenFixture(t)
	principal := f.createPrincipal(t, models.VariantUser)

	require.NoError(t, f.service.SendVerification(nil, principal))
	token := tokenFromLink(f.mailer.verificationLinks[principal.Email])

	code, err := f.service.ConsumeVerification(nil, models.VariantUser, token)
	require.NoError(t, err)
	require.Equal(t, apperrors.StatusVerified, code)

	// Повторный клик по уже просроченной ссылке остается идемпотентным
	f.impl.now = func() time.Time { return time.Now().Add(25 * time.Hour) }
	code, err = f.service.ConsumeVerification(nil, models.VariantUser, token)
	require.NoError(t, err)
	assert.Equal(t, apperrors.StatusAlreadyVerified, code)
}

func TestVerificationVariantMismatch(t *testing.T) {
	f := newEmailTokenFixture(t)
	principal := f.createPrincipal(t, models.VariantUser)

	require.NoError(t, f.service.SendVerification(nil, principal))
	token := tokenFromLink(f.mailer.verificationLinks[principal.Email])

	_, err := f.service.ConsumeVerification(nil, models.VariantEmployer, token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestVerificationReissueReplacesToken(t *testing.T) {
	f := newEmailTokenFixture(t)
	principal := f.createPrincipal(t, models.VariantUser)

	require.NoError(t, f.service.SendVerification(nil, principal))
	firstToken := tokenFromLink(f.mailer.verificationLinks[principal.Email])

	require.NoError(t, f.service.SendVerification(nil, principal))
	secondToken := tokenFromLink(f.mailer.verificationLinks[principal.Email])
	require.NotEqual(t, firstToken, secondToken)

	// Старый токен после перевыпуска мертв
	_, err := f.service.ConsumeVerification(nil, models.VariantUser, firstToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)

	code, err := f.service.ConsumeVerification(nil, models.VariantUser, secondToken)
	require.NoError(t, err)
	assert.Equal(t, apperrors.StatusVerified, code)
}

func TestResetPasswordFlow(t *testing.T) {
	f := newEmailTokenFixture(t)
	principal := f.createPrincipal(t, models.VariantUser)

	require.NoError(t, f.service.SendPasswordReset(nil, principal))
	link := f.mailer.resetLinks[principal.Email]
	require.Contains(t, link, "/resetpassword/")
	token := tokenFromLink(link)

	assert.Equal(t, apperrors.StatusValidToken, f.service.CheckResetToken(nil, token))

	require.NoError(t, f.service.ResetPassword(nil, models.VariantUser, token, "newsecret123"))

	stored, err := f.principals.FindByID(nil, principal.ID)
	require.NoError(t, err)
	assert.True(t, auth.CheckPasswordHash("newsecret123", stored.PasswordHash))

	// Использованный токен невалиден для проверки и повторного сброса
	assert.Equal(t, apperrors.StatusInvalidToken, f.service.CheckResetToken(nil, token))
	err = f.service.ResetPassword(nil, models.VariantUser, token, "another123")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestResetTokenExpires(t *testing.T) {
	f := newEmailTokenFixture(t)
	principal := f.createPrincipal(t, models.VariantUser)

	require.NoError(t, f.service.SendPasswordReset(nil, principal))
	token := tokenFromLink(f.mailer.resetLinks[principal.Email])

	f.impl.now = func() time.Time { return time.Now().Add(25 * time.Hour) }

	assert.Equal(t, apperrors.StatusInvalidToken, f.service.CheckResetToken(nil, token))
	err := f.service.ResetPassword(nil, models.VariantUser, token, "newsecret123")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestCheckResetTokenUnknown(t *testing.T) {
	f := newEmailTokenFixture(t)
	assert.Equal(t, apperrors.StatusInvalidToken, f.service.CheckResetToken(nil, "missing"))
}

func TestEmployerLinksUseEmployerPaths(t *testing.T) {
	f := newEmailTokenFixture(t)
	principal := f.createPrincipal(t, models.VariantEmployer)

	require.NoError(t, f.service.SendVerification(nil, principal))
	assert.Contains(t, f.mailer.verificationLinks[principal.Email], "/employer/verifymail/")

	require.NoError(t, f.service.SendPasswordReset(nil, principal))
	assert.Contains(t, f.mailer.resetLinks[principal.Email], "/employer/resetpassword/")
}
