package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"repogenesis_backend/internal/auth"
	"repogenesis_backend/internal/config"
	"repogenesis_backend/internal/email"
	"repogenesis_backend/internal/handlers"
	"repogenesis_backend/internal/routes"
	"repogenesis_backend/internal/services"
	"repogenesis_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopMailer struct{}

func (noopMailer) Send(_ *email.Email) error { return nil }
func (noopMailer) SendWithTemplate(_ string, _ email.TemplateData, _ *email.Email) error {
	return nil
}
func (noopMailer) SendVerification(_ string, _ string) error  { return nil }
func (noopMailer) SendPasswordReset(_ string, _ string) error { return nil }
func (noopMailer) Validate() error                            { return nil }
func (noopMailer) Close() error                               { return nil }

func registeredRoutes(t *testing.T) map[string]bool {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := auth.NewTokenService("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
	repos := services.NewRepositories()
	container := services.NewServiceContainer(repos, tokens, noopMailer{}, "http://localhost:5173")
	h := handlers.NewAppHandlers(container, validator.New(), &config.Config{})

	r := gin.New()
	routes.SetupRoutes(r, h, tokens, repos.Principals)

	mounted := make(map[string]bool)
	for _, route := range r.Routes() {
		mounted[route.Method+" "+route.Path] = true
	}
	return mounted
}

func TestSetupRoutesMountsAuthSurface(t *testing.T) {
	mounted := registeredRoutes(t)

	for _, route := range []string{
		"POST /api/v1/auth/candidate/signup",
		"POST /api/v1/auth/organisation/signup",
		"POST /api/v1/auth/signin",
		"GET /api/v1/auth/verify-email/:token",
		"POST /api/v1/auth/reset-password",
		"POST /api/v1/auth/reset-password/:token",
		"GET /api/v1/auth/verify-token/:token",
		"POST /api/v1/auth/refresh",
		"GET /api/v1/auth/profile",
		"PUT /api/v1/auth/profile",
		"POST /api/v1/employer-auth/signup",
		"POST /api/v1/employer-auth/signin",
		"GET /api/v1/employer-auth/profile",
		"PUT /api/v1/employer-auth/profile",
	} {
		assert.True(t, mounted[route], route)
	}
}

func TestSetupRoutesMountsRoleGatedProfiles(t *testing.T) {
	mounted := registeredRoutes(t)

	for _, route := range []string{
		"GET /api/v1/candidate/profile",
		"PUT /api/v1/candidate/profile",
		"GET /api/v1/organisation/profile",
		"PUT /api/v1/organisation/profile",
	} {
		assert.True(t, mounted[route], route)
	}
}

func TestSetupRoutesMountsOrganisationPostings(t *testing.T) {
	mounted := registeredRoutes(t)

	for _, route := range []string{
		"GET /api/v1/organisation/jobs",
		"POST /api/v1/organisation/jobs",
		"GET /api/v1/organisation/jobs/:id",
		"PUT /api/v1/organisation/jobs/:id",
		"DELETE /api/v1/organisation/jobs/:id",
		"GET /api/v1/organisation/internships",
		"POST /api/v1/organisation/internships",
		"GET /api/v1/organisation/internships/:id",
		"PUT /api/v1/organisation/internships/:id",
		"DELETE /api/v1/organisation/internships/:id",
		"GET /api/v1/organisation/active-positions",
	} {
		assert.True(t, mounted[route], route)
	}
}

func TestRoleGatedProfileRequiresToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tokens := auth.NewTokenService("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
	repos := services.NewRepositories()
	container := services.NewServiceContainer(repos, tokens, noopMailer{}, "http://localhost:5173")
	h := handlers.NewAppHandlers(container, validator.New(), &config.Config{})

	r := gin.New()
	routes.SetupRoutes(r, h, tokens, repos.Principals)

	req, err := http.NewRequest(http.MethodGet, "/api/v1/candidate/profile", nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
