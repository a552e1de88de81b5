package routes

import (
	"repogenesis_backend/internal/auth"
	"repogenesis_backend/internal/handlers"
	"repogenesis_backend/internal/middleware"
	"repogenesis_backend/internal/models"
	"repogenesis_backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// SetupRoutes монтирует все ручки API под /api/v1
func SetupRoutes(
	r *gin.Engine,
	h *handlers.AppHandlers,
	tokens auth.TokenService,
	principals repositories.PrincipalRepository,
) {
	api := r.Group("/api/v1")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/candidate/signup", h.Auth.Signup(models.RoleCandidate))
		authGroup.POST("/organisation/signup", h.Auth.Signup(models.RoleOrganisation))
		authGroup.POST("/signin", h.Auth.Signin)
		authGroup.GET("/verify-email/:token", h.Auth.VerifyEmail)
		authGroup.POST("/reset-password", h.Auth.ForgotPassword)
		authGroup.POST("/reset-password/:token", h.Auth.ResetPassword)
		authGroup.GET("/verify-token/:token", h.Auth.CheckResetToken)
		authGroup.POST("/refresh", h.Auth.Refresh)

		profile := authGroup.Group("")
		profile.Use(middleware.AuthMiddleware(tokens, models.VariantUser))
		{
			profile.GET("/profile", h.Auth.GetProfile)
			profile.PUT("/profile", h.Auth.UpdateProfile)
		}
	}

	employerGroup := api.Group("/employer-auth")
	{
		employerGroup.POST("/signup", h.EmployerAuth.Signup(models.RoleEmployer))
		employerGroup.POST("/signin", h.EmployerAuth.Signin)
		employerGroup.GET("/verify-email/:token", h.EmployerAuth.VerifyEmail)
		employerGroup.POST("/reset-password", h.EmployerAuth.ForgotPassword)
		employerGroup.POST("/reset-password/:token", h.EmployerAuth.ResetPassword)
		employerGroup.GET("/verify-token/:token", h.EmployerAuth.CheckResetToken)
		employerGroup.POST("/refresh", h.EmployerAuth.Refresh)

		profile := employerGroup.Group("")
		profile.Use(middleware.AuthMiddleware(tokens, models.VariantEmployer))
		{
			profile.GET("/profile", h.EmployerAuth.GetProfile)
			profile.PUT("/profile", h.EmployerAuth.UpdateProfile)
		}
	}

	// Кандидатский кабинет за ролевой проверкой
	candidate := api.Group("/candidate")
	candidate.Use(
		middleware.AuthMiddleware(tokens, models.VariantUser),
		middleware.RequireRoles(principals, models.RoleCandidate),
	)
	{
		candidate.GET("/profile", h.Auth.GetProfile)
		candidate.PUT("/profile", h.Auth.UpdateProfile)
	}

	// Постинги доступны только организациям
	org := api.Group("/organisation")
	org.Use(
		middleware.AuthMiddleware(tokens, models.VariantUser),
		middleware.RequireRoles(principals, models.RoleOrganisation),
	)
	{
		org.GET("/profile", h.Auth.GetProfile)
		org.PUT("/profile", h.Auth.UpdateProfile)

		org.GET("/jobs", h.Posting.ListJobs)
		org.POST("/jobs", h.Posting.CreateJob)
		org.GET("/jobs/:id", h.Posting.GetJob)
		org.PUT("/jobs/:id", h.Posting.UpdateJob)
		org.DELETE("/jobs/:id", h.Posting.DeleteJob)

		org.GET("/internships", h.Posting.ListInternships)
		org.POST("/internships", h.Posting.CreateInternship)
		org.GET("/internships/:id", h.Posting.GetInternship)
		org.PUT("/internships/:id", h.Posting.UpdateInternship)
		org.DELETE("/internships/:id", h.Posting.DeleteInternship)

		org.GET("/active-positions", h.Posting.ActivePositions)
	}
}
