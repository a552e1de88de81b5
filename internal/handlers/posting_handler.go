package handlers

import (
	"net/http"

	"repogenesis_backend/internal/services"
	"repogenesis_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// PostingHandler CRUD вакансий и стажировок организации
type PostingHandler struct {
	*BaseHandler
	posting services.PostingService
}

// NewPostingHandler создает новый PostingHandler
func NewPostingHandler(base *BaseHandler, posting services.PostingService) *PostingHandler {
	return &PostingHandler{
		BaseHandler: base,
		posting:     posting,
	}
}

// CreateJob создает вакансию организации
func (h *PostingHandler) CreateJob(c *gin.Context) {
	organisationID, ok := h.GetAndAuthorizePrincipalID(c)
	if !ok {
		return
	}

	var req dto.JobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.posting.CreateJob(h.GetDB(c), organisationID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Job created",
		"data":    job,
	})
}

// GetJob возвращает активную вакансию организации по id
func (h *PostingHandler) GetJob(c *gin.Context) {
	organisationID, ok := h.GetAndAuthorizePrincipalID(c)
	if !ok {
		return
	}

	job, err := h.posting.GetJob(h.GetDB(c), organisationID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    job,
	})
}

// ListJobs возвращает активные вакансии организации
func (h *PostingHandler) ListJobs(c *gin.Context) {
	organisationID, ok := h.GetAndAuthorizePrincipalID(c)
	if !ok {
		return
	}

	jobs, err := h.posting.ListJobs(h.GetDB(c), organisationID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"jobs":  jobs,
			"total": len(jobs),
		},
	})
}

// UpdateJob перезаписывает вакансию организации
func (h *PostingHandler) UpdateJob(c *gin.Context) {
	organisationID, ok := h.GetAndAuthorizePrincipalID(c)
	if !ok {
		return
	}

	var req dto.JobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.posting.UpdateJob(h.GetDB(c), organisationID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Job updated",
		"data":    job,
	})
}

// DeleteJob снимает вакансию с публикации
func (h *PostingHandler) DeleteJob(c *gin.Context) {
	organisationID, ok := h.GetAndAuthorizePrincipalID(c)
	if !ok {
		return
	}

	if err := h.posting.DeleteJob(h.GetDB(c), organisationID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Job deleted",
	})
}

// CreateInternship создает стажировку организации
func (h *PostingHandler) CreateInternship(c *gin.Context) {
	organisationID, ok := h.GetAndAuthorizePrincipalID(c)
	if !ok {
		return
	}

	var req dto.InternshipRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	internship, err := h.posting.CreateInternship(h.GetDB(c), organisationID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Internship created",
		"data":    internship,
	})
}

// GetInternship возвращает активную стажировку организации по id
func (h *PostingHandler) GetInternship(c *gin.Context) {
	organisationID, ok := h.GetAndAuthorizePrincipalID(c)
	if !ok {
		return
	}

	internship, err := h.posting.GetInternship(h.GetDB(c), organisationID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    internship,
	})
}

// ListInternships возвращает активные стажировки организации
func (h *PostingHandler) ListInternships(c *gin.Context) {
	organisationID, ok := h.GetAndAuthorizePrincipalID(c)
	if !ok {
		return
	}

	internships, err := h.posting.ListInternships(h.GetDB(c), organisationID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"internships": internships,
			"total":       len(internships),
		},
	})
}

// UpdateInternship перезаписывает стажировку организации
func (h *PostingHandler) UpdateInternship(c *gin.Context) {
	organisationID, ok := h.GetAndAuthorizePrincipalID(c)
	if !ok {
		return
	}

	var req dto.InternshipRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	internship, err := h.posting.UpdateInternship(h.GetDB(c), organisationID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Internship updated",
		"data":    internship,
	})
}

// DeleteInternship снимает стажировку с публикации
func (h *PostingHandler) DeleteInternship(c *gin.Context) {
	organisationID, ok := h.GetAndAuthorizePrincipalID(c)
	if !ok {
		return
	}

	if err := h.posting.DeleteInternship(h.GetDB(c), organisationID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Internship deleted",
	})
}

// ActivePositions возвращает активные вакансии и стажировки одним ответом
func (h *PostingHandler) ActivePositions(c *gin.Context) {
	organisationID, ok := h.GetAndAuthorizePrincipalID(c)
	if !ok {
		return
	}

	positions, err := h.posting.ActivePositions(h.GetDB(c), organisationID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    positions,
	})
}
