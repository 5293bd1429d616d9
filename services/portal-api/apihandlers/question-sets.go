package apihandlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	mw "github.com/HealthResearchAuthority/rsp-iras-portal-sub005/pkg/apihelpers/middlewares"
)

func (h *HttpEndpoints) AddQuestionSetAPI(rg *gin.RouterGroup) {
	questionSetsGroup := rg.Group("/question-sets")
	questionSetsGroup.Use(mw.GetAndValidatePortalUserJWT(h.tokenSignKey))
	{
		questionSetsGroup.GET("/:categoryID", h.getQuestionSet)
		questionSetsGroup.GET("/:categoryID/sections", h.getSections)
	}
}

// AddInternalAPI registers the service-to-service endpoints. The question set
// service calls in here after republishing a category so stale cached
// payloads are dropped.
func (h *HttpEndpoints) AddInternalAPI(rg *gin.RouterGroup) {
	internalGroup := rg.Group("/internal")
	internalGroup.Use(mw.HasValidAPIKey(h.apiKeys))
	{
		internalGroup.POST("/question-sets/:categoryID/invalidate-cache", h.invalidateQuestionSetCache)
	}
}

func (h *HttpEndpoints) getQuestionSet(c *gin.Context) {
	categoryID := c.Param("categoryID")

	questions, err := h.contentService.GetQuestionSet(c.Request.Context(), categoryID)
	if err != nil {
		slog.Error("error fetching question set", slog.String("categoryID", categoryID), slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "error fetching question set"})
		return
	}

	issues := h.questionSetValidator.ValidateQuestionSet(questions)
	for _, issue := range issues {
		slog.Warn("question set configuration issue", slog.String("categoryID", categoryID), slog.String("issue", issue.String()))
	}

	c.JSON(http.StatusOK, gin.H{
		"questions": questions,
		"issues":    issues,
	})
}

func (h *HttpEndpoints) getSections(c *gin.Context) {
	categoryID := c.Param("categoryID")

	sections, err := h.contentService.GetSections(c.Request.Context(), categoryID)
	if err != nil {
		slog.Error("error fetching sections", slog.String("categoryID", categoryID), slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "error fetching sections"})
		return
	}

	issues := h.questionSetValidator.ValidateSections(sections)
	for _, issue := range issues {
		slog.Warn("section configuration issue", slog.String("categoryID", categoryID), slog.String("issue", issue.String()))
	}

	c.JSON(http.StatusOK, gin.H{"sections": sections})
}

func (h *HttpEndpoints) invalidateQuestionSetCache(c *gin.Context) {
	categoryID := c.Param("categoryID")
	h.contentService.InvalidateCategory(c.Request.Context(), categoryID)
	slog.Info("question set cache invalidated", slog.String("categoryID", categoryID))
	c.JSON(http.StatusOK, gin.H{"msg": "cache invalidated"})
}
