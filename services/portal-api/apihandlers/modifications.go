package apihandlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	mw "github.com/HealthResearchAuthority/rsp-iras-portal-sub005/pkg/apihelpers/middlewares"
	portalDB "github.com/HealthResearchAuthority/rsp-iras-portal-sub005/pkg/db/portal"
	jwthandling "github.com/HealthResearchAuthority/rsp-iras-portal-sub005/pkg/jwt-handling"
	"github.com/HealthResearchAuthority/rsp-iras-portal-sub005/pkg/notifications"
	"github.com/HealthResearchAuthority/rsp-iras-portal-sub005/pkg/questionnaire/engine"
	questionnaireTypes "github.com/HealthResearchAuthority/rsp-iras-portal-sub005/pkg/questionnaire/types"
)

func (h *HttpEndpoints) AddModificationsAPI(rg *gin.RouterGroup) {
	modificationsGroup := rg.Group("/modifications")
	modificationsGroup.Use(mw.GetAndValidatePortalUserJWT(h.tokenSignKey))
	{
		modificationsGroup.POST("", mw.RequirePayload(), h.createModification)
		modificationsGroup.GET("/by-project/:projectRecordID", h.getModificationsForProject)
		modificationsGroup.GET("/:modificationID", h.getModification)
		modificationsGroup.GET("/:modificationID/sections/:sectionID/questions", h.getSectionQuestions)
		modificationsGroup.GET("/:modificationID/answers/:sectionID", h.getSectionAnswers)
		modificationsGroup.POST("/:modificationID/answers/:sectionID", mw.RequirePayload(), h.saveSectionAnswers)
		modificationsGroup.POST("/:modificationID/navigate/:sectionID", h.resolveNavigation)
		modificationsGroup.POST("/:modificationID/back-from-review", h.backFromReview)
		modificationsGroup.POST("/:modificationID/submit", h.submitModification)
	}

	projectRecordsGroup := rg.Group("/project-records")
	projectRecordsGroup.Use(mw.GetAndValidatePortalUserJWT(h.tokenSignKey))
	{
		projectRecordsGroup.GET("/:projectRecordID/submitted-answers", h.getSubmittedAnswers)
	}
}

// getSubmittedAnswers exposes the answer set held by the downstream store,
// i.e. the state of the project record before any draft changes.
func (h *HttpEndpoints) getSubmittedAnswers(c *gin.Context) {
	projectRecordID := c.Param("projectRecordID")

	answers, err := h.respondentService.GetAnswerSet(projectRecordID)
	if err != nil {
		slog.Error("error fetching submitted answers", slog.String("projectRecordID", projectRecordID), slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "error fetching submitted answers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"answers": answers})
}

func (h *HttpEndpoints) createModification(c *gin.Context) {
	var req struct {
		ProjectRecordID string `json:"projectRecordId"`
		CategoryID      string `json:"categoryId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ProjectRecordID == "" || req.CategoryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "projectRecordId and categoryId are required"})
		return
	}

	token := c.MustGet("validatedToken").(*jwthandling.PortalUserClaims)

	modification, err := h.portalDBConn.CreateModification(portalDB.Modification{
		ModificationID:  uuid.NewString(),
		ProjectRecordID: req.ProjectRecordID,
		CategoryID:      req.CategoryID,
		CreatedBy:       token.Subject,
	})
	if err != nil {
		slog.Error("error creating modification", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error creating modification"})
		return
	}

	slog.Info("modification created",
		slog.String("modificationID", modification.ModificationID),
		slog.String("projectRecordID", modification.ProjectRecordID),
		slog.String("userID", token.Subject))
	c.JSON(http.StatusOK, gin.H{"modification": modification})
}

func (h *HttpEndpoints) getModificationsForProject(c *gin.Context) {
	projectRecordID := c.Param("projectRecordID")

	modifications, err := h.portalDBConn.GetModificationsForProject(projectRecordID)
	if err != nil {
		slog.Error("error fetching modifications", slog.String("projectRecordID", projectRecordID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching modifications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"modifications": modifications})
}

func (h *HttpEndpoints) getModification(c *gin.Context) {
	modification, ok := h.mustGetModification(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"modification": modification})
}

// getSectionQuestions returns the assembled questions of one wizard section
// with saved answers applied and applicability evaluated.
func (h *HttpEndpoints) getSectionQuestions(c *gin.Context) {
	modification, ok := h.mustGetModification(c)
	if !ok {
		return
	}
	sectionID := c.Param("sectionID")

	questions, ok := h.loadAnsweredQuestionSet(c, modification)
	if !ok {
		return
	}

	applicability := map[string]bool{}
	sectionQuestions := []questionnaireTypes.Question{}
	for i := range questions {
		if len(questions[i].Rules) > 0 {
			applicability[questions[i].ID] = engine.IsRuleApplicable(&questions[i], questions)
		}
		if questions[i].SectionID == sectionID {
			sectionQuestions = append(sectionQuestions, questions[i])
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"questions":     sectionQuestions,
		"applicability": applicability,
	})
}

func (h *HttpEndpoints) getSectionAnswers(c *gin.Context) {
	modification, ok := h.mustGetModification(c)
	if !ok {
		return
	}
	sectionID := c.Param("sectionID")

	answers, err := h.portalDBConn.GetRespondentAnswersForSection(modification.ModificationID, sectionID)
	if err != nil {
		slog.Error("error fetching answers", slog.String("modificationID", modification.ModificationID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching answers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"answers": answers})
}

// saveSectionAnswers persists the answers of one section, then discards the
// answers of any question rendered inapplicable by the change.
func (h *HttpEndpoints) saveSectionAnswers(c *gin.Context) {
	modification, ok := h.mustGetModification(c)
	if !ok {
		return
	}
	sectionID := c.Param("sectionID")

	var req struct {
		Answers []questionnaireTypes.RespondentAnswer `json:"answers"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.portalDBConn.UpsertRespondentAnswers(modification.ModificationID, sectionID, req.Answers); err != nil {
		slog.Error("error saving answers", slog.String("modificationID", modification.ModificationID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error saving answers"})
		return
	}

	questions, ok := h.loadAnsweredQuestionSet(c, modification)
	if !ok {
		return
	}

	cleared := engine.ClearInapplicableAnswers(questions)
	if len(cleared) > 0 {
		if _, err := h.portalDBConn.DeleteAnswersForQuestions(modification.ModificationID, cleared); err != nil {
			slog.Error("error clearing inapplicable answers", slog.String("modificationID", modification.ModificationID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error clearing inapplicable answers"})
			return
		}
		slog.Debug("cleared answers of inapplicable questions",
			slog.String("modificationID", modification.ModificationID),
			slog.Int("count", len(cleared)))
	}

	c.JSON(http.StatusOK, gin.H{"clearedQuestions": cleared})
}

// resolveNavigation computes the next wizard step from the given section and
// persists the resulting navigation state on the modification.
func (h *HttpEndpoints) resolveNavigation(c *gin.Context) {
	modification, ok := h.mustGetModification(c)
	if !ok {
		return
	}
	sectionID := c.Param("sectionID")

	sections, questions, ok := h.loadJourney(c, modification)
	if !ok {
		return
	}

	nav, err := engine.ResolveForwardNavigation(sections, sectionID, engine.SectionAnswerPredicate(questions))
	if err != nil {
		slog.Error("error resolving navigation", slog.String("modificationID", modification.ModificationID), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.portalDBConn.SaveNavigationState(modification.ModificationID, nav); err != nil {
		slog.Error("error saving navigation state", slog.String("modificationID", modification.ModificationID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error saving navigation state"})
		return
	}

	reviewNext := nav.NextSection == ""
	for _, section := range sections {
		if section.ID == nav.NextSection && section.IsLastBeforeReview {
			reviewNext = true
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"navigationState": nav,
		"routeToReview":   reviewNext,
	})
}

// backFromReview finds the section the user should land on when leaving the
// review screen backwards: the earliest incomplete mandatory section, or the
// last section when everything mandatory is complete.
func (h *HttpEndpoints) backFromReview(c *gin.Context) {
	modification, ok := h.mustGetModification(c)
	if !ok {
		return
	}

	sections, questions, ok := h.loadJourney(c, modification)
	if !ok {
		return
	}

	target, err := engine.ResolveBackwardFromReview(sections, engine.SectionAnswerPredicate(questions))
	if err != nil {
		slog.Error("error resolving back from review", slog.String("modificationID", modification.ModificationID), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"route": target.Name,
		"routeParams": gin.H{
			"categoryId": target.CategoryID,
			"sectionId":  target.ID,
		},
	})
}

func (h *HttpEndpoints) submitModification(c *gin.Context) {
	modification, ok := h.mustGetModification(c)
	if !ok {
		return
	}
	if modification.Status != portalDB.MODIFICATION_STATUS_DRAFT {
		c.JSON(http.StatusBadRequest, gin.H{"error": "modification is not in draft state"})
		return
	}

	answers, err := h.portalDBConn.GetRespondentAnswers(modification.ModificationID)
	if err != nil {
		slog.Error("error fetching answers", slog.String("modificationID", modification.ModificationID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching answers"})
		return
	}

	if err := h.respondentService.SubmitAnswerSet(modification.ProjectRecordID, modification.ModificationID, answers); err != nil {
		slog.Error("error submitting answer set", slog.String("modificationID", modification.ModificationID), slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "error submitting answer set"})
		return
	}

	if err := h.portalDBConn.UpdateModificationStatus(modification.ModificationID, portalDB.MODIFICATION_STATUS_SUBMITTED); err != nil {
		slog.Error("error updating modification status", slog.String("modificationID", modification.ModificationID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error updating modification status"})
		return
	}

	token := c.MustGet("validatedToken").(*jwthandling.PortalUserClaims)
	if h.smtpClients != nil && token.Email != "" {
		err := h.smtpClients.SendSubmissionConfirmation(notifications.SubmissionConfirmation{
			FullName:        token.FullName,
			Email:           token.Email,
			ModificationID:  modification.ModificationID,
			ProjectRecordID: modification.ProjectRecordID,
		})
		if err != nil {
			// submission already went through, the missing mail is not fatal
			slog.Error("error sending submission confirmation", slog.String("modificationID", modification.ModificationID), slog.String("error", err.Error()))
		}
	}

	slog.Info("modification submitted", slog.String("modificationID", modification.ModificationID), slog.String("userID", token.Subject))
	c.JSON(http.StatusOK, gin.H{"status": portalDB.MODIFICATION_STATUS_SUBMITTED})
}

func (h *HttpEndpoints) mustGetModification(c *gin.Context) (portalDB.Modification, bool) {
	modificationID := c.Param("modificationID")

	modification, err := h.portalDBConn.GetModification(modificationID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "modification not found"})
			return modification, false
		}
		slog.Error("error fetching modification", slog.String("modificationID", modificationID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching modification"})
		return modification, false
	}
	return modification, true
}

// loadAnsweredQuestionSet assembles the full question set of the
// modification's category and applies the saved draft answers.
func (h *HttpEndpoints) loadAnsweredQuestionSet(c *gin.Context, modification portalDB.Modification) ([]questionnaireTypes.Question, bool) {
	questions, err := h.contentService.GetQuestionSet(c.Request.Context(), modification.CategoryID)
	if err != nil {
		slog.Error("error fetching question set", slog.String("categoryID", modification.CategoryID), slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "error fetching question set"})
		return nil, false
	}

	answers, err := h.portalDBConn.GetRespondentAnswers(modification.ModificationID)
	if err != nil {
		slog.Error("error fetching answers", slog.String("modificationID", modification.ModificationID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching answers"})
		return nil, false
	}

	engine.ApplySavedAnswers(questions, answers)
	return questions, true
}

func (h *HttpEndpoints) loadJourney(c *gin.Context, modification portalDB.Modification) ([]questionnaireTypes.Section, []questionnaireTypes.Question, bool) {
	sections, err := h.contentService.GetSections(c.Request.Context(), modification.CategoryID)
	if err != nil {
		slog.Error("error fetching sections", slog.String("categoryID", modification.CategoryID), slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "error fetching sections"})
		return nil, nil, false
	}

	questions, ok := h.loadAnsweredQuestionSet(c, modification)
	if !ok {
		return nil, nil, false
	}
	return sections, questions, true
}
