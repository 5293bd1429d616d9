package apihandlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	contentservice "github.com/HealthResearchAuthority/rsp-iras-portal-sub005/pkg/content-service"
	portalDB "github.com/HealthResearchAuthority/rsp-iras-portal-sub005/pkg/db/portal"
	"github.com/HealthResearchAuthority/rsp-iras-portal-sub005/pkg/notifications"
	"github.com/HealthResearchAuthority/rsp-iras-portal-sub005/pkg/questionnaire/validation"
	respondentservice "github.com/HealthResearchAuthority/rsp-iras-portal-sub005/pkg/respondent-service"
)

func HealthCheckHandle(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type HttpEndpoints struct {
	portalDBConn         *portalDB.PortalDBService
	contentService       *contentservice.ContentService
	respondentService    *respondentservice.RespondentService
	smtpClients          *notifications.SmtpClients
	questionSetValidator *validation.Validator
	tokenSignKey         string
	tokenExpiresIn       time.Duration
	apiKeys              []string
}

func NewHTTPHandler(
	tokenSignKey string,
	tokenExpiresIn time.Duration,
	portalDBConn *portalDB.PortalDBService,
	contentService *contentservice.ContentService,
	respondentService *respondentservice.RespondentService,
	smtpClients *notifications.SmtpClients,
	apiKeys []string,
) *HttpEndpoints {
	return &HttpEndpoints{
		portalDBConn:         portalDBConn,
		contentService:       contentService,
		respondentService:    respondentService,
		smtpClients:          smtpClients,
		questionSetValidator: validation.New(),
		tokenSignKey:         tokenSignKey,
		tokenExpiresIn:       tokenExpiresIn,
		apiKeys:              apiKeys,
	}
}
