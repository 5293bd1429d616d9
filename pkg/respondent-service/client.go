package respondentservice

import (
	"fmt"

	httpclient "github.com/HealthResearchAuthority/rsp-iras-portal-sub005/pkg/http-client"
	questionnaireTypes "github.com/HealthResearchAuthority/rsp-iras-portal-sub005/pkg/questionnaire/types"
)

// RespondentService is the client of the downstream respondent answers
// microservice. Draft answers live in the portal DB; the downstream store
// receives the final answer set when a modification is submitted.
type RespondentService struct {
	client httpclient.ClientConfig
}

func NewRespondentService(client httpclient.ClientConfig) *RespondentService {
	return &RespondentService{client: client}
}

type answerSetPayload struct {
	ProjectRecordID string                                `json:"projectRecordId"`
	ModificationID  string                                `json:"modificationId"`
	Answers         []questionnaireTypes.RespondentAnswer `json:"answers"`
}

func (rs *RespondentService) GetAnswerSet(projectRecordID string) ([]questionnaireTypes.RespondentAnswer, error) {
	var resp answerSetPayload
	if err := rs.client.RunHTTPGet(fmt.Sprintf("/respondent-answers/%s", projectRecordID), &resp); err != nil {
		return nil, err
	}
	return resp.Answers, nil
}

func (rs *RespondentService) SubmitAnswerSet(projectRecordID string, modificationID string, answers []questionnaireTypes.RespondentAnswer) error {
	payload := answerSetPayload{
		ProjectRecordID: projectRecordID,
		ModificationID:  modificationID,
		Answers:         answers,
	}
	return rs.client.RunHTTPPost("/respondent-answers", payload, nil)
}
