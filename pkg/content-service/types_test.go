package contentservice

import (
	"testing"

	questionnaireTypes "github.com/HealthResearchAuthority/rsp-iras-portal-sub005/pkg/questionnaire/types"
)

func TestToQuestion(t *testing.T) {
	t.Run("radio button becomes single choice", func(t *testing.T) {
		dto := QuestionDTO{
			QuestionID:     "Q1",
			SectionID:      "S1",
			QuestionFormat: questionnaireTypes.QUESTION_FORMAT_RADIO_BUTTON,
			Answers: []AnswerDTO{
				{AnswerID: "A", AnswerText: "Yes"},
				{AnswerID: "B", AnswerText: "No"},
			},
		}
		q := dto.ToQuestion()
		if q.DataType != questionnaireTypes.DATA_TYPE_SINGLE_CHOICE {
			t.Errorf("unexpected data type: %s", q.DataType)
		}
		if len(q.Answers) != 2 || q.Answers[0].ID != "A" {
			t.Errorf("answers not mapped: %+v", q.Answers)
		}
	})

	t.Run("checkbox becomes multi choice", func(t *testing.T) {
		dto := QuestionDTO{QuestionID: "Q1", QuestionFormat: questionnaireTypes.QUESTION_FORMAT_CHECKBOX}
		if q := dto.ToQuestion(); q.DataType != questionnaireTypes.DATA_TYPE_MULTI_CHOICE {
			t.Errorf("unexpected data type: %s", q.DataType)
		}
	})

	t.Run("unknown format falls back to free text", func(t *testing.T) {
		dto := QuestionDTO{QuestionID: "Q1", QuestionFormat: "Signature pad"}
		if q := dto.ToQuestion(); q.DataType != questionnaireTypes.DATA_TYPE_FREE_TEXT {
			t.Errorf("unexpected data type: %s", q.DataType)
		}
	})
}
