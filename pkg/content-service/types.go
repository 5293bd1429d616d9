package contentservice

import (
	questionnaireTypes "github.com/HealthResearchAuthority/rsp-iras-portal-sub005/pkg/questionnaire/types"
)

// Wire shapes of the question set service.

type QuestionSetResponse struct {
	CategoryID string        `json:"categoryId"`
	Questions  []QuestionDTO `json:"questions"`
}

type QuestionDTO struct {
	QuestionID     string                    `json:"questionId"`
	SectionID      string                    `json:"sectionId"`
	CategoryID     string                    `json:"categoryId"`
	QuestionText   string                    `json:"questionText"`
	QuestionFormat string                    `json:"questionFormat"`
	IsMandatory    bool                      `json:"isMandatory"`
	Answers        []AnswerDTO               `json:"answers,omitempty"`
	Rules          []questionnaireTypes.Rule `json:"rules,omitempty"`
}

type AnswerDTO struct {
	AnswerID   string `json:"answerId"`
	AnswerText string `json:"answerText"`
}

type SectionsResponse struct {
	CategoryID string                       `json:"categoryId"`
	Sections   []questionnaireTypes.Section `json:"sections"`
}

// ToQuestion converts a question set service DTO into the engine's question
// model, with the format string collapsed onto the closed data type set.
func (dto QuestionDTO) ToQuestion() questionnaireTypes.Question {
	question := questionnaireTypes.Question{
		ID:          dto.QuestionID,
		SectionID:   dto.SectionID,
		CategoryID:  dto.CategoryID,
		Text:        dto.QuestionText,
		DataType:    questionnaireTypes.DataTypeFromQuestionFormat(dto.QuestionFormat),
		IsMandatory: dto.IsMandatory,
		Rules:       dto.Rules,
	}
	question.Answers = make([]questionnaireTypes.Answer, len(dto.Answers))
	for i, answer := range dto.Answers {
		question.Answers[i] = questionnaireTypes.Answer{
			ID:   answer.AnswerID,
			Text: answer.AnswerText,
		}
	}
	return question
}
