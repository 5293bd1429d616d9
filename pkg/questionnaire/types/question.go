package types

import "strings"

// Wire values used by the question set service for the question format.
const (
	QUESTION_FORMAT_BOOLEAN      = "Boolean"
	QUESTION_FORMAT_RADIO_BUTTON = "Radio button"
	QUESTION_FORMAT_LOOKUP_LIST  = "Look-up list"
	QUESTION_FORMAT_DROPDOWN     = "Dropdown"
	QUESTION_FORMAT_CHECKBOX     = "Checkbox"
	QUESTION_FORMAT_TEXT         = "Text"
	QUESTION_FORMAT_DATE         = "Date"
	QUESTION_FORMAT_EMAIL        = "Email"
)

type DataType string

const (
	DATA_TYPE_SINGLE_CHOICE DataType = "singleChoice"
	DATA_TYPE_MULTI_CHOICE  DataType = "multiChoice"
	DATA_TYPE_FREE_TEXT     DataType = "freeText"
)

// DataTypeFromQuestionFormat maps the question format strings of the question
// set service onto the closed set of data types the engine dispatches on.
func DataTypeFromQuestionFormat(format string) DataType {
	switch strings.TrimSpace(format) {
	case QUESTION_FORMAT_BOOLEAN, QUESTION_FORMAT_RADIO_BUTTON, QUESTION_FORMAT_LOOKUP_LIST, QUESTION_FORMAT_DROPDOWN:
		return DATA_TYPE_SINGLE_CHOICE
	case QUESTION_FORMAT_CHECKBOX:
		return DATA_TYPE_MULTI_CHOICE
	default:
		return DATA_TYPE_FREE_TEXT
	}
}

type Question struct {
	ID          string   `bson:"questionId" json:"questionId"`
	SectionID   string   `bson:"sectionId,omitempty" json:"sectionId,omitempty"`
	CategoryID  string   `bson:"categoryId,omitempty" json:"categoryId,omitempty"`
	Text        string   `bson:"questionText,omitempty" json:"questionText,omitempty"`
	DataType    DataType `bson:"dataType" json:"dataType"`
	IsMandatory bool     `bson:"isMandatory,omitempty" json:"isMandatory,omitempty"`

	Answers []Answer `bson:"answers,omitempty" json:"answers,omitempty"`

	// Current answer state; SelectedOption is used for single choice
	// questions, the per-answer IsSelected flags for multi choice and
	// AnswerText for free text.
	SelectedOption string `bson:"selectedOption,omitempty" json:"selectedOption,omitempty"`
	AnswerText     string `bson:"answerText,omitempty" json:"answerText,omitempty"`

	Rules []Rule `bson:"rules,omitempty" json:"rules,omitempty"`
}

type Answer struct {
	ID         string `bson:"answerId" json:"answerId"`
	Text       string `bson:"answerText,omitempty" json:"answerText,omitempty"`
	IsSelected bool   `bson:"isSelected,omitempty" json:"isSelected,omitempty"`
}

// SelectedAnswerIDs returns the ids of the currently ticked answers of a
// multi choice question.
func (q Question) SelectedAnswerIDs() []string {
	selected := []string{}
	for _, answer := range q.Answers {
		if answer.IsSelected {
			selected = append(selected, answer.ID)
		}
	}
	return selected
}

// RespondentAnswer is the persisted answer state for a single question,
// exchanged with the respondent answers store.
type RespondentAnswer struct {
	QuestionID      string   `bson:"questionId" json:"questionId"`
	SelectedOption  string   `bson:"selectedOption,omitempty" json:"selectedOption,omitempty"`
	SelectedAnswers []string `bson:"selectedAnswers,omitempty" json:"selectedAnswers,omitempty"`
	AnswerText      string   `bson:"answerText,omitempty" json:"answerText,omitempty"`
}
