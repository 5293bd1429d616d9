package engine

import (
	"strings"

	questionnaireTypes "github.com/HealthResearchAuthority/rsp-iras-portal-sub005/pkg/questionnaire/types"
)

// HasNonMissingAnswer reports whether the question carries any answer the
// respondent actually supplied.
func HasNonMissingAnswer(question questionnaireTypes.Question) bool {
	switch question.DataType {
	case questionnaireTypes.DATA_TYPE_SINGLE_CHOICE:
		return question.SelectedOption != ""
	case questionnaireTypes.DATA_TYPE_MULTI_CHOICE:
		return len(question.SelectedAnswerIDs()) > 0
	case questionnaireTypes.DATA_TYPE_FREE_TEXT:
		return strings.TrimSpace(question.AnswerText) != ""
	default:
		return false
	}
}

// SectionAnswerPredicate builds the per-section answered check the navigation
// resolver expects, from a fully materialized question set.
func SectionAnswerPredicate(questions []questionnaireTypes.Question) HasAnswersFn {
	return func(sectionID string) bool {
		for _, question := range questions {
			if question.SectionID != sectionID {
				continue
			}
			if HasNonMissingAnswer(question) {
				return true
			}
		}
		return false
	}
}

// ApplySavedAnswers copies persisted respondent answers onto the questions of
// a freshly assembled question set.
func ApplySavedAnswers(questions []questionnaireTypes.Question, saved []questionnaireTypes.RespondentAnswer) {
	answersByQuestion := make(map[string]questionnaireTypes.RespondentAnswer, len(saved))
	for _, answer := range saved {
		answersByQuestion[answer.QuestionID] = answer
	}

	for i := range questions {
		answer, ok := answersByQuestion[questions[i].ID]
		if !ok {
			continue
		}
		questions[i].SelectedOption = answer.SelectedOption
		questions[i].AnswerText = answer.AnswerText
		for j := range questions[i].Answers {
			questions[i].Answers[j].IsSelected = containsOption(answer.SelectedAnswers, questions[i].Answers[j].ID)
		}
	}
}

// ClearInapplicableAnswers discards the answers of every question whose
// prerequisite is no longer met and returns the ids of the cleared questions.
// This is the caller-side companion of ShouldResetQuestionAnswers.
func ClearInapplicableAnswers(questions []questionnaireTypes.Question) []string {
	cleared := []string{}
	for i := range questions {
		if !ShouldResetQuestionAnswers(&questions[i], questions) {
			continue
		}
		if !HasNonMissingAnswer(questions[i]) {
			continue
		}
		resetAnswers(&questions[i])
		cleared = append(cleared, questions[i].ID)
	}
	return cleared
}

func resetAnswers(question *questionnaireTypes.Question) {
	question.SelectedOption = ""
	question.AnswerText = ""
	for i := range question.Answers {
		question.Answers[i].IsSelected = false
	}
}
