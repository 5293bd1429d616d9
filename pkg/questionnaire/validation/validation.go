package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	questionnaireTypes "github.com/HealthResearchAuthority/rsp-iras-portal-sub005/pkg/questionnaire/types"
)

// Issue describes one problem found in a fetched question set. Issues are
// reported as warnings: the rule engine stays fail closed on malformed rules
// regardless of whether the set was validated upfront.
type Issue struct {
	QuestionID string `json:"questionId,omitempty"`
	SectionID  string `json:"sectionId,omitempty"`
	Message    string `json:"message"`
}

func (i Issue) String() string {
	if i.QuestionID != "" {
		return fmt.Sprintf("question %s: %s", i.QuestionID, i.Message)
	}
	if i.SectionID != "" {
		return fmt.Sprintf("section %s: %s", i.SectionID, i.Message)
	}
	return i.Message
}

type questionStructRules struct {
	ID       string `validate:"required"`
	DataType string `validate:"required,oneof=singleChoice multiChoice freeText"`
}

type Validator struct {
	structValidator *validator.Validate
}

func New() *Validator {
	return &Validator{
		structValidator: validator.New(),
	}
}

// ValidateQuestionSet checks a question set for configuration problems the
// engine would otherwise silently absorb: missing ids, unknown data types,
// duplicate question ids and rules pointing at questions outside the set.
func (v *Validator) ValidateQuestionSet(questions []questionnaireTypes.Question) []Issue {
	issues := []Issue{}

	knownIDs := make(map[string]bool, len(questions))
	for _, question := range questions {
		if knownIDs[question.ID] {
			issues = append(issues, Issue{QuestionID: question.ID, Message: "duplicate question id"})
		}
		knownIDs[question.ID] = true
	}

	for _, question := range questions {
		err := v.structValidator.Struct(questionStructRules{
			ID:       question.ID,
			DataType: string(question.DataType),
		})
		if err != nil {
			issues = append(issues, Issue{QuestionID: question.ID, Message: err.Error()})
		}

		for _, rule := range question.Rules {
			if rule.ParentQuestionID == "" {
				continue
			}
			if !knownIDs[rule.ParentQuestionID] {
				issues = append(issues, Issue{
					QuestionID: question.ID,
					Message:    fmt.Sprintf("rule references unknown parent question %s", rule.ParentQuestionID),
				})
			}
			if rule.ParentQuestionID == question.ID {
				issues = append(issues, Issue{QuestionID: question.ID, Message: "rule references its own question"})
			}
		}
	}

	return issues
}

// ValidateSections checks the section list of a journey for ordering
// problems, in particular duplicate sequence numbers within a category.
func (v *Validator) ValidateSections(sections []questionnaireTypes.Section) []Issue {
	issues := []Issue{}

	seenSequences := map[string]map[int]bool{}
	for _, section := range sections {
		if section.ID == "" {
			issues = append(issues, Issue{Message: "section without id"})
			continue
		}
		if seenSequences[section.CategoryID] == nil {
			seenSequences[section.CategoryID] = map[int]bool{}
		}
		if seenSequences[section.CategoryID][section.Sequence] {
			issues = append(issues, Issue{
				SectionID: section.ID,
				Message:   fmt.Sprintf("duplicate sequence %d within category %s", section.Sequence, section.CategoryID),
			})
		}
		seenSequences[section.CategoryID][section.Sequence] = true
	}

	return issues
}
