package engine

import (
	"sort"

	questionnaireTypes "github.com/HealthResearchAuthority/rsp-iras-portal-sub005/pkg/questionnaire/types"
)

// IsRuleApplicable decides whether a question should currently be shown,
// based on the answers present on the other questions of the set. Rules
// without a parent question reference are skipped. A question whose rules all
// reference missing parents, or that has no rules at all, evaluates to false.
//
// Apart from recording each condition's outcome on its IsApplicable field,
// evaluation has no side effects.
func IsRuleApplicable(question *questionnaireTypes.Question, allQuestions []questionnaireTypes.Question) bool {
	rules := parentReferencingRules(question)
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Sequence < rules[j].Sequence
	})

	andResults := []bool{}
	orResults := []bool{}
	for _, rule := range rules {
		result := evaluateRule(rule, allQuestions)
		if rule.Mode == questionnaireTypes.MODE_OR {
			orResults = append(orResults, result)
		} else {
			andResults = append(andResults, result)
		}
	}
	return combineGroups(andResults, orResults)
}

// ShouldResetQuestionAnswers signals that a question's prerequisite is no
// longer met and any previously entered answer should be discarded. The
// engine never clears answers itself; that is the caller's job.
func ShouldResetQuestionAnswers(question *questionnaireTypes.Question, allQuestions []questionnaireTypes.Question) bool {
	if len(parentReferencingRules(question)) == 0 {
		return false
	}
	return !IsRuleApplicable(question, allQuestions)
}

func parentReferencingRules(question *questionnaireTypes.Question) []*questionnaireTypes.Rule {
	rules := []*questionnaireTypes.Rule{}
	for i := range question.Rules {
		if question.Rules[i].ParentQuestionID == "" {
			continue
		}
		rules = append(rules, &question.Rules[i])
	}
	return rules
}

func evaluateRule(rule *questionnaireTypes.Rule, allQuestions []questionnaireTypes.Question) bool {
	parent := findQuestion(allQuestions, rule.ParentQuestionID)
	if parent == nil {
		// dangling parent reference fails closed
		return false
	}

	andResults := []bool{}
	orResults := []bool{}
	for i := range rule.Conditions {
		condition := &rule.Conditions[i]
		if condition.Operator != questionnaireTypes.OPERATOR_IN {
			continue
		}

		result, noSelection := evaluateCondition(condition, parent)
		if condition.Negate && !noSelection {
			// negation must never turn an unanswered parent into a match
			result = !result
		}
		condition.IsApplicable = result

		if condition.Mode == questionnaireTypes.MODE_OR {
			orResults = append(orResults, result)
		} else {
			andResults = append(andResults, result)
		}
	}
	return combineGroups(andResults, orResults)
}

// evaluateCondition checks a single condition against the parent question's
// current selection. The second return value reports that the parent has no
// selection yet, which suppresses negation at the caller.
func evaluateCondition(condition *questionnaireTypes.Condition, parent *questionnaireTypes.Question) (result bool, noSelection bool) {
	switch parent.DataType {
	case questionnaireTypes.DATA_TYPE_SINGLE_CHOICE:
		if parent.SelectedOption == "" {
			return false, true
		}
		return containsOption(condition.ParentOptions, parent.SelectedOption), false
	case questionnaireTypes.DATA_TYPE_MULTI_CHOICE:
		selected := parent.SelectedAnswerIDs()
		if len(selected) == 0 {
			return false, true
		}
		overlap := 0
		for _, answerID := range selected {
			if containsOption(condition.ParentOptions, answerID) {
				overlap++
			}
		}
		switch condition.OptionType {
		case questionnaireTypes.OPTION_TYPE_SINGLE:
			return len(selected) == 1 && overlap == 1, false
		case questionnaireTypes.OPTION_TYPE_EXACT:
			return overlap == len(selected), false
		default:
			return overlap > 0, false
		}
	default:
		return false, false
	}
}

// combineGroups merges an AND bucket and an OR bucket of results into a
// single outcome. The same grouping applies at the rule level and at the
// condition level.
func combineGroups(andResults []bool, orResults []bool) bool {
	if len(andResults) == 0 && len(orResults) == 0 {
		return false
	}
	if allFalse(andResults) && allFalse(orResults) {
		return false
	}
	if allTrue(andResults) {
		return true
	}
	return anyTrue(orResults)
}

func findQuestion(questions []questionnaireTypes.Question, questionID string) *questionnaireTypes.Question {
	for i := range questions {
		if questions[i].ID == questionID {
			return &questions[i]
		}
	}
	return nil
}

func containsOption(options []string, value string) bool {
	for _, option := range options {
		if option == value {
			return true
		}
	}
	return false
}

func allTrue(results []bool) bool {
	for _, r := range results {
		if !r {
			return false
		}
	}
	return true
}

func allFalse(results []bool) bool {
	for _, r := range results {
		if r {
			return false
		}
	}
	return true
}

func anyTrue(results []bool) bool {
	for _, r := range results {
		if r {
			return true
		}
	}
	return false
}
