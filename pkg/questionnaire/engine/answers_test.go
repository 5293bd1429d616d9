package engine

import (
	"testing"

	questionnaireTypes "github.com/HealthResearchAuthority/rsp-iras-portal-sub005/pkg/questionnaire/types"
)

func TestHasNonMissingAnswer(t *testing.T) {
	t.Run("single choice", func(t *testing.T) {
		q := singleChoiceParent("Q1", "")
		if HasNonMissingAnswer(q) {
			t.Error("no selection should count as missing")
		}
		q.SelectedOption = "A"
		if !HasNonMissingAnswer(q) {
			t.Error("selection should count as answered")
		}
	})

	t.Run("multi choice", func(t *testing.T) {
		if HasNonMissingAnswer(multiChoiceParent("Q1")) {
			t.Error("no ticked answers should count as missing")
		}
		if !HasNonMissingAnswer(multiChoiceParent("Q1", "B")) {
			t.Error("ticked answer should count as answered")
		}
	})

	t.Run("free text", func(t *testing.T) {
		q := questionnaireTypes.Question{DataType: questionnaireTypes.DATA_TYPE_FREE_TEXT, AnswerText: "   "}
		if HasNonMissingAnswer(q) {
			t.Error("whitespace only text should count as missing")
		}
		q.AnswerText = "some detail"
		if !HasNonMissingAnswer(q) {
			t.Error("text should count as answered")
		}
	})
}

func TestSectionAnswerPredicate(t *testing.T) {
	questions := []questionnaireTypes.Question{
		func() questionnaireTypes.Question {
			q := singleChoiceParent("Q1", "A")
			q.SectionID = "S1"
			return q
		}(),
		{ID: "Q2", SectionID: "S2", DataType: questionnaireTypes.DATA_TYPE_FREE_TEXT},
	}
	hasAnswers := SectionAnswerPredicate(questions)

	if !hasAnswers("S1") {
		t.Error("S1 holds an answered question")
	}
	if hasAnswers("S2") {
		t.Error("S2 holds no answered question")
	}
	if hasAnswers("S3") {
		t.Error("unknown section must report no answers")
	}
}

func TestApplySavedAnswers(t *testing.T) {
	questions := []questionnaireTypes.Question{
		singleChoiceParent("Q1", ""),
		multiChoiceParent("Q2"),
		{ID: "Q3", DataType: questionnaireTypes.DATA_TYPE_FREE_TEXT},
	}
	saved := []questionnaireTypes.RespondentAnswer{
		{QuestionID: "Q1", SelectedOption: "B"},
		{QuestionID: "Q2", SelectedAnswers: []string{"A", "C"}},
		{QuestionID: "Q3", AnswerText: "free text answer"},
		{QuestionID: "Q9", AnswerText: "no matching question"},
	}

	ApplySavedAnswers(questions, saved)

	if questions[0].SelectedOption != "B" {
		t.Errorf("single choice answer not applied: %+v", questions[0])
	}
	selected := questions[1].SelectedAnswerIDs()
	if len(selected) != 2 || selected[0] != "A" || selected[1] != "C" {
		t.Errorf("multi choice flags not applied: %v", selected)
	}
	if questions[2].AnswerText != "free text answer" {
		t.Errorf("free text not applied: %+v", questions[2])
	}
}

func TestClearInapplicableAnswers(t *testing.T) {
	parent := singleChoiceParent("Q1", "B")
	dependent := questionWithCondition(questionnaireTypes.Condition{
		Operator:      questionnaireTypes.OPERATOR_IN,
		Mode:          questionnaireTypes.MODE_AND,
		ParentOptions: []string{"A"},
	})
	dependent.AnswerText = "entered while Q1 was A"

	questions := []questionnaireTypes.Question{parent, dependent}
	cleared := ClearInapplicableAnswers(questions)

	if len(cleared) != 1 || cleared[0] != "Q2" {
		t.Fatalf("expected Q2 to be cleared, got %v", cleared)
	}
	if questions[1].AnswerText != "" {
		t.Error("answer text should have been discarded")
	}

	// second pass is a no-op, the answer is already gone
	if cleared := ClearInapplicableAnswers(questions); len(cleared) != 0 {
		t.Errorf("expected no further resets, got %v", cleared)
	}
}
