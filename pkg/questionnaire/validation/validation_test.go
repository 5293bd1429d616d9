package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	questionnaireTypes "github.com/HealthResearchAuthority/rsp-iras-portal-sub005/pkg/questionnaire/types"
)

func TestValidateQuestionSet(t *testing.T) {
	v := New()

	t.Run("well formed set", func(t *testing.T) {
		issues := v.ValidateQuestionSet([]questionnaireTypes.Question{
			{ID: "Q1", DataType: questionnaireTypes.DATA_TYPE_SINGLE_CHOICE},
			{
				ID:       "Q2",
				DataType: questionnaireTypes.DATA_TYPE_FREE_TEXT,
				Rules: []questionnaireTypes.Rule{
					{Sequence: 1, Mode: questionnaireTypes.MODE_AND, ParentQuestionID: "Q1"},
				},
			},
		})
		assert.Empty(t, issues)
	})

	t.Run("duplicate question id", func(t *testing.T) {
		issues := v.ValidateQuestionSet([]questionnaireTypes.Question{
			{ID: "Q1", DataType: questionnaireTypes.DATA_TYPE_FREE_TEXT},
			{ID: "Q1", DataType: questionnaireTypes.DATA_TYPE_FREE_TEXT},
		})
		assert.Len(t, issues, 1)
		assert.Contains(t, issues[0].Message, "duplicate question id")
	})

	t.Run("dangling parent reference", func(t *testing.T) {
		issues := v.ValidateQuestionSet([]questionnaireTypes.Question{
			{
				ID:       "Q2",
				DataType: questionnaireTypes.DATA_TYPE_FREE_TEXT,
				Rules: []questionnaireTypes.Rule{
					{Sequence: 1, Mode: questionnaireTypes.MODE_AND, ParentQuestionID: "missing"},
				},
			},
		})
		assert.Len(t, issues, 1)
		assert.Contains(t, issues[0].Message, "unknown parent question")
	})

	t.Run("self referencing rule", func(t *testing.T) {
		issues := v.ValidateQuestionSet([]questionnaireTypes.Question{
			{
				ID:       "Q1",
				DataType: questionnaireTypes.DATA_TYPE_FREE_TEXT,
				Rules: []questionnaireTypes.Rule{
					{Sequence: 1, Mode: questionnaireTypes.MODE_AND, ParentQuestionID: "Q1"},
				},
			},
		})
		assert.Len(t, issues, 1)
		assert.Contains(t, issues[0].Message, "its own question")
	})

	t.Run("missing id and unknown data type", func(t *testing.T) {
		issues := v.ValidateQuestionSet([]questionnaireTypes.Question{
			{ID: "", DataType: "somethingElse"},
		})
		assert.NotEmpty(t, issues)
	})
}

func TestValidateSections(t *testing.T) {
	v := New()

	t.Run("unique sequences", func(t *testing.T) {
		issues := v.ValidateSections([]questionnaireTypes.Section{
			{ID: "S1", CategoryID: "C1", Sequence: 1},
			{ID: "S2", CategoryID: "C1", Sequence: 2},
			{ID: "S3", CategoryID: "C2", Sequence: 1},
		})
		assert.Empty(t, issues)
	})

	t.Run("duplicate sequence within category", func(t *testing.T) {
		issues := v.ValidateSections([]questionnaireTypes.Section{
			{ID: "S1", CategoryID: "C1", Sequence: 1},
			{ID: "S2", CategoryID: "C1", Sequence: 1},
		})
		assert.Len(t, issues, 1)
		assert.Equal(t, "S2", issues[0].SectionID)
	})

	t.Run("section without id", func(t *testing.T) {
		issues := v.ValidateSections([]questionnaireTypes.Section{{CategoryID: "C1", Sequence: 1}})
		assert.Len(t, issues, 1)
	})
}
