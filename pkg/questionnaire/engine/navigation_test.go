package engine

import (
	"testing"

	questionnaireTypes "github.com/HealthResearchAuthority/rsp-iras-portal-sub005/pkg/questionnaire/types"
)

func journeySections() []questionnaireTypes.Section {
	return []questionnaireTypes.Section{
		{ID: "S1", CategoryID: "C1", Name: "project-details", Sequence: 1, IsMandatory: true},
		{ID: "S2", CategoryID: "C1", Name: "participants", Sequence: 2, IsMandatory: true},
		{ID: "S3", CategoryID: "C2", Name: "documents", Sequence: 3, IsLastBeforeReview: true},
	}
}

func answeredSections(answered ...string) HasAnswersFn {
	return func(sectionID string) bool {
		for _, id := range answered {
			if id == sectionID {
				return true
			}
		}
		return false
	}
}

func TestResolveForwardNavigation(t *testing.T) {
	sections := journeySections()

	t.Run("middle section", func(t *testing.T) {
		nav, err := ResolveForwardNavigation(sections, "S2", answeredSections("S1", "S2"))
		if err != nil {
			t.Fatalf("unexpected error: %s", err.Error())
		}
		if nav.CurrentSection != "S2" || nav.CurrentStage != "participants" {
			t.Errorf("unexpected current: %+v", nav)
		}
		if nav.PreviousSection != "S1" || nav.NextSection != "S3" {
			t.Errorf("unexpected neighbours: %+v", nav)
		}
		if nav.NextCategory != "C2" {
			t.Errorf("next category not taken from next section: %+v", nav)
		}
	})

	t.Run("first section has no previous", func(t *testing.T) {
		nav, err := ResolveForwardNavigation(sections, "S1", answeredSections("S1"))
		if err != nil {
			t.Fatalf("unexpected error: %s", err.Error())
		}
		if nav.PreviousSection != "" {
			t.Errorf("expected empty previous, got %s", nav.PreviousSection)
		}
		if nav.NextSection != "S2" {
			t.Errorf("expected next S2, got %s", nav.NextSection)
		}
	})

	t.Run("last section has no next", func(t *testing.T) {
		nav, err := ResolveForwardNavigation(sections, "S3", answeredSections("S1", "S2", "S3"))
		if err != nil {
			t.Fatalf("unexpected error: %s", err.Error())
		}
		if nav.NextSection != "" {
			t.Errorf("expected empty next, got %s", nav.NextSection)
		}
	})

	t.Run("mandatory section without answers blocks forward", func(t *testing.T) {
		nav, err := ResolveForwardNavigation(sections, "S2", answeredSections("S1"))
		if err != nil {
			t.Fatalf("unexpected error: %s", err.Error())
		}
		if nav.NextSection != "" || nav.NextCategory != "" || nav.NextStage != "" {
			t.Errorf("expected blanked next fields: %+v", nav)
		}
		if nav.PreviousSection != "S2" || nav.PreviousStage != "participants" {
			t.Errorf("previous should point at the section itself: %+v", nav)
		}
	})

	t.Run("unsorted input", func(t *testing.T) {
		shuffled := []questionnaireTypes.Section{sections[2], sections[0], sections[1]}
		nav, err := ResolveForwardNavigation(shuffled, "S1", answeredSections("S1"))
		if err != nil {
			t.Fatalf("unexpected error: %s", err.Error())
		}
		if nav.NextSection != "S2" {
			t.Errorf("sequence order should determine neighbours, got next %s", nav.NextSection)
		}
	})

	t.Run("empty section list", func(t *testing.T) {
		if _, err := ResolveForwardNavigation(nil, "S1", nil); err == nil {
			t.Error("expected error for empty section list")
		}
	})

	t.Run("unknown current section", func(t *testing.T) {
		if _, err := ResolveForwardNavigation(sections, "S9", nil); err == nil {
			t.Error("expected error for unknown section id")
		}
	})
}

func TestResolveBackwardFromReview(t *testing.T) {
	sections := journeySections()

	t.Run("all mandatory sections answered", func(t *testing.T) {
		target, err := ResolveBackwardFromReview(sections, answeredSections("S1", "S2", "S3"))
		if err != nil {
			t.Fatalf("unexpected error: %s", err.Error())
		}
		if target.ID != "S3" {
			t.Errorf("expected last section S3, got %s", target.ID)
		}
	})

	t.Run("earliest incomplete mandatory section wins", func(t *testing.T) {
		target, err := ResolveBackwardFromReview(sections, answeredSections("S2", "S3"))
		if err != nil {
			t.Fatalf("unexpected error: %s", err.Error())
		}
		if target.ID != "S1" {
			t.Errorf("expected S1, got %s", target.ID)
		}
	})

	t.Run("later incomplete mandatory section", func(t *testing.T) {
		target, err := ResolveBackwardFromReview(sections, answeredSections("S1", "S3"))
		if err != nil {
			t.Fatalf("unexpected error: %s", err.Error())
		}
		if target.ID != "S2" {
			t.Errorf("expected S2, got %s", target.ID)
		}
	})

	t.Run("optional sections never stop the scan", func(t *testing.T) {
		withOptional := []questionnaireTypes.Section{
			{ID: "S1", CategoryID: "C1", Name: "one", Sequence: 1},
			{ID: "S2", CategoryID: "C1", Name: "two", Sequence: 2},
		}
		target, err := ResolveBackwardFromReview(withOptional, answeredSections())
		if err != nil {
			t.Fatalf("unexpected error: %s", err.Error())
		}
		if target.ID != "S2" {
			t.Errorf("expected last section S2, got %s", target.ID)
		}
	})

	t.Run("incomplete mandatory last section", func(t *testing.T) {
		target, err := ResolveBackwardFromReview(sections, answeredSections("S1"))
		if err != nil {
			t.Fatalf("unexpected error: %s", err.Error())
		}
		if target.ID != "S2" {
			t.Errorf("expected first incomplete mandatory section S2, got %s", target.ID)
		}
	})

	t.Run("empty journey", func(t *testing.T) {
		if _, err := ResolveBackwardFromReview(nil, nil); err == nil {
			t.Error("expected error for empty section list")
		}
	})
}
