package engine

import (
	"errors"
	"fmt"
	"sort"

	questionnaireTypes "github.com/HealthResearchAuthority/rsp-iras-portal-sub005/pkg/questionnaire/types"
)

var ErrEmptySectionList = errors.New("section list is empty")

// HasAnswersFn reports whether a section currently has at least one
// non-missing answer. Callers derive it from the question set and the saved
// respondent answers, see SectionAnswerPredicate.
type HasAnswersFn func(sectionID string) bool

// ResolveForwardNavigation computes the navigation state for the wizard step
// identified by currentSectionID within the supplied journey. Previous and
// next are the immediate neighbours in sequence order. A mandatory section
// without any answer blocks forward movement: the next fields are blanked and
// previous points back at the section itself.
//
// An empty section list or an unknown current section id is a caller bug and
// returns an error; everything else resolves without failure.
func ResolveForwardNavigation(sections []questionnaireTypes.Section, currentSectionID string, hasAnswers HasAnswersFn) (questionnaireTypes.NavigationState, error) {
	nav := questionnaireTypes.NavigationState{}
	if len(sections) == 0 {
		return nav, ErrEmptySectionList
	}

	ordered := sortedBySequence(sections)
	currentIndex := -1
	for i, section := range ordered {
		if section.ID == currentSectionID {
			currentIndex = i
			break
		}
	}
	if currentIndex < 0 {
		return nav, fmt.Errorf("section %s not part of the journey", currentSectionID)
	}

	current := ordered[currentIndex]
	nav.CurrentSection = current.ID
	nav.CurrentCategory = current.CategoryID
	nav.CurrentStage = current.Name

	if currentIndex > 0 {
		previous := ordered[currentIndex-1]
		nav.PreviousSection = previous.ID
		nav.PreviousCategory = previous.CategoryID
		nav.PreviousStage = previous.Name
	}
	if currentIndex < len(ordered)-1 {
		next := ordered[currentIndex+1]
		nav.NextSection = next.ID
		nav.NextCategory = next.CategoryID
		nav.NextStage = next.Name
	}

	if current.IsMandatory && hasAnswers != nil && !hasAnswers(current.ID) {
		// stay here, the caller funnels the user to review of this section
		nav.NextSection = ""
		nav.NextCategory = ""
		nav.NextStage = ""
		nav.PreviousSection = current.ID
		nav.PreviousCategory = current.CategoryID
		nav.PreviousStage = current.Name
	}

	return nav, nil
}

// ResolveBackwardFromReview finds the section to return to when the user
// navigates back from the review screen: the first mandatory section without
// any answer, or the last section of the journey when every mandatory section
// up to it is complete.
func ResolveBackwardFromReview(sections []questionnaireTypes.Section, hasAnswers HasAnswersFn) (questionnaireTypes.Section, error) {
	if len(sections) == 0 {
		return questionnaireTypes.Section{}, ErrEmptySectionList
	}

	ordered := sortedBySequence(sections)
	last := ordered[len(ordered)-1]

	target := ordered[0]
	for _, section := range ordered {
		target = section
		if section.ID == last.ID {
			break
		}
		if section.IsMandatory && (hasAnswers == nil || !hasAnswers(section.ID)) {
			break
		}
	}
	return target, nil
}

func sortedBySequence(sections []questionnaireTypes.Section) []questionnaireTypes.Section {
	ordered := make([]questionnaireTypes.Section, len(sections))
	copy(ordered, sections)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Sequence < ordered[j].Sequence
	})
	return ordered
}
