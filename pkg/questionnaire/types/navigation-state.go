package types

// NavigationState is the single piece of wizard state threaded between
// requests. It is rebuilt from scratch on every resolver call and carries no
// reference to ambient session storage, so callers can persist it wherever
// they like.
type NavigationState struct {
	CurrentSection  string `bson:"currentSection,omitempty" json:"currentSection,omitempty"`
	CurrentCategory string `bson:"currentCategory,omitempty" json:"currentCategory,omitempty"`
	CurrentStage    string `bson:"currentStage,omitempty" json:"currentStage,omitempty"`

	PreviousSection  string `bson:"previousSection,omitempty" json:"previousSection,omitempty"`
	PreviousCategory string `bson:"previousCategory,omitempty" json:"previousCategory,omitempty"`
	PreviousStage    string `bson:"previousStage,omitempty" json:"previousStage,omitempty"`

	NextSection  string `bson:"nextSection,omitempty" json:"nextSection,omitempty"`
	NextCategory string `bson:"nextCategory,omitempty" json:"nextCategory,omitempty"`
	NextStage    string `bson:"nextStage,omitempty" json:"nextStage,omitempty"`
}
