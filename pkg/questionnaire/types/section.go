package types

// Section is one ordered step of a questionnaire journey. Sections are
// supplied by the question set service per category; the engine never
// creates or removes them.
type Section struct {
	ID          string `bson:"sectionId" json:"sectionId"`
	CategoryID  string `bson:"categoryId" json:"categoryId"`
	Name        string `bson:"sectionName" json:"sectionName"`
	Sequence    int    `bson:"sequence" json:"sequence"`
	IsMandatory bool   `bson:"isMandatory,omitempty" json:"isMandatory,omitempty"`

	// Marks the section after which the wizard routes to the review step
	// instead of a further questionnaire stage.
	IsLastBeforeReview bool `bson:"isLastBeforeReview,omitempty" json:"isLastBeforeReview,omitempty"`
}
