package portal

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	questionnaireTypes "github.com/HealthResearchAuthority/rsp-iras-portal-sub005/pkg/questionnaire/types"
)

const (
	MODIFICATION_STATUS_DRAFT     = "draft"
	MODIFICATION_STATUS_SUBMITTED = "submitted"
)

// Modification is one wizard instance: a set of proposed changes to a project
// record, answered section by section.
type Modification struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ModificationID  string             `bson:"modificationId" json:"modificationId"`
	ProjectRecordID string             `bson:"projectRecordId" json:"projectRecordId"`
	CategoryID      string             `bson:"categoryId" json:"categoryId"`
	Status          string             `bson:"status" json:"status"`
	CreatedBy       string             `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt       int64              `bson:"createdAt" json:"createdAt"`
	UpdatedAt       int64              `bson:"updatedAt" json:"updatedAt"`

	NavigationState questionnaireTypes.NavigationState `bson:"navigationState,omitempty" json:"navigationState,omitempty"`
}

type RespondentAnswerDoc struct {
	ID             primitive.ObjectID                  `bson:"_id,omitempty" json:"id,omitempty"`
	ModificationID string                              `bson:"modificationId" json:"modificationId"`
	SectionID      string                              `bson:"sectionId" json:"sectionId"`
	Answer         questionnaireTypes.RespondentAnswer `bson:"answer" json:"answer"`
	UpdatedAt      int64                               `bson:"updatedAt" json:"updatedAt"`
}
