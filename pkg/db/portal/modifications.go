package portal

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	questionnaireTypes "github.com/HealthResearchAuthority/rsp-iras-portal-sub005/pkg/questionnaire/types"
)

func (dbService *PortalDBService) CreateModification(modification Modification) (Modification, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	now := time.Now().Unix()
	modification.CreatedAt = now
	modification.UpdatedAt = now
	if modification.Status == "" {
		modification.Status = MODIFICATION_STATUS_DRAFT
	}

	ret, err := dbService.collectionModifications().InsertOne(ctx, modification)
	if err != nil {
		return modification, err
	}
	modification.ID = ret.InsertedID.(primitive.ObjectID)
	return modification, nil
}

func (dbService *PortalDBService) GetModification(modificationID string) (modification Modification, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{"modificationId": modificationID}
	err = dbService.collectionModifications().FindOne(ctx, filter).Decode(&modification)
	return modification, err
}

func (dbService *PortalDBService) GetModificationsForProject(projectRecordID string) (modifications []Modification, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{"projectRecordId": projectRecordID}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cur, err := dbService.collectionModifications().Find(ctx, filter, opts)
	if err != nil {
		return modifications, err
	}
	if err = cur.All(ctx, &modifications); err != nil {
		return nil, err
	}
	return modifications, nil
}

func (dbService *PortalDBService) UpdateModificationStatus(modificationID string, status string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{"modificationId": modificationID}
	update := bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now().Unix(),
	}}
	res, err := dbService.collectionModifications().UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount < 1 {
		return errors.New("modification not found")
	}
	return nil
}

func (dbService *PortalDBService) SaveNavigationState(modificationID string, nav questionnaireTypes.NavigationState) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{"modificationId": modificationID}
	update := bson.M{"$set": bson.M{
		"navigationState": nav,
		"updatedAt":       time.Now().Unix(),
	}}
	res, err := dbService.collectionModifications().UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount < 1 {
		return errors.New("modification not found")
	}
	return nil
}

// DeleteStaleDraftModifications removes draft modifications untouched since
// the reference time, together with their saved answers. Used by the cleanup
// job.
func (dbService *PortalDBService) DeleteStaleDraftModifications(notUpdatedSince int64) (count int64, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{
		"status":    MODIFICATION_STATUS_DRAFT,
		"updatedAt": bson.M{"$lt": notUpdatedSince},
	}

	cur, err := dbService.collectionModifications().Find(ctx, filter)
	if err != nil {
		return 0, err
	}
	stale := []Modification{}
	if err = cur.All(ctx, &stale); err != nil {
		return 0, err
	}
	if len(stale) < 1 {
		return 0, nil
	}

	ids := make([]string, len(stale))
	for i, modification := range stale {
		ids[i] = modification.ModificationID
	}

	_, err = dbService.collectionRespondentAnswers().DeleteMany(ctx, bson.M{"modificationId": bson.M{"$in": ids}})
	if err != nil {
		return 0, err
	}

	res, err := dbService.collectionModifications().DeleteMany(ctx, bson.M{"modificationId": bson.M{"$in": ids}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
