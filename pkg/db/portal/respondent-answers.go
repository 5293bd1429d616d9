package portal

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	questionnaireTypes "github.com/HealthResearchAuthority/rsp-iras-portal-sub005/pkg/questionnaire/types"
)

// UpsertRespondentAnswers saves the answers of one wizard section, one
// document per question.
func (dbService *PortalDBService) UpsertRespondentAnswers(modificationID string, sectionID string, answers []questionnaireTypes.RespondentAnswer) error {
	if len(answers) < 1 {
		return nil
	}

	ctx, cancel := dbService.getContext()
	defer cancel()

	now := time.Now().Unix()
	models := make([]mongo.WriteModel, len(answers))
	for i, answer := range answers {
		filter := bson.M{
			"modificationId":    modificationID,
			"answer.questionId": answer.QuestionID,
		}
		update := bson.M{"$set": bson.M{
			"sectionId": sectionID,
			"answer":    answer,
			"updatedAt": now,
		}}
		models[i] = mongo.NewUpdateOneModel().SetFilter(filter).SetUpdate(update).SetUpsert(true)
	}

	_, err := dbService.collectionRespondentAnswers().BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false))
	return err
}

func (dbService *PortalDBService) GetRespondentAnswers(modificationID string) (answers []questionnaireTypes.RespondentAnswer, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{"modificationId": modificationID}
	cur, err := dbService.collectionRespondentAnswers().Find(ctx, filter)
	if err != nil {
		return answers, err
	}

	docs := []RespondentAnswerDoc{}
	if err = cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	answers = make([]questionnaireTypes.RespondentAnswer, len(docs))
	for i, doc := range docs {
		answers[i] = doc.Answer
	}
	return answers, nil
}

func (dbService *PortalDBService) GetRespondentAnswersForSection(modificationID string, sectionID string) (answers []questionnaireTypes.RespondentAnswer, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{
		"modificationId": modificationID,
		"sectionId":      sectionID,
	}
	cur, err := dbService.collectionRespondentAnswers().Find(ctx, filter)
	if err != nil {
		return answers, err
	}

	docs := []RespondentAnswerDoc{}
	if err = cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	answers = make([]questionnaireTypes.RespondentAnswer, len(docs))
	for i, doc := range docs {
		answers[i] = doc.Answer
	}
	return answers, nil
}

// DeleteAnswersForQuestions removes the saved answers of questions that have
// become inapplicable.
func (dbService *PortalDBService) DeleteAnswersForQuestions(modificationID string, questionIDs []string) (count int64, err error) {
	if len(questionIDs) < 1 {
		return 0, nil
	}

	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{
		"modificationId":    modificationID,
		"answer.questionId": bson.M{"$in": questionIDs},
	}
	res, err := dbService.collectionRespondentAnswers().DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
