package portal

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/HealthResearchAuthority/rsp-iras-portal-sub005/pkg/db"
)

// collection names
const (
	COLLECTION_NAME_MODIFICATIONS      = "modifications"
	COLLECTION_NAME_RESPONDENT_ANSWERS = "respondentAnswers"
)

type PortalDBService struct {
	DBClient     *mongo.Client
	timeout      int
	DBNamePrefix string
}

func NewPortalDBService(configs db.DBConfig) (*PortalDBService, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	defer cancel()

	dbClient, err := mongo.Connect(ctx,
		options.Client().ApplyURI(configs.URI),
		options.Client().SetMaxConnIdleTime(time.Duration(configs.IdleConnTimeout)*time.Second),
		options.Client().SetMaxPoolSize(configs.MaxPoolSize),
	)
	if err != nil {
		return nil, err
	}

	ctx, conCancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	err = dbClient.Ping(ctx, nil)
	defer conCancel()

	if err != nil {
		return nil, err
	}

	portalDBSc := &PortalDBService{
		DBClient:     dbClient,
		timeout:      configs.Timeout,
		DBNamePrefix: configs.DBNamePrefix,
	}

	if err := portalDBSc.ensureIndexes(); err != nil {
		slog.Error("Error ensuring indexes for portal DB", slog.String("error", err.Error()))
	}

	return portalDBSc, nil
}

func (dbService *PortalDBService) getDBName() string {
	return dbService.DBNamePrefix + "portalDB"
}

func (dbService *PortalDBService) collectionModifications() *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName()).Collection(COLLECTION_NAME_MODIFICATIONS)
}

func (dbService *PortalDBService) collectionRespondentAnswers() *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName()).Collection(COLLECTION_NAME_RESPONDENT_ANSWERS)
}

func (dbService *PortalDBService) getContext() (ctx context.Context, cancel context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(dbService.timeout)*time.Second)
}

func (dbService *PortalDBService) ensureIndexes() error {
	slog.Debug("Ensuring indexes for portal DB")
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionModifications().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "modificationId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "projectRecordId", Value: 1},
				{Key: "status", Value: 1},
			},
		},
	})
	if err != nil {
		slog.Error("Error creating indexes for modifications", slog.String("error", err.Error()))
	}

	_, err = dbService.collectionRespondentAnswers().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "modificationId", Value: 1},
				{Key: "answer.questionId", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "modificationId", Value: 1},
				{Key: "sectionId", Value: 1},
			},
		},
	})
	if err != nil {
		slog.Error("Error creating indexes for respondent answers", slog.String("error", err.Error()))
	}

	return nil
}
