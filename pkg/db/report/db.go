package report

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Barcodehub/metrics-api-reactive/pkg/db"
)

// collection names
const (
	COLLECTION_NAME_BOOTCAMP_REPORTS = "bootcamp-reports"
)

type ReportDBService struct {
	DBClient     *mongo.Client
	timeout      int
	DBNamePrefix string
}

func NewReportDBService(configs db.DBConfig) (*ReportDBService, error) {
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

	reportDBSc := &ReportDBService{
		DBClient:     dbClient,
		timeout:      configs.Timeout,
		DBNamePrefix: configs.DBNamePrefix,
	}

	if err := reportDBSc.ensureIndexes(); err != nil {
		slog.Error("Error ensuring indexes for metrics DB", slog.String("error", err.Error()))
	}

	return reportDBSc, nil
}

func (dbService *ReportDBService) getDBName() string {
	return dbService.DBNamePrefix + "metricsDB"
}

func (dbService *ReportDBService) collectionBootcampReports() *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName()).Collection(COLLECTION_NAME_BOOTCAMP_REPORTS)
}

func (dbService *ReportDBService) getContext() (ctx context.Context, cancel context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(dbService.timeout)*time.Second)
}

func (dbService *ReportDBService) ensureIndexes() error {
	slog.Debug("Ensuring indexes for metrics DB")
	ctx, cancel := dbService.getContext()
	defer cancel()

	collection := dbService.collectionBootcampReports()
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "bootcampId", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "enrolledUsersCount", Value: -1},
				{Key: "updatedAt", Value: -1},
			},
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
