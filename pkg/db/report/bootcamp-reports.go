package report

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	reportPkg "github.com/Barcodehub/metrics-api-reactive/pkg/report"
	reportTypes "github.com/Barcodehub/metrics-api-reactive/pkg/report/types"
)

var mostPopularSort = bson.D{
	primitive.E{Key: "enrolledUsersCount", Value: -1},
	primitive.E{Key: "updatedAt", Value: -1},
}

// SaveReport upserts the report keyed on bootcampId. The replacement document
// carries no _id, so an existing document keeps its storage id across repeated
// registrations and concurrent saves cannot create a duplicate for the same
// bootcampId.
func (dbService *ReportDBService) SaveReport(newReport reportTypes.BootcampReport) (reportTypes.BootcampReport, error) {
	if err := newReport.Validate(); err != nil {
		return reportTypes.BootcampReport{}, err
	}

	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{"bootcampId": newReport.BootcampID}
	newReport.ID = primitive.NilObjectID
	newReport.UpdatedAt = time.Now()

	upsert := true
	rd := options.After
	opts := options.FindOneAndReplaceOptions{
		Upsert:         &upsert,
		ReturnDocument: &rd,
	}
	elem := reportTypes.BootcampReport{}
	err := dbService.collectionBootcampReports().FindOneAndReplace(
		ctx, filter, newReport, &opts,
	).Decode(&elem)
	return elem, err
}

func (dbService *ReportDBService) FindReportByBootcampID(bootcampID int64) (stored reportTypes.BootcampReport, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{"bootcampId": bootcampID}

	err = dbService.collectionBootcampReports().FindOne(ctx, filter).Decode(&stored)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return stored, reportPkg.ErrReportNotFound
	}
	return stored, err
}

// FindMostPopularReport returns the report with the highest enrolledUsersCount.
// Ties break toward the most recently updated report.
func (dbService *ReportDBService) FindMostPopularReport() (stored reportTypes.BootcampReport, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	opts := options.FindOne().SetSort(mostPopularSort)

	err = dbService.collectionBootcampReports().FindOne(ctx, bson.M{}, opts).Decode(&stored)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return stored, reportPkg.ErrReportNotFound
	}
	return stored, err
}

func (dbService *ReportDBService) FindAllReports() (reports []reportTypes.BootcampReport, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	cursor, err := dbService.collectionBootcampReports().Find(ctx, bson.M{})
	if err != nil {
		return reports, err
	}

	defer cursor.Close(ctx)

	err = cursor.All(ctx, &reports)
	return reports, err
}

func (dbService *ReportDBService) UpdateEnrollmentCount(bootcampID int64, newCount int) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{"bootcampId": bootcampID}
	update := bson.M{"$set": bson.M{
		"enrolledUsersCount": newCount,
		"updatedAt":          time.Now(),
	}}

	res, err := dbService.collectionBootcampReports().UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount < 1 {
		return reportPkg.ErrReportNotFound
	}
	return nil
}
