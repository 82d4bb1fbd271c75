package main

import (
	"errors"
	"log/slog"
	"time"

	externalservices "github.com/Barcodehub/metrics-api-reactive/pkg/external-services"
	"github.com/Barcodehub/metrics-api-reactive/pkg/report"
	"github.com/Barcodehub/metrics-api-reactive/pkg/utils"
	"github.com/google/uuid"
)

type refreshCounters struct {
	Rebuilt   int
	CountOnly int
	Skipped   int
	Failed    int
}

func minReportAge() time.Duration {
	if conf.MinReportAge == "" {
		return 0
	}
	age, err := utils.ParseDurationString(conf.MinReportAge)
	if err != nil {
		slog.Error("Invalid min_report_age, refreshing all reports", slog.String("value", conf.MinReportAge), slog.String("error", err.Error()))
		return 0
	}
	return age
}

// The refresh job rebuilds every stored report from live upstream data, so the
// persisted documents do not drift from the enrollment state returned by the
// read-time enrichment.
func main() {
	slog.Info("Starting report refresh job")
	start := time.Now()

	if reportDBService == nil {
		slog.Error("Metrics DB not available, exiting")
		return
	}

	bootcampClient := externalservices.NewBootcampClient(conf.ExternalServices.BootcampService)
	userClient := externalservices.NewUserClient(conf.ExternalServices.UserService)

	builder := report.NewReportBuilder(bootcampClient, userClient)
	enricher := report.NewReportEnricher(bootcampClient, userClient)

	storedReports, err := reportDBService.FindAllReports()
	if err != nil {
		slog.Error("Error fetching stored reports", slog.String("error", err.Error()))
		return
	}

	minAge := minReportAge()
	counters := refreshCounters{}
	for _, stored := range storedReports {
		if minAge > 0 && time.Since(stored.UpdatedAt) < minAge {
			counters.Skipped++
			continue
		}
		messageID := uuid.NewString()

		rebuilt, err := builder.Build(stored.BootcampID, messageID)
		if err == nil {
			if _, err := reportDBService.SaveReport(rebuilt); err != nil {
				slog.Error("Error saving rebuilt report", slog.Int64("bootcampID", stored.BootcampID), slog.String("error", err.Error()), slog.String("messageId", messageID))
				counters.Failed++
				continue
			}
			counters.Rebuilt++
			continue
		}

		if errors.Is(err, report.ErrBootcampNotFound) {
			// The bootcamp disappeared from the catalog, keep the last known snapshot.
			slog.Warn("bootcamp no longer present upstream, skipping refresh", slog.Int64("bootcampID", stored.BootcampID), slog.String("messageId", messageID))
			counters.Skipped++
			continue
		}

		// Metadata rebuild failed, try to refresh at least the enrollment count.
		enriched, enrichErr := enricher.Enrich(stored, messageID)
		if enrichErr != nil {
			slog.Error("Error refreshing report", slog.Int64("bootcampID", stored.BootcampID), slog.String("error", err.Error()), slog.String("messageId", messageID))
			counters.Failed++
			continue
		}
		if err := reportDBService.UpdateEnrollmentCount(stored.BootcampID, enriched.EnrolledUsersCount); err != nil {
			slog.Error("Error updating enrollment count", slog.Int64("bootcampID", stored.BootcampID), slog.String("error", err.Error()), slog.String("messageId", messageID))
			counters.Failed++
			continue
		}
		counters.CountOnly++
	}

	slog.Info("Report refresh job completed",
		slog.Int("rebuilt", counters.Rebuilt),
		slog.Int("countOnly", counters.CountOnly),
		slog.Int("skipped", counters.Skipped),
		slog.Int("failed", counters.Failed),
		slog.String("duration", time.Since(start).String()))
}
