package report

import (
	"errors"
	"log/slog"

	reportTypes "github.com/Barcodehub/metrics-api-reactive/pkg/report/types"
)

// ReportService exposes the two business operations: fire-and-forget registration
// and the most-popular query.
type ReportService struct {
	store    ReportStore
	builder  *ReportBuilder
	enricher *ReportEnricher
}

func NewReportService(store ReportStore, bootcampGateway BootcampGateway, userGateway UserGateway) *ReportService {
	return &ReportService{
		store:    store,
		builder:  NewReportBuilder(bootcampGateway, userGateway),
		enricher: NewReportEnricher(bootcampGateway, userGateway),
	}
}

// RegisterReport starts the build-and-persist chain in a detached goroutine and
// returns immediately. The goroutine is not tied to any request scope; failures
// are logged and never surfaced to the caller.
func (s *ReportService) RegisterReport(bootcampID int64, messageID string) {
	slog.Info("starting async bootcamp report registration", slog.Int64("bootcampID", bootcampID), slog.String("messageId", messageID))

	go func() {
		if err := s.registerReport(bootcampID, messageID); err != nil {
			slog.Error("bootcamp report registration failed", slog.Int64("bootcampID", bootcampID), slog.String("messageId", messageID), slog.String("error", err.Error()))
			return
		}
		slog.Info("bootcamp report registration completed", slog.Int64("bootcampID", bootcampID), slog.String("messageId", messageID))
	}()
}

func (s *ReportService) registerReport(bootcampID int64, messageID string) error {
	newReport, err := s.builder.Build(bootcampID, messageID)
	if err != nil {
		return err
	}
	if _, err := s.store.SaveReport(newReport); err != nil {
		return err
	}
	return nil
}

// GetMostPopular returns the stored report with the highest enrollment count,
// refreshed with live enrollment data before it is handed out.
func (s *ReportService) GetMostPopular(messageID string) (reportTypes.BootcampReport, error) {
	stored, err := s.store.FindMostPopularReport()
	if err != nil {
		if errors.Is(err, ErrReportNotFound) {
			return reportTypes.BootcampReport{}, ErrNoBootcampsReported
		}
		return reportTypes.BootcampReport{}, err
	}

	enriched, err := s.enricher.Enrich(stored, messageID)
	if err != nil {
		return reportTypes.BootcampReport{}, err
	}

	slog.Info("found most popular bootcamp",
		slog.String("bootcampName", enriched.BootcampName),
		slog.Int("enrolledUsersCount", enriched.EnrolledUsersCount),
		slog.String("messageId", messageID))
	return enriched, nil
}
