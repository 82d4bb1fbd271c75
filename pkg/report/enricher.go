package report

import (
	"log/slog"
	"time"

	reportTypes "github.com/Barcodehub/metrics-api-reactive/pkg/report/types"
)

// ReportEnricher refreshes the enrollment fields of an already stored report
// against the current upstream state. Metadata fields are left untouched and the
// result is never written back, it is a read-time revision only.
type ReportEnricher struct {
	bootcampGateway BootcampGateway
	userGateway     UserGateway
}

func NewReportEnricher(bootcampGateway BootcampGateway, userGateway UserGateway) *ReportEnricher {
	return &ReportEnricher{
		bootcampGateway: bootcampGateway,
		userGateway:     userGateway,
	}
}

func (e *ReportEnricher) Enrich(stored reportTypes.BootcampReport, messageID string) (reportTypes.BootcampReport, error) {
	slog.Debug("enriching report with current enrollment data", slog.Int64("bootcampID", stored.BootcampID), slog.String("messageId", messageID))

	currentUserIDs, err := e.bootcampGateway.GetUserIDsByBootcampID(stored.BootcampID, messageID)
	if err != nil {
		return reportTypes.BootcampReport{}, err
	}

	revision := stored
	revision.UpdatedAt = time.Now()

	if len(currentUserIDs) == 0 {
		revision.EnrolledUsersCount = 0
		revision.EnrolledUsers = []reportTypes.UserEnrollment{}
		return revision, nil
	}

	users, err := e.userGateway.GetUsersByIDs(currentUserIDs, messageID)
	if err != nil {
		return reportTypes.BootcampReport{}, err
	}
	revision.EnrolledUsersCount = len(users)
	revision.EnrolledUsers = users
	return revision, nil
}
