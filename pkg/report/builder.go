package report

import (
	"log/slog"
	"time"

	reportTypes "github.com/Barcodehub/metrics-api-reactive/pkg/report/types"
)

// ReportBuilder assembles a fresh BootcampReport from the upstream services.
// It is a pure transform over the fetched snapshots, no state is mutated anywhere.
type ReportBuilder struct {
	bootcampGateway BootcampGateway
	userGateway     UserGateway
}

func NewReportBuilder(bootcampGateway BootcampGateway, userGateway UserGateway) *ReportBuilder {
	return &ReportBuilder{
		bootcampGateway: bootcampGateway,
		userGateway:     userGateway,
	}
}

func (b *ReportBuilder) Build(bootcampID int64, messageID string) (reportTypes.BootcampReport, error) {
	slog.Debug("building bootcamp report", slog.Int64("bootcampID", bootcampID), slog.String("messageId", messageID))

	bootcampInfo, err := b.bootcampGateway.GetBootcampByID(bootcampID, messageID)
	if err != nil {
		return reportTypes.BootcampReport{}, err
	}

	// An empty id list is a valid outcome here, only the metadata lookup is fatal.
	userIDs, err := b.bootcampGateway.GetUserIDsByBootcampID(bootcampID, messageID)
	if err != nil {
		return reportTypes.BootcampReport{}, err
	}

	users := []reportTypes.UserEnrollment{}
	if len(userIDs) > 0 {
		users, err = b.userGateway.GetUsersByIDs(userIDs, messageID)
		if err != nil {
			return reportTypes.BootcampReport{}, err
		}
	}

	technologyCount := reportTypes.TechnologyCountOf(bootcampInfo.Capacities)
	slog.Info("bootcamp metrics computed",
		slog.Int64("bootcampID", bootcampID),
		slog.Int("capacityCount", len(bootcampInfo.Capacities)),
		slog.Int("technologyCount", technologyCount),
		slog.Int("enrolledUsersCount", len(users)),
		slog.String("messageId", messageID))

	now := time.Now()
	newReport := reportTypes.BootcampReport{
		BootcampID:          bootcampInfo.ID,
		BootcampName:        bootcampInfo.Name,
		BootcampDescription: bootcampInfo.Description,
		LaunchDate:          bootcampInfo.LaunchDate,
		Duration:            bootcampInfo.Duration,
		CapacityCount:       len(bootcampInfo.Capacities),
		TechnologyCount:     technologyCount,
		EnrolledUsersCount:  len(users),
		EnrolledUsers:       users,
		Capacities:          bootcampInfo.Capacities,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := newReport.Validate(); err != nil {
		return reportTypes.BootcampReport{}, err
	}
	return newReport, nil
}
