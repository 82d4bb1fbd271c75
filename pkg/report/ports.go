package report

import (
	reportTypes "github.com/Barcodehub/metrics-api-reactive/pkg/report/types"
)

// BootcampGateway is the contract towards the bootcamp catalog service.
type BootcampGateway interface {
	GetBootcampByID(bootcampID int64, messageID string) (reportTypes.BootcampInfo, error)
	GetUserIDsByBootcampID(bootcampID int64, messageID string) ([]int64, error)
}

// UserGateway is the contract towards the user directory service.
type UserGateway interface {
	GetUsersByIDs(userIDs []int64, messageID string) ([]reportTypes.UserEnrollment, error)
}

// ReportStore is the persistence contract for bootcamp reports.
type ReportStore interface {
	SaveReport(report reportTypes.BootcampReport) (reportTypes.BootcampReport, error)
	FindReportByBootcampID(bootcampID int64) (reportTypes.BootcampReport, error)
	FindMostPopularReport() (reportTypes.BootcampReport, error)
	FindAllReports() ([]reportTypes.BootcampReport, error)
	UpdateEnrollmentCount(bootcampID int64, newCount int) error
}
