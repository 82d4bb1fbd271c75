package report

import (
	"sync"

	reportTypes "github.com/Barcodehub/metrics-api-reactive/pkg/report/types"
)

type fakeBootcampGateway struct {
	info        reportTypes.BootcampInfo
	infoErr     error
	userIDs     []int64
	userIDsErr  error
	infoCalls   int
	userIDCalls int
}

func (g *fakeBootcampGateway) GetBootcampByID(bootcampID int64, messageID string) (reportTypes.BootcampInfo, error) {
	g.infoCalls++
	if g.infoErr != nil {
		return reportTypes.BootcampInfo{}, g.infoErr
	}
	return g.info, nil
}

func (g *fakeBootcampGateway) GetUserIDsByBootcampID(bootcampID int64, messageID string) ([]int64, error) {
	g.userIDCalls++
	if g.userIDsErr != nil {
		return nil, g.userIDsErr
	}
	return g.userIDs, nil
}

type fakeUserGateway struct {
	users   []reportTypes.UserEnrollment
	err     error
	calls   int
	lastIDs []int64
}

func (g *fakeUserGateway) GetUsersByIDs(userIDs []int64, messageID string) ([]reportTypes.UserEnrollment, error) {
	g.calls++
	g.lastIDs = userIDs
	if g.err != nil {
		return nil, g.err
	}
	return g.users, nil
}

type fakeReportStore struct {
	mu             sync.Mutex
	saved          []reportTypes.BootcampReport
	saveErr        error
	savedSignal    chan struct{}
	mostPopular    reportTypes.BootcampReport
	mostPopularErr error
}

func (s *fakeReportStore) SaveReport(newReport reportTypes.BootcampReport) (reportTypes.BootcampReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return reportTypes.BootcampReport{}, s.saveErr
	}
	s.saved = append(s.saved, newReport)
	if s.savedSignal != nil {
		s.savedSignal <- struct{}{}
	}
	return newReport, nil
}

func (s *fakeReportStore) savedReports() []reportTypes.BootcampReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]reportTypes.BootcampReport{}, s.saved...)
}

func (s *fakeReportStore) FindReportByBootcampID(bootcampID int64) (reportTypes.BootcampReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, stored := range s.saved {
		if stored.BootcampID == bootcampID {
			return stored, nil
		}
	}
	return reportTypes.BootcampReport{}, ErrReportNotFound
}

func (s *fakeReportStore) FindMostPopularReport() (reportTypes.BootcampReport, error) {
	if s.mostPopularErr != nil {
		return reportTypes.BootcampReport{}, s.mostPopularErr
	}
	return s.mostPopular, nil
}

func (s *fakeReportStore) FindAllReports() ([]reportTypes.BootcampReport, error) {
	return s.savedReports(), nil
}

func (s *fakeReportStore) UpdateEnrollmentCount(bootcampID int64, newCount int) error {
	return nil
}
