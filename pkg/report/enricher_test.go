package report

import (
	"errors"
	"testing"
	"time"

	reportTypes "github.com/Barcodehub/metrics-api-reactive/pkg/report/types"
)

func storedTestReport() reportTypes.BootcampReport {
	staleTime := time.Now().Add(-24 * time.Hour)
	return reportTypes.BootcampReport{
		BootcampID:          42,
		BootcampName:        "Backend Bootcamp",
		BootcampDescription: "Server side engineering",
		CapacityCount:       2,
		TechnologyCount:     3,
		EnrolledUsersCount:  5,
		EnrolledUsers: []reportTypes.UserEnrollment{
			{UserID: 1}, {UserID: 2}, {UserID: 3}, {UserID: 4}, {UserID: 5},
		},
		CreatedAt: staleTime,
		UpdatedAt: staleTime,
	}
}

func TestEnrichOverwritesStaleEnrollment(t *testing.T) {
	stored := storedTestReport()
	bootcampGateway := &fakeBootcampGateway{userIDs: []int64{10, 11}}
	userGateway := &fakeUserGateway{
		users: []reportTypes.UserEnrollment{
			{UserID: 10, UserName: "Ada"},
			{UserID: 11, UserName: "Linus"},
		},
	}

	enricher := NewReportEnricher(bootcampGateway, userGateway)
	got, err := enricher.Enrich(stored, "msg-1")
	if err != nil {
		t.Fatalf("Enrich() unexpected error: %v", err)
	}

	if got.EnrolledUsersCount != 2 {
		t.Errorf("enrolledUsersCount = %d, want 2 (overwritten, not merged)", got.EnrolledUsersCount)
	}
	if len(got.EnrolledUsers) != 2 {
		t.Errorf("enrolledUsers size = %d, want 2", len(got.EnrolledUsers))
	}
	if !got.UpdatedAt.After(stored.UpdatedAt) {
		t.Errorf("updatedAt %v not after stored %v", got.UpdatedAt, stored.UpdatedAt)
	}

	// metadata fields stay untouched
	if got.BootcampName != stored.BootcampName || got.CapacityCount != stored.CapacityCount || got.TechnologyCount != stored.TechnologyCount {
		t.Errorf("metadata fields changed during enrichment: %+v", got)
	}
	if !got.CreatedAt.Equal(stored.CreatedAt) {
		t.Errorf("createdAt changed during enrichment")
	}
}

func TestEnrichEmptyEnrollment(t *testing.T) {
	stored := storedTestReport()
	bootcampGateway := &fakeBootcampGateway{userIDs: []int64{}}
	userGateway := &fakeUserGateway{}

	enricher := NewReportEnricher(bootcampGateway, userGateway)
	got, err := enricher.Enrich(stored, "msg-1")
	if err != nil {
		t.Fatalf("Enrich() unexpected error: %v", err)
	}

	if got.EnrolledUsersCount != 0 {
		t.Errorf("enrolledUsersCount = %d, want 0", got.EnrolledUsersCount)
	}
	if got.EnrolledUsers == nil || len(got.EnrolledUsers) != 0 {
		t.Errorf("enrolledUsers = %v, want empty list", got.EnrolledUsers)
	}
	if userGateway.calls != 0 {
		t.Errorf("user gateway called %d times for empty id list, want 0", userGateway.calls)
	}
}

func TestEnrichGatewayErrorPropagates(t *testing.T) {
	upstreamErr := &ServiceError{Service: "user", Err: errors.New("status 500")}
	bootcampGateway := &fakeBootcampGateway{userIDs: []int64{10}}
	userGateway := &fakeUserGateway{err: upstreamErr}

	enricher := NewReportEnricher(bootcampGateway, userGateway)
	_, err := enricher.Enrich(storedTestReport(), "msg-1")

	var serviceErr *ServiceError
	if !errors.As(err, &serviceErr) {
		t.Fatalf("Enrich() error = %v, want a ServiceError", err)
	}
}
