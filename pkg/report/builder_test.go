package report

import (
	"errors"
	"testing"

	reportTypes "github.com/Barcodehub/metrics-api-reactive/pkg/report/types"
)

func testBootcampInfo() reportTypes.BootcampInfo {
	return reportTypes.BootcampInfo{
		ID:          42,
		Name:        "Backend Bootcamp",
		Description: "Server side engineering",
		LaunchDate:  "2026-01-15",
		Duration:    12,
		Capacities: []reportTypes.CapacityDetail{
			{CapacityID: 1, CapacityName: "Backend", Technologies: []reportTypes.TechnologyDetail{
				{TechnologyID: 1, TechnologyName: "Go"},
				{TechnologyID: 2, TechnologyName: "MongoDB"},
			}},
			{CapacityID: 2, CapacityName: "Cloud", Technologies: []reportTypes.TechnologyDetail{
				{TechnologyID: 3, TechnologyName: "Docker"},
			}},
		},
	}
}

func TestBuildComputesMetrics(t *testing.T) {
	bootcampGateway := &fakeBootcampGateway{
		info:    testBootcampInfo(),
		userIDs: []int64{10, 11, 12},
	}
	userGateway := &fakeUserGateway{
		users: []reportTypes.UserEnrollment{
			{UserID: 10, UserName: "Ada", UserEmail: "ada@example.com"},
			{UserID: 11, UserName: "Linus", UserEmail: "linus@example.com"},
			{UserID: 12, UserName: "Grace", UserEmail: "grace@example.com"},
		},
	}

	builder := NewReportBuilder(bootcampGateway, userGateway)
	got, err := builder.Build(42, "msg-1")
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	if got.CapacityCount != 2 {
		t.Errorf("capacityCount = %d, want 2", got.CapacityCount)
	}
	if got.TechnologyCount != 3 {
		t.Errorf("technologyCount = %d, want 3", got.TechnologyCount)
	}
	if got.EnrolledUsersCount != 3 {
		t.Errorf("enrolledUsersCount = %d, want 3", got.EnrolledUsersCount)
	}
	if got.EnrolledUsersCount != len(got.EnrolledUsers) {
		t.Errorf("enrolledUsersCount = %d, want len(enrolledUsers) = %d", got.EnrolledUsersCount, len(got.EnrolledUsers))
	}
	if got.TechnologyCount != reportTypes.TechnologyCountOf(got.Capacities) {
		t.Errorf("technologyCount = %d, want sum over capacities = %d", got.TechnologyCount, reportTypes.TechnologyCountOf(got.Capacities))
	}
	if got.BootcampName != "Backend Bootcamp" {
		t.Errorf("bootcampName = %q, want %q", got.BootcampName, "Backend Bootcamp")
	}
	if !got.CreatedAt.Equal(got.UpdatedAt) {
		t.Errorf("createdAt %v and updatedAt %v should match on a fresh build", got.CreatedAt, got.UpdatedAt)
	}
}

func TestBuildBootcampNotFound(t *testing.T) {
	bootcampGateway := &fakeBootcampGateway{infoErr: ErrBootcampNotFound}
	userGateway := &fakeUserGateway{}

	builder := NewReportBuilder(bootcampGateway, userGateway)
	_, err := builder.Build(42, "msg-1")
	if !errors.Is(err, ErrBootcampNotFound) {
		t.Errorf("Build() error = %v, want %v", err, ErrBootcampNotFound)
	}
	if userGateway.calls != 0 {
		t.Errorf("user gateway called %d times, want 0", userGateway.calls)
	}
}

func TestBuildServiceErrorPropagates(t *testing.T) {
	upstreamErr := &ServiceError{Service: "bootcamp", Err: errors.New("status 503")}
	bootcampGateway := &fakeBootcampGateway{infoErr: upstreamErr}

	builder := NewReportBuilder(bootcampGateway, &fakeUserGateway{})
	_, err := builder.Build(42, "msg-1")

	var serviceErr *ServiceError
	if !errors.As(err, &serviceErr) {
		t.Fatalf("Build() error = %v, want a ServiceError", err)
	}
	if serviceErr.Service != "bootcamp" {
		t.Errorf("service = %q, want %q", serviceErr.Service, "bootcamp")
	}
}

func TestBuildEmptyEnrollmentSkipsUserLookup(t *testing.T) {
	bootcampGateway := &fakeBootcampGateway{
		info:    testBootcampInfo(),
		userIDs: []int64{},
	}
	userGateway := &fakeUserGateway{}

	builder := NewReportBuilder(bootcampGateway, userGateway)
	got, err := builder.Build(42, "msg-1")
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	if userGateway.calls != 0 {
		t.Errorf("user gateway called %d times for empty id list, want 0", userGateway.calls)
	}
	if got.EnrolledUsersCount != 0 {
		t.Errorf("enrolledUsersCount = %d, want 0", got.EnrolledUsersCount)
	}
	if got.EnrolledUsers == nil || len(got.EnrolledUsers) != 0 {
		t.Errorf("enrolledUsers = %v, want empty list", got.EnrolledUsers)
	}
}

func TestBuildCountsResolvedUsersOnly(t *testing.T) {
	bootcampGateway := &fakeBootcampGateway{
		info:    testBootcampInfo(),
		userIDs: []int64{10, 999},
	}
	// only one of the two requested ids resolves to a user record
	userGateway := &fakeUserGateway{
		users: []reportTypes.UserEnrollment{
			{UserID: 10, UserName: "Ada", UserEmail: "ada@example.com"},
		},
	}

	builder := NewReportBuilder(bootcampGateway, userGateway)
	got, err := builder.Build(42, "msg-1")
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	if got.EnrolledUsersCount != 1 {
		t.Errorf("enrolledUsersCount = %d, want 1 (resolved users, not requested ids)", got.EnrolledUsersCount)
	}
	if len(userGateway.lastIDs) != 2 {
		t.Errorf("user gateway received %d ids, want 2", len(userGateway.lastIDs))
	}
}
