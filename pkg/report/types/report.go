package types

import (
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrMissingBootcampID   = errors.New("bootcamp ID cannot be empty")
	ErrMissingBootcampName = errors.New("bootcamp name cannot be empty")
)

// BootcampReport is the denormalized aggregate persisted for each bootcamp.
// bootcampId is the business key; the storage ID stays stable across re-registrations.
type BootcampReport struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	BootcampID          int64              `bson:"bootcampId" json:"bootcampId"`
	BootcampName        string             `bson:"bootcampName" json:"bootcampName"`
	BootcampDescription string             `bson:"bootcampDescription,omitempty" json:"bootcampDescription,omitempty"`
	LaunchDate          string             `bson:"launchDate,omitempty" json:"launchDate,omitempty"`
	Duration            int                `bson:"duration,omitempty" json:"duration,omitempty"`
	CapacityCount       int                `bson:"capacityCount" json:"capacityCount"`
	TechnologyCount     int                `bson:"technologyCount" json:"technologyCount"`
	EnrolledUsersCount  int                `bson:"enrolledUsersCount" json:"enrolledUsersCount"`
	EnrolledUsers       []UserEnrollment   `bson:"enrolledUsers" json:"enrolledUsers"`
	Capacities          []CapacityDetail   `bson:"capacities" json:"capacities"`
	CreatedAt           time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type CapacityDetail struct {
	CapacityID   int64              `bson:"capacityId" json:"capacityId"`
	CapacityName string             `bson:"capacityName" json:"capacityName"`
	Technologies []TechnologyDetail `bson:"technologies" json:"technologies"`
}

type TechnologyDetail struct {
	TechnologyID   int64  `bson:"technologyId" json:"technologyId"`
	TechnologyName string `bson:"technologyName" json:"technologyName"`
}

type UserEnrollment struct {
	UserID    int64  `bson:"userId" json:"userId"`
	UserName  string `bson:"userName" json:"userName"`
	UserEmail string `bson:"userEmail" json:"userEmail"`
}

// BootcampInfo is the upstream catalog snapshot, it is never persisted on its own.
type BootcampInfo struct {
	ID          int64
	Name        string
	Description string
	LaunchDate  string
	Duration    int
	Capacities  []CapacityDetail
}

func (r BootcampReport) Validate() error {
	if r.BootcampID < 1 {
		return ErrMissingBootcampID
	}
	if strings.TrimSpace(r.BootcampName) == "" {
		return ErrMissingBootcampName
	}
	return nil
}

// TechnologyCountOf sums the technology list lengths over all capacities.
func TechnologyCountOf(capacities []CapacityDetail) int {
	count := 0
	for _, capacity := range capacities {
		count += len(capacity.Technologies)
	}
	return count
}
