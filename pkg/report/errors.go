package report

import (
	"errors"
	"fmt"
)

// Business errors, expected outcomes driven by client input or stored state.
var (
	ErrBootcampNotFound    = errors.New("bootcamp not found")
	ErrNoBootcampsReported = errors.New("no bootcamp reports found")
	ErrInvalidBootcampID   = errors.New("invalid bootcamp ID")

	// ErrReportNotFound is returned by ReportStore lookups that matched nothing.
	ErrReportNotFound = errors.New("report not found for bootcamp")
)

// ServiceError signals a fault of an upstream collaborator or the database.
type ServiceError struct {
	Service string
	Err     error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("error communicating with %s service: %v", e.Service, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}
