package externalservices

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	httpclient "github.com/Barcodehub/metrics-api-reactive/pkg/http-client"
	"github.com/Barcodehub/metrics-api-reactive/pkg/report"
	reportTypes "github.com/Barcodehub/metrics-api-reactive/pkg/report/types"
)

// BootcampClient talks to the bootcamp catalog service. It implements
// report.BootcampGateway.
type BootcampClient struct {
	client httpclient.ClientConfig
}

func NewBootcampClient(config ExternalServiceConfig) *BootcampClient {
	return &BootcampClient{
		client: config.httpClient(),
	}
}

type technologySummaryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type capacitySummaryResponse struct {
	ID           int64                       `json:"id"`
	Name         string                      `json:"name"`
	Technologies []technologySummaryResponse `json:"technologies"`
}

type bootcampInfoResponse struct {
	ID          int64                     `json:"id"`
	Name        string                    `json:"name"`
	Description string                    `json:"description"`
	LaunchDate  string                    `json:"launchDate"`
	Duration    int                       `json:"duration"`
	Capacities  []capacitySummaryResponse `json:"capacities"`
}

func (c *BootcampClient) GetBootcampByID(bootcampID int64, messageID string) (reportTypes.BootcampInfo, error) {
	slog.Debug("calling bootcamp service to get bootcamp by id", slog.Int64("bootcampID", bootcampID), slog.String("messageId", messageID))

	body, err := c.client.RunHTTPGetCall(fmt.Sprintf("/bootcamp/%d", bootcampID), messageID)
	if err != nil {
		var statusErr *httpclient.StatusError
		if errors.As(err, &statusErr) && statusErr.IsClientError() {
			return reportTypes.BootcampInfo{}, report.ErrBootcampNotFound
		}
		return reportTypes.BootcampInfo{}, &report.ServiceError{Service: "bootcamp", Err: err}
	}

	var resp bootcampInfoResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return reportTypes.BootcampInfo{}, &report.ServiceError{Service: "bootcamp", Err: err}
	}

	capacities := make([]reportTypes.CapacityDetail, 0, len(resp.Capacities))
	for _, capacity := range resp.Capacities {
		technologies := make([]reportTypes.TechnologyDetail, 0, len(capacity.Technologies))
		for _, technology := range capacity.Technologies {
			technologies = append(technologies, reportTypes.TechnologyDetail{
				TechnologyID:   technology.ID,
				TechnologyName: technology.Name,
			})
		}
		capacities = append(capacities, reportTypes.CapacityDetail{
			CapacityID:   capacity.ID,
			CapacityName: capacity.Name,
			Technologies: technologies,
		})
	}

	return reportTypes.BootcampInfo{
		ID:          resp.ID,
		Name:        resp.Name,
		Description: resp.Description,
		LaunchDate:  resp.LaunchDate,
		Duration:    resp.Duration,
		Capacities:  capacities,
	}, nil
}

// GetUserIDsByBootcampID returns the ids of the currently enrolled users. A 4xx
// from the catalog means no enrollment data, which is reported as an empty list
// rather than an error.
func (c *BootcampClient) GetUserIDsByBootcampID(bootcampID int64, messageID string) ([]int64, error) {
	slog.Debug("calling bootcamp service to get enrolled user ids", slog.Int64("bootcampID", bootcampID), slog.String("messageId", messageID))

	body, err := c.client.RunHTTPGetCall(fmt.Sprintf("/bootcamp/%d/users", bootcampID), messageID)
	if err != nil {
		var statusErr *httpclient.StatusError
		if errors.As(err, &statusErr) && statusErr.IsClientError() {
			slog.Debug("no enrolled users found for bootcamp", slog.Int64("bootcampID", bootcampID), slog.String("messageId", messageID))
			return []int64{}, nil
		}
		return nil, &report.ServiceError{Service: "bootcamp", Err: err}
	}

	userIDs := []int64{}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &userIDs); err != nil {
			return nil, &report.ServiceError{Service: "bootcamp", Err: err}
		}
	}
	return userIDs, nil
}
