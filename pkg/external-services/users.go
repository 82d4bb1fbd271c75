package externalservices

import (
	"encoding/json"
	"log/slog"

	httpclient "github.com/Barcodehub/metrics-api-reactive/pkg/http-client"
	"github.com/Barcodehub/metrics-api-reactive/pkg/report"
	reportTypes "github.com/Barcodehub/metrics-api-reactive/pkg/report/types"
)

// UserClient talks to the user directory service. It implements
// report.UserGateway.
type UserClient struct {
	client httpclient.ClientConfig
}

func NewUserClient(config ExternalServiceConfig) *UserClient {
	return &UserClient{
		client: config.httpClient(),
	}
}

type userIDsRequest struct {
	UserIDs []int64 `json:"userIds"`
}

type userResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// GetUsersByIDs resolves user ids to full records in a single batched call.
// Ids unknown to the directory are simply absent from the result.
func (c *UserClient) GetUsersByIDs(userIDs []int64, messageID string) ([]reportTypes.UserEnrollment, error) {
	slog.Debug("calling user service to get users by ids", slog.Int("count", len(userIDs)), slog.String("messageId", messageID))

	body, err := c.client.RunHTTPPostCall("/users/by-ids", messageID, userIDsRequest{UserIDs: userIDs})
	if err != nil {
		return nil, &report.ServiceError{Service: "user", Err: err}
	}

	var resp []userResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &report.ServiceError{Service: "user", Err: err}
	}

	users := make([]reportTypes.UserEnrollment, 0, len(resp))
	for _, user := range resp {
		users = append(users, reportTypes.UserEnrollment{
			UserID:    user.ID,
			UserName:  user.Name,
			UserEmail: user.Email,
		})
	}
	return users, nil
}
