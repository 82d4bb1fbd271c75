package httpclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/Barcodehub/metrics-api-reactive/pkg/apihelpers"
)

const (
	HEADER_MESSAGE_ID = "X-Message-Id"
)

type ClientConfig struct {
	RootURL                   string
	APIKey                    string
	MutualTLSCertificatePaths *apihelpers.CertificatePaths
	Timeout                   time.Duration
}

// StatusError is returned for every non-2xx upstream response, so callers can
// translate status classes into their own error taxonomy.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d from %s", e.StatusCode, e.URL)
}

func (e *StatusError) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

func (e *StatusError) IsServerError() bool {
	return e.StatusCode >= 500
}

// RunHTTPGetCall performs a GET request against RootURL+pathname and returns the
// raw response body. The message id is propagated in the X-Message-Id header.
func (cConfig ClientConfig) RunHTTPGetCall(pathname string, messageID string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, cConfig.RootURL+pathname, nil)
	if err != nil {
		slog.Error("unexpected error in preparing http request", slog.String("error", err.Error()))
		return nil, err
	}
	return cConfig.runRequest(req, messageID)
}

// RunHTTPPostCall performs a POST request with a JSON encoded payload.
func (cConfig ClientConfig) RunHTTPPostCall(pathname string, messageID string, payload interface{}) ([]byte, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, cConfig.RootURL+pathname, bytes.NewBuffer(jsonData))
	if err != nil {
		slog.Error("unexpected error in preparing http request", slog.String("error", err.Error()))
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return cConfig.runRequest(req, messageID)
}

func (cConfig ClientConfig) runRequest(req *http.Request, messageID string) ([]byte, error) {
	transport, err := getTransportWithMTLSConfig(cConfig.MutualTLSCertificatePaths)
	if err != nil {
		slog.Error("Error creating transport with mTLS config", slog.String("error", err.Error()))
		return nil, err
	}

	client := &http.Client{
		Timeout: cConfig.Timeout,
	}
	if transport != nil {
		client.Transport = transport
	}

	if cConfig.APIKey != "" {
		req.Header.Set("Api-Key", cConfig.APIKey)
	}
	if messageID != "" {
		req.Header.Set(HEADER_MESSAGE_ID, messageID)
	}

	resp, err := client.Do(req)
	if err != nil {
		slog.Error("unexpected error in http call", slog.String("error", err.Error()))
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Error("Error reading response body", slog.String("error", err.Error()))
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return body, &StatusError{
			StatusCode: resp.StatusCode,
			URL:        req.URL.String(),
		}
	}
	return body, nil
}

func getTransportWithMTLSConfig(mTLSCertificatePaths *apihelpers.CertificatePaths) (*http.Transport, error) {
	if mTLSCertificatePaths == nil {
		return nil, nil
	}

	tlsConfig, err := apihelpers.LoadTLSConfig(*mTLSCertificatePaths)
	if err != nil {
		return nil, err
	}

	return &http.Transport{
		TLSClientConfig: tlsConfig,
	}, nil
}
