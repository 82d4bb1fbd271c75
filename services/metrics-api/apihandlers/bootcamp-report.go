package apihandlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	mw "github.com/Barcodehub/metrics-api-reactive/pkg/apihelpers/middlewares"
	"github.com/Barcodehub/metrics-api-reactive/pkg/report"
	"github.com/gin-gonic/gin"
)

// ApiResponse is the envelope used for acknowledgements and error bodies. The
// identifier field carries the correlation id of the request.
type ApiResponse struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Identifier string `json:"identifier"`
	Date       string `json:"date"`
}

type RegisterReportReq struct {
	BootcampID int64 `json:"bootcampId"`
}

func (h *HttpEndpoints) AddBootcampMetricsAPI(rg *gin.RouterGroup) {
	metricsGroup := rg.Group("/metrics/bootcamp")

	metricsGroup.Use(mw.MessageID())
	{
		metricsGroup.POST("/report", mw.RequirePayload(), h.registerBootcampReport)
		metricsGroup.GET("/most-popular",
			mw.GetAndValidateUserJWT(h.tokenSignKey),
			mw.IsAdminUser(),
			h.getMostPopularBootcamp,
		)
	}
}

// registerBootcampReport acknowledges the request right away with 202 and lets
// the registration run to completion in the background. Downstream failures are
// never reported through this endpoint.
func (h *HttpEndpoints) registerBootcampReport(c *gin.Context) {
	messageID := c.GetString(mw.MessageIDKey)

	var req RegisterReportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()), slog.String("messageId", messageID))
		c.JSON(http.StatusBadRequest, newApiResponse("400", report.ErrInvalidBootcampID.Error(), messageID))
		return
	}
	if req.BootcampID < 1 {
		slog.Error("invalid bootcamp id in request", slog.Int64("bootcampID", req.BootcampID), slog.String("messageId", messageID))
		c.JSON(http.StatusBadRequest, newApiResponse("400", report.ErrInvalidBootcampID.Error(), messageID))
		return
	}

	h.reportService.RegisterReport(req.BootcampID, messageID)

	c.JSON(http.StatusAccepted, newApiResponse("202", "Bootcamp report registration initiated", messageID))
}

func (h *HttpEndpoints) getMostPopularBootcamp(c *gin.Context) {
	messageID := c.GetString(mw.MessageIDKey)

	mostPopular, err := h.reportService.GetMostPopular(messageID)
	if err != nil {
		h.renderReportError(c, err, messageID)
		return
	}

	c.JSON(http.StatusOK, mostPopular)
}

func (h *HttpEndpoints) renderReportError(c *gin.Context, err error, messageID string) {
	var serviceErr *report.ServiceError

	switch {
	case errors.Is(err, report.ErrNoBootcampsReported):
		slog.Warn("no bootcamp reports found", slog.String("messageId", messageID))
		c.JSON(http.StatusNotFound, newApiResponse("404", report.ErrNoBootcampsReported.Error(), messageID))
	case errors.As(err, &serviceErr):
		slog.Error("upstream service failure", slog.String("service", serviceErr.Service), slog.String("error", err.Error()), slog.String("messageId", messageID))
		c.JSON(http.StatusInternalServerError, newApiResponse("500", "Error communicating with "+serviceErr.Service+" service", messageID))
	default:
		slog.Error("unexpected error", slog.String("error", err.Error()), slog.String("messageId", messageID))
		c.JSON(http.StatusInternalServerError, newApiResponse("500", "An unexpected error occurred", messageID))
	}
}

func newApiResponse(code string, message string, messageID string) ApiResponse {
	return ApiResponse{
		Code:       code,
		Message:    message,
		Identifier: messageID,
		Date:       time.Now().Format(time.RFC3339),
	}
}
