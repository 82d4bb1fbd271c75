package apihandlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"

	"github.com/Barcodehub/metrics-api-reactive/pkg/report"
	"github.com/gin-gonic/gin"
)

func HealthCheckHandle(c *gin.Context) {
	serviceInfos := make(map[string]interface{})
	infos, err := os.ReadFile("serviceInfos.json")
	if err != nil {
		slog.Debug("Error reading serviceInfos.json", slog.String("error", err.Error()))
	} else {
		err = json.Unmarshal(infos, &serviceInfos)
		if err != nil {
			slog.Debug("Error unmarshalling serviceInfos.json", slog.String("error", err.Error()))
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"serviceInfos": serviceInfos,
	})
}

type HttpEndpoints struct {
	reportService *report.ReportService
	tokenSignKey  string
}

func NewHTTPHandler(
	tokenSignKey string,
	reportService *report.ReportService,
) *HttpEndpoints {
	return &HttpEndpoints{
		reportService: reportService,
		tokenSignKey:  tokenSignKey,
	}
}
