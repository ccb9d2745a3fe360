package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthResponse é a resposta do health check
type HealthResponse struct {
	Status      string    `json:"status"`
	Environment string    `json:"environment"`
	Timestamp   time.Time `json:"timestamp"`
}

// Health responde com o ambiente e o horário do servidor
//
//	@Summary	Health check
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	HealthResponse
//	@Router		/health [get]
func Health(env string, now func() time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthResponse{
			Status:      "OK",
			Environment: env,
			Timestamp:   now().UTC(),
		})
	}
}
