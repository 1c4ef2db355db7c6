package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kamesh952/KalmHolidays/utils"
)

// HealthHandler reports the latest store health snapshot.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Store {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
