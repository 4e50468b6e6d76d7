package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ragtask/utils"
)

// HealthHandler returns the latest background health snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
