package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getHealth is the liveness probe. It does not touch the journal document.
func getHealth(ctx *gin.Context) {
	ctx.String(http.StatusOK, "OK")
}
