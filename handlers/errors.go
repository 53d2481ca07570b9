package handlers

import (
	"net/http"

	"clinicdesk/backend"
	"clinicdesk/utils"

	"github.com/gin-gonic/gin"
)

// respondBackendError maps a classified upstream failure onto our response.
// A session-expired 401 passes through as a bare 401 so the dashboards'
// global sign-out handling catches it like any other expired session.
func respondBackendError(c *gin.Context, err error) {
	be, ok := backend.AsError(err)
	if !ok {
		utils.JSONError(c, http.StatusInternalServerError, "Something went wrong, please try again", err.Error())
		return
	}

	switch be.Kind {
	case backend.KindSessionExpired:
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": be.Message})
	case backend.KindPermissionDenied:
		utils.JSONError(c, http.StatusForbidden, be.Message, be.Detail)
	case backend.KindNotFound:
		utils.JSONError(c, http.StatusNotFound, be.Message, be.Detail)
	case backend.KindMalformed:
		utils.JSONError(c, http.StatusBadRequest, be.Message, be.Detail)
	default:
		utils.JSONError(c, http.StatusBadGateway, be.Message, be.Detail)
	}
}
