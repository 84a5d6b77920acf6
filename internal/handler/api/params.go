package api

import (
	"net/http"
	"strconv"

	"shareit/internal/handler/httperr"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errNoActor = errs.New("actor not resolved")

// pathID parses a numeric path parameter and aborts with 400 when it is not one.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return 0, false
	}
	return id, true
}

func actorID(c *gin.Context) (int64, bool) {
	id, ok := middleware.GetActorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errNoActor, "Missing "+middleware.HeaderActorID+" header", nil)
		return 0, false
	}
	return id, true
}
