package middleware

import (
	"errors"
	"net/http"
	"strconv"

	"shareit/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

const (
	HeaderActorID = "X-Sharer-User-Id"

	ctxActorIDKey = "actor_id"
)

var errMissingActor = errors.New("missing or malformed " + HeaderActorID + " header")

// RequireActor reads the acting user's id from the request header. The id is
// trusted as given; there is no authentication behind it.
func RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(HeaderActorID)
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, errMissingActor, errMissingActor.Error(), nil)
			return
		}
		c.Set(ctxActorIDKey, id)
		c.Next()
	}
}

func GetActorID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ctxActorIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
