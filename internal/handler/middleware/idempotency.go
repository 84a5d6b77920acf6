package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"shareit/internal/handler/httperr"
	"shareit/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const (
	HeaderIdempotencyKey = "Idempotency-Key"
	headerReplayed       = "Idempotent-Replayed"

	maxIdempotencyKeyLen = 255
)

var (
	errKeyTooLong    = errors.New("idempotency key too long")
	errKeyReused     = errors.New("idempotency key reused with a different request")
	errKeyInProgress = errors.New("request with this idempotency key is still in progress")
)

type bodyRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// NewIdempotencyMiddleware replays the stored response for a repeated
// Idempotency-Key. Keys are scoped to the actor and route. Requests without a
// key, or with no store configured, pass straight through. A store outage
// fails open.
func NewIdempotencyMiddleware(store shared.IdempotencyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(HeaderIdempotencyKey)
		if key == "" || store == nil {
			c.Next()
			return
		}
		if len(key) > maxIdempotencyKeyLen {
			httperr.AbortWithError(c, http.StatusBadRequest, errKeyTooLong, errKeyTooLong.Error(), nil)
			return
		}

		payload, err := io.ReadAll(c.Request.Body)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body", nil)
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(payload))

		actorID, _ := GetActorID(c)
		scoped := fmt.Sprintf("%d:%s:%s", actorID, c.FullPath(), key)
		hash := requestHash(payload)
		ctx := c.Request.Context()

		existing, acquired, err := store.Reserve(ctx, scoped, hash)
		if err != nil {
			slog.Warn("idempotency store unavailable", "error", err.Error())
			c.Next()
			return
		}
		if !acquired {
			replay(c, existing, hash)
			return
		}

		rec := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = rec
		c.Next()

		status := rec.Status()
		if status >= http.StatusInternalServerError {
			if err := store.Release(ctx, scoped); err != nil {
				slog.Warn("failed to release idempotency key", "error", err.Error())
			}
			return
		}
		err = store.Complete(ctx, scoped, shared.IdempotencyRecord{
			RequestHash: hash,
			Status:      status,
			Body:        rec.body.Bytes(),
		})
		if err != nil {
			slog.Warn("failed to store idempotent response", "error", err.Error())
		}
	}
}

func replay(c *gin.Context, existing *shared.IdempotencyRecord, hash string) {
	switch {
	case existing.RequestHash != hash:
		httperr.AbortWithError(c, http.StatusConflict, errKeyReused, errKeyReused.Error(), nil)
	case existing.State != shared.IdempotencyCompleted:
		httperr.AbortWithError(c, http.StatusConflict, errKeyInProgress, errKeyInProgress.Error(), nil)
	default:
		c.Header(headerReplayed, "true")
		c.Data(existing.Status, "application/json; charset=utf-8", existing.Body)
		c.Abort()
	}
}

func requestHash(payload []byte) string {
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
