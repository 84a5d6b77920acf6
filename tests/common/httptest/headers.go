//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

const headerReplayed = "Idempotent-Replayed"

// AssertHeaders checks response headers; an empty expected value means the
// header must be absent.
func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		if v == "" {
			assert.Empty(t, w.Header().Values(k), "header %s should not be set", k)
			continue
		}
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertReplayed checks whether a response was served from the idempotency store.
func AssertReplayed(t *testing.T, w *httptest.ResponseRecorder, replayed bool) {
	t.Helper()
	want := ""
	if replayed {
		want = "true"
	}
	AssertHeaders(t, w, map[string]string{headerReplayed: want})
}
