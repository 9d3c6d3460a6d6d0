package rest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPing(t *testing.T) {
	router := NewRouter()

	t.Run("Ping answers pong", func(t *testing.T) {
		// When: GET /ping is requested
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ping", nil))

		// Then: the server should answer 200 pong
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "pong", recorder.Body.String())
	})

	t.Run("Ping only accepts GET", func(t *testing.T) {
		// When: POST /ping is requested
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/ping", nil))

		// Then: the method should not be allowed
		assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
	})
}
