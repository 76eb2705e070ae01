package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_CountsByRoute(t *testing.T) {
	e := echo.New()
	e.Use(Middleware)
	e.GET("/cards/:number/verify", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	before := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/cards/:number/verify", "200"))

	for _, number := range []string{"2025COM0001", "2025COM0002"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cards/"+number+"/verify", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	after := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/cards/:number/verify", "200"))
	assert.Equal(t, 2.0, after-before)
}

func TestRecordTransition(t *testing.T) {
	before := testutil.ToFloat64(lifecycleTransitions.WithLabelValues("approve", OutcomeSuccess))
	RecordTransition("approve", OutcomeSuccess)
	assert.Equal(t, 1.0, testutil.ToFloat64(lifecycleTransitions.WithLabelValues("approve", OutcomeSuccess))-before)
}

func TestHandler_Exposes(t *testing.T) {
	RecordPublishError("student.approved")

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "cardportal_event_publish_errors_total"))
}
