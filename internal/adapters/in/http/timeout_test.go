package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestTimeout_SetsDeadlineOnRequestContext(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	var deadline time.Time
	var ok bool
	handler := RequestTimeout(5 * time.Second)(func(c echo.Context) error {
		deadline, ok = c.Request().Context().Deadline()
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(ctx))
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(5*time.Second), deadline, time.Second)
}
