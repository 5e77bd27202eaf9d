package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func runSession(t *testing.T, cookie *http.Cookie) (string, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	mw := NewSessionMiddleware("dashboard_session", time.Hour, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	err := mw.Session(func(c echo.Context) error {
		seen = SessionID(c)
		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)
	return seen, rec
}

func TestSession_IssuesCookie(t *testing.T) {
	id, rec := runSession(t, nil)

	_, err := uuid.Parse(id)
	require.NoError(t, err)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "dashboard_session", cookies[0].Name)
	assert.Equal(t, id, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, 3600, cookies[0].MaxAge)
}

func TestSession_KeepsValidCookie(t *testing.T) {
	existing := uuid.NewString()
	id, _ := runSession(t, &http.Cookie{Name: "dashboard_session", Value: existing})
	assert.Equal(t, existing, id)
}

func TestSession_ReplacesGarbageCookie(t *testing.T) {
	id, _ := runSession(t, &http.Cookie{Name: "dashboard_session", Value: "../../etc/passwd"})
	assert.NotEqual(t, "../../etc/passwd", id)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}
