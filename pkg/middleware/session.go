package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const sessionIDKey = "session_id"

// SessionMiddleware привязывает запрос к сессии дашборда через cookie.
// Если cookie нет или она испорчена, выдаётся новая.
type SessionMiddleware struct {
	cookieName string
	maxAge     time.Duration
	logger     *zap.Logger
}

func NewSessionMiddleware(cookieName string, maxAge time.Duration, logger *zap.Logger) *SessionMiddleware {
	return &SessionMiddleware{cookieName: cookieName, maxAge: maxAge, logger: logger}
}

func (m *SessionMiddleware) Session(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := ""
		if cookie, err := c.Cookie(m.cookieName); err == nil {
			if _, parseErr := uuid.Parse(cookie.Value); parseErr == nil {
				id = cookie.Value
			}
		}

		if id == "" {
			id = uuid.NewString()
			m.logger.Debug("SessionMiddleware: выдана новая сессия", zap.String("session", id))
		}

		// Продлеваем cookie на каждом запросе, чтобы она жила столько же, сколько сессия в памяти.
		c.SetCookie(&http.Cookie{
			Name:     m.cookieName,
			Value:    id,
			Path:     "/",
			MaxAge:   int(m.maxAge.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		c.Set(sessionIDKey, id)
		return next(c)
	}
}

// SessionID возвращает id сессии, выставленный SessionMiddleware.
func SessionID(c echo.Context) string {
	id, _ := c.Get(sessionIDKey).(string)
	return id
}
