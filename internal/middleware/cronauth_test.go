package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	pkgLog "shield-srv/pkg/log"
)

func cronRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := pkgLog.Init(pkgLog.ZapConfig{Level: pkgLog.LevelFatal, Mode: pkgLog.ModeProduction, Encoding: pkgLog.EncodingConsole})
	mw := New(l, nil, secret, nil)

	r := gin.New()
	r.POST("/cron/digest", mw.CronAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestCronAuth(t *testing.T) {
	r := cronRouter("super-secret")

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "valid secret", header: "Bearer super-secret", want: http.StatusOK},
		{name: "wrong secret", header: "Bearer nope", want: http.StatusUnauthorized},
		{name: "missing header", header: "", want: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic super-secret", want: http.StatusUnauthorized},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/cron/digest", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}
