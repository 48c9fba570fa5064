package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedRouter(secret string) *gin.Engine {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/me", JWTMiddleware(secret), func(c *gin.Context) {
		admin, ok := GetCurrentAdmin(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, admin.Subject)
	})
	return r
}

func get(r http.Handler, header string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT(AdminSubject, "supersecret", time.Now())
	require.NoError(t, err)

	w := get(protectedRouter("supersecret"), "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, AdminSubject, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestJWTMiddlewareRejects(t *testing.T) {
	valid, err := GenerateJWT(AdminSubject, "supersecret", time.Now())
	require.NoError(t, err)
	expired, err := GenerateJWT(AdminSubject, "supersecret", time.Now().Add(-2*TokenTTL))
	require.NoError(t, err)
	noSubject, err := GenerateJWT("", "supersecret", time.Now())
	require.NoError(t, err)

	r := protectedRouter("supersecret")
	for name, header := range map[string]string{
		"missing header": "",
		"wrong scheme":   "Token " + valid,
		"wrong secret":   "Bearer " + mustToken(t, "othersecret"),
		"expired":        "Bearer " + expired,
		"empty subject":  "Bearer " + noSubject,
		"garbage":        "Bearer abc.def.ghi",
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, http.StatusUnauthorized, get(r, header).Code)
		})
	}
}

func mustToken(t *testing.T, secret string) string {
	t.Helper()
	token, err := GenerateJWT(AdminSubject, secret, time.Now())
	require.NoError(t, err)
	return token
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.True(t, CheckPassword(hash, "correct horse"))
	assert.False(t, CheckPassword(hash, "battery staple"))
	assert.False(t, CheckPassword("not a hash", "correct horse"))
}

func TestRequestIDReusesCallerID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}
