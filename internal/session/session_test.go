package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtregistry/admin-api/pkg/logger"
)

const testSecret = "registry-test-secret"

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func testRouter(required bool) (*gin.Engine, *Identity, *bool) {
	gin.SetMode(gin.TestMode)
	log, _ := logger.NewLogger("error", "json")

	var seen Identity
	var anonymous bool

	router := gin.New()
	router.Use(Middleware(testSecret, required, log))
	router.GET("/whoami", func(c *gin.Context) {
		if identity, ok := FromContext(c); ok {
			seen = *identity
		} else {
			anonymous = true
		}
		c.Status(http.StatusOK)
	})

	return router, &seen, &anonymous
}

func TestMiddlewareDecodesIdentity(t *testing.T) {
	router, seen, _ := testRouter(false)

	token := signedToken(t, jwt.MapClaims{
		"sub":   "u-42",
		"name":  "R. Adeyemi",
		"email": "r.adeyemi@example.org",
		"role":  "registrar",
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u-42", seen.UserID)
	assert.Equal(t, "R. Adeyemi", seen.Name)
	assert.Equal(t, "registrar", seen.Role)
}

func TestMiddlewareOptionalAllowsAnonymous(t *testing.T) {
	router, _, anonymous := testRouter(false)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/whoami", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *anonymous)
}

func TestMiddlewareRequiredRejectsBadTokens(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not a bearer token", "Basic abc"},
		{"garbage token", "Bearer not.a.jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _, _ := testRouter(true)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
