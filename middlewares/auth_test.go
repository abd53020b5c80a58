package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backend/entity"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newAuthTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/any", AuthMiddleware(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": utils.CurrentUserID(c)})
	})
	r.GET("/staff", AuthMiddleware(testSecret, entity.RoleManager), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doGet(t *testing.T, r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func mintToken(t *testing.T, userID uint, role entity.Role) string {
	t.Helper()
	token, err := utils.GenerateToken(userID, role, testSecret, time.Hour)
	require.NoError(t, err)
	return token
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	r := newAuthTestRouter()

	w := doGet(t, r, "/any", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsBadToken(t *testing.T) {
	r := newAuthTestRouter()

	w := doGet(t, r, "/any", "not-a-jwt")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// wrong secret
	other, err := utils.GenerateToken(1, entity.RoleCustomer, "other-secret", time.Hour)
	require.NoError(t, err)
	w = doGet(t, r, "/any", other)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRoleGate(t *testing.T) {
	r := newAuthTestRouter()

	// customer passes the plain gate but not the staff gate
	customer := mintToken(t, 7, entity.RoleCustomer)
	require.Equal(t, http.StatusOK, doGet(t, r, "/any", customer).Code)
	require.Equal(t, http.StatusForbidden, doGet(t, r, "/staff", customer).Code)

	// delivery crew is not staff either
	crew := mintToken(t, 8, entity.RoleDeliveryCrew)
	require.Equal(t, http.StatusForbidden, doGet(t, r, "/staff", crew).Code)

	// manager passes, and admin passes every gate
	require.Equal(t, http.StatusOK, doGet(t, r, "/staff", mintToken(t, 9, entity.RoleManager)).Code)
	require.Equal(t, http.StatusOK, doGet(t, r, "/staff", mintToken(t, 10, entity.RoleAdmin)).Code)
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	r := newAuthTestRouter()

	expired, err := utils.GenerateToken(1, entity.RoleCustomer, testSecret, -time.Minute)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, doGet(t, r, "/any", expired).Code)
}
