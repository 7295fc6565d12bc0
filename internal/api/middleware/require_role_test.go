package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/workmatch/internal/models"
)

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name   string
		id     *models.Identity
		status int
	}{
		{name: "allowed role", id: &models.Identity{UserID: "u", Role: models.RoleClient}, status: http.StatusOK},
		{name: "other role", id: &models.Identity{UserID: "u", Role: models.RoleWorker}, status: http.StatusForbidden},
		{name: "no identity", status: http.StatusForbidden},
	}

	for _, tt := range tests {
		r := gin.New()
		r.Use(func(c *gin.Context) {
			if tt.id != nil {
				c.Set(CtxIdentity, *tt.id)
			}
		})
		r.GET("/", RequireRole(models.RoleClient, models.RoleAdmin), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != tt.status {
			t.Errorf("%s: expected %d, got %d", tt.name, tt.status, rec.Code)
		}
	}
}
