package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"educonexa_backend/internal/model"
	"educonexa_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubResolver map[string]*model.User

func (s stubResolver) CurrentUser(_ context.Context, token string) *model.User {
	return s[token]
}

var (
	owner    = &model.User{UUIDBase: model.UUIDBase{ID: "owner"}, Role: model.RoleUser}
	stranger = &model.User{UUIDBase: model.UUIDBase{ID: "stranger"}, Role: model.RoleUser}
	admin    = &model.User{UUIDBase: model.UUIDBase{ID: "admin"}, Role: model.RoleAdmin}
)

func loader(_ context.Context, id string) (string, error) {
	switch id {
	case "c1":
		return "owner", nil
	case "broken":
		return "", errors.New("db down")
	}
	return "", util.ErrCourseNotFound
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Session(stubResolver{"o": owner, "s": stranger, "a": admin}))
	r.GET("/me", RequireAuth(), func(c *gin.Context) { c.String(http.StatusOK, CurrentUser(c).ID) })
	r.GET("/admin", RequireAdmin(), func(c *gin.Context) { c.Status(http.StatusOK) })
	r.PATCH("/courses/:id", OwnerOrAdmin("id", loader), func(c *gin.Context) { c.String(http.StatusOK, c.Param("id")) })
	return r
}

func do(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: util.SessionCookieName, Value: token})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	r := newRouter()
	assert.Equal(t, http.StatusUnauthorized, do(r, "GET", "/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, "GET", "/me", "unknown").Code)

	w := do(r, "GET", "/me", "o")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "owner", w.Body.String())
}

func TestRequireAdmin(t *testing.T) {
	r := newRouter()
	assert.Equal(t, http.StatusUnauthorized, do(r, "GET", "/admin", "").Code)
	assert.Equal(t, http.StatusForbidden, do(r, "GET", "/admin", "s").Code)
	assert.Equal(t, http.StatusOK, do(r, "GET", "/admin", "a").Code)
}

func TestOwnerOrAdminOrdering(t *testing.T) {
	r := newRouter()
	tests := []struct {
		name, path, token string
		want              int
	}{
		{"anonymous on missing course", "/courses/none", "", http.StatusUnauthorized},
		{"missing course", "/courses/none", "s", http.StatusNotFound},
		{"stranger", "/courses/c1", "s", http.StatusForbidden},
		{"owner", "/courses/c1", "o", http.StatusOK},
		{"admin", "/courses/c1", "a", http.StatusOK},
		{"loader failure", "/courses/broken", "a", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, "PATCH", tt.path, tt.token)
			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusOK {
				assert.Equal(t, "c1", w.Body.String())
			}
		})
	}
}
