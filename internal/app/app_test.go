package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"educonexa_backend/internal/config"
	"educonexa_backend/internal/model"
	"educonexa_backend/internal/util"
	"educonexa_backend/pkg/database"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type envelope struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

type testServer struct {
	t   *testing.T
	app *App
	db  *gorm.DB
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.InitDB(&config.DatabaseConfig{
		Driver:  database.DriverSQLite,
		DSN:     fmt.Sprintf("file:app_%s?mode=memory&cache=shared", name),
		LogMode: "silent",
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	cfg := &config.Config{
		Server:  config.ServerConfig{Port: "0", Mode: "test"},
		JWT:     config.JWTConfig{Secret: "test-secret", ExpireTime: config.DefaultSessionHours * time.Hour},
		Storage: config.StorageConfig{Type: util.StorageLocal, LocalPath: t.TempDir()},
		CORS:    config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
	}
	return &testServer{t: t, app: New(cfg, db, nil), db: db}
}

func (s *testServer) do(method, path string, body interface{}, cookie *http.Cookie) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	s.app.Router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == util.SessionCookieName {
			return c
		}
	}
	t.Fatalf("no %s cookie in response", util.SessionCookieName)
	return nil
}

func (s *testServer) register(name, email string) (*http.Cookie, string) {
	s.t.Helper()
	w, env := s.do(http.MethodPost, "/api/auth/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": "secret123",
	}, nil)
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())

	var data struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	require.NoError(s.t, json.Unmarshal(env.Data, &data))
	return sessionCookie(s.t, w), data.User.ID
}

func (s *testServer) promote(userID string) {
	s.t.Helper()
	require.NoError(s.t, s.db.Model(&model.User{}).Where("id = ?", userID).Update("role", model.RoleAdmin).Error)
}

func decodeID(t *testing.T, raw json.RawMessage) string {
	t.Helper()
	var v struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(raw, &v))
	require.NotEmpty(t, v.ID)
	return v.ID
}

func TestRegisterSetsSessionCookie(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(http.MethodPost, "/api/auth/register", map[string]string{
		"name":     "Ana",
		"email":    "Ana@Example.com",
		"password": "secret123",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, string(env.Data), `"email":"ana@example.com"`)
	assert.Contains(t, string(env.Data), `"role":"USER"`)
	assert.NotContains(t, string(env.Data), "password")

	cookie := sessionCookie(t, w)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 7*24*60*60, cookie.MaxAge)
	assert.False(t, cookie.Secure)

	w, env = s.do(http.MethodGet, "/api/auth/me", nil, cookie)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"name":"Ana"`)

	w, _ = s.do(http.MethodPost, "/api/auth/register", map[string]string{
		"name":     "Ana Again",
		"email":    "ana@example.com",
		"password": "secret123",
	}, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(http.MethodPost, "/api/auth/register", map[string]string{
		"name":     "A",
		"email":    "not-an-email",
		"password": "123",
	}, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Errors, "name")
	assert.Contains(t, env.Errors, "email")
	assert.Contains(t, env.Errors, "password")
}

func TestLoginValidation(t *testing.T) {
	s := newTestServer(t)
	s.register("Bruno", "bruno@example.com")

	w, env := s.do(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "bruno@example.com",
		"password": "12345",
	}, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Errors, "password")
	assert.NotContains(t, env.Errors, "email")
}

func TestLoginAndLogout(t *testing.T) {
	s := newTestServer(t)
	s.register("Bruno", "bruno@example.com")

	w, _ := s.do(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "bruno@example.com",
		"password": "wrong-password",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = s.do(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "BRUNO@example.com",
		"password": "secret123",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cookie := sessionCookie(t, w)
	assert.NotEmpty(t, cookie.Value)

	w, _ = s.do(http.MethodPost, "/api/auth/logout", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	cleared := sessionCookie(t, w)
	assert.Empty(t, cleared.Value)
	assert.True(t, cleared.MaxAge < 0)
}

func TestMeWithoutSession(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(http.MethodGet, "/api/auth/me", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"user":null}`, string(env.Data))

	w, _ = s.do(http.MethodGet, "/api/auth/me", nil, &http.Cookie{Name: util.SessionCookieName, Value: "garbage"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateCourseGuardOrder(t *testing.T) {
	s := newTestServer(t)
	owner, _ := s.register("Owner", "owner@example.com")
	other, _ := s.register("Other", "other@example.com")

	w, env := s.do(http.MethodPost, "/api/courses", map[string]string{
		"title":       "Go from zero",
		"description": "A gentle introduction to Go",
	}, owner)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	courseID := decodeID(t, env.Data)
	assert.Contains(t, string(env.Data), `"status":"DRAFT"`)

	path := "/api/courses/" + courseID
	badBody := map[string]string{"title": "x"}

	w, _ = s.do(http.MethodPatch, path, badBody, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = s.do(http.MethodPatch, "/api/courses/missing", badBody, owner)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = s.do(http.MethodPatch, path, badBody, other)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, env = s.do(http.MethodPatch, path, badBody, owner)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Errors, "title")

	w, env = s.do(http.MethodPatch, path, map[string]string{"status": "PUBLISHED"}, owner)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, string(env.Data), `"status":"PUBLISHED"`)
	assert.Contains(t, string(env.Data), `"title":"Go from zero"`)
}

func TestAdminCanManageOthersCourse(t *testing.T) {
	s := newTestServer(t)
	owner, _ := s.register("Owner", "owner@example.com")
	admin, adminID := s.register("Admin", "admin@example.com")
	s.promote(adminID)

	_, env := s.do(http.MethodPost, "/api/courses", map[string]string{
		"title":       "Databases",
		"description": "Relational modelling basics",
	}, owner)
	courseID := decodeID(t, env.Data)

	w, _ := s.do(http.MethodDelete, "/api/courses/"+courseID, nil, admin)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = s.do(http.MethodGet, "/api/courses/"+courseID, nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCompletingEveryLessonIssuesCertificate(t *testing.T) {
	s := newTestServer(t)
	author, _ := s.register("Author", "author@example.com")
	learner, _ := s.register("Learner", "learner@example.com")

	_, env := s.do(http.MethodPost, "/api/courses", map[string]string{
		"title":       "Testing in Go",
		"description": "Table tests and friends",
	}, author)
	courseID := decodeID(t, env.Data)

	var lessonIDs []string
	for _, title := range []string{"Intro", "Tables", "Fakes"} {
		w, env := s.do(http.MethodPost, "/api/courses/"+courseID+"/lessons", map[string]string{"title": title}, author)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		lessonIDs = append(lessonIDs, decodeID(t, env.Data))
	}

	w, _ := s.do(http.MethodPost, "/api/courses/"+courseID+"/lessons", map[string]string{"title": "Sneaky"}, learner)
	assert.Equal(t, http.StatusForbidden, w.Code)

	expected := []int{33, 67, 100}
	var result struct {
		Progress      int `json:"progress"`
		Certification *struct {
			CertificateCode string `json:"certificateCode"`
		} `json:"certification"`
	}
	for i, id := range lessonIDs {
		w, env := s.do(http.MethodPost, "/api/lessons/"+id+"/complete", nil, learner)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.NoError(t, json.Unmarshal(env.Data, &result))
		assert.Equal(t, expected[i], result.Progress)
	}
	require.NotNil(t, result.Certification)
	code := result.Certification.CertificateCode
	assert.True(t, strings.HasPrefix(code, "CERT-"))

	// completing again changes nothing
	w, env = s.do(http.MethodPost, "/api/lessons/"+lessonIDs[0]+"/complete", nil, learner)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, 100, result.Progress)
	assert.Equal(t, code, result.Certification.CertificateCode)

	w, env = s.do(http.MethodPost, "/api/certifications/self", map[string]string{"courseId": courseID}, learner)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), code)

	w, env = s.do(http.MethodGet, "/api/certifications", nil, learner)
	require.Equal(t, http.StatusOK, w.Code)
	var certs []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &certs))
	assert.Len(t, certs, 1)

	w, env = s.do(http.MethodGet, "/api/enrollments", nil, learner)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"progress":100`)

	w, _ = s.do(http.MethodPost, "/api/lessons/missing/complete", nil, learner)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEnrollCreatedThenOK(t *testing.T) {
	s := newTestServer(t)
	author, _ := s.register("Author", "author@example.com")
	learner, _ := s.register("Learner", "learner@example.com")

	_, env := s.do(http.MethodPost, "/api/courses", map[string]string{
		"title":       "Concurrency",
		"description": "Goroutines and channels",
	}, author)
	courseID := decodeID(t, env.Data)

	w, _ := s.do(http.MethodPost, "/api/enrollments", map[string]string{"courseId": courseID}, learner)
	assert.Equal(t, http.StatusCreated, w.Code)
	w, _ = s.do(http.MethodPost, "/api/enrollments", map[string]string{"courseId": courseID}, learner)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = s.do(http.MethodPost, "/api/enrollments", map[string]string{"courseId": "missing"}, learner)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w, _ = s.do(http.MethodPost, "/api/enrollments", map[string]string{"courseId": courseID}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRoutes(t *testing.T) {
	s := newTestServer(t)
	user, userID := s.register("User", "user@example.com")
	admin, adminID := s.register("Admin", "admin@example.com")
	s.promote(adminID)

	w, _ := s.do(http.MethodGet, "/api/admin/users", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w, _ = s.do(http.MethodGet, "/api/admin/users", nil, user)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, env := s.do(http.MethodGet, "/api/admin/users", nil, admin)
	require.Equal(t, http.StatusOK, w.Code)
	var users []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &users))
	assert.Len(t, users, 2)

	w, env = s.do(http.MethodPatch, "/api/admin/users/"+userID+"/role", map[string]string{"role": "ROOT"}, admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Errors, "role")

	w, _ = s.do(http.MethodPatch, "/api/admin/users/missing/role", map[string]string{"role": "ADMIN"}, admin)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, env = s.do(http.MethodPatch, "/api/admin/users/"+userID+"/role", map[string]string{"role": "ADMIN"}, admin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"role":"ADMIN"`)
}

func TestPostLifecycle(t *testing.T) {
	s := newTestServer(t)
	author, _ := s.register("Author", "author@example.com")
	reader, _ := s.register("Reader", "reader@example.com")

	w, env := s.do(http.MethodPost, "/api/posts", map[string]string{
		"title":   "Hello",
		"content": "First post",
	}, author)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	postID := decodeID(t, env.Data)

	w, _ = s.do(http.MethodPost, "/api/posts/"+postID+"/like", nil, reader)
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = s.do(http.MethodPost, "/api/posts/"+postID+"/like", nil, reader)
	require.Equal(t, http.StatusOK, w.Code)

	w, env = s.do(http.MethodPost, "/api/posts/"+postID+"/comments", map[string]string{"content": "Nice"}, reader)
	require.Equal(t, http.StatusCreated, w.Code)
	commentID := decodeID(t, env.Data)

	w, env = s.do(http.MethodPost, "/api/posts/"+postID+"/share", nil, reader)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"shareCount":1`)

	w, env = s.do(http.MethodGet, "/api/posts", nil, reader)
	require.Equal(t, http.StatusOK, w.Code)
	var feed []struct {
		LikeCount      int64 `json:"likeCount"`
		CommentCount   int64 `json:"commentCount"`
		LikedByCurrent bool  `json:"likedByCurrent"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &feed))
	require.Len(t, feed, 1)
	assert.Equal(t, int64(1), feed[0].LikeCount)
	assert.Equal(t, int64(1), feed[0].CommentCount)
	assert.True(t, feed[0].LikedByCurrent)

	w, _ = s.do(http.MethodDelete, "/api/comments/"+commentID, nil, author)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w, _ = s.do(http.MethodDelete, "/api/posts/"+postID, nil, reader)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w, _ = s.do(http.MethodDelete, "/api/posts/"+postID, nil, author)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = s.do(http.MethodPost, "/api/posts/"+postID+"/share", nil, reader)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreatePostReturnsFeedShape(t *testing.T) {
	s := newTestServer(t)
	author, authorID := s.register("Author", "author@example.com")

	w, env := s.do(http.MethodPost, "/api/posts", map[string]string{
		"title":   "Hello",
		"content": "First post",
	}, author)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var post struct {
		ID     string `json:"id"`
		Author *struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"author"`
		Comments       []json.RawMessage `json:"comments"`
		LikeCount      int64             `json:"likeCount"`
		CommentCount   int64             `json:"commentCount"`
		LikedByCurrent bool              `json:"likedByCurrent"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &post))
	assert.NotEmpty(t, post.ID)
	require.NotNil(t, post.Author)
	assert.Equal(t, authorID, post.Author.ID)
	assert.Equal(t, "Author", post.Author.Name)
	assert.NotNil(t, post.Comments)
	assert.Empty(t, post.Comments)
	assert.Zero(t, post.LikeCount)
	assert.Zero(t, post.CommentCount)
	assert.False(t, post.LikedByCurrent)

	w, env = s.do(http.MethodGet, "/api/posts", nil, author)
	require.Equal(t, http.StatusOK, w.Code)
	var feed []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &feed))
	require.Len(t, feed, 1)
	assert.Equal(t, post.ID, feed[0].ID)
}

func TestEventsDefaultToUpcoming(t *testing.T) {
	s := newTestServer(t)
	author, _ := s.register("Author", "author@example.com")

	past := time.Now().Add(-48 * time.Hour).UTC().Format(time.RFC3339)
	future := time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339)
	for _, date := range []string{past, future} {
		w, _ := s.do(http.MethodPost, "/api/events", map[string]string{
			"title":       "Meetup " + date,
			"description": "Monthly meetup",
			"eventDate":   date,
		}, author)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w, env := s.do(http.MethodGet, "/api/events", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var events []struct {
		Title         string `json:"title"`
		EventLocation string `json:"eventLocation"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &events))
	require.Len(t, events, 1)
	assert.Equal(t, "Meetup "+future, events[0].Title)
	assert.Equal(t, "Online", events[0].EventLocation)

	w, env = s.do(http.MethodPost, "/api/events", map[string]string{
		"title":       "Broken",
		"description": "Bad date",
		"eventDate":   "next tuesday",
	}, author)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Errors, "eventDate")
}

func TestFollowRoutes(t *testing.T) {
	s := newTestServer(t)
	alice, aliceID := s.register("Alice", "alice@example.com")
	_, bobID := s.register("Bob", "bob@example.com")

	w, _ := s.do(http.MethodPost, "/api/users/"+aliceID+"/follow", nil, alice)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w, _ = s.do(http.MethodPost, "/api/users/missing/follow", nil, alice)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w, _ = s.do(http.MethodPost, "/api/users/"+bobID+"/follow", nil, alice)
	require.Equal(t, http.StatusOK, w.Code)

	w, env := s.do(http.MethodGet, "/api/users/"+bobID, nil, alice)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"followersCount":1`)
	assert.Contains(t, string(env.Data), `"isFollowing":true`)
	assert.Contains(t, string(env.Data), `"isSelf":false`)

	w, env = s.do(http.MethodGet, "/api/users/"+aliceID+"/following", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), bobID)
}

func TestProfilePatch(t *testing.T) {
	s := newTestServer(t)
	cookie, _ := s.register("Carla", "carla@example.com")

	w, env := s.do(http.MethodPatch, "/api/profile", map[string]string{"avatarUrl": "ftp"}, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Errors, "avatarUrl")

	w, env = s.do(http.MethodPatch, "/api/profile", map[string]string{
		"bio":       "Teaches Go",
		"avatarUrl": "https://cdn.example.com/a.png",
	}, cookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, string(env.Data), `"bio":"Teaches Go"`)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(http.MethodGet, "/api/health", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"database":"up"`)
	assert.NotContains(t, string(env.Data), "redis")
}

func TestCreateResourceGuards(t *testing.T) {
	s := newTestServer(t)
	owner, _ := s.register("Owner", "owner@example.com")
	other, _ := s.register("Other", "other@example.com")

	_, env := s.do(http.MethodPost, "/api/courses", map[string]string{
		"title":       "Networking",
		"description": "Sockets, HTTP and friends",
	}, owner)
	courseID := decodeID(t, env.Data)

	body := map[string]string{
		"courseId": courseID,
		"title":    "Slides",
		"url":      "https://example.com/slides",
	}

	w, _ := s.do(http.MethodPost, "/api/resources", body, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, env = s.do(http.MethodPost, "/api/resources", map[string]string{"courseId": courseID, "title": "x", "url": "nope"}, owner)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Errors, "url")

	w, _ = s.do(http.MethodPost, "/api/resources", map[string]string{"courseId": "missing", "title": "Slides", "url": "https://example.com/slides"}, owner)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = s.do(http.MethodPost, "/api/resources", body, other)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, env = s.do(http.MethodPost, "/api/resources", body, owner)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, string(env.Data), `"type":"LINK"`)
	resourceID := decodeID(t, env.Data)

	w, env = s.do(http.MethodGet, "/api/resources?courseId="+courseID, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), resourceID)

	w, _ = s.do(http.MethodDelete, "/api/resources/"+resourceID, nil, other)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w, _ = s.do(http.MethodDelete, "/api/resources/"+resourceID, nil, owner)
	assert.Equal(t, http.StatusOK, w.Code)
}
