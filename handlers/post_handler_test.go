package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-blog-api/config"
	"go-blog-api/middleware"
	"go-blog-api/models"
	"go-blog-api/validation"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePostService scripts the service layer so handler tests cover only
// status codes and payload shapes.
type fakePostService struct {
	posts     []models.Post
	getErr    error
	updateErr error
	deleteErr error

	created *models.CreatePostRequest
	deleted []uint
}

func (f *fakePostService) ListPublished() ([]models.Post, error) {
	return f.posts, nil
}

func (f *fakePostService) GetPost(id uint) (*models.Post, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for i := range f.posts {
		if f.posts[i].ID == id {
			return &f.posts[i], nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakePostService) CreatePost(req models.CreatePostRequest, identity models.Identity) (*models.Post, error) {
	f.created = &req
	published := true
	if req.Published != nil {
		published = *req.Published
	}
	return &models.Post{
		ID:        1,
		Title:     req.Title,
		Content:   req.Content,
		Published: published,
		AuthorID:  identity.ID,
		Author:    models.User{ID: identity.ID, Name: "Alice", Role: identity.Role},
		Tags:      []models.PostTag{{Tag: models.Tag{ID: 1, Name: "x"}}},
	}, nil
}

func (f *fakePostService) UpdatePost(id uint, req models.UpdatePostRequest, identity models.Identity) (*models.Post, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.GetPost(id)
}

func (f *fakePostService) DeletePost(id uint, identity models.Identity) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func setupRouter(service *fakePostService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewPostHandler(service, validation.New())

	router := gin.New()
	router.GET("/posts", handler.ListPosts)
	router.GET("/posts/:id", handler.GetPost)

	protected := router.Group("/")
	protected.Use(middleware.AuthRequired())
	{
		protected.POST("/posts", handler.CreatePost)
		protected.PATCH("/posts/:id", handler.UpdatePost)
		protected.DELETE("/posts/:id", handler.DeletePost)
	}
	return router
}

func signToken(t *testing.T, userID uint, role models.UserRole) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    string(role),
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(config.JWTSecret())
	require.NoError(t, err)
	return token
}

func doRequest(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListPostsReturnsArray(t *testing.T) {
	service := &fakePostService{posts: []models.Post{
		{ID: 1, Title: "Hi", Content: "Body", Published: true, AuthorID: 1,
			Author: models.User{ID: 1, Name: "Alice", Role: models.RoleUser},
			Tags:   []models.PostTag{{Tag: models.Tag{ID: 1, Name: "x"}}}},
	}}
	router := setupRouter(service)

	w := doRequest(router, http.MethodGet, "/posts", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var posts []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, "Hi", posts[0]["title"])
	assert.Equal(t, float64(1), posts[0]["authorId"])

	author := posts[0]["author"].(map[string]interface{})
	assert.Equal(t, "Alice", author["name"])
	assert.Equal(t, "USER", author["role"])

	tags := posts[0]["tags"].([]interface{})
	tag := tags[0].(map[string]interface{})["tag"].(map[string]interface{})
	assert.Equal(t, "x", tag["name"])
}

func TestListPostsEmptyIsStillArray(t *testing.T) {
	router := setupRouter(&fakePostService{})

	w := doRequest(router, http.MethodGet, "/posts", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestGetPostNotFound(t *testing.T) {
	router := setupRouter(&fakePostService{})

	w := doRequest(router, http.MethodGet, "/posts/42", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(router, http.MethodGet, "/posts/not-a-number", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWriteEndpointsRequireSession(t *testing.T) {
	service := &fakePostService{}
	router := setupRouter(service)

	cases := []struct {
		method string
		path   string
		body   interface{}
	}{
		{http.MethodPost, "/posts", models.CreatePostRequest{Title: "Hi", Content: "Body"}},
		{http.MethodPatch, "/posts/1", models.UpdatePostRequest{}},
		{http.MethodDelete, "/posts/1", nil},
	}

	for _, tc := range cases {
		w := doRequest(router, tc.method, tc.path, "", tc.body)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tc.method, tc.path)
	}

	// Nothing reached the service.
	assert.Nil(t, service.created)
	assert.Empty(t, service.deleted)
}

func TestCreatePostValidationErrors(t *testing.T) {
	service := &fakePostService{}
	router := setupRouter(service)
	token := signToken(t, 1, models.RoleUser)

	w := doRequest(router, http.MethodPost, "/posts", token, map[string]interface{}{
		"title": "", "content": "",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]map[string][]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	fieldErrors := body["fieldErrors"]
	assert.Len(t, fieldErrors, 2)
	assert.Contains(t, fieldErrors, "title")
	assert.Contains(t, fieldErrors, "content")
	assert.Nil(t, service.created)
}

func TestCreatePostWrongTypedFieldIsFieldKeyed(t *testing.T) {
	service := &fakePostService{}
	router := setupRouter(service)
	token := signToken(t, 1, models.RoleUser)

	w := doRequest(router, http.MethodPost, "/posts", token, map[string]interface{}{
		"title": 123, "content": "Body",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]map[string][]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	fieldErrors := body["fieldErrors"]
	require.Contains(t, fieldErrors, "title")
	assert.NotEmpty(t, fieldErrors["title"])
	assert.Nil(t, service.created)
}

func TestUpdatePostWrongTypedFieldIsFieldKeyed(t *testing.T) {
	service := &fakePostService{}
	router := setupRouter(service)
	token := signToken(t, 1, models.RoleUser)

	w := doRequest(router, http.MethodPatch, "/posts/1", token, map[string]interface{}{
		"published": "yes",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]map[string][]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Contains(t, body["fieldErrors"], "published")
}

func TestCreatePost(t *testing.T) {
	service := &fakePostService{}
	router := setupRouter(service)
	token := signToken(t, 7, models.RoleUser)

	w := doRequest(router, http.MethodPost, "/posts", token, map[string]interface{}{
		"title": "Hi", "content": "Body", "tags": []string{"x"},
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var post map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))
	assert.Equal(t, float64(7), post["authorId"])
	assert.Equal(t, true, post["published"])
}

func TestUpdatePostForbidden(t *testing.T) {
	service := &fakePostService{updateErr: models.ErrForbidden}
	router := setupRouter(service)
	token := signToken(t, 2, models.RoleUser)

	w := doRequest(router, http.MethodPatch, "/posts/1", token, map[string]interface{}{
		"title": "Taken over",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdatePostInvalidPatch(t *testing.T) {
	service := &fakePostService{}
	router := setupRouter(service)
	token := signToken(t, 1, models.RoleUser)

	w := doRequest(router, http.MethodPatch, "/posts/1", token, map[string]interface{}{
		"content": "",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "fieldErrors")
}

func TestDeletePost(t *testing.T) {
	service := &fakePostService{posts: []models.Post{{ID: 1, AuthorID: 1}}}
	router := setupRouter(service)
	token := signToken(t, 1, models.RoleUser)

	w := doRequest(router, http.MethodDelete, "/posts/1", token, nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, []uint{1}, service.deleted)
}

func TestDeletePostNotFound(t *testing.T) {
	service := &fakePostService{deleteErr: models.ErrNotFound}
	router := setupRouter(service)
	token := signToken(t, 1, models.RoleUser)

	w := doRequest(router, http.MethodDelete, "/posts/42", token, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExpiredTokenIsUnauthorized(t *testing.T) {
	router := setupRouter(&fakePostService{})

	claims := jwt.MapClaims{
		"user_id": 1,
		"role":    "USER",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(config.JWTSecret())
	require.NoError(t, err)

	w := doRequest(router, http.MethodDelete, "/posts/1", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
