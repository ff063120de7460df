package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creddit/backend/internal/models"
	"github.com/creddit/backend/internal/repositories"
	"github.com/creddit/backend/internal/services"
)

type noopDispatcher struct{}

func (noopDispatcher) OnPostCreated(ctx context.Context, authorID, postID uint) error {
	return nil
}

func TestPatchPost_UnknownFieldRejected(t *testing.T) {
	db := newTestDB(t)
	e := newUserTestEcho()

	postService := services.NewPostService(repositories.NewPostgresPostRepository(db), noopDispatcher{})
	h := NewPostHandler(postService)

	user := &models.User{Username: "alice", Email: "alice@example.com", IsActive: true}
	require.NoError(t, db.Create(user).Error)
	post := &models.Post{UserID: user.ID, Title: "Hello", Description: "first"}
	require.NoError(t, db.Create(post).Error)

	body := strings.NewReader(`{"title":"Hello again","body":"nope"}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/posts/"+strconv.Itoa(int(post.ID)), body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	c := newAuthedContext(t, e, req, rec, user.ID)
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(int(post.ID)))

	err := h.PatchPost(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)

	var unchanged models.Post
	require.NoError(t, db.First(&unchanged, post.ID).Error)
	assert.Equal(t, "Hello", unchanged.Title)
}

func TestPatchPost_AppliesOnlyPresentFields(t *testing.T) {
	db := newTestDB(t)
	e := newUserTestEcho()

	postService := services.NewPostService(repositories.NewPostgresPostRepository(db), noopDispatcher{})
	h := NewPostHandler(postService)

	user := &models.User{Username: "alice", Email: "alice@example.com", IsActive: true}
	require.NoError(t, db.Create(user).Error)
	post := &models.Post{UserID: user.ID, Title: "Hello", Description: "first"}
	require.NoError(t, db.Create(post).Error)

	body := strings.NewReader(`{"description":"edited"}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/posts/"+strconv.Itoa(int(post.ID)), body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	c := newAuthedContext(t, e, req, rec, user.ID)
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(int(post.ID)))

	require.NoError(t, h.PatchPost(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Post
	require.NoError(t, db.First(&updated, post.ID).Error)
	assert.Equal(t, "Hello", updated.Title)
	assert.Equal(t, "edited", updated.Description)
}
