package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/arifmahmud/pixpost/internal/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func likeRequest(id, clientIP string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/posts/"+id+"/like", nil)
	req.Header.Set("X-Real-IP", clientIP)
	return req
}

func commentRequest(id, body, clientIP string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/posts/"+id+"/comment", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("X-Real-IP", clientIP)
	return req
}

func TestLikePost(t *testing.T) {
	e, _, _ := setupServer(t)
	created := createPost(t, e, "likeable")

	t.Run("first like from a client", func(t *testing.T) {
		w := httptest.NewRecorder()
		e.ServeHTTP(w, likeRequest(created.ID.Hex(), "1.2.3.4"))

		require.Equal(t, http.StatusOK, w.Code)

		var post models.Post
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))
		assert.Equal(t, 1, post.LikeCount)
		assert.Contains(t, post.LikedBy, "1.2.3.4")
	})

	t.Run("repeat like from the same client", func(t *testing.T) {
		w := httptest.NewRecorder()
		e.ServeHTTP(w, likeRequest(created.ID.Hex(), "1.2.3.4"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "already liked")
	})

	t.Run("like from a different client", func(t *testing.T) {
		w := httptest.NewRecorder()
		e.ServeHTTP(w, likeRequest(created.ID.Hex(), "5.6.7.8"))

		require.Equal(t, http.StatusOK, w.Code)

		var post models.Post
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))
		assert.Equal(t, 2, post.LikeCount)
	})

	t.Run("malformed id", func(t *testing.T) {
		w := httptest.NewRecorder()
		e.ServeHTTP(w, likeRequest("not-a-hex-id", "1.2.3.4"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		w := httptest.NewRecorder()
		e.ServeHTTP(w, likeRequest("65f000000000000000000000", "1.2.3.4"))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCommentOnPost(t *testing.T) {
	e, _, _ := setupServer(t)
	created := createPost(t, e, "discussed")

	t.Run("comment with author", func(t *testing.T) {
		w := httptest.NewRecorder()
		e.ServeHTTP(w, commentRequest(created.ID.Hex(), `{"text":"nice!","author":"alice"}`, "1.2.3.4"))

		require.Equal(t, http.StatusOK, w.Code)

		var post models.Post
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))
		require.Len(t, post.Comments, 1)
		assert.Equal(t, "nice!", post.Comments[0].Text)
		assert.Equal(t, "alice", post.Comments[0].Author)
	})

	t.Run("comment without author falls back to client address", func(t *testing.T) {
		w := httptest.NewRecorder()
		e.ServeHTTP(w, commentRequest(created.ID.Hex(), `{"text":"me too"}`, "5.6.7.8"))

		require.Equal(t, http.StatusOK, w.Code)

		var post models.Post
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))
		require.Len(t, post.Comments, 2)
		assert.Equal(t, "5.6.7.8", post.Comments[1].Author)
	})

	t.Run("missing text", func(t *testing.T) {
		w := httptest.NewRecorder()
		e.ServeHTTP(w, commentRequest(created.ID.Hex(), `{"author":"alice"}`, "1.2.3.4"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("whitespace-only text", func(t *testing.T) {
		w := httptest.NewRecorder()
		e.ServeHTTP(w, commentRequest(created.ID.Hex(), `{"text":"   "}`, "1.2.3.4"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		w := httptest.NewRecorder()
		e.ServeHTTP(w, commentRequest("not-a-hex-id", `{"text":"hello"}`, "1.2.3.4"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		w := httptest.NewRecorder()
		e.ServeHTTP(w, commentRequest("65f000000000000000000000", `{"text":"hello"}`, "1.2.3.4"))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// End-to-end walk through the whole lifecycle of a post: create, like,
// repeat like, comment, delete.
func TestPostLifecycle(t *testing.T) {
	e, _, _ := setupServer(t)

	post := createPost(t, e, "Hello")
	assert.Equal(t, 0, post.LikeCount)
	id := post.ID.Hex()

	w := httptest.NewRecorder()
	e.ServeHTTP(w, likeRequest(id, "1.2.3.4"))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))
	assert.Equal(t, 1, post.LikeCount)

	w = httptest.NewRecorder()
	e.ServeHTTP(w, likeRequest(id, "1.2.3.4"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	e.ServeHTTP(w, commentRequest(id, `{"text":"nice!"}`, "1.2.3.4"))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))
	assert.Equal(t, 1, post.LikeCount)
	require.Len(t, post.Comments, 1)
	assert.Equal(t, "nice!", post.Comments[0].Text)

	w = httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/posts/"+id, nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/posts/"+id, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
