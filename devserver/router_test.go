package devserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/devu-community/chatsview/api"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, *Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := newTestStore(t)
	require.NoError(t, s.Seed(context.Background()))

	rc := DefaultRouterConfig()
	rc.RequestsPerSecond = 0
	return Router(s, rc), s
}

func serve(g *gin.Engine, method, path string, body any, header map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	return w
}

func TestRouterGetChat(t *testing.T) {
	g, _ := newTestRouter(t)

	w := serve(g, http.MethodGet, "/community/chats/1", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var chat api.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &chat))
	assert.Equal(t, int64(1), chat.Id)
	assert.Len(t, chat.Comments, 2)

	w = serve(g, http.MethodGet, "/community/chats/99", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(g, http.MethodGet, "/community/chats/abc", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouterUpdateCommentRequiresToken(t *testing.T) {
	g, _ := newTestRouter(t)

	w := serve(g, http.MethodPatch, "/api/comments/1", api.UpdateCommentRequest{Contents: "x"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = serve(g, http.MethodPatch, "/api/comments/1", api.UpdateCommentRequest{Contents: "x"},
		map[string]string{"Authorization": "token"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouterLikeFlow(t *testing.T) {
	g, _ := newTestRouter(t)

	w := serve(g, http.MethodPost, "/api/like", api.LikeRequest{Username: "bob", PostId: 1}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var liked api.LikeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &liked))
	assert.True(t, liked.Liked)

	w = serve(g, http.MethodGet, "/api/like?postId=1", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var size api.LikeSizeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &size))
	assert.Equal(t, 2, size.LikeSize)

	w = serve(g, http.MethodGet, "/api/myLikes?username=bob", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var mine []api.LikedPost
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &mine))
	assert.Equal(t, []api.LikedPost{{Id: 1}}, mine)
}

func TestRouterRejectsEmptyComment(t *testing.T) {
	g, _ := newTestRouter(t)

	w := serve(g, http.MethodPost, "/api/comments", api.CreateCommentRequest{Username: "bob", PostId: 1, Contents: "  "}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRateLimiterPerIP(t *testing.T) {
	rl := NewRateLimiter(1, 1)

	assert.True(t, rl.GetLimiter("10.0.0.1").Allow())
	assert.False(t, rl.GetLimiter("10.0.0.1").Allow())
	assert.True(t, rl.GetLimiter("10.0.0.2").Allow())
}
