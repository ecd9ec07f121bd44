package devserver

import (
	"errors"
	"log"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/devu-community/chatsview/api"
	"github.com/devu-community/chatsview/util"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RouterConfig tunes the development collaborator
type RouterConfig struct {
	RequestsPerSecond float64
	Burst             int
	CorsOrigins       []string
}

func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RequestsPerSecond: 50,
		Burst:             100,
		CorsOrigins:       []string{"*"},
	}
}

// Router serves the forum REST endpoints the chats view consumes, backed by store
func Router(store *Store, rc RouterConfig) *gin.Engine {
	gin.DefaultWriter = util.GetLogWriter()
	gin.DefaultErrorWriter = util.GetLogWriter()

	g := gin.New()
	g.Use(gin.Logger(), gin.Recovery())
	g.Use(gzip.Gzip(gzip.DefaultCompression))
	g.Use(cors.New(corsConfig(rc.CorsOrigins)))
	if rc.RequestsPerSecond > 0 {
		g.Use(RateLimitMiddleware(NewRateLimiter(rate.Limit(rc.RequestsPerSecond), rc.Burst)))
	}

	h := &handler{store: store}

	g.GET("/community/chats/:id", h.getChat)
	g.DELETE("/community/chat/:id", h.deleteChat)

	g.GET("/api/myLikes", h.myLikes)
	g.POST("/api/like", h.toggleLike)
	g.GET("/api/like", h.likeSize)

	g.POST("/api/comments", h.createComment)
	g.PATCH("/api/comments/:id", requireToken(), h.updateComment)
	g.DELETE("/api/comments/:id", h.deleteComment)

	return g
}

func corsConfig(origins []string) cors.Config {
	cc := cors.Config{
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-Id"},
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cc.AllowAllOrigins = true
	} else {
		cc.AllowOrigins = origins
	}
	return cc
}

type handler struct {
	store *Store
}

func requireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.TrimSpace(c.GetHeader("Authorization")) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "access token required"})
			return
		}
		c.Next()
	}
}

func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

func writeStoreError(c *gin.Context, err error) {
	if errors.Is(err, ErrNoRecord) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	log.Printf("devserver %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

func (h *handler) getChat(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	chat, err := h.store.ReadChat(c.Request.Context(), id)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, chat)
}

func (h *handler) deleteChat(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.store.DeletePost(c.Request.Context(), id); err != nil {
		writeStoreError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *handler) myLikes(c *gin.Context) {
	username := c.Query("username")
	ids, err := h.store.LikedPosts(c.Request.Context(), username)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	resp := make([]api.LikedPost, 0, len(ids))
	for _, id := range ids {
		resp = append(resp, api.LikedPost{Id: id})
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) toggleLike(c *gin.Context) {
	var req api.LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and postId are required"})
		return
	}
	liked, err := h.store.ToggleLike(c.Request.Context(), req.Username, req.PostId)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.LikeResponse{Liked: liked})
}

func (h *handler) likeSize(c *gin.Context) {
	id, err := strconv.ParseInt(c.Query("postId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid postId"})
		return
	}
	n, err := h.store.LikeCount(c.Request.Context(), id)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.LikeSizeResponse{LikeSize: n})
}

func (h *handler) createComment(c *gin.Context) {
	var req api.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || strings.TrimSpace(req.Contents) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username, postId and contents are required"})
		return
	}
	id, err := h.store.CreateComment(c.Request.Context(), req.Username, req.PostId, req.Contents)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"username": req.Username, "commentId": id})
}

func (h *handler) updateComment(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req api.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Contents) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "contents are required"})
		return
	}
	if err := h.store.UpdateComment(c.Request.Context(), id, req.Contents); err != nil {
		writeStoreError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *handler) deleteComment(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.store.DeleteComment(c.Request.Context(), id); err != nil {
		writeStoreError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
