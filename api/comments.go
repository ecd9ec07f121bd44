package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/devu-community/chatsview/domain"
)

func (c *Client) CreateComment(ctx context.Context, username string, postId domain.PostId, contents string) error {
	return c.do(ctx, request{
		method: http.MethodPost,
		path:   "/api/comments",
		body:   CreateCommentRequest{Username: username, PostId: int64(postId), Contents: contents},
		auth:   true,
	}, nil)
}

// UpdateComment requires the access token; the collaborator rejects it otherwise
func (c *Client) UpdateComment(ctx context.Context, id domain.CommentId, contents string) error {
	return c.do(ctx, request{
		method: http.MethodPatch,
		path:   fmt.Sprintf("/api/comments/%d", id),
		body:   UpdateCommentRequest{Contents: contents},
		auth:   true,
	}, nil)
}

func (c *Client) DeleteComment(ctx context.Context, id domain.CommentId) error {
	return c.do(ctx, request{
		method: http.MethodDelete,
		path:   fmt.Sprintf("/api/comments/%d", id),
		auth:   true,
	}, nil)
}
