package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/devu-community/chatsview/domain"
)

// FetchPost loads a post with its comments. A 404 is reported as domain.ErrNotFound.
func (c *Client) FetchPost(ctx context.Context, id domain.PostId) (*domain.Post, error) {
	var resp ChatResponse
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   fmt.Sprintf("/community/chats/%d", id),
	}, &resp)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.Code == http.StatusNotFound {
			return nil, fmt.Errorf("post %d: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return resp.toDomain(), nil
}

// DeletePost removes a post
func (c *Client) DeletePost(ctx context.Context, id domain.PostId) error {
	return c.do(ctx, request{
		method: http.MethodDelete,
		path:   fmt.Sprintf("/community/chat/%d", id),
		auth:   true,
	}, nil)
}

// LikeCount fetches the server computed like count of a post
func (c *Client) LikeCount(ctx context.Context, id domain.PostId) (int, error) {
	var resp LikeSizeResponse
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/like",
		query:  url.Values{"postId": []string{strconv.FormatInt(int64(id), 10)}},
	}, &resp)
	if err != nil {
		return 0, err
	}
	return resp.LikeSize, nil
}
