package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/devu-community/chatsview/domain"
)

// MyLikes fetches every post id the user has liked, across the whole account
func (c *Client) MyLikes(ctx context.Context, username string) ([]domain.PostId, error) {
	var resp []LikedPost
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/myLikes",
		query:  url.Values{"username": []string{username}},
		auth:   true,
	}, &resp)
	if err != nil {
		return nil, err
	}

	ids := make([]domain.PostId, 0, len(resp))
	for _, p := range resp {
		ids = append(ids, domain.PostId(p.Id))
	}
	return ids, nil
}

// ToggleLike records or removes the user's like and returns the resulting membership
func (c *Client) ToggleLike(ctx context.Context, username string, postId domain.PostId) (bool, error) {
	var resp LikeResponse
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/api/like",
		body:   LikeRequest{Username: username, PostId: int64(postId)},
		auth:   true,
	}, &resp)
	if err != nil {
		return false, err
	}
	return resp.Liked, nil
}
