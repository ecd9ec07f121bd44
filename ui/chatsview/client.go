package chatsview

import (
	"context"

	"github.com/devu-community/chatsview/domain"
)

// Client is the subset of the forum REST collaborator the chats view uses.
// *api.Client satisfies it.
type Client interface {
	FetchPost(ctx context.Context, id domain.PostId) (*domain.Post, error)
	LikeCount(ctx context.Context, id domain.PostId) (int, error)
	DeletePost(ctx context.Context, id domain.PostId) error

	MyLikes(ctx context.Context, username string) ([]domain.PostId, error)
	ToggleLike(ctx context.Context, username string, postId domain.PostId) (bool, error)

	CreateComment(ctx context.Context, username string, postId domain.PostId, contents string) error
	UpdateComment(ctx context.Context, id domain.CommentId, contents string) error
	DeleteComment(ctx context.Context, id domain.CommentId) error
}
