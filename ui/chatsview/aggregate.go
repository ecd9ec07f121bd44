package chatsview

import (
	"context"
	"errors"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/devu-community/chatsview/domain"
)

// PostAggregate holds the single post being viewed. It is replaced wholesale on
// every fetch; only the like count is ever patched in place.
type PostAggregate struct {
	Post     *domain.Post
	NotFound bool
}

// Apply replaces the held post with a fetch result. Network failures keep the
// previous state.
func (a *PostAggregate) Apply(post *domain.Post, err error) {
	switch {
	case err == nil:
		a.Post = post
		a.NotFound = false
	case errors.Is(err, domain.ErrNotFound):
		a.Post = nil
		a.NotFound = true
	}
}

// PatchLikeCount overwrites the like count with the server's canonical value
func (a *PostAggregate) PatchLikeCount(n int) {
	if a.Post == nil {
		return
	}
	a.Post.LikeCount = n
}

// ApplyLikeDelta adjusts the held count by one in the direction of liked
func (a *PostAggregate) ApplyLikeDelta(liked bool) {
	if a.Post == nil {
		return
	}
	if liked {
		a.Post.LikeCount++
	} else {
		a.Post.LikeCount--
	}
}

// postLoadedMsg is sent when the post and its comments are fetched
type postLoadedMsg struct {
	generation int
	post       *domain.Post
	err        error
}

// likeCountMsg carries the canonical like count of the post
type likeCountMsg struct {
	generation int
	count      int
	err        error
}

// postDeletedMsg is sent after a post delete request finishes
type postDeletedMsg struct {
	mount int
	err   error
}

func fetchPostCmd(client Client, generation int, id domain.PostId) tea.Cmd {
	return func() tea.Msg {
		post, err := client.FetchPost(context.Background(), id)
		if err != nil {
			log.Printf("Failed to fetch post %d: %v", id, err)
		}
		return postLoadedMsg{generation: generation, post: post, err: err}
	}
}

func refreshLikeCountCmd(client Client, generation int, id domain.PostId) tea.Cmd {
	return func() tea.Msg {
		n, err := client.LikeCount(context.Background(), id)
		if err != nil {
			log.Printf("Failed to refresh like count of post %d: %v", id, err)
		}
		return likeCountMsg{generation: generation, count: n, err: err}
	}
}

func deletePostCmd(client Client, mount int, id domain.PostId) tea.Cmd {
	return func() tea.Msg {
		err := client.DeletePost(context.Background(), id)
		if err != nil {
			log.Printf("Failed to delete post %d: %v", id, err)
		} else {
			log.Printf("Post %d deleted", id)
		}
		return postDeletedMsg{mount: mount, err: err}
	}
}
