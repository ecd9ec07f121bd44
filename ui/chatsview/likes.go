package chatsview

import (
	"context"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/devu-community/chatsview/domain"
)

// LikeIndex is the account wide set of liked posts. Membership of the viewed
// post decides which like marker is rendered.
type LikeIndex struct {
	liked domain.LikedIndex
}

func (l LikeIndex) IsLiked(id domain.PostId) bool {
	return l.liked.Contains(id)
}

// Replace swaps in a freshly fetched index
func (l *LikeIndex) Replace(ids []domain.PostId) {
	l.liked = domain.NewLikedIndex(ids)
}

// likedIndexMsg is sent when the current user's liked posts are fetched
type likedIndexMsg struct {
	generation int
	ids        []domain.PostId
	err        error
}

// likeToggledMsg is the first phase of a toggle: the server's resulting membership
type likeToggledMsg struct {
	generation int
	liked      bool
	err        error
}

func fetchMineCmd(client Client, generation int, username string) tea.Cmd {
	return func() tea.Msg {
		ids, err := client.MyLikes(context.Background(), username)
		if err != nil {
			log.Printf("Failed to fetch liked posts of %s: %v", username, err)
		}
		return likedIndexMsg{generation: generation, ids: ids, err: err}
	}
}

func toggleLikeCmd(client Client, generation int, username string, id domain.PostId) tea.Cmd {
	return func() tea.Msg {
		liked, err := client.ToggleLike(context.Background(), username, id)
		if err != nil {
			log.Printf("Failed to toggle like on post %d: %v", id, err)
		}
		return likeToggledMsg{generation: generation, liked: liked, err: err}
	}
}

// toggleLike issues one toggle request. Repeated presses are not debounced;
// each one sends its own request.
func (m Model) toggleLike() (Model, tea.Cmd) {
	if m.aggregate.Post == nil {
		return m, nil
	}
	return m, toggleLikeCmd(m.client, m.generation, m.Username, m.aggregate.Post.Id)
}

// onLikeToggled applies the local delta to whatever count is held, then
// reconciles index and count with the server, one after the other.
func (m Model) onLikeToggled(msg likeToggledMsg) (Model, tea.Cmd) {
	if msg.err != nil {
		return m, nil
	}
	m.aggregate.ApplyLikeDelta(msg.liked)
	return m, tea.Sequence(m.reconcileLikes()...)
}

// reconcileLikes is the second phase of a toggle, in issue order
func (m Model) reconcileLikes() []tea.Cmd {
	return []tea.Cmd{
		fetchMineCmd(m.client, m.generation, m.Username),
		refreshLikeCountCmd(m.client, m.generation, m.PostId),
	}
}
