package common

import "github.com/devu-community/chatsview/domain"

type SessionState uint

const (
	ChatsView    SessionState = iota // a single post with its comment thread
	EditPostView                     // hand-off to the external post editor
)

// ActivateViewMsg is sent when a view becomes active (visible)
type ActivateViewMsg struct{}

// DeactivateViewMsg is sent when a view becomes inactive (hidden); pending results are dropped
type DeactivateViewMsg struct{}

// NavigateBackMsg asks the composition root to return to the previous view
type NavigateBackMsg struct{}

// EditPostMsg is sent when the author wants to edit the post; editing happens elsewhere
type EditPostMsg struct {
	PostId domain.PostId
}
