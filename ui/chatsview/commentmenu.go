package chatsview

import (
	"context"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/devu-community/chatsview/domain"
)

// CommentState is the state of one comment in the action menu state machine
type CommentState int

const (
	Idle CommentState = iota
	MenuOpen
	Editing
)

func (s CommentState) String() string {
	switch s {
	case MenuOpen:
		return "menu-open"
	case Editing:
		return "editing"
	default:
		return "idle"
	}
}

type activeComment struct {
	id  domain.CommentId
	set bool
}

// CommentMenu tracks which comment has its action menu open and which one is
// being edited. Each is a single optional id, so at most one of each exists.
type CommentMenu struct {
	menu activeComment
	edit activeComment
}

// ToggleMenu opens the menu of id, closing any other open menu, or closes it
// when it is already open. The comment being edited has no menu.
func (c *CommentMenu) ToggleMenu(id domain.CommentId) bool {
	if c.edit.set && c.edit.id == id {
		return false
	}
	if c.menu.set && c.menu.id == id {
		c.menu = activeComment{}
		return true
	}
	c.menu = activeComment{id: id, set: true}
	return true
}

// OpenEdit moves id from MenuOpen to Editing. It is a no-op unless the menu of
// id is the open one.
func (c *CommentMenu) OpenEdit(id domain.CommentId) bool {
	if !c.menu.set || c.menu.id != id {
		return false
	}
	c.edit = activeComment{id: id, set: true}
	c.menu = activeComment{}
	return true
}

// CloseMenu closes whichever menu is open
func (c *CommentMenu) CloseMenu() {
	c.menu = activeComment{}
}

// CancelEdit returns the edited comment to Idle
func (c *CommentMenu) CancelEdit() {
	c.edit = activeComment{}
}

func (c *CommentMenu) Reset() {
	*c = CommentMenu{}
}

func (c CommentMenu) ActiveMenu() (domain.CommentId, bool) {
	return c.menu.id, c.menu.set
}

func (c CommentMenu) ActiveEdit() (domain.CommentId, bool) {
	return c.edit.id, c.edit.set
}

func (c CommentMenu) State(id domain.CommentId) CommentState {
	switch {
	case c.edit.set && c.edit.id == id:
		return Editing
	case c.menu.set && c.menu.id == id:
		return MenuOpen
	default:
		return Idle
	}
}

const (
	promptEmptyComment = "댓글을 작성해주세요!"
	promptDeclined     = "취소하였습니다!"
	promptConfirm      = "정말 삭제하시겠습니까? (y/n)"
)

// validateContents rejects comment text that is empty after trimming
func validateContents(contents string) error {
	if strings.TrimSpace(contents) == "" {
		return domain.ErrValidation
	}
	return nil
}

type commentOp int

const (
	opCreate commentOp = iota
	opUpdate
	opDelete
)

func (o commentOp) String() string {
	switch o {
	case opUpdate:
		return "update"
	case opDelete:
		return "delete"
	default:
		return "create"
	}
}

// commentMutatedMsg is sent after a comment create/update/delete finishes
type commentMutatedMsg struct {
	mount int
	op    commentOp
	err   error
}

func createCommentCmd(client Client, mount int, username string, postId domain.PostId, contents string) tea.Cmd {
	return func() tea.Msg {
		err := client.CreateComment(context.Background(), username, postId, contents)
		if err != nil {
			log.Printf("Failed to create comment on post %d: %v", postId, err)
		}
		return commentMutatedMsg{mount: mount, op: opCreate, err: err}
	}
}

func updateCommentCmd(client Client, mount int, id domain.CommentId, contents string) tea.Cmd {
	return func() tea.Msg {
		err := client.UpdateComment(context.Background(), id, contents)
		if err != nil {
			log.Printf("Failed to update comment %d: %v", id, err)
		}
		return commentMutatedMsg{mount: mount, op: opUpdate, err: err}
	}
}

func deleteCommentCmd(client Client, mount int, id domain.CommentId) tea.Cmd {
	return func() tea.Msg {
		err := client.DeleteComment(context.Background(), id)
		if err != nil {
			log.Printf("Failed to delete comment %d: %v", id, err)
		}
		return commentMutatedMsg{mount: mount, op: opDelete, err: err}
	}
}

// submitComment validates the draft and sends it. Empty drafts never reach the network.
func (m Model) submitComment() (Model, tea.Cmd) {
	contents := m.compose.Value()
	if err := validateContents(contents); err != nil {
		m.Status = promptEmptyComment
		return m, nil
	}
	return m, createCommentCmd(m.client, m.mount, m.Username, m.PostId, contents)
}

// submitEdit validates the edit draft and sends it for the comment being edited
func (m Model) submitEdit() (Model, tea.Cmd) {
	id, ok := m.menu.ActiveEdit()
	if !ok {
		return m, nil
	}
	if m.aggregate.Post == nil {
		return m.cancelEdit(), nil
	}
	if _, found := m.aggregate.Post.FindComment(id); !found {
		// the edited comment is no longer in the held post
		return m.cancelEdit(), nil
	}
	contents := m.editInput.Value()
	if err := validateContents(contents); err != nil {
		m.Status = promptEmptyComment
		return m, nil
	}
	return m, updateCommentCmd(m.client, m.mount, id, contents)
}

// startEdit opens the inline edit form seeded with the comment's current text
func (m Model) startEdit(c domain.Comment) (Model, tea.Cmd) {
	if !m.menu.OpenEdit(c.CommentId) {
		return m, nil
	}
	m.editInput.SetValue(c.Contents)
	m.editInput.CursorEnd()
	m.compose.Blur()
	m.focus = focusEdit
	return m, m.editInput.Focus()
}

func (m Model) cancelEdit() Model {
	m.menu.CancelEdit()
	m.editInput.Reset()
	m.editInput.Blur()
	m.focus = focusThread
	return m
}

func (m Model) onCommentMutated(msg commentMutatedMsg) (Model, tea.Cmd) {
	if msg.err != nil {
		// the draft and the menu state stay as they were
		return m, nil
	}
	log.Printf("Comment %s on post %d succeeded, reloading", msg.op, m.PostId)
	return m.invalidateAndRefetch()
}
