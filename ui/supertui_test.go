package ui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/devu-community/chatsview/domain"
	"github.com/devu-community/chatsview/ui/common"
	"github.com/devu-community/chatsview/util"
)

type stubClient struct{}

func (stubClient) FetchPost(context.Context, domain.PostId) (*domain.Post, error) {
	return nil, domain.ErrNotFound
}
func (stubClient) LikeCount(context.Context, domain.PostId) (int, error) { return 0, nil }
func (stubClient) DeletePost(context.Context, domain.PostId) error     { return nil }
func (stubClient) MyLikes(context.Context, string) ([]domain.PostId, error) {
	return nil, nil
}
func (stubClient) ToggleLike(context.Context, string, domain.PostId) (bool, error) {
	return false, nil
}
func (stubClient) CreateComment(context.Context, string, domain.PostId, string) error {
	return nil
}
func (stubClient) UpdateComment(context.Context, domain.CommentId, string) error { return nil }
func (stubClient) DeleteComment(context.Context, domain.CommentId) error         { return nil }

func newTestModel() MainModel {
	return NewModel(stubClient{}, util.DefaultConf(), "testuser", 7, 100, 30)
}

// TestMainModelInitialization verifies the main model starts correctly
func TestMainModelInitialization(t *testing.T) {
	model := newTestModel()

	if model.username != "testuser" {
		t.Errorf("Expected username testuser, got %s", model.username)
	}
	if model.state != common.ChatsView {
		t.Errorf("Expected chats view on start, got %v", model.state)
	}
	if model.width < 80 {
		t.Errorf("Expected width >= 80, got %d", model.width)
	}
	if model.height < 20 {
		t.Errorf("Expected height >= 20, got %d", model.height)
	}
	if model.Init() == nil {
		t.Errorf("Init should start fetching")
	}
}

// TestMessageRoutingDoesNotPanic verifies message routing doesn't panic
func TestMessageRoutingDoesNotPanic(t *testing.T) {
	testCases := []struct {
		name string
		msg  tea.Msg
	}{
		{"ActivateViewMsg", common.ActivateViewMsg{}},
		{"DeactivateViewMsg", common.DeactivateViewMsg{}},
		{"KeyMsg", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}},
		{"WindowSizeMsg", tea.WindowSizeMsg{Width: 120, Height: 40}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Update panicked with message %s: %v", tc.name, r)
				}
			}()
			model := newTestModel()
			updated, _ := model.Update(tc.msg)
			_ = updated.View()
		})
	}
}

func TestEditPostRoutesToEditor(t *testing.T) {
	model := newTestModel()

	updated, _ := model.Update(common.EditPostMsg{PostId: 7})
	m := updated.(MainModel)

	if m.state != common.EditPostView {
		t.Fatalf("Expected EditPostView, got %v", m.state)
	}
	if m.editPostURL != "http://localhost:3000/chatsDetail/7/modify" {
		t.Errorf("Unexpected edit url %q", m.editPostURL)
	}
	if !strings.Contains(m.View(), "/chatsDetail/7/modify") {
		t.Errorf("View should show the edit location")
	}

	updated, cmd := m.Update(common.NavigateBackMsg{})
	m = updated.(MainModel)
	if m.state != common.ChatsView {
		t.Errorf("Navigating back should return to the chats view")
	}
	if _, ok := cmd().(common.ActivateViewMsg); !ok {
		t.Errorf("Returning should remount the chats view")
	}
}

func TestNavigateBackFromChatsQuits(t *testing.T) {
	model := newTestModel()

	_, cmd := model.Update(common.NavigateBackMsg{})
	if cmd == nil {
		t.Fatalf("Expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("Navigating back from the chats view should quit")
	}
}

func TestWindowSizeIsForwarded(t *testing.T) {
	model := newTestModel()

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 150, Height: 50})
	m := updated.(MainModel)

	if m.chatsModel.Width != 150 || m.chatsModel.Height != 50 {
		t.Errorf("Chats view should get the new size, got %dx%d", m.chatsModel.Width, m.chatsModel.Height)
	}
	if m.headerModel.Width != 150 {
		t.Errorf("Header should get the new width, got %d", m.headerModel.Width)
	}
}
