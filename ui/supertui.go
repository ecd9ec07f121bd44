package ui

import (
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/devu-community/chatsview/domain"
	"github.com/devu-community/chatsview/ui/chatsview"
	"github.com/devu-community/chatsview/ui/common"
	"github.com/devu-community/chatsview/ui/header"
	"github.com/devu-community/chatsview/util"
)

var (
	focusedModelStyle = lipgloss.NewStyle().
				Align(lipgloss.Top, lipgloss.Top).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color(common.COLOR_ACCENT)).MarginLeft(1)

	linkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(common.COLOR_BUTTON)).
			Underline(true)
)

type MainModel struct {
	width       int
	height      int
	config      *util.AppConfig
	username    string
	headerModel header.Model
	chatsModel  chatsview.Model
	state       common.SessionState
	editPostURL string
}

// NewModel builds the root model for one session viewing postId as username
func NewModel(client chatsview.Client, config *util.AppConfig, username string, postId domain.PostId, width int, height int) MainModel {
	width = common.DefaultWindowWidth(width)
	height = common.DefaultWindowHeight(height)

	offset := util.DefaultDisplayOffsetHours
	if config != nil {
		offset = config.Conf.DisplayOffsetHours
	}

	m := MainModel{state: common.ChatsView}
	m.config = config
	m.username = username
	m.headerModel = header.Model{Width: width, Username: username, PostId: postId}
	m.chatsModel = chatsview.InitialModel(client, postId, username, time.Now(), offset, width, height)
	m.width = width
	m.height = height
	return m
}

func (m MainModel) Init() tea.Cmd {
	return m.chatsModel.Init()
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.headerModel.Width = msg.Width
		m.chatsModel.Width = msg.Width
		m.chatsModel.Height = msg.Height
		return m, nil

	case common.NavigateBackMsg:
		if m.state == common.EditPostView {
			// back from the editor hand-off: remount to pick up edits
			m.state = common.ChatsView
			m.editPostURL = ""
			return m, func() tea.Msg { return common.ActivateViewMsg{} }
		}
		log.Printf("%s left post %d", m.username, m.chatsModel.PostId)
		return m, tea.Quit

	case common.EditPostMsg:
		m.state = common.EditPostView
		m.editPostURL = editPostURL(m.config, msg.PostId)
		m.chatsModel, cmd = m.chatsModel.Update(common.DeactivateViewMsg{})
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
		if m.state == common.EditPostView {
			switch msg.String() {
			case "esc", "q", "enter":
				return m, func() tea.Msg { return common.NavigateBackMsg{} }
			}
			return m, nil
		}
	}

	m.chatsModel, cmd = m.chatsModel.Update(msg)
	return m, cmd
}

func (m MainModel) View() string {
	var s strings.Builder

	s.WriteString(m.headerModel.View())
	s.WriteString("\n")

	availableHeight := common.CalculateAvailableHeight(m.height)
	panelWidth := max(m.width-2, 0)

	var body, viewCommands string
	switch m.state {
	case common.EditPostView:
		body = fmt.Sprintf("게시글 수정은 웹에서 진행해주세요.\n\n%s", linkStyle.Render(m.editPostURL))
		viewCommands = "enter/esc: back"
	default:
		body = m.chatsModel.View()
		viewCommands = "j/k • l: like • c: comment • esc: back"
	}

	s.WriteString(focusedModelStyle.
		MaxHeight(availableHeight).
		Width(panelWidth).
		MaxWidth(panelWidth).
		Render(body))
	s.WriteString("\n")

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(common.COLOR_HELP)).
		Width(m.width).
		Align(lipgloss.Center)
	s.WriteString(helpStyle.Render(fmt.Sprintf("focused > %s\t\tkeys > %s • ctrl-c: exit", m.currentFocusedModel(), viewCommands)))
	return s.String()
}

func (m MainModel) currentFocusedModel() string {
	switch m.state {
	case common.EditPostView:
		return "edit post"
	default:
		return "chats"
	}
}

// editPostURL is where the web client edits a post
func editPostURL(config *util.AppConfig, id domain.PostId) string {
	base := "http://localhost:3000"
	if config != nil && config.Conf.WebBaseUrl != "" {
		base = config.Conf.WebBaseUrl
	}
	return fmt.Sprintf("%s/chatsDetail/%d/modify", strings.TrimRight(base, "/"), id)
}
