package chatsview

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/devu-community/chatsview/domain"
	"github.com/devu-community/chatsview/ui/common"
	"github.com/devu-community/chatsview/util"
)

const notFoundText = "해당 게시글을 찾을 수 없습니다."

var (
	authorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(common.COLOR_USERNAME)).
			Bold(true)

	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(common.COLOR_DIM))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(common.COLOR_WHITE)).
			Bold(true)

	contentStyle = lipgloss.NewStyle().
			Align(lipgloss.Left)

	statsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(common.COLOR_MUTED))

	commentIndent = strings.Repeat(" ", common.CommentIndentWidth)
)

type focus int

const (
	focusThread focus = iota
	focusCompose
	focusEdit
	focusConfirm
)

type confirmKind int

const (
	confirmNone confirmKind = iota
	confirmDeleteComment
	confirmDeletePost
)

// Model is the chats view: one post, its like control and its comment thread
type Model struct {
	PostId   domain.PostId
	Username string
	Width    int
	Height   int
	Selected int    // index of the highlighted comment
	Offset   int    // first comment rendered
	Status   string // user-facing prompt

	client      Client
	now         util.Stamp
	offsetHours int
	mount       int // bumped on every mount and unmount
	generation  int // bumped on every full reload
	isActive    bool
	loading     bool

	aggregate PostAggregate
	likes     LikeIndex

	menu          CommentMenu
	compose       textinput.Model
	editInput     textinput.Model
	focus         focus
	confirm       confirmKind
	confirmTarget domain.CommentId
}

// InitialModel creates the view. now is captured here once and never refreshed
// while the view is open.
func InitialModel(client Client, postId domain.PostId, username string, now time.Time, offsetHours int, width, height int) Model {
	compose := textinput.New()
	compose.Placeholder = "댓글을 달아주세요."
	compose.CharLimit = common.MaxCommentDBLength
	compose.Width = common.TextInputDefaultWidth
	compose.Prompt = common.ListSelectedPrefix

	edit := textinput.New()
	edit.CharLimit = common.MaxCommentDBLength
	edit.Width = common.TextInputDefaultWidth
	edit.Prompt = common.ListSelectedPrefix

	return Model{
		PostId:      postId,
		Username:    username,
		Width:       width,
		Height:      height,
		client:      client,
		now:         util.NowStamp(now, offsetHours),
		offsetHours: offsetHours,
		isActive:    true,
		loading:     true,
		compose:     compose,
		editInput:   edit,
	}
}

// Init mounts the view: post and liked index are fetched concurrently
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		fetchPostCmd(m.client, m.generation, m.PostId),
		fetchMineCmd(m.client, m.generation, m.Username),
	)
}

// Mount activates the view and starts hydration
func (m Model) Mount() (Model, tea.Cmd) {
	m.mount++
	m.generation++
	m.isActive = true
	m.loading = true
	return m, m.Init()
}

// invalidateAndRefetch discards the held post, the liked index and all UI state,
// then hydrates again from the server
func (m Model) invalidateAndRefetch() (Model, tea.Cmd) {
	m.generation++
	m.aggregate = PostAggregate{}
	m.likes = LikeIndex{}
	m.resetUIState()
	m.loading = true
	return m, m.Init()
}

func (m *Model) resetUIState() {
	m.menu.Reset()
	m.compose.Reset()
	m.compose.Blur()
	m.editInput.Reset()
	m.editInput.Blur()
	m.focus = focusThread
	m.confirm = confirmNone
	m.confirmTarget = 0
	m.Selected = 0
	m.Offset = 0
	m.Status = ""
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case common.ActivateViewMsg:
		return m.Mount()

	case common.DeactivateViewMsg:
		m.isActive = false
		m.mount++
		m.generation++
		return m, nil

	case postLoadedMsg:
		if !m.isActive || msg.generation != m.generation {
			return m, nil
		}
		m.loading = false
		m.aggregate.Apply(msg.post, msg.err)
		m.clampSelection()
		return m, nil

	case likedIndexMsg:
		if !m.isActive || msg.generation != m.generation || msg.err != nil {
			return m, nil
		}
		m.likes.Replace(msg.ids)
		return m, nil

	case likeToggledMsg:
		if !m.isActive || msg.generation != m.generation {
			return m, nil
		}
		return m.onLikeToggled(msg)

	case likeCountMsg:
		if !m.isActive || msg.generation != m.generation || msg.err != nil {
			return m, nil
		}
		m.aggregate.PatchLikeCount(msg.count)
		return m, nil

	case commentMutatedMsg:
		if !m.isActive || msg.mount != m.mount {
			return m, nil
		}
		return m.onCommentMutated(msg)

	case postDeletedMsg:
		if !m.isActive || msg.mount != m.mount || msg.err != nil {
			return m, nil
		}
		return m, func() tea.Msg { return common.NavigateBackMsg{} }

	case tea.KeyMsg:
		if !m.isActive {
			return m, nil
		}
		switch m.focus {
		case focusConfirm:
			return m.updateConfirm(msg)
		case focusCompose:
			return m.updateCompose(msg)
		case focusEdit:
			return m.updateEdit(msg)
		default:
			return m.updateThread(msg)
		}
	}

	// cursor blink and other input messages
	var cmd tea.Cmd
	switch m.focus {
	case focusCompose:
		m.compose, cmd = m.compose.Update(msg)
	case focusEdit:
		m.editInput, cmd = m.editInput.Update(msg)
	}
	return m, cmd
}

func (m Model) updateThread(msg tea.KeyMsg) (Model, tea.Cmd) {
	m.Status = ""
	post := m.aggregate.Post

	switch msg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
			if m.Selected < m.Offset {
				m.Offset = m.Selected
			}
		}
	case "down", "j":
		if post != nil && m.Selected < len(post.Comments)-1 {
			m.Selected++
			if m.Selected >= m.Offset+m.itemsPerPage() {
				m.Offset = m.Selected - m.itemsPerPage() + 1
			}
		}
	case "l":
		return m.toggleLike()
	case "c":
		if post == nil {
			return m, nil
		}
		m.focus = focusCompose
		return m, m.compose.Focus()
	case "enter", "m":
		if c, ok := m.selectedComment(); ok && c.IsAuthor(m.Username) {
			m.menu.ToggleMenu(c.CommentId)
		}
	case "e":
		if c, ok := m.selectedComment(); ok && m.menu.State(c.CommentId) == MenuOpen {
			return m.startEdit(c)
		}
	case "x":
		if c, ok := m.selectedComment(); ok && m.menu.State(c.CommentId) == MenuOpen {
			m.focus = focusConfirm
			m.confirm = confirmDeleteComment
			m.confirmTarget = c.CommentId
		}
	case "E":
		if post != nil && post.IsAuthor(m.Username) {
			id := post.Id
			return m, func() tea.Msg { return common.EditPostMsg{PostId: id} }
		}
	case "D":
		if post != nil && post.IsAuthor(m.Username) {
			m.focus = focusConfirm
			m.confirm = confirmDeletePost
		}
	case "r":
		return m.invalidateAndRefetch()
	case "esc", "q":
		if _, open := m.menu.ActiveMenu(); open {
			m.menu.CloseMenu()
			return m, nil
		}
		return m, func() tea.Msg { return common.NavigateBackMsg{} }
	}
	return m, nil
}

func (m Model) updateCompose(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return m.submitComment()
	case tea.KeyEsc:
		m.compose.Blur()
		m.focus = focusThread
		return m, nil
	}
	m.Status = ""
	var cmd tea.Cmd
	m.compose, cmd = m.compose.Update(msg)
	return m, cmd
}

func (m Model) updateEdit(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return m.submitEdit()
	case tea.KeyEsc:
		return m.cancelEdit(), nil
	}
	m.Status = ""
	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return m, cmd
}

// updateConfirm resolves a pending delete. Declining issues no request.
func (m Model) updateConfirm(msg tea.KeyMsg) (Model, tea.Cmd) {
	kind, target := m.confirm, m.confirmTarget

	switch msg.String() {
	case "y", "Y":
		m.confirm = confirmNone
		m.confirmTarget = 0
		m.focus = focusThread
		switch kind {
		case confirmDeleteComment:
			return m, deleteCommentCmd(m.client, m.mount, target)
		case confirmDeletePost:
			return m, deletePostCmd(m.client, m.mount, m.PostId)
		}
	case "n", "N", "esc":
		m.confirm = confirmNone
		m.confirmTarget = 0
		m.focus = focusThread
		m.Status = promptDeclined
		log.Printf("Delete on post %d: %v", m.PostId, domain.ErrUserDeclined)
	}
	return m, nil
}

func (m Model) selectedComment() (domain.Comment, bool) {
	post := m.aggregate.Post
	if post == nil || m.Selected < 0 || m.Selected >= len(post.Comments) {
		return domain.Comment{}, false
	}
	return post.Comments[m.Selected], true
}

func (m *Model) clampSelection() {
	n := 0
	if m.aggregate.Post != nil {
		n = len(m.aggregate.Post.Comments)
	}
	if m.Selected >= n {
		m.Selected = max(0, n-1)
	}
	if m.Offset > m.Selected {
		m.Offset = m.Selected
	}
}

func (m Model) itemsPerPage() int {
	if m.Height <= 0 {
		return common.MinItemsPerPage
	}
	available := common.CalculateAvailableHeight(m.Height)
	if m.aggregate.Post != nil {
		available -= common.MeasureHeight(m.renderPost(m.aggregate.Post))
	}
	return common.CalculateItemsPerPage(available, common.CommentItemHeight)
}

// Post exposes the held post for the composition root (nil until loaded)
func (m Model) Post() *domain.Post {
	return m.aggregate.Post
}

// IsLiked reports whether the current user has liked the viewed post
func (m Model) IsLiked() bool {
	return m.aggregate.Post != nil && m.likes.IsLiked(m.aggregate.Post.Id)
}

// Menu exposes the comment menu state
func (m Model) Menu() CommentMenu {
	return m.menu
}

func (m Model) View() string {
	var s strings.Builder

	s.WriteString(common.CaptionStyle.Render(fmt.Sprintf("chats #%d", m.PostId)))
	s.WriteString("\n\n")

	if m.aggregate.NotFound {
		s.WriteString(common.ListEmptyStyle.Render(notFoundText))
		s.WriteString("\n\n")
		s.WriteString(common.HelpStyle.Render("esc: back"))
		return s.String()
	}

	post := m.aggregate.Post
	if post == nil {
		if m.loading {
			s.WriteString(common.ListEmptyStyle.Render("Loading..."))
		}
		s.WriteString("\n\n")
		s.WriteString(common.HelpStyle.Render("r: reload · esc: back"))
		return s.String()
	}

	s.WriteString(m.renderPost(post))
	s.WriteString("\n\n")
	s.WriteString(m.compose.View())
	s.WriteString("\n\n")
	s.WriteString(m.renderComments(post))

	if m.confirm != confirmNone {
		s.WriteString(common.ConfirmStyle.Render(promptConfirm))
		s.WriteString("\n\n")
	}
	if m.Status != "" {
		s.WriteString(common.ListErrorStyle.Render(m.Status))
		s.WriteString("\n\n")
	}

	s.WriteString(common.HelpStyle.Render(m.helpText(post)))
	return s.String()
}

func (m Model) renderPost(post *domain.Post) string {
	var s strings.Builder

	created := post.CreatedAt
	if stamp, err := util.ParseStamp(post.CreatedAt); err == nil {
		created = stamp.DisplayHeader(m.offsetHours)
	}
	s.WriteString(authorStyle.Render(post.AuthorUsername) + " " + timeStyle.Render(created))
	s.WriteString("\n")
	s.WriteString(titleStyle.Render(post.Title))
	s.WriteString("\n")
	if m.Width > 0 {
		s.WriteString(contentStyle.Width(common.CalculateContentWidth(m.Width, 2)).Render(post.Content))
	} else {
		s.WriteString(contentStyle.Render(post.Content))
	}
	s.WriteString("\n\n")

	like := fmt.Sprintf("♡ %d", post.LikeCount)
	if m.likes.IsLiked(post.Id) {
		like = common.LikedStyle.Render(fmt.Sprintf("♥ %d", post.LikeCount))
	}
	s.WriteString(statsStyle.Render(fmt.Sprintf("조회 %d · ", post.HitCount)) + like)

	if len(post.Tags) > 0 || post.StudyStatus != "" {
		s.WriteString("\n")
		tags := make([]string, 0, len(post.Tags))
		for _, t := range post.Tags {
			tags = append(tags, common.TagStyle.Render("#"+t))
		}
		s.WriteString(strings.Join(tags, " "))
		if post.StudyStatus != "" {
			s.WriteString(" " + common.ListBadgeStyle.Render("["+post.StudyStatus+"]"))
		}
	}
	return s.String()
}

func (m Model) renderComments(post *domain.Post) string {
	var s strings.Builder

	s.WriteString(statsStyle.Render(fmt.Sprintf("댓글 %d", len(post.Comments))))
	s.WriteString("\n\n")

	if len(post.Comments) == 0 {
		s.WriteString(common.ListEmptyStyle.Render("No comments yet."))
		s.WriteString("\n\n")
		return s.String()
	}

	end := min(m.Offset+m.itemsPerPage(), len(post.Comments))
	for i := m.Offset; i < end; i++ {
		c := post.Comments[i]
		state := m.menu.State(c.CommentId)

		prefix := common.ListUnselectedPrefix
		author := authorStyle.Render(c.AuthorUsername)
		if i == m.Selected && m.focus != focusCompose {
			prefix = common.ListSelectedPrefix
			author = common.ListItemSelectedStyle.Render(c.AuthorUsername)
		}

		line := prefix + author + " " + timeStyle.Render(util.FormatRelativeString(m.now, c.CreatedAt))
		if c.IsAuthor(m.Username) && state != Editing {
			line += " " + common.ListBadgeStyle.Render("⋯")
		}
		s.WriteString(line)
		s.WriteString("\n")

		switch state {
		case MenuOpen:
			s.WriteString(commentIndent + common.MenuStyle.Render("[e] 수정  [x] 삭제"))
			s.WriteString("\n")
			s.WriteString(commentIndent + util.TruncateVisibleLength(c.Contents, common.MaxContentTruncateWidth))
		case Editing:
			s.WriteString(commentIndent + m.editInput.View())
			s.WriteString("\n")
			s.WriteString(commentIndent + common.HelpStyle.Render("enter: 수정하기 · esc: 취소"))
		default:
			s.WriteString(commentIndent + util.TruncateVisibleLength(c.Contents, common.MaxContentTruncateWidth))
		}
		s.WriteString("\n\n")
	}
	return s.String()
}

func (m Model) helpText(post *domain.Post) string {
	switch m.focus {
	case focusCompose:
		return "enter: 댓글달기 · esc: cancel"
	case focusEdit:
		return "enter: 수정하기 · esc: 취소"
	case focusConfirm:
		return "y: confirm · n: cancel"
	}
	help := "j/k: move · l: like · c: comment · m: menu · r: reload · esc: back"
	if post.IsAuthor(m.Username) {
		help += " · E: edit post · D: delete post"
	}
	return help
}
