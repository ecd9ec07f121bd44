package header

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/devu-community/chatsview/domain"
	"github.com/devu-community/chatsview/ui/common"
	"github.com/devu-community/chatsview/util"
	"github.com/mattn/go-runewidth"
)

type Model struct {
	Width    int
	Username string
	PostId   domain.PostId
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

func (m Model) View() string {
	return GetHeaderStyle(m.Username, m.PostId, m.Width)
}

// GetHeaderStyle renders the single-line header: user on the left, app version
// centered, the viewed post on the right
func GetHeaderStyle(username string, postId domain.PostId, width int) string {
	leftText := username
	if leftText == "" {
		leftText = "guest"
	}
	centerText := fmt.Sprintf("%s v%s", util.Name, util.GetVersion())
	rightText := fmt.Sprintf("chats #%d", postId)

	// display widths, Korean usernames take two cells per rune
	totalTextLen := runewidth.StringWidth(leftText) +
		runewidth.StringWidth(centerText) +
		runewidth.StringWidth(rightText)
	totalSpacing := max(width-totalTextLen-common.HeaderTotalPadding, 2)

	leftSpacing := totalSpacing / 2
	rightSpacing := totalSpacing - leftSpacing

	header := fmt.Sprintf("  %s%s%s%s%s  ",
		leftText,
		strings.Repeat(" ", leftSpacing),
		centerText,
		strings.Repeat(" ", rightSpacing),
		rightText,
	)

	return lipgloss.NewStyle().
		Width(width).
		MaxWidth(width).
		Background(lipgloss.Color(common.COLOR_ACCENT)).
		Foreground(lipgloss.Color(common.COLOR_WHITE)).
		Bold(true).
		Render(header)
}
