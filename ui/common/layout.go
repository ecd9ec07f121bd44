package common

import "github.com/charmbracelet/lipgloss"

// Layout constants for the TUI

const (
	// HeaderHeight is the height of the header bar (single line)
	HeaderHeight = 1

	// HeaderNewline is the newline added after the header in View()
	HeaderNewline = 1

	// FooterHeight is the height of the help/footer text
	FooterHeight = 1

	// PanelMarginVertical is the vertical margin applied to the body (1 top + 1 bottom)
	PanelMarginVertical = 2

	// HeaderTotalPadding is the total horizontal padding for header content (2 spaces each side)
	HeaderTotalPadding = 4

	// CommentItemHeight is the estimated height of a rendered comment in lines
	CommentItemHeight = 4

	// MinItemsPerPage is the minimum number of comments to show per page
	MinItemsPerPage = 3

	// TextInputDefaultWidth is a reasonable default width for text input fields
	TextInputDefaultWidth = 50

	// MaxContentTruncateWidth is the maximum width for truncating comment content
	MaxContentTruncateWidth = 150

	// MaxCommentDBLength is the maximum character length of a comment on the forum
	MaxCommentDBLength = 1000

	// CommentIndentWidth is the number of spaces used to indent comments under the post
	CommentIndentWidth = 2
)

// VerticalLayoutOffset returns the total vertical space taken by header, footer, and margins
func VerticalLayoutOffset() int {
	return HeaderHeight + HeaderNewline + PanelMarginVertical + FooterHeight
}

// CalculateAvailableHeight returns the height available for the body
func CalculateAvailableHeight(totalHeight int) int {
	return totalHeight - VerticalLayoutOffset()
}

// CalculateItemsPerPage returns the number of items that fit in the available height
func CalculateItemsPerPage(availableHeight, itemHeight int) int {
	if itemHeight <= 0 {
		itemHeight = CommentItemHeight
	}
	items := availableHeight / itemHeight
	if items < MinItemsPerPage {
		return MinItemsPerPage
	}
	return items
}

// CalculateContentWidth returns the width for content after internal padding
func CalculateContentWidth(panelWidth, padding int) int {
	return panelWidth - (padding * 2)
}

// MeasureHeight returns the height of a rendered string using lipgloss
func MeasureHeight(rendered string) int {
	return lipgloss.Height(rendered)
}

// DefaultWindowWidth returns the usable width after accounting for outer margins
func DefaultWindowWidth(width int) int {
	return width - 4
}

// DefaultWindowHeight returns the usable height after accounting for outer margins
func DefaultWindowHeight(height int) int {
	return height - 2
}
