package util

import (
	"github.com/charmbracelet/lipgloss"
	"strings"
)

// JoinWithEqualSpacing spreads items across width with equal gaps between them. If they don't fit, the result is
// truncated from the right
func JoinWithEqualSpacing(width int, items ...string) string {
	if len(items) == 0 || width <= 0 {
		return ""
	}

	totalContentWidth := 0
	for _, item := range items {
		totalContentWidth += lipgloss.Width(item)
	}

	var result strings.Builder
	if totalContentWidth <= width {
		if len(items) == 1 {
			return items[0]
		}
		totalSpacing := width - totalContentWidth
		baseSpacing := totalSpacing / (len(items) - 1)
		extraSpacing := totalSpacing % (len(items) - 1)
		for i, item := range items {
			result.WriteString(item)
			if i < len(items)-1 {
				spaces := baseSpacing
				if i < extraSpacing {
					spaces++
				}
				result.WriteString(strings.Repeat(" ", spaces))
			}
		}
		return result.String()
	}

	remainingWidth := width
	for _, item := range items {
		if remainingWidth <= 0 {
			break
		}
		itemWidth := lipgloss.Width(item)
		if itemWidth > remainingWidth {
			result.WriteString(lipgloss.NewStyle().MaxWidth(remainingWidth).Render(item))
			break
		}
		result.WriteString(item)
		remainingWidth -= itemWidth
	}
	return result.String()
}

// Plural returns word with an s appended unless n is 1
func Plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
