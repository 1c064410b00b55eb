package tui

import (
	"strings"
)

const pageDivider = "──────────────────────────────"

// renderPage lays out a screen the same way everywhere: title, divider,
// content, then hot keys with the global quit hint appended.
func renderPage(title string, content string, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(pageDivider)
	b.WriteString("\n\n")
	b.WriteString(content)
	b.WriteString("\n\n")

	if hotKeys != "" {
		hotKeys += " • "
	}
	b.WriteString(helpStyle.Render(hotKeys + "ctrl+c: выход"))

	return appStyle.Render(b.String())
}
