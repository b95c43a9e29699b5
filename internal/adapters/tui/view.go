package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jsamuelsen11/projectboard/internal/ports"
)

const listWidth = 36

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("51")).
			Bold(true).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("45")).
			Width(13)

	focusedLabelStyle = labelStyle.
				Foreground(lipgloss.Color("231")).
				Bold(true)

	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("196")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46"))

	listStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1).
			Width(listWidth)

	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

var labels = [fieldCount]string{"Title", "Description", "People"}

// View renders the form, the banner or status line, and both lists.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("PROJECT BOARD"))
	b.WriteString("\n\n")

	for i, in := range m.inputs {
		style := labelStyle
		if i == m.focus {
			style = focusedLabelStyle
		}
		b.WriteString(style.Render(labels[i]))
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.banner != "":
		b.WriteString(bannerStyle.Render(m.banner + "\n" + dimStyle.Render("press any key")))
	case m.status != "":
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n\n")

	rendered := make([]string, 0, len(m.lists))
	for _, list := range m.lists {
		rendered = append(rendered, renderList(list))
	}
	if len(rendered) > 0 {
		// Stack the lists when the terminal is too narrow for both.
		if m.width > 0 && m.width < len(rendered)*(listWidth+2) {
			b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rendered...))
		} else {
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
		}
		b.WriteString("\n")
	}

	b.WriteString(dimStyle.Render("tab/shift+tab move  enter add project  esc quit"))
	return b.String()
}

func renderList(list *ports.ListSnapshot) string {
	lines := make([]string, 0, len(list.Projects)+1)
	lines = append(lines, headingStyle.Render(list.Heading))
	if len(list.Projects) == 0 {
		lines = append(lines, dimStyle.Render("no projects"))
	}
	for _, p := range list.Projects {
		lines = append(lines, fmt.Sprintf("%s %s", p.Title, dimStyle.Render(fmt.Sprintf("(%d)", p.People))))
	}
	return listStyle.Render(strings.Join(lines, "\n"))
}
