package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	activeColumnStyle = columnStyle.
				BorderForeground(lipgloss.Color("205"))

	columnHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				MarginBottom(1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)

	selectedCardStyle = cardStyle.
				BorderForeground(lipgloss.Color("212"))

	cardTitleStyle = lipgloss.NewStyle().Bold(true)

	cardDescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	nextHintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	formStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	activeFormStyle = formStyle.
			BorderForeground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// stageColor tints column headers by stage position.
var stageColor = []lipgloss.Color{"214", "39", "42"}
