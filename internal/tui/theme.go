package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Core palette
	Green       = lipgloss.Color("#00FF41")
	BrightGreen = lipgloss.Color("#39FF14")
	MedGreen    = lipgloss.Color("#00C832")
	DarkGreen   = lipgloss.Color("#008F11")
	DimGreen    = lipgloss.Color("#003B00")
	Cyan        = lipgloss.Color("#00D4AA")
	Gold        = lipgloss.Color("#FFD700")
	Red         = lipgloss.Color("#FF4136")
	MidGray     = lipgloss.Color("#3a3a4e")
	White       = lipgloss.Color("#e0e0e0")

	// Menu
	MenuTitleStyle = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	MenuNumberStyle = lipgloss.NewStyle().
			Foreground(BrightGreen).
			Bold(true)

	MenuItemStyle = lipgloss.NewStyle().
			Foreground(White)

	// Prompts read a line from the user
	PromptStyle = lipgloss.NewStyle().
			Foreground(Cyan).
			Bold(true)

	// Records printed by queries
	RecordStyle = lipgloss.NewStyle().
			Foreground(MedGreen)

	LabelStyle = lipgloss.NewStyle().
			Foreground(BrightGreen).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(Gold).
			Bold(true)

	// Banner
	BannerStyle = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	// Separator
	SeparatorStyle = lipgloss.NewStyle().
			Foreground(DimGreen)

	// Error
	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	// Help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(DarkGreen)

	// Boxes around the browser panes
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DarkGreen).
			Padding(0, 1)

	DetailStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Green).
			Padding(1, 2)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MidGray).
			Italic(true)
)

const Banner = `
  █░█ █▄░█ █ █░█ █▀▀ █▀█ █▀ █ ▀█▀ █▄█
  █▄█ █░▀█ █ ▀▄▀ ██▄ █▀▄ ▄█ █ ░█░ ░█░
`

// RenderBanner returns the styled banner.
func RenderBanner() string {
	return BannerStyle.Render(Banner)
}
