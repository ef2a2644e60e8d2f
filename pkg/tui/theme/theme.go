package theme

import (
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/moodcal/pkg/calendar"
	"tableflip.dev/moodcal/pkg/mood"
	"tableflip.dev/moodcal/pkg/picker"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Footer   FooterTheme
	Panel    PanelTheme
	Modal    ModalTheme
	Toast    ToastTheme
	Calendar calendar.Options
}

// FooterTheme groups styles used by the bottom status/help bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Prompt lipgloss.Style
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// ModalTheme styles the mood picker overlay.
type ModalTheme struct {
	Frame    lipgloss.Style
	Title    lipgloss.Style
	Option   lipgloss.Style
	Selected lipgloss.Style
	Disabled lipgloss.Style
	Action   lipgloss.Style
}

// ToastTheme styles notices by kind.
type ToastTheme struct {
	Info    lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
}

// For returns the toast style of a notice kind.
func (t ToastTheme) For(k picker.Kind) lipgloss.Style {
	switch k {
	case picker.Success:
		return t.Success
	case picker.Error:
		return t.Error
	default:
		return t.Info
	}
}

// MoodStyle is the foreground used for a mood's glyph.
func MoodStyle(m mood.Mood) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(m.Glyph().Color))
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	toast := lipgloss.NewStyle().Padding(0, 1)
	option := lipgloss.NewStyle().Padding(0, 1)

	return Theme{
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
			Title:    lipgloss.NewStyle().Bold(true),
			Option:   option,
			Selected: option.Reverse(true),
			Disabled: lipgloss.NewStyle().Faint(true),
			Action:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		},
		Toast: ToastTheme{
			Info:    toast.Foreground(lipgloss.Color("75")),
			Success: toast.Foreground(lipgloss.Color("78")),
			Error:   toast.Foreground(lipgloss.Color("203")).Bold(true),
		},
		Calendar: calendar.DefaultOptions(),
	}
}
