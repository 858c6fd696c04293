package board

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	cursor     lipgloss.Style
	product    lipgloss.Style
	detail     lipgloss.Style
	badge      lipgloss.Style
	active     lipgloss.Style
	cooldown   lipgloss.Style
	countdown  lipgloss.Style
	ready      lipgloss.Style
	empty      lipgloss.Style
	help       lipgloss.Style
	prompt     lipgloss.Style
	errMessage lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		cursor:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		product:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		badge:      lipgloss.NewStyle().Bold(true),
		active:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		cooldown:   lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		countdown:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
		ready:      lipgloss.NewStyle().Faint(true),
		empty:      lipgloss.NewStyle().Faint(true),
		help:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1),
		prompt:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		errMessage: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
	}
}
