package main

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	winningsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)
