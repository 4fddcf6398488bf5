package view

import (
	tea "github.com/charmbracelet/bubbletea"
)

// CommonModel is embedded by all views.
type CommonModel struct{}

// BackMsg tells the root model to return to the menu.
type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}
