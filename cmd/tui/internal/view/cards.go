package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/studiodesk/studiodesk/internal/card"
)

type CardsModel struct {
	CommonModel
	svc *card.Service

	table   table.Model
	cards   []*card.Card
	loading bool
	err     error
}

func NewCardsModel(svc *card.Service) CardsModel {
	columns := []table.Column{
		{Title: "Customer", Width: 24},
		{Title: "Template", Width: 12},
		{Title: "Slug", Width: 24},
		{Title: "Status", Width: 8},
		{Title: "Created", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return CardsModel{
		svc:   svc,
		table: t,
	}
}

func (m CardsModel) Title() string     { return "Issued Cards" }
func (m CardsModel) ShortHelp() string { return "Esc: back | r: refresh" }

func (m CardsModel) Init() tea.Cmd {
	return m.loadCardsCmd()
}

func (m CardsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadCardsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.cards = msg.cards
		m.err = nil
		m.refreshTable()
		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCardsCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m CardsModel) View() string {
	if m.loading {
		return "Loading cards..."
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v\n\n(Esc to back)", m.err))
	}

	return m.table.View()
}

func (m *CardsModel) refreshTable() {
	rows := make([]table.Row, len(m.cards))
	for i, c := range m.cards {
		rows[i] = table.Row{
			c.CustomerIdentifier,
			c.TemplateType,
			c.CustomerSlug,
			string(c.Status),
			FormatDate(c.CreatedAt),
		}
	}

	m.table.SetRows(rows)
}

type loadCardsMsg struct {
	cards []*card.Card
	err   error
}

func (m CardsModel) loadCardsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		cards, err := m.svc.List(ctx)
		return loadCardsMsg{cards: cards, err: err}
	}
}
