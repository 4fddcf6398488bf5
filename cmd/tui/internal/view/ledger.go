package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/studiodesk/studiodesk/internal/ledger"
)

type ledgerState int

const (
	ledgerStateBrowse ledgerState = iota
	ledgerStateEdit
)

type LedgerModel struct {
	CommonModel
	svc *ledger.Service

	state   ledgerState
	table   table.Model
	records []*ledger.Record
	form    *huh.Form

	loading bool
	err     error
	status  string

	// Form bindings
	formPerson  string
	formAdvance string
	formTotal   string
}

func NewLedgerModel(svc *ledger.Service) LedgerModel {
	columns := []table.Column{
		{Title: "Person", Width: 22},
		{Title: "Studio", Width: 16},
		{Title: "Date", Width: 12},
		{Title: "Advance", Width: 10},
		{Title: "Total", Width: 10},
		{Title: "Balance", Width: 10},
		{Title: "Status", Width: 8},
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

	return LedgerModel{
		svc:   svc,
		table: t,
	}
}

func (m LedgerModel) Title() string { return "Customer Ledger" }
func (m LedgerModel) ShortHelp() string {
	if m.state == ledgerStateEdit {
		return "Navigate form | Esc: cancel"
	}
	return "Esc: back | e: edit | r: refresh"
}

func (m LedgerModel) Init() tea.Cmd {
	return m.loadRecordsCmd()
}

func (m LedgerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadLedgerMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.records = msg.records
		m.err = nil
		m.refreshTable()
		return m, nil

	case ledgerSaveMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
		} else {
			m.status = "Saved."
		}
		m.state = ledgerStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadRecordsCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case ledgerStateBrowse:
		return m.updateBrowse(msg)
	case ledgerStateEdit:
		return m.updateEdit(msg)
	}

	return m, nil
}

func (m LedgerModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadRecordsCmd()
		case "e":
			return m.enterEditMode()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m LedgerModel) enterEditMode() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.records) {
		return m, nil
	}

	rec := m.records[idx]
	m.formPerson = rec.Person
	m.formAdvance = rec.Advance.String()
	m.formTotal = rec.Total.String()

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("person").
				Title("Person").
				Value(&m.formPerson).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("person cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("advance").
				Title("Advance").
				Value(&m.formAdvance),

			huh.NewInput().
				Key("total").
				Title("Total").
				Value(&m.formTotal),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = ledgerStateEdit
	m.table.Blur()
	return m, m.form.Init()
}

func (m LedgerModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = ledgerStateBrowse
			m.form = nil
			m.table.Focus()
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		idx := m.table.Cursor()
		if idx < 0 || idx >= len(m.records) {
			m.state = ledgerStateBrowse
			return m, nil
		}

		return m, m.saveRecordCmd(m.records[idx])
	}

	return m, cmd
}

func (m LedgerModel) View() string {
	if m.loading {
		return "Loading ledger..."
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v\n\n(Esc to back)", m.err))
	}

	if m.state == ledgerStateEdit && m.form != nil {
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())
	}

	out := m.table.View()
	if m.status != "" {
		out += "\n" + m.status
	}

	return out
}

func (m *LedgerModel) refreshTable() {
	rows := make([]table.Row, len(m.records))
	for i, rec := range m.records {
		rows[i] = table.Row{
			rec.Person,
			rec.Studio,
			rec.ShootDate,
			FormatAmount(rec.Advance),
			FormatAmount(rec.Total),
			FormatAmount(rec.Balance),
			string(rec.Status),
		}
	}

	m.table.SetRows(rows)
}

type loadLedgerMsg struct {
	records []*ledger.Record
	err     error
}

func (m LedgerModel) loadRecordsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		records, err := m.svc.List(ctx)
		return loadLedgerMsg{records: records, err: err}
	}
}

type ledgerSaveMsg struct {
	err error
}

func (m LedgerModel) saveRecordCmd(rec *ledger.Record) tea.Cmd {
	person := m.formPerson
	advance := m.formAdvance
	total := m.formTotal

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.svc.Update(ctx, rec.ID, ledger.CreateParams{
			Studio:    rec.Studio,
			Person:    person,
			Phone:     rec.Phone,
			ShootDate: rec.ShootDate,
			Camera:    rec.Camera,
			Location:  rec.Location,
			Advance:   advance,
			Total:     total,
		})
		return ledgerSaveMsg{err: err}
	}
}
