package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/studiodesk/studiodesk/cmd/tui/internal/view"
	"github.com/studiodesk/studiodesk/internal/card"
	cardStore "github.com/studiodesk/studiodesk/internal/card/store"
	"github.com/studiodesk/studiodesk/internal/config"
	"github.com/studiodesk/studiodesk/internal/database"
	"github.com/studiodesk/studiodesk/internal/ledger"
	ledgerStore "github.com/studiodesk/studiodesk/internal/ledger/store"
)

type model struct {
	ledgerService *ledger.Service
	cardService   *card.Service

	currentView View

	ledgerView view.LedgerModel
	cardsView  view.CardsModel
}

type View int

const (
	ViewMenu   View = 0
	ViewLedger View = 1
	ViewCards  View = 2
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	ledgerSvc := ledger.NewService(ledgerStore.New(db))
	cardSvc := card.NewService(cardStore.New(db))

	return model{
		ledgerService: ledgerSvc,
		cardService:   cardSvc,
		currentView:   ViewMenu,
		ledgerView:    view.NewLedgerModel(ledgerSvc),
		cardsView:     view.NewCardsModel(cardSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewLedger
				m.ledgerView = view.NewLedgerModel(m.ledgerService)

				return m, m.ledgerView.Init()
			case "2":
				m.currentView = ViewCards
				m.cardsView = view.NewCardsModel(m.cardService)

				return m, m.cardsView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewLedger:
		var newModel tea.Model
		newModel, cmd = m.ledgerView.Update(msg)
		m.ledgerView = newModel.(view.LedgerModel)
	case ViewCards:
		var newModel tea.Model
		newModel, cmd = m.cardsView.Update(msg)
		m.cardsView = newModel.(view.CardsModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"StudioDesk TUI\n\n" +
				"1. Customer Ledger\n" +
				"2. Issued Cards\n\n" +
				"q. Quit",
		)
	case ViewLedger:
		return m.ledgerView.View()
	case ViewCards:
		return m.cardsView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
