// Package tui provides the interactive Bubble Tea dashboard for finza.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/finzaapp/finza/internal/advisor"
	"github.com/finzaapp/finza/internal/config"
	"github.com/finzaapp/finza/internal/metrics"
	"github.com/finzaapp/finza/internal/model"
	"github.com/finzaapp/finza/internal/store"
	"github.com/finzaapp/finza/internal/tui/components"
	"github.com/finzaapp/finza/internal/tui/theme"
)

// adviceMsg carries a finished advice fetch back into the event loop.
type adviceMsg struct {
	version uint64
	text    string
}

const (
	tabOverview = iota
	tabBills
	tabGoals
	tabHistory
)

const adviceLoading = "Analyzing your finances..."

// App is the root Bubble Tea model.
type App struct {
	cfg    config.Config
	ledger *store.Ledger

	sched      *advisor.Scheduler
	adviceSub  chan adviceMsg
	advice     string
	adviceBusy bool

	width  int
	height int

	activeTab   int
	billsCursor int
	goalsCursor int
	txCursor    int

	form     *huh.Form
	formKind formKind
	vals     *formValues

	status string

	// Derived state, recomputed after every mutation.
	transactions []model.Transaction
	goals        []model.SavingsGoal
	commitments  []model.Commitment
	summary      metrics.Summary
	progress     []metrics.GoalProgress
	dailyGoals   decimal.Decimal
	dailyBills   decimal.Decimal
}

// NewApp creates the TUI app around an already-opened ledger.
func NewApp(cfg config.Config, ledger *store.Ledger) App {
	client := advisor.NewClient(
		config.GetAdvisorKey(cfg),
		cfg.Advisor.BaseURL,
		cfg.Advisor.Model,
	)
	var adv advisor.Advisor
	if client != nil {
		adv = client
	}

	sub := make(chan adviceMsg, 4)
	sched := advisor.NewScheduler(
		adv,
		time.Duration(cfg.Advisor.DebounceMs)*time.Millisecond,
		func(version uint64, text string) {
			sub <- adviceMsg{version: version, text: text}
		},
	)

	a := App{
		cfg:        cfg,
		ledger:     ledger,
		sched:      sched,
		adviceSub:  sub,
		advice:     adviceLoading,
		adviceBusy: true,
		vals:       &formValues{},
	}
	a.recompute()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	a.sched.Notify(a.snapshot())
	return waitForAdvice(a.adviceSub)
}

// snapshot captures the current collections for the advisor.
func (a App) snapshot() advisor.Snapshot {
	return advisor.Snapshot{
		Transactions: a.transactions,
		Goals:        a.goals,
		Commitments:  a.commitments,
	}
}

// recompute refreshes cached collections and derived metrics.
func (a *App) recompute() {
	now := time.Now()

	a.transactions = a.ledger.Transactions()
	a.goals = a.ledger.Goals()
	a.commitments = a.ledger.Commitments()

	a.summary = metrics.Summarize(a.transactions)
	a.progress = metrics.ProgressAll(a.goals, now)
	a.dailyGoals = metrics.DailyGoalTarget(a.goals, now)
	a.dailyBills = metrics.DailyCommitmentBurden(a.commitments)

	a.clampCursors()
}

func (a *App) clampCursors() {
	a.billsCursor = clamp(a.billsCursor, len(a.commitments))
	a.goalsCursor = clamp(a.goalsCursor, len(a.goals))
	a.txCursor = clamp(a.txCursor, len(a.transactions))
}

func clamp(cursor, n int) int {
	if cursor >= n {
		cursor = n - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}

// notifyAdvice schedules a debounced advice refresh for the new state.
func (a *App) notifyAdvice() {
	a.adviceBusy = true
	a.sched.Notify(a.snapshot())
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(msg.Width - 4)
		}
		return a, nil

	case adviceMsg:
		// A stale fetch (state changed while it was in flight) is dropped
		// by the scheduler, so whatever arrives here is current.
		a.advice = msg.text
		a.adviceBusy = false
		return a, waitForAdvice(a.adviceSub)
	}

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		a.sched.Stop()
		return a, tea.Quit
	}

	// An open form captures everything else.
	if a.form != nil {
		f, cmd := a.form.Update(msg)
		if form, ok := f.(*huh.Form); ok {
			a.form = form
		}
		switch a.form.State {
		case huh.StateCompleted:
			a.applyForm()
			a.form = nil
		case huh.StateAborted:
			a.form = nil
			a.status = ""
		}
		return a, cmd
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	switch key.String() {
	case "q":
		a.sched.Stop()
		return a, tea.Quit

	case "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
	case "shift+tab":
		a.activeTab = (a.activeTab + len(components.Tabs) - 1) % len(components.Tabs)
	case "o", "b", "g", "h":
		if idx := components.TabIdxByKey(rune(key.String()[0])); idx >= 0 {
			a.activeTab = idx
		}

	case "j", "down":
		a.moveCursor(1)
	case "k", "up":
		a.moveCursor(-1)

	case "a":
		a.openAddForm()
		return a, a.form.Init()
	case "x":
		a.deleteSelected()
	case "c":
		if a.activeTab == tabGoals && len(a.goals) > 0 {
			a.openContributeForm(a.goals[a.goalsCursor])
			return a, a.form.Init()
		}
	case "r":
		a.notifyAdvice()
		a.status = "Refreshing advice"
	}

	return a, nil
}

func (a *App) moveCursor(delta int) {
	switch a.activeTab {
	case tabBills:
		a.billsCursor = clamp(a.billsCursor+delta, len(a.commitments))
	case tabGoals:
		a.goalsCursor = clamp(a.goalsCursor+delta, len(a.goals))
	case tabHistory:
		a.txCursor = clamp(a.txCursor+delta, len(a.transactions))
	}
}

func (a *App) deleteSelected() {
	var err error
	switch a.activeTab {
	case tabBills:
		if len(a.commitments) == 0 {
			return
		}
		err = a.ledger.RemoveCommitment(a.commitments[a.billsCursor].ID)
	case tabGoals:
		if len(a.goals) == 0 {
			return
		}
		err = a.ledger.RemoveGoal(a.goals[a.goalsCursor].ID)
	case tabHistory:
		if len(a.transactions) == 0 {
			return
		}
		err = a.ledger.RemoveTransaction(a.transactions[a.txCursor].ID)
	default:
		return
	}

	if err != nil {
		a.status = err.Error()
		return
	}
	a.recompute()
	a.notifyAdvice()
	a.status = "Deleted"
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return "\n  Starting finza..."
	}

	t := theme.Active

	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	header := " " + titleStyle.Render("FINZA") + "\n" +
		components.RenderTabBar(a.activeTab) + "\n"

	var content string
	if a.form != nil {
		content = "\n" + a.form.View()
	} else {
		switch a.activeTab {
		case tabOverview:
			content = a.renderOverviewTab()
		case tabBills:
			content = a.renderBillsTab()
		case tabGoals:
			content = a.renderGoalsTab()
		case tabHistory:
			content = a.renderHistoryTab()
		}
	}

	hints := a.statusHints()
	statusBar := components.RenderStatusBar(hints, a.status, a.width)

	contentH := a.height - lipgloss.Height(header) - 1
	if contentH < 3 {
		contentH = 3
	}
	content = lipgloss.Place(a.width, contentH, lipgloss.Left, lipgloss.Top, content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func (a App) statusHints() string {
	if a.form != nil {
		return "enter confirm · esc cancel"
	}
	switch a.activeTab {
	case tabGoals:
		return "a add · c contribute · x delete · j/k move · r advice · q quit"
	case tabOverview:
		return "a add tx · tab switch · r advice · q quit"
	}
	return "a add · x delete · j/k move · tab switch · q quit"
}

func waitForAdvice(sub chan adviceMsg) tea.Cmd {
	return func() tea.Msg {
		return <-sub
	}
}
