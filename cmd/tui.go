package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/finzaapp/finza/internal/tui"
	"github.com/finzaapp/finza/internal/tui/theme"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, kv, ledger, err := openLedger()
	if err != nil {
		return err
	}
	defer kv.Close()

	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so background styling produces ANSI codes
	// even when lipgloss would otherwise pick the Ascii profile.
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(cfg, ledger)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
