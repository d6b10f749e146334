// Package cmd wires the finza cobra CLI.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/finzaapp/finza/internal/config"
	"github.com/finzaapp/finza/internal/model"
	"github.com/finzaapp/finza/internal/store"
)

var flagDataDir string

var rootCmd = &cobra.Command{
	Use:   "finza",
	Short: "Personal finance tracker",
	Long:  "Track income, expenses, fixed bills, and savings goals, with daily-budget figures and AI advice.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory (default XDG data home)")
}

// openLedger is the shared setup path used by all commands. The caller
// must Close the returned KV when done.
func openLedger() (config.Config, *store.KV, *store.Ledger, error) {
	cfg, err := config.Load()
	if err != nil {
		// A corrupt config should not block access to the data;
		// fall back to defaults and mention it.
		fmt.Fprintf(os.Stderr, "  %v (using defaults)\n", err)
		cfg = config.DefaultConfig()
	}

	dbPath := config.DataPath(cfg)
	if flagDataDir != "" {
		dbPath = filepath.Join(flagDataDir, "finza.db")
	}

	kv, err := store.OpenKV(dbPath)
	if err != nil {
		return cfg, nil, nil, err
	}

	return cfg, kv, store.OpenLedger(kv, time.Now), nil
}

// resolveID expands a unique ID prefix to the full identifier. Unknown
// prefixes pass through unchanged so removals stay silently idempotent;
// an ambiguous prefix is an error.
func resolveID(arg string, ids []string) (string, error) {
	var match string
	count := 0
	for _, id := range ids {
		if strings.HasPrefix(id, arg) {
			match = id
			count++
		}
	}
	if count > 1 {
		return "", fmt.Errorf("ambiguous id %q", arg)
	}
	if count == 1 {
		return match, nil
	}
	return arg, nil
}

func transactionIDs(items []model.Transaction) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

func goalIDs(items []model.SavingsGoal) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

func commitmentIDs(items []model.Commitment) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

// parseAmount parses a user-supplied monetary amount, accepting a comma
// decimal separator.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q", s)
	}
	return amount, nil
}
