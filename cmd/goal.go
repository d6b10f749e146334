package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/finzaapp/finza/internal/cli"
	"github.com/finzaapp/finza/internal/metrics"
	"github.com/finzaapp/finza/internal/model"
)

var (
	flagGoalName   string
	flagGoalTarget string
	flagGoalSaved  string
	flagGoalDays   int
	flagGoalBy     string

	flagContribAmount string
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage savings goals",
}

var goalAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a savings goal",
	RunE:  runGoalAdd,
}

var goalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List goals with progress and daily figures",
	RunE:  runGoalList,
}

var goalRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a goal",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalRm,
}

var goalContributeCmd = &cobra.Command{
	Use:   "contribute <id>",
	Short: "Record money saved toward a goal",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalContribute,
}

func init() {
	goalAddCmd.Flags().StringVarP(&flagGoalName, "name", "n", "", "Goal name (required)")
	goalAddCmd.Flags().StringVarP(&flagGoalTarget, "target", "t", "", "Target amount (required)")
	goalAddCmd.Flags().StringVar(&flagGoalSaved, "saved", "0", "Amount already saved")
	goalAddCmd.Flags().IntVar(&flagGoalDays, "days", 30, "Days until the target date")
	goalAddCmd.Flags().StringVar(&flagGoalBy, "by", "", "Target date (YYYY-MM-DD, overrides --days)")
	_ = goalAddCmd.MarkFlagRequired("name")
	_ = goalAddCmd.MarkFlagRequired("target")

	goalContributeCmd.Flags().StringVarP(&flagContribAmount, "amount", "a", "", "Contribution amount (required)")
	_ = goalContributeCmd.MarkFlagRequired("amount")

	goalCmd.AddCommand(goalAddCmd, goalListCmd, goalRmCmd, goalContributeCmd)
	rootCmd.AddCommand(goalCmd)
}

func runGoalAdd(_ *cobra.Command, _ []string) error {
	target, err := parseAmount(flagGoalTarget)
	if err != nil {
		return err
	}
	saved, err := parseAmount(flagGoalSaved)
	if err != nil {
		return err
	}

	targetDate := time.Now().AddDate(0, 0, flagGoalDays)
	if flagGoalBy != "" {
		targetDate, err = time.ParseInLocation("2006-01-02", flagGoalBy, time.Local)
		if err != nil {
			return fmt.Errorf("invalid target date %q (want YYYY-MM-DD)", flagGoalBy)
		}
	}

	cfg, kv, ledger, err := openLedger()
	if err != nil {
		return err
	}
	defer kv.Close()

	g, err := ledger.AddGoal(model.GoalInput{
		Name:         flagGoalName,
		TargetAmount: target,
		SavedAmount:  saved,
		TargetDate:   targetDate,
	})
	if err != nil {
		return err
	}

	daily := metrics.DailyGoalAmount(g, time.Now())
	fmt.Printf("  Created goal %q (%s): save %s/day until %s\n",
		g.Name, cli.ShortID(g.ID),
		cli.FormatAmount(cfg.General.Currency, daily),
		cli.FormatDate(g.TargetDate))
	return nil
}

func runGoalList(_ *cobra.Command, _ []string) error {
	cfg, kv, ledger, err := openLedger()
	if err != nil {
		return err
	}
	defer kv.Close()

	goals := ledger.Goals()
	if len(goals) == 0 {
		fmt.Println("\n  No goals yet. Create one with `finza goal add`.")
		return nil
	}

	cur := cfg.General.Currency
	now := time.Now()

	rows := make([][]string, 0, len(goals))
	for _, p := range metrics.ProgressAll(goals, now) {
		pct, _ := p.ProgressPercent.Float64()
		rows = append(rows, []string{
			cli.ShortID(p.Goal.ID),
			p.Goal.Name,
			cli.FormatAmount(cur, p.Goal.SavedAmount) + " / " + cli.FormatAmount(cur, p.Goal.TargetAmount),
			cli.RenderGoalBar(pct/100, 12) + " " + cli.FormatPercent(p.ProgressPercent),
			cli.FormatDays(p.DaysLeft),
			cli.FormatAmount(cur, p.DailyNext) + "/day",
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Goal", "Saved", "Progress", "Left", "Daily"},
		Rows:    rows,
	}))

	aggregate := metrics.DailyGoalTarget(goals, now)
	fmt.Printf("\n  Daily saving to stay on track across all goals: %s\n",
		cli.FormatAmount(cur, aggregate))
	return nil
}

func runGoalRm(_ *cobra.Command, args []string) error {
	_, kv, ledger, err := openLedger()
	if err != nil {
		return err
	}
	defer kv.Close()

	id, err := resolveID(args[0], goalIDs(ledger.Goals()))
	if err != nil {
		return err
	}
	if err := ledger.RemoveGoal(id); err != nil {
		return err
	}
	fmt.Printf("  Removed %s\n", cli.ShortID(id))
	return nil
}

func runGoalContribute(_ *cobra.Command, args []string) error {
	amount, err := parseAmount(flagContribAmount)
	if err != nil {
		return err
	}

	cfg, kv, ledger, err := openLedger()
	if err != nil {
		return err
	}
	defer kv.Close()

	id, err := resolveID(args[0], goalIDs(ledger.Goals()))
	if err != nil {
		return err
	}

	g, err := ledger.RecordContribution(id, amount)
	if err != nil {
		return err
	}

	p := metrics.ProgressFor(g, time.Now())
	fmt.Printf("  %q is now at %s of %s (%s)\n",
		g.Name,
		cli.FormatAmount(cfg.General.Currency, g.SavedAmount),
		cli.FormatAmount(cfg.General.Currency, g.TargetAmount),
		cli.FormatPercent(p.ProgressPercent))
	return nil
}
