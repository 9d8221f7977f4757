package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/Jhonatansales/gestao-financeira/internal/cli"
	"github.com/spf13/cobra"
)

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show the financial summary",
		Long: `Show the aggregated financial position: total balance across accounts,
this month's income and expenses, and the all-time settled totals.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			engine, store, err := initEngine(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			summary, err := engine.Summary(ctx)
			if err != nil {
				return fmt.Errorf("failed to compute summary: %w", err)
			}

			fmt.Println(cli.FormatTitle("Financial summary"))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			balance := summary.TotalBalance.StringFixed(2)
			if summary.TotalBalance.IsNegative() {
				balance = cli.ErrorStyle.Render(balance)
			}
			fmt.Fprintf(w, "Total balance:\t%s\n", balance)
			fmt.Fprintf(w, "Income this month:\t%s\n", summary.MonthlyIncome.StringFixed(2))
			fmt.Fprintf(w, "Expenses this month:\t%s\n", summary.MonthlyExpenses.StringFixed(2))
			fmt.Fprintf(w, "Total received:\t%s\n", summary.TotalReceived.StringFixed(2))
			fmt.Fprintf(w, "Total paid:\t%s\n", summary.TotalPaid.StringFixed(2))

			return nil
		},
	}
}
