package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/Jhonatansales/gestao-financeira/internal/cli"
	"github.com/Jhonatansales/gestao-financeira/internal/limit"
	"github.com/Jhonatansales/gestao-financeira/internal/model"
	"github.com/Jhonatansales/gestao-financeira/internal/service"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func limitsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "limits",
		Short: "Manage spending limits",
		Long: `List, add, and update spending limits. A limit accrues every settled
expense in its category during the current period and resets when the period
rolls over.`,
	}

	cmd.AddCommand(listLimitsCmd())
	cmd.AddCommand(addLimitCmd())
	cmd.AddCommand(updateLimitCmd())

	return cmd
}

func listLimitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all limits",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			engine, store, err := initEngine(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			limits, err := engine.ListLimits(ctx)
			if err != nil {
				return fmt.Errorf("failed to list limits: %w", err)
			}

			if len(limits) == 0 {
				fmt.Println(cli.InfoStyle.Render("No limits found. Use 'gestao limits add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				headerStyle.Render("ID"),
				headerStyle.Render("Category"),
				headerStyle.Render("Usage"),
				headerStyle.Render("Period"),
				headerStyle.Render("Resets"),
				headerStyle.Render("State"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 8),
				strings.Repeat("-", 16),
				strings.Repeat("-", 20),
				strings.Repeat("-", 10),
				strings.Repeat("-", 11),
				strings.Repeat("-", 8))

			for i := range limits {
				l := &limits[i]
				usage := fmt.Sprintf("%s / %s (%.0f%%)",
					l.CurrentAmount.StringFixed(2), l.LimitAmount.StringFixed(2),
					limit.UsagePercentage(l.CurrentAmount, l.LimitAmount))
				var state string
				switch limit.Classify(l) {
				case model.LimitExceeded:
					state = cli.ErrorStyle.Render("exceeded")
				case model.LimitNear:
					state = cli.WarningStyle.Render("near")
				default:
					state = cli.SuccessStyle.Render("ok")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					l.ID, l.Category, usage, l.Period, l.ResetDate.Format("2006-01-02"), state)
			}

			return nil
		},
	}
}

func addLimitCmd() *cobra.Command {
	var (
		title       string
		category    string
		subcategory string
		amount      string
		period      string
		threshold   int
		startType   string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new limit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			engine, store, err := initEngine(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			limitAmount, err := parseAmount(amount)
			if err != nil {
				return err
			}

			created, err := engine.CreateLimit(ctx, &model.Limit{
				Title:          title,
				Category:       category,
				Subcategory:    subcategory,
				LimitAmount:    limitAmount,
				Period:         model.LimitPeriod(period),
				AlertThreshold: threshold,
				StartType:      model.StartType(startType),
			})
			if err != nil {
				return fmt.Errorf("failed to create limit: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created %s limit of %s on %q, resets %s",
				created.Period, created.LimitAmount.StringFixed(2), created.Category,
				created.ResetDate.Format("2006-01-02"))))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "limit title")
	cmd.Flags().StringVar(&category, "category", "", "category id (required)")
	cmd.Flags().StringVar(&subcategory, "subcategory", "", "restrict to a subcategory")
	cmd.Flags().StringVar(&amount, "amount", "", "limit amount (required)")
	cmd.Flags().StringVar(&period, "period", "monthly", "period (biweekly, monthly, bimonthly, quarterly, semiannual, annual)")
	cmd.Flags().IntVar(&threshold, "threshold", 0, "alert threshold percentage (default 80)")
	cmd.Flags().StringVar(&startType, "start", "today", "cycle anchor (today, first_day, last_day)")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func updateLimitCmd() *cobra.Command {
	var (
		amount    string
		period    string
		threshold int
		active    bool
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a limit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			engine, store, err := initEngine(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			var upd service.LimitUpdate
			if cmd.Flags().Changed("amount") {
				amt, err := parseAmount(amount)
				if err != nil {
					return err
				}
				upd.LimitAmount = &amt
			}
			if cmd.Flags().Changed("period") {
				p := model.LimitPeriod(period)
				upd.Period = &p
			}
			if cmd.Flags().Changed("threshold") {
				upd.AlertThreshold = &threshold
			}
			if cmd.Flags().Changed("active") {
				upd.IsActive = &active
			}

			updated, err := engine.UpdateLimit(ctx, args[0], upd)
			if err != nil {
				return fmt.Errorf("failed to update limit: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated limit on %q", updated.Category)))
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "limit amount")
	cmd.Flags().StringVar(&period, "period", "", "period (biweekly, monthly, bimonthly, quarterly, semiannual, annual)")
	cmd.Flags().IntVar(&threshold, "threshold", 0, "alert threshold percentage")
	cmd.Flags().BoolVar(&active, "active", true, "whether the limit accrues")

	return cmd
}
