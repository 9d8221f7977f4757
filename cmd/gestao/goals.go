package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/Jhonatansales/gestao-financeira/internal/cli"
	"github.com/Jhonatansales/gestao-financeira/internal/goal"
	"github.com/Jhonatansales/gestao-financeira/internal/model"
	"github.com/Jhonatansales/gestao-financeira/internal/service"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func goalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Manage savings goals",
		Long: `List, add, and update savings goals. Each goal carries a feasibility
projection: whether the monthly contribution reaches the target by the target
date, and if not, what contribution would.`,
	}

	cmd.AddCommand(listGoalsCmd())
	cmd.AddCommand(addGoalCmd())
	cmd.AddCommand(updateGoalCmd())

	return cmd
}

func listGoalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all goals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			engine, store, err := initEngine(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			goals, err := engine.ListGoals(ctx)
			if err != nil {
				return fmt.Errorf("failed to list goals: %w", err)
			}

			if len(goals) == 0 {
				fmt.Println(cli.InfoStyle.Render("No goals found. Use 'gestao goals add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				headerStyle.Render("ID"),
				headerStyle.Render("Title"),
				headerStyle.Render("Progress"),
				headerStyle.Render("Target date"),
				headerStyle.Render("Realistic"),
				headerStyle.Render("Status"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 8),
				strings.Repeat("-", 20),
				strings.Repeat("-", 18),
				strings.Repeat("-", 11),
				strings.Repeat("-", 9),
				strings.Repeat("-", 9))

			for i := range goals {
				g := &goals[i]
				progress := fmt.Sprintf("%s / %s (%.0f%%)",
					g.CurrentAmount.StringFixed(2), g.TargetAmount.StringFixed(2),
					goal.ProgressPercentage(g.TargetAmount, g.CurrentAmount))
				realistic := cli.SuccessStyle.Render("yes")
				if !g.IsRealistic {
					realistic = cli.WarningStyle.Render("no")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					g.ID, g.Title, progress, g.TargetDate.Format("2006-01-02"), realistic, g.Status)
			}

			for i := range goals {
				if goals[i].AISuggestion != "" {
					fmt.Println(cli.WarningStyle.Render(goals[i].AISuggestion))
				}
			}

			return nil
		},
	}
}

func addGoalCmd() *cobra.Command {
	var (
		target      string
		current     string
		monthly     string
		targetDate  string
		priority    string
		category    string
		description string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a new goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			engine, store, err := initEngine(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			targetAmount, err := parseAmount(target)
			if err != nil {
				return err
			}
			currentAmount, err := parseAmount(current)
			if err != nil {
				return err
			}
			monthlyAmount, err := parseAmount(monthly)
			if err != nil {
				return err
			}
			date, err := time.Parse("2006-01-02", targetDate)
			if err != nil {
				return fmt.Errorf("invalid target date %q, want YYYY-MM-DD: %w", targetDate, err)
			}

			created, err := engine.CreateGoal(ctx, &model.Goal{
				Title:               args[0],
				Description:         description,
				TargetAmount:        targetAmount,
				CurrentAmount:       currentAmount,
				MonthlyContribution: monthlyAmount,
				TargetDate:          date,
				Priority:            model.GoalPriority(priority),
				Category:            category,
			})
			if err != nil {
				return fmt.Errorf("failed to create goal: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created goal %q (%s)", created.Title, created.ID)))
			if created.AISuggestion != "" {
				fmt.Println(cli.WarningStyle.Render(created.AISuggestion))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "target", "", "target amount (required)")
	cmd.Flags().StringVar(&current, "current", "0", "amount already saved")
	cmd.Flags().StringVar(&monthly, "monthly", "0", "planned monthly contribution")
	cmd.Flags().StringVar(&targetDate, "date", "", "target date (YYYY-MM-DD, required)")
	cmd.Flags().StringVar(&priority, "priority", "medium", "priority (low, medium, high)")
	cmd.Flags().StringVar(&category, "category", "", "category id")
	cmd.Flags().StringVar(&description, "description", "", "free-form description")
	_ = cmd.MarkFlagRequired("target")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func updateGoalCmd() *cobra.Command {
	var (
		current string
		monthly string
		status  string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			engine, store, err := initEngine(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			var upd service.GoalUpdate
			if cmd.Flags().Changed("current") {
				amt, err := parseAmount(current)
				if err != nil {
					return err
				}
				upd.CurrentAmount = &amt
			}
			if cmd.Flags().Changed("monthly") {
				amt, err := parseAmount(monthly)
				if err != nil {
					return err
				}
				upd.MonthlyContribution = &amt
			}
			if cmd.Flags().Changed("status") {
				st := model.GoalStatus(status)
				upd.Status = &st
			}

			updated, err := engine.UpdateGoal(ctx, args[0], upd)
			if err != nil {
				return fmt.Errorf("failed to update goal: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated goal %q", updated.Title)))
			if updated.AISuggestion != "" {
				fmt.Println(cli.WarningStyle.Render(updated.AISuggestion))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&current, "current", "", "amount already saved")
	cmd.Flags().StringVar(&monthly, "monthly", "", "planned monthly contribution")
	cmd.Flags().StringVar(&status, "status", "", "status (active, completed, paused)")

	return cmd
}
