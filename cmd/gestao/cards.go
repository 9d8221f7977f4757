package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/Jhonatansales/gestao-financeira/internal/cli"
	"github.com/Jhonatansales/gestao-financeira/internal/model"
	"github.com/Jhonatansales/gestao-financeira/internal/service"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func cardsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cards",
		Short: "Manage payment cards",
		Long:  `List, add, and update the payment cards tracked by the ledger.`,
	}

	cmd.AddCommand(listCardsCmd())
	cmd.AddCommand(addCardCmd())
	cmd.AddCommand(updateCardCmd())

	return cmd
}

func listCardsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all cards",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			engine, store, err := initEngine(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			cards, err := engine.ListCards(ctx)
			if err != nil {
				return fmt.Errorf("failed to list cards: %w", err)
			}

			if len(cards) == 0 {
				fmt.Println(cli.InfoStyle.Render("No cards found. Use 'gestao cards add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				headerStyle.Render("ID"),
				headerStyle.Render("Name"),
				headerStyle.Render("Limit"),
				headerStyle.Render("Used"),
				headerStyle.Render("Available"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 8),
				strings.Repeat("-", 20),
				strings.Repeat("-", 10),
				strings.Repeat("-", 10),
				strings.Repeat("-", 10))

			for i := range cards {
				c := &cards[i]
				available := c.Available()
				rendered := available.StringFixed(2)
				if available.IsNegative() {
					rendered = cli.ErrorStyle.Render(rendered)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					c.ID, c.Name, c.Limit.StringFixed(2), c.Used.StringFixed(2), rendered)
			}

			return nil
		},
	}
}

func addCardCmd() *cobra.Command {
	var (
		limit       string
		used        string
		bank        string
		dueDate     int
		closingDate int
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			engine, store, err := initEngine(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			limitAmount, err := parseAmount(limit)
			if err != nil {
				return err
			}
			usedAmount, err := parseAmount(used)
			if err != nil {
				return err
			}

			card, err := engine.CreateCard(ctx, &model.Card{
				Name:        args[0],
				Limit:       limitAmount,
				Used:        usedAmount,
				Bank:        bank,
				DueDate:     dueDate,
				ClosingDate: closingDate,
			})
			if err != nil {
				return fmt.Errorf("failed to create card: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created card %q (%s) with limit %s",
				card.Name, card.ID, card.Limit.StringFixed(2))))
			return nil
		},
	}

	cmd.Flags().StringVar(&limit, "limit", "0", "credit limit")
	cmd.Flags().StringVar(&used, "used", "0", "amount already used")
	cmd.Flags().StringVar(&bank, "bank", "", "bank name")
	cmd.Flags().IntVar(&dueDate, "due-day", 0, "invoice due day of month")
	cmd.Flags().IntVar(&closingDate, "closing-day", 0, "invoice closing day of month")

	return cmd
}

func updateCardCmd() *cobra.Command {
	var (
		name        string
		limit       string
		bank        string
		dueDate     int
		closingDate int
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a card's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			engine, store, err := initEngine(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			var upd service.CardUpdate
			if cmd.Flags().Changed("name") {
				upd.Name = &name
			}
			if cmd.Flags().Changed("limit") {
				limitAmount, err := parseAmount(limit)
				if err != nil {
					return err
				}
				upd.Limit = &limitAmount
			}
			if cmd.Flags().Changed("bank") {
				upd.Bank = &bank
			}
			if cmd.Flags().Changed("due-day") {
				upd.DueDate = &dueDate
			}
			if cmd.Flags().Changed("closing-day") {
				upd.ClosingDate = &closingDate
			}

			card, err := engine.UpdateCard(ctx, args[0], upd)
			if err != nil {
				return fmt.Errorf("failed to update card: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated card %q", card.Name)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new card name")
	cmd.Flags().StringVar(&limit, "limit", "", "credit limit")
	cmd.Flags().StringVar(&bank, "bank", "", "bank name")
	cmd.Flags().IntVar(&dueDate, "due-day", 0, "invoice due day of month")
	cmd.Flags().IntVar(&closingDate, "closing-day", 0, "invoice closing day of month")

	return cmd
}
