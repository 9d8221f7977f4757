package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/Jhonatansales/gestao-financeira/internal/cli"
	"github.com/Jhonatansales/gestao-financeira/internal/model"
	"github.com/Jhonatansales/gestao-financeira/internal/service"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"tx"},
		Short:   "Manage transactions",
		Long: `List, add, and update transactions. Creating or updating a transaction
applies its balance effects: settled account expenses and income move account
balances, settled card expenses move card usage, and transfers move money
between two accounts.`,
	}

	cmd.AddCommand(listTransactionsCmd())
	cmd.AddCommand(addTransactionCmd())
	cmd.AddCommand(updateTransactionCmd())

	return cmd
}

func listTransactionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all transactions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			engine, store, err := initEngine(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			transactions, err := engine.ListTransactions(ctx)
			if err != nil {
				return fmt.Errorf("failed to list transactions: %w", err)
			}

			if len(transactions) == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions found. Use 'gestao transactions add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				headerStyle.Render("ID"),
				headerStyle.Render("Date"),
				headerStyle.Render("Title"),
				headerStyle.Render("Type"),
				headerStyle.Render("Category"),
				headerStyle.Render("Status"),
				headerStyle.Render("Amount"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 8),
				strings.Repeat("-", 10),
				strings.Repeat("-", 20),
				strings.Repeat("-", 8),
				strings.Repeat("-", 14),
				strings.Repeat("-", 8),
				strings.Repeat("-", 10))

			for i := range transactions {
				t := &transactions[i]
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					t.ID, t.Date.Format("2006-01-02"), t.Title, t.Type,
					t.Category, t.Status, t.Amount.StringFixed(2))
			}

			return nil
		},
	}
}

func addTransactionCmd() *cobra.Command {
	var (
		amount      string
		txnType     string
		category    string
		subcategory string
		method      string
		source      string
		status      string
		date        string
		from        string
		to          string
		description string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a new transaction",
		Long: `Record a transaction. Expenses default to paid and income to received;
use --status pending to defer the balance effect. Transfers need --from and
--to account ids and always move money.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			engine, store, err := initEngine(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			amt, err := parseAmount(amount)
			if err != nil {
				return err
			}

			txn := model.Transaction{
				Title:         args[0],
				Description:   description,
				Amount:        amt,
				Type:          model.TransactionType(txnType),
				Category:      category,
				Subcategory:   subcategory,
				PaymentMethod: model.PaymentMethod(method),
				PaymentSource: source,
				Status:        model.TransactionStatus(status),
			}
			if txn.Status == "" {
				if txn.Type == model.TransactionTypeIncome {
					txn.Status = model.StatusReceived
				} else {
					txn.Status = model.StatusPaid
				}
			}
			if date != "" {
				parsed, err := time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("invalid date %q, want YYYY-MM-DD: %w", date, err)
				}
				txn.Date = parsed
			}
			if from != "" || to != "" {
				txn.Transfer = &model.TransferInfo{FromAccountID: from, ToAccountID: to}
			}

			created, err := engine.CreateTransaction(ctx, &txn)
			if err != nil {
				return fmt.Errorf("failed to create transaction: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created %s %q of %s (%s)",
				created.Type, created.Title, created.Amount.StringFixed(2), created.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "transaction amount (required)")
	cmd.Flags().StringVar(&txnType, "type", "expense", "transaction type (income, expense, transfer)")
	cmd.Flags().StringVar(&category, "category", "", "category id")
	cmd.Flags().StringVar(&subcategory, "subcategory", "", "subcategory id")
	cmd.Flags().StringVar(&method, "method", "cash", "payment method (account, card, cash, pix)")
	cmd.Flags().StringVar(&source, "source", "", "account or card id the payment comes from")
	cmd.Flags().StringVar(&status, "status", "", "status (paid, received, pending)")
	cmd.Flags().StringVar(&date, "date", "", "transaction date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&from, "from", "", "source account id for transfers")
	cmd.Flags().StringVar(&to, "to", "", "destination account id for transfers")
	cmd.Flags().StringVar(&description, "description", "", "free-form description")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func updateTransactionCmd() *cobra.Command {
	var (
		title    string
		amount   string
		status   string
		category string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a transaction",
		Long: `Update a transaction. The stored version's balance effects are reversed
and the updated version's effects applied, so editing an amount or settling a
pending transaction keeps every balance consistent.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			engine, store, err := initEngine(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			var upd service.TransactionUpdate
			if cmd.Flags().Changed("title") {
				upd.Title = &title
			}
			if cmd.Flags().Changed("amount") {
				amt, err := parseAmount(amount)
				if err != nil {
					return err
				}
				upd.Amount = &amt
			}
			if cmd.Flags().Changed("status") {
				st := model.TransactionStatus(status)
				upd.Status = &st
			}
			if cmd.Flags().Changed("category") {
				upd.Category = &category
			}

			txn, err := engine.UpdateTransaction(ctx, args[0], upd)
			if err != nil {
				return fmt.Errorf("failed to update transaction: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated transaction %q (%s)", txn.Title, txn.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&amount, "amount", "", "new amount")
	cmd.Flags().StringVar(&status, "status", "", "new status (paid, received, pending)")
	cmd.Flags().StringVar(&category, "category", "", "new category id")

	return cmd
}
