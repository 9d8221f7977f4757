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

func accountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage bank accounts",
		Long:  `List, add, and update the bank accounts tracked by the ledger.`,
	}

	cmd.AddCommand(listAccountsCmd())
	cmd.AddCommand(addAccountCmd())
	cmd.AddCommand(updateAccountCmd())

	return cmd
}

func listAccountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			engine, store, err := initEngine(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			accounts, err := engine.ListAccounts(ctx)
			if err != nil {
				return fmt.Errorf("failed to list accounts: %w", err)
			}

			if len(accounts) == 0 {
				fmt.Println(cli.InfoStyle.Render("No accounts found. Use 'gestao accounts add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				headerStyle.Render("ID"),
				headerStyle.Render("Name"),
				headerStyle.Render("Type"),
				headerStyle.Render("Bank"),
				headerStyle.Render("Balance"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 8),
				strings.Repeat("-", 20),
				strings.Repeat("-", 10),
				strings.Repeat("-", 12),
				strings.Repeat("-", 10))

			for i := range accounts {
				a := &accounts[i]
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					a.ID, a.Name, a.Type, a.Bank, a.Balance.StringFixed(2))
			}

			return nil
		},
	}
}

func addAccountCmd() *cobra.Command {
	var (
		balance     string
		accountType string
		bank        string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			engine, store, err := initEngine(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			initial, err := parseAmount(balance)
			if err != nil {
				return err
			}

			account, err := engine.CreateAccount(ctx, &model.Account{
				Name:    args[0],
				Balance: initial,
				Type:    model.AccountType(accountType),
				Bank:    bank,
			})
			if err != nil {
				return fmt.Errorf("failed to create account: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created account %q (%s) with balance %s",
				account.Name, account.ID, account.Balance.StringFixed(2))))
			return nil
		},
	}

	cmd.Flags().StringVar(&balance, "balance", "0", "initial balance")
	cmd.Flags().StringVar(&accountType, "type", "checking", "account type (checking, savings, investment)")
	cmd.Flags().StringVar(&bank, "bank", "", "bank name")

	return cmd
}

func updateAccountCmd() *cobra.Command {
	var (
		name        string
		accountType string
		bank        string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an account's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			engine, store, err := initEngine(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			var upd service.AccountUpdate
			if cmd.Flags().Changed("name") {
				upd.Name = &name
			}
			if cmd.Flags().Changed("type") {
				t := model.AccountType(accountType)
				upd.Type = &t
			}
			if cmd.Flags().Changed("bank") {
				upd.Bank = &bank
			}

			account, err := engine.UpdateAccount(ctx, args[0], upd)
			if err != nil {
				return fmt.Errorf("failed to update account: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated account %q", account.Name)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new account name")
	cmd.Flags().StringVar(&accountType, "type", "", "account type (checking, savings, investment)")
	cmd.Flags().StringVar(&bank, "bank", "", "bank name")

	return cmd
}
