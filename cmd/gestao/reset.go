package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/Jhonatansales/gestao-financeira/internal/cli"
	"github.com/Jhonatansales/gestao-financeira/internal/ledger"
	"github.com/spf13/cobra"
)

func resetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all financial data",
		Long:  `Delete every account, card, transaction, goal, limit and custom category.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if !force {
				fmt.Println(cli.FormatWarning("This will delete ALL financial data. Type 'yes' to confirm:"))
				reader := bufio.NewReader(os.Stdin)
				answer, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("failed to read confirmation: %w", err)
				}
				if strings.TrimSpace(answer) != "yes" {
					fmt.Println(cli.InfoStyle.Render("Aborted."))
					return nil
				}
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := ledger.New(store).ResetAllData(ctx); err != nil {
				return fmt.Errorf("failed to reset data: %w", err)
			}

			fmt.Println(cli.FormatSuccess("All data deleted."))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "skip the confirmation prompt")

	return cmd
}
