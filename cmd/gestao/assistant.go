package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Jhonatansales/gestao-financeira/internal/assistant"
	"github.com/Jhonatansales/gestao-financeira/internal/cli"
	"github.com/Jhonatansales/gestao-financeira/internal/ledger"
	"github.com/spf13/cobra"
)

func assistantCmd() *cobra.Command {
	var fromStdin bool

	cmd := &cobra.Command{
		Use:   "assistant [output]",
		Short: "Execute a structured assistant command",
		Long: `Execute the JSON command a language model emitted. The output is parsed
into a structured command and dispatched against the ledger; output that is
not a valid command is surfaced as-is without touching any data.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var raw string
			switch {
			case fromStdin:
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("failed to read stdin: %w", err)
				}
				raw = string(data)
			case len(args) == 1:
				raw = args[0]
			default:
				return fmt.Errorf("provide the model output as an argument or via --stdin")
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			dispatcher := assistant.NewDispatcher(ledger.New(store))
			parsed := assistant.Parse(raw)
			result, err := dispatcher.Dispatch(ctx, parsed)
			if err != nil {
				return fmt.Errorf("failed to execute assistant command: %w", err)
			}

			if parsed.Action == assistant.ActionError {
				fmt.Println(cli.FormatWarning(result.Message))
				return nil
			}
			fmt.Println(cli.FormatSuccess(strings.TrimSpace(result.Message)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "read the model output from stdin")

	return cmd
}
