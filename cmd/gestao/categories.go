package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/Jhonatansales/gestao-financeira/internal/cli"
	"github.com/Jhonatansales/gestao-financeira/internal/model"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage transaction categories",
		Long: `List the category taxonomy and add custom categories or subcategories.
Custom categories extend the built-in set; adding a subcategory to a built-in
category creates a custom copy that shadows it.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(addSubcategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			engine, store, err := initEngine(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			categories, err := engine.Categories(ctx)
			if err != nil {
				return fmt.Errorf("failed to list categories: %w", err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				headerStyle.Render("ID"),
				headerStyle.Render("Name"),
				headerStyle.Render("Type"),
				headerStyle.Render("Subcategories"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 16),
				strings.Repeat("-", 20),
				strings.Repeat("-", 8),
				strings.Repeat("-", 40))

			for i := range categories {
				cat := &categories[i]
				subs := make([]string, len(cat.Subcategories))
				for j, sub := range cat.Subcategories {
					subs[j] = sub.Name
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					cat.ID, cat.Name, cat.Type, strings.Join(subs, ", "))
			}

			return nil
		},
	}
}

func addCategoryCmd() *cobra.Command {
	var (
		icon         string
		categoryType string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a custom category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			engine, store, err := initEngine(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			category, err := engine.CreateCustomCategory(ctx, args[0], icon, model.CategoryType(categoryType))
			if err != nil {
				return fmt.Errorf("failed to create category: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created category %q (%s)", category.Name, category.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&icon, "icon", "", "icon name")
	cmd.Flags().StringVar(&categoryType, "type", "expense", "category type (income, expense, both)")

	return cmd
}

func addSubcategoryCmd() *cobra.Command {
	var icon string

	cmd := &cobra.Command{
		Use:   "add-sub <category-id> <name>",
		Short: "Add a subcategory to a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			engine, store, err := initEngine(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			category, err := engine.AddCustomSubcategory(ctx, args[0], args[1], icon)
			if err != nil {
				return fmt.Errorf("failed to add subcategory: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added subcategory %q to %q", args[1], category.Name)))
			return nil
		},
	}

	cmd.Flags().StringVar(&icon, "icon", "", "icon name")

	return cmd
}
