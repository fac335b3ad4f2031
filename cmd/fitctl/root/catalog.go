package root

import (
	"fmt"

	"github.com/2beens/fittracker/internal/catalog"

	"github.com/spf13/cobra"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse the built-in exercise catalog",
	}
	cmd.AddCommand(newCatalogListCmd())
	return cmd
}

func newCatalogListCmd() *cobra.Command {
	var category string
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List exercises",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			exercises, err := catalog.New().ListExercises(cmd.Context(), catalog.ListParams{
				Category: catalog.Category(category),
				Query:    query,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, e := range exercises {
				fmt.Fprintf(out, "%3s  %-28s %s\n", e.ID, e.Name, e.Category)
			}
			fmt.Fprintf(out, "%d exercises\n", len(exercises))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Filter by category")
	cmd.Flags().StringVarP(&query, "query", "q", "", "Filter by name")

	return cmd
}
