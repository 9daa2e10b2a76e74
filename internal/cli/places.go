package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"roam/internal/domain"
	"roam/internal/render"
)

func newPlacesCmd(app *App) *cobra.Command {
	places := &cobra.Command{
		Use:   "places",
		Short: "Manage saved addresses (home, work, etc.)",
	}

	add := &cobra.Command{
		Use:   "add <name> <address>",
		Short: "Add a saved place",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := domain.SavedPlace{Name: args[0], Address: args[1]}

			if err := app.Places.Upsert(p); err != nil {
				return err
			}

			fmt.Fprintf(app.Out, "Added %s: %s\n", p.Name, p.Address)
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List all saved places",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			saved, err := app.Places.List()
			if err != nil {
				return err
			}

			render.New(app.Out).Places(saved)
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a saved place",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Places.Remove(args[0]); err != nil {
				return err
			}

			fmt.Fprintf(app.Out, "Removed %s from places.\n", args[0])
			return nil
		},
	}

	places.AddCommand(add, list, remove)
	return places
}
