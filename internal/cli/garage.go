package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"roam/internal/domain"
	"roam/internal/render"
)

func newGarageCmd(app *App) *cobra.Command {
	garage := &cobra.Command{
		Use:   "garage",
		Short: "Manage your fleet of vehicles",
	}

	var (
		mode          string
		engine        string
		avoidTolls    bool
		avoidHighways bool
	)

	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a vehicle to your garage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := domain.VehicleProfile{
				Name:          args[0],
				Mode:          domain.Mode(mode),
				Engine:        domain.Engine(engine),
				AvoidTolls:    avoidTolls,
				AvoidHighways: avoidHighways,
			}

			if err := app.Garage.Upsert(v); err != nil {
				return err
			}

			fmt.Fprintf(app.Out, "Added %s to garage.\n", v.Name)
			return nil
		},
	}
	add.Flags().StringVarP(&mode, "mode", "m", "", "Travel mode (required).")
	add.Flags().StringVarP(&engine, "engine", "e", "", "Engine type (for drive mode).")
	add.Flags().BoolVarP(&avoidTolls, "avoid-tolls", "t", false, "Avoid tolls.")
	add.Flags().BoolVarP(&avoidHighways, "avoid-highways", "H", false, "Avoid highways.")
	add.MarkFlagRequired("mode")

	list := &cobra.Command{
		Use:   "list",
		Short: "List all vehicles in your garage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vehicles, err := app.Garage.List()
			if err != nil {
				return err
			}

			render.New(app.Out).Garage(vehicles)
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a vehicle from your garage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Garage.Remove(args[0]); err != nil {
				return err
			}

			fmt.Fprintf(app.Out, "Removed %s from garage.\n", args[0])
			return nil
		},
	}

	garage.AddCommand(add, list, remove)
	return garage
}
